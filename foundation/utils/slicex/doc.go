// Package slicex implements generic slice helpers for layerdeck.
//
// Package: slicex
// Title: Extended Slice Utilities
// Description: Generic, non-mutating helpers for ordered lists. The document
//              model builds every reorder on PickAndMove and every multi-layer
//              visibility update on ReduceWithIndex.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive slice operations
// - 2026-10-15 v0.2.0: Added PickAndMove, InsertAt and RemoveAt, dropped unused helpers
//
// # Ordering helpers
//
//   - PickAndMove: remove an element and reinsert it at another index
//   - InsertAt / RemoveAt: single-element splices with range checks
//
// # Transformation helpers
//
//   - Map, Filter, Flatten, Reverse
//   - ReduceWithIndex: fold with the element index
//
// # Search helpers
//
//   - IndexOf, IndexOfBy, Equal, Clone
//
// None of the functions modify their input slice.
package slicex
