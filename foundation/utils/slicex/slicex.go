// File: slicex.go
// Title: Core Slice Utilities
// Description: Implements the generic slice helpers used by the document model.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive slice utilities
// - 2026-10-15 v0.2.0: Ordering helpers for layer lists

package slicex

import (
	mdwerror "github.com/msto63/layerdeck/foundation/core/error"
)

// ===============================
// Ordering Functions
// ===============================

// ErrIndexOutOfRange is matched (via errors.Is) by every range error returned
// from this package.
var ErrIndexOutOfRange = mdwerror.New("index out of range").WithCode(mdwerror.CodeNotFound)

func rangeError(op string, index, length int) error {
	return mdwerror.Newf("index %d out of range [0,%d)", index, length).
		WithCode(mdwerror.CodeNotFound).
		WithOperation("slicex." + op).
		WithDetail("index", index).
		WithDetail("length", length)
}

// PickAndMove removes the element at src and reinserts it so that it ends up
// at index dst. The element that sat at dst becomes its successor when
// src > dst and its predecessor when src < dst. Equal indices return a copy of
// the input unchanged.
func PickAndMove[T any](slice []T, src, dst int) ([]T, error) {
	if src < 0 || src >= len(slice) {
		return nil, rangeError("PickAndMove", src, len(slice))
	}
	if dst < 0 || dst >= len(slice) {
		return nil, rangeError("PickAndMove", dst, len(slice))
	}

	result := Clone(slice)
	if src == dst {
		return result, nil
	}

	item := result[src]
	if src < dst {
		copy(result[src:dst], result[src+1:dst+1])
	} else {
		copy(result[dst+1:src+1], result[dst:src])
	}
	result[dst] = item
	return result, nil
}

// InsertAt returns a new slice with item inserted before index; index may equal
// len(slice) to append.
func InsertAt[T any](slice []T, index int, item T) ([]T, error) {
	if index < 0 || index > len(slice) {
		return nil, rangeError("InsertAt", index, len(slice)+1)
	}

	result := make([]T, 0, len(slice)+1)
	result = append(result, slice[:index]...)
	result = append(result, item)
	result = append(result, slice[index:]...)
	return result, nil
}

// RemoveAt returns the element at index and a new slice without it
func RemoveAt[T any](slice []T, index int) (T, []T, error) {
	var zero T
	if index < 0 || index >= len(slice) {
		return zero, nil, rangeError("RemoveAt", index, len(slice))
	}

	result := make([]T, 0, len(slice)-1)
	result = append(result, slice[:index]...)
	result = append(result, slice[index+1:]...)
	return slice[index], result, nil
}

// ===============================
// Transformation Functions
// ===============================

// Filter returns a new slice containing only elements that match the predicate
func Filter[T any](slice []T, predicate func(T) bool) []T {
	if slice == nil || predicate == nil {
		return nil
	}

	result := make([]T, 0, len(slice))
	for _, item := range slice {
		if predicate(item) {
			result = append(result, item)
		}
	}
	return result
}

// Map transforms each element in the slice using the provided function
func Map[T, R any](slice []T, mapper func(T) R) []R {
	if slice == nil || mapper == nil {
		return nil
	}

	result := make([]R, len(slice))
	for i, item := range slice {
		result[i] = mapper(item)
	}
	return result
}

// ReduceWithIndex folds the slice left to right, passing each element's index
// to the reducer.
func ReduceWithIndex[T, R any](slice []T, initial R, reducer func(R, int, T) R) R {
	if reducer == nil {
		return initial
	}

	result := initial
	for i, item := range slice {
		result = reducer(result, i, item)
	}
	return result
}

// Flatten flattens a slice of slices into a single slice
func Flatten[T any](slices [][]T) []T {
	if slices == nil {
		return nil
	}

	total := 0
	for _, s := range slices {
		total += len(s)
	}
	result := make([]T, 0, total)
	for _, s := range slices {
		result = append(result, s...)
	}
	return result
}

// Reverse returns a new slice with the elements in reverse order
func Reverse[T any](slice []T) []T {
	if slice == nil {
		return nil
	}

	result := make([]T, len(slice))
	for i, item := range slice {
		result[len(slice)-1-i] = item
	}
	return result
}

// ===============================
// Search Functions
// ===============================

// IndexOf returns the index of the first occurrence of element, or -1
func IndexOf[T comparable](slice []T, element T) int {
	for i, item := range slice {
		if item == element {
			return i
		}
	}
	return -1
}

// IndexOfBy returns the index of the first element matching the predicate, or -1
func IndexOfBy[T any](slice []T, predicate func(T) bool) int {
	if predicate == nil {
		return -1
	}
	for i, item := range slice {
		if predicate(item) {
			return i
		}
	}
	return -1
}

// Clone creates a shallow copy of the slice
func Clone[T any](slice []T) []T {
	if slice == nil {
		return nil
	}

	result := make([]T, len(slice))
	copy(result, slice)
	return result
}

// Equal checks if two slices hold equal elements in the same order
func Equal[T comparable](slice1, slice2 []T) bool {
	if len(slice1) != len(slice2) {
		return false
	}
	for i, item := range slice1 {
		if item != slice2[i] {
			return false
		}
	}
	return true
}
