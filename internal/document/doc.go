// Package document holds the layer document model: a lookup map of layers, the
// flat z-order list and the two-level catalog of elements and categories.
//
// A Root is an immutable snapshot. Every edit (ToggleVisible, Move,
// MovePosition, InsertElement, Remove) returns a new Root and leaves its input
// untouched, also when it fails. The only side effects are explicit: the
// visibility of changed layers is written through to their Handle after the
// new Root has been computed, and MovePosition issues one call to a Reorderer.
//
// Catalog entries and positions refer to layers by LayerID only; the Layers map
// is the single owner of layer state.
package document
