// File: types.go
// Title: Document Model Types
// Description: Layers, catalog entries, the flat position list and the
//              collaborator interfaces for visibility and reordering.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package document

// LayerID is the stable key of a layer within one document
type LayerID string

// Handle is the collaborator-owned representation of a layer
type Handle interface {
	ID() string
	Hidden() bool
	SetHidden(hidden bool)
}

// Reorderer relocates src next to dst inside the collaborator-owned container.
// src ends up after dst when it preceded dst, otherwise before it.
type Reorderer interface {
	Reorder(src, dst Handle) error
}

// Layer is the state of one layer. Handle may be nil for layers that only
// exist in the model.
type Layer struct {
	ID     LayerID
	Name   string
	Hidden bool
	Handle Handle
}

// Entry is one top-level catalog slot: a LayerContainer or a Category
type Entry interface {
	EntryID() LayerID
	entry()
}

// LayerContainer references a layer in the lookup map
type LayerContainer struct {
	ID LayerID
}

// EntryID implements Entry
func (c LayerContainer) EntryID() LayerID { return c.ID }

func (LayerContainer) entry() {}

// Category groups elements under a layer of its own. In an Include category at
// most one element is visible at a time.
type Category struct {
	ID       LayerID
	Include  bool
	Elements []LayerContainer
}

// EntryID implements Entry
func (c Category) EntryID() LayerID { return c.ID }

func (Category) entry() {}

// Catalog is the hierarchical view in first-seen order
type Catalog []Entry

// Positions is the flat z-order view, an index space independent of Catalog
type Positions []LayerID

// Root is a document snapshot
type Root struct {
	Layers    map[LayerID]Layer
	Positions Positions
	Catalog   Catalog
}

// Element wraps id as a top-level element entry
func Element(id LayerID) Entry {
	return LayerContainer{ID: id}
}

// NewCategory builds a category entry from member ids
func NewCategory(id LayerID, include bool, members ...LayerID) Category {
	elements := make([]LayerContainer, len(members))
	for i, m := range members {
		elements[i] = LayerContainer{ID: m}
	}
	return Category{ID: id, Include: include, Elements: elements}
}
