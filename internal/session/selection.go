// File: selection.go
// Title: Row Selection
// Description: Display rows of a catalog and a selection that follows a layer
//              across edits.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package session

import (
	"github.com/msto63/layerdeck/internal/document"
)

// Rows lists the catalog in display order: every top-level entry, with the
// members of a category directly after the category itself.
func Rows(root document.Root) []document.Pos {
	rows := make([]document.Pos, 0, root.Len())
	for i, e := range root.Catalog {
		switch e := e.(type) {
		case document.LayerContainer:
			rows = append(rows, document.ElementPos{Index: i})
		case document.Category:
			rows = append(rows, document.CategoryPos{Index: i})
			for j := range e.Elements {
				rows = append(rows, document.CategoryElementPos{Category: i, Element: j})
			}
		}
	}
	return rows
}

// Step returns the destination for moving the entry at p by delta slots.
//
// Top-level entries move among top-level slots. A category member moves
// within its category; past either end it hops into the nearest category in
// that direction, landing at the far end. ok is false when there is no slot.
func Step(root document.Root, p document.Pos, delta int) (dst document.Pos, ok bool) {
	switch p := p.(type) {
	case document.ElementPos:
		return topSlot(root, p.Index+delta)
	case document.CategoryPos:
		return topSlot(root, p.Index+delta)
	case document.CategoryElementPos:
		cat, isCat := categoryAt(root, p.Category)
		if !isCat {
			return nil, false
		}
		e := p.Element + delta
		if e >= 0 && e < len(cat.Elements) {
			return document.CategoryElementPos{Category: p.Category, Element: e}, true
		}
		for c := p.Category + sign(delta); c >= 0 && c < len(root.Catalog); c += sign(delta) {
			next, isCat := categoryAt(root, c)
			if !isCat {
				continue
			}
			if delta < 0 {
				return document.CategoryElementPos{Category: c, Element: len(next.Elements)}, true
			}
			return document.CategoryElementPos{Category: c, Element: 0}, true
		}
	}
	return nil, false
}

func topSlot(root document.Root, i int) (document.Pos, bool) {
	if i < 0 || i >= len(root.Catalog) {
		return nil, false
	}
	if _, isCat := root.Catalog[i].(document.Category); isCat {
		return document.CategoryPos{Index: i}, true
	}
	return document.ElementPos{Index: i}, true
}

func categoryAt(root document.Root, i int) (document.Category, bool) {
	if i < 0 || i >= len(root.Catalog) {
		return document.Category{}, false
	}
	c, ok := root.Catalog[i].(document.Category)
	return c, ok
}

func sign(n int) int {
	if n < 0 {
		return -1
	}
	return 1
}

// Selection remembers the selected layer by id so it stays on the same layer
// when edits shift positions around.
type Selection struct {
	ID document.LayerID
}

// Select returns a selection of the layer at p
func Select(root document.Root, p document.Pos) Selection {
	l, err := root.Resolve(p)
	if err != nil {
		return Selection{}
	}
	return Selection{ID: l.ID}
}

// Pos returns the current position of the selected layer
func (s Selection) Pos(root document.Root) (document.Pos, bool) {
	if s.ID == "" {
		return nil, false
	}
	return root.PosOf(s.ID)
}

// Row returns the display row of the selected layer, or 0 when it is gone
func (s Selection) Row(root document.Root) int {
	p, ok := s.Pos(root)
	if !ok {
		return 0
	}
	for i, r := range Rows(root) {
		if r == p {
			return i
		}
	}
	return 0
}
