// File: visibility.go
// Title: Visibility Edits
// Description: Toggling layer visibility, including the radio behaviour of
//              include categories, with an explicit write-through step onto
//              the layer handles.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package document

import (
	mdwerror "github.com/msto63/layerdeck/foundation/core/error"
	"github.com/msto63/layerdeck/foundation/utils/slicex"
)

type visibilityChange struct {
	id     LayerID
	hidden bool
}

// ToggleVisible flips the visibility of the element at p.
//
// Inside an include category a hidden element becomes the only visible member
// and every sibling is hidden; a visible one is simply hidden. Categories have
// no visibility of their own, so a CategoryPos is rejected.
func ToggleVisible(root Root, p Pos) (Root, error) {
	const op = "document.ToggleVisible"

	changes, err := toggleChanges(root, p, op)
	if err != nil {
		return root, err
	}
	next, changed, err := applyVisibility(root, changes, op)
	if err != nil {
		return root, err
	}
	WriteThrough(changed)
	return next, nil
}

// SetHidden sets the visibility of the layer at p, ignoring radio groups
func SetHidden(root Root, p Pos, hidden bool) (Root, error) {
	const op = "document.SetHidden"

	if _, ok := p.(CategoryPos); ok {
		return root, categoryVisibilityError(op, p)
	}
	id, err := root.resolveID(p, op)
	if err != nil {
		return root, err
	}
	next, changed, err := applyVisibility(root, []visibilityChange{{id: id, hidden: hidden}}, op)
	if err != nil {
		return root, err
	}
	WriteThrough(changed)
	return next, nil
}

// WriteThrough mirrors the Hidden flag of each layer onto its handle
func WriteThrough(layers []Layer) {
	for _, l := range layers {
		if l.Handle != nil {
			l.Handle.SetHidden(l.Hidden)
		}
	}
}

func toggleChanges(root Root, p Pos, op string) ([]visibilityChange, error) {
	switch p := p.(type) {
	case ElementPos:
		c, err := root.elementAt(p.Index, op)
		if err != nil {
			return nil, err
		}
		l, err := root.layer(c.ID, op)
		if err != nil {
			return nil, err
		}
		return []visibilityChange{{id: c.ID, hidden: !l.Hidden}}, nil

	case CategoryPos:
		return nil, categoryVisibilityError(op, p)

	case CategoryElementPos:
		cat, err := root.categoryAt(p.Category, op)
		if err != nil {
			return nil, err
		}
		if p.Element < 0 || p.Element >= len(cat.Elements) {
			return nil, posNotFound(op, p)
		}
		target, err := root.layer(cat.Elements[p.Element].ID, op)
		if err != nil {
			return nil, err
		}
		if cat.Include && target.Hidden {
			return slicex.ReduceWithIndex(cat.Elements, make([]visibilityChange, 0, len(cat.Elements)),
				func(acc []visibilityChange, i int, m LayerContainer) []visibilityChange {
					return append(acc, visibilityChange{id: m.ID, hidden: i != p.Element})
				}), nil
		}
		return []visibilityChange{{id: target.ID, hidden: !target.Hidden}}, nil
	}
	return nil, posNotFound(op, p)
}

// applyVisibility builds the next root without touching any handle and
// returns the changed layers for the write-through step.
func applyVisibility(root Root, changes []visibilityChange, op string) (Root, []Layer, error) {
	layers := root.cloneLayers()
	changed := make([]Layer, 0, len(changes))
	for _, ch := range changes {
		l, err := root.layer(ch.id, op)
		if err != nil {
			return root, nil, err
		}
		l.Hidden = ch.hidden
		layers[ch.id] = l
		changed = append(changed, l)
	}
	return Root{Layers: layers, Positions: root.Positions, Catalog: root.Catalog}, changed, nil
}

func categoryVisibilityError(op string, p Pos) error {
	return mdwerror.Newf("category at %v has no visibility of its own", p).
		WithCode(mdwerror.CodeInvalidOperation).
		WithOperation(op)
}
