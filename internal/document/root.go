// File: root.go
// Title: Document Root
// Description: Construction, lookups, position resolution, flattening and
//              invariant checks on a Root snapshot.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package document

import (
	"maps"

	mdwerror "github.com/msto63/layerdeck/foundation/core/error"
	"github.com/msto63/layerdeck/foundation/utils/slicex"
)

// NewRoot assembles a Root from its three views and checks the invariant
func NewRoot(layers []Layer, positions Positions, catalog Catalog) (Root, error) {
	m := make(map[LayerID]Layer, len(layers))
	for _, l := range layers {
		if _, dup := m[l.ID]; dup {
			return Root{}, mdwerror.Newf("duplicate layer id %q", l.ID).
				WithCode(mdwerror.CodeInvalidInput).
				WithOperation("document.NewRoot").
				WithDetail("id", string(l.ID))
		}
		m[l.ID] = l
	}

	root := Root{Layers: m, Positions: positions, Catalog: catalog}
	if err := root.Validate(); err != nil {
		return Root{}, err
	}
	return root, nil
}

// Lookup returns the layer stored under id
func (r Root) Lookup(id LayerID) (Layer, bool) {
	l, ok := r.Layers[id]
	return l, ok
}

// Len returns the number of layers
func (r Root) Len() int {
	return len(r.Layers)
}

// Resolve returns the layer addressed by p. For a CategoryPos this is the
// category's own layer.
func (r Root) Resolve(p Pos) (Layer, error) {
	id, err := r.resolveID(p, "document.Resolve")
	if err != nil {
		return Layer{}, err
	}
	return r.layer(id, "document.Resolve")
}

// Name returns the display name of the layer addressed by p
func (r Root) Name(p Pos) (string, error) {
	l, err := r.Resolve(p)
	if err != nil {
		return "", err
	}
	return l.Name, nil
}

// IsHidden reports the visibility of the layer addressed by p
func (r Root) IsHidden(p Pos) (bool, error) {
	l, err := r.Resolve(p)
	if err != nil {
		return false, err
	}
	return l.Hidden, nil
}

// Flatten lists catalog ids in order, each category followed by its members
func (r Root) Flatten() []LayerID {
	return slicex.ReduceWithIndex(r.Catalog, make([]LayerID, 0, len(r.Layers)), func(acc []LayerID, _ int, e Entry) []LayerID {
		acc = append(acc, e.EntryID())
		if c, ok := e.(Category); ok {
			for _, m := range c.Elements {
				acc = append(acc, m.ID)
			}
		}
		return acc
	})
}

// Validate checks that every referenced id is a known layer, that each id
// appears exactly once in Positions and once in the flattened Catalog, and
// that both views cover the same ids.
func (r Root) Validate() error {
	seenPos := make(map[LayerID]bool, len(r.Positions))
	for i, id := range r.Positions {
		if _, ok := r.Layers[id]; !ok {
			return invariantError("position %d references unknown layer %q", i, id)
		}
		if seenPos[id] {
			return invariantError("layer %q appears twice in positions", id)
		}
		seenPos[id] = true
	}

	seenCat := make(map[LayerID]bool, len(r.Positions))
	for _, id := range r.Flatten() {
		if _, ok := r.Layers[id]; !ok {
			return invariantError("catalog references unknown layer %q", id)
		}
		if seenCat[id] {
			return invariantError("layer %q appears twice in catalog", id)
		}
		if !seenPos[id] {
			return invariantError("layer %q is in the catalog but not in positions", id)
		}
		seenCat[id] = true
	}
	if len(seenCat) != len(seenPos) {
		for _, id := range r.Positions {
			if !seenCat[id] {
				return invariantError("layer %q is in positions but not in the catalog", id)
			}
		}
	}
	return nil
}

// PosOf returns the catalog position of id
func (r Root) PosOf(id LayerID) (Pos, bool) {
	for i, e := range r.Catalog {
		switch e := e.(type) {
		case LayerContainer:
			if e.ID == id {
				return ElementPos{Index: i}, true
			}
		case Category:
			if e.ID == id {
				return CategoryPos{Index: i}, true
			}
			for j, m := range e.Elements {
				if m.ID == id {
					return CategoryElementPos{Category: i, Element: j}, true
				}
			}
		}
	}
	return nil, false
}

func (r Root) resolveID(p Pos, op string) (LayerID, error) {
	switch p := p.(type) {
	case ElementPos:
		c, err := r.elementAt(p.Index, op)
		if err != nil {
			return "", err
		}
		return c.ID, nil
	case CategoryPos:
		c, err := r.categoryAt(p.Index, op)
		if err != nil {
			return "", err
		}
		return c.ID, nil
	case CategoryElementPos:
		c, err := r.categoryAt(p.Category, op)
		if err != nil {
			return "", err
		}
		if p.Element < 0 || p.Element >= len(c.Elements) {
			return "", posNotFound(op, p)
		}
		return c.Elements[p.Element].ID, nil
	}
	return "", posNotFound(op, p)
}

func (r Root) entryAt(i int, op string) (Entry, error) {
	if i < 0 || i >= len(r.Catalog) {
		return nil, mdwerror.Newf("catalog slot %d not found", i).
			WithCode(mdwerror.CodeInvariantViolation).
			WithOperation(op).
			WithDetail("length", len(r.Catalog))
	}
	return r.Catalog[i], nil
}

func (r Root) elementAt(i int, op string) (LayerContainer, error) {
	e, err := r.entryAt(i, op)
	if err != nil {
		return LayerContainer{}, err
	}
	c, ok := e.(LayerContainer)
	if !ok {
		return LayerContainer{}, mdwerror.Newf("catalog slot %d holds a category, not an element", i).
			WithCode(mdwerror.CodeInvariantViolation).
			WithOperation(op)
	}
	return c, nil
}

func (r Root) categoryAt(i int, op string) (Category, error) {
	e, err := r.entryAt(i, op)
	if err != nil {
		return Category{}, err
	}
	c, ok := e.(Category)
	if !ok {
		return Category{}, mdwerror.Newf("catalog slot %d holds an element, not a category", i).
			WithCode(mdwerror.CodeInvariantViolation).
			WithOperation(op)
	}
	return c, nil
}

func (r Root) layer(id LayerID, op string) (Layer, error) {
	l, ok := r.Layers[id]
	if !ok {
		return Layer{}, mdwerror.Newf("layer %q not found", id).
			WithCode(mdwerror.CodeInvariantViolation).
			WithOperation(op).
			WithDetail("id", string(id))
	}
	return l, nil
}

// withCatalog returns a copy of r sharing everything but the catalog
func (r Root) withCatalog(c Catalog) Root {
	return Root{Layers: r.Layers, Positions: r.Positions, Catalog: c}
}

func (r Root) cloneLayers() map[LayerID]Layer {
	return maps.Clone(r.Layers)
}

func posNotFound(op string, p Pos) error {
	return mdwerror.Newf("position %v not found", p).
		WithCode(mdwerror.CodeInvariantViolation).
		WithOperation(op)
}

func invariantError(format string, args ...interface{}) error {
	return mdwerror.Newf(format, args...).
		WithCode(mdwerror.CodeInvariantViolation).
		WithOperation("document.Validate")
}
