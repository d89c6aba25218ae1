// File: move.go
// Title: Structural Edits
// Description: Moving catalog entries, reordering the flat position list and
//              inserting or removing layers while keeping both views in step.
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

// Move relocates the catalog entry at src to dst.
//
// Top-level positions (ElementPos and CategoryPos) move within the top-level
// list. CategoryElementPos pairs move within one category or from one category
// to another; in the second case dst.Element may equal the length of the
// destination category to append. Any other pairing is rejected.
func Move(root Root, src, dst Pos) (Root, error) {
	const op = "document.Move"

	if si, ok := topIndex(src); ok {
		di, ok := topIndex(dst)
		if !ok {
			return root, mixedMoveError(op, src, dst)
		}
		catalog, err := slicex.PickAndMove(root.Catalog, si, di)
		if err != nil {
			return root, addressError(op, err)
		}
		return root.withCatalog(catalog), nil
	}

	s, okSrc := src.(CategoryElementPos)
	d, okDst := dst.(CategoryElementPos)
	if !okSrc || !okDst {
		return root, mixedMoveError(op, src, dst)
	}

	srcCat, err := root.categoryAt(s.Category, op)
	if err != nil {
		return root, err
	}
	dstCat, err := root.categoryAt(d.Category, op)
	if err != nil {
		return root, err
	}

	catalog := slicex.Clone(root.Catalog)
	if s.Category == d.Category {
		elements, err := slicex.PickAndMove(srcCat.Elements, s.Element, d.Element)
		if err != nil {
			return root, addressError(op, err)
		}
		srcCat.Elements = elements
		catalog[s.Category] = srcCat
		return root.withCatalog(catalog), nil
	}

	item, rest, err := slicex.RemoveAt(srcCat.Elements, s.Element)
	if err != nil {
		return root, addressError(op, err)
	}
	inserted, err := slicex.InsertAt(dstCat.Elements, d.Element, item)
	if err != nil {
		return root, addressError(op, err)
	}
	srcCat.Elements = rest
	dstCat.Elements = inserted
	catalog[s.Category] = srcCat
	catalog[d.Category] = dstCat
	return root.withCatalog(catalog), nil
}

// MovePosition moves the layer at flat index src to dst and asks reorderer to
// relocate the matching handles. A nil reorderer only updates the model.
func MovePosition(root Root, reorderer Reorderer, src, dst int) (Root, error) {
	const op = "document.MovePosition"

	positions, err := slicex.PickAndMove(root.Positions, src, dst)
	if err != nil {
		return root, addressError(op, err)
	}
	if src == dst {
		return root, nil
	}

	if reorderer != nil {
		srcLayer, err := root.layer(root.Positions[src], op)
		if err != nil {
			return root, err
		}
		dstLayer, err := root.layer(root.Positions[dst], op)
		if err != nil {
			return root, err
		}
		if srcLayer.Handle == nil || dstLayer.Handle == nil {
			return root, mdwerror.New("layer has no handle to reorder").
				WithCode(mdwerror.CodeInvalidOperation).
				WithOperation(op).
				WithDetail("src", string(srcLayer.ID)).
				WithDetail("dst", string(dstLayer.ID))
		}
		if err := reorderer.Reorder(srcLayer.Handle, dstLayer.Handle); err != nil {
			return root, mdwerror.Wrap(err, "reorder layer handles").WithOperation(op)
		}
	}

	return Root{Layers: root.Layers, Positions: positions, Catalog: root.Catalog}, nil
}

// InsertElement adds layer as an element at p (an ElementPos for the top level
// or a CategoryElementPos inside a category; the index may equal the length to
// append) and at flatIndex in the position list.
func InsertElement(root Root, layer Layer, p Pos, flatIndex int) (Root, error) {
	const op = "document.InsertElement"

	if layer.ID == "" {
		return root, mdwerror.New("layer id must not be empty").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation(op)
	}
	if _, exists := root.Layers[layer.ID]; exists {
		return root, mdwerror.Newf("layer %q already exists", layer.ID).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation(op).
			WithDetail("id", string(layer.ID))
	}

	positions, err := slicex.InsertAt(root.Positions, flatIndex, layer.ID)
	if err != nil {
		return root, addressError(op, err)
	}

	var catalog Catalog
	switch p := p.(type) {
	case ElementPos:
		catalog, err = slicex.InsertAt(root.Catalog, p.Index, Element(layer.ID))
		if err != nil {
			return root, addressError(op, err)
		}
	case CategoryElementPos:
		cat, err := root.categoryAt(p.Category, op)
		if err != nil {
			return root, err
		}
		elements, err := slicex.InsertAt(cat.Elements, p.Element, LayerContainer{ID: layer.ID})
		if err != nil {
			return root, addressError(op, err)
		}
		cat.Elements = elements
		catalog = slicex.Clone(root.Catalog)
		catalog[p.Category] = cat
	default:
		return root, mdwerror.Newf("cannot insert an element at %v", p).
			WithCode(mdwerror.CodeInvalidOperation).
			WithOperation(op)
	}

	layers := root.cloneLayers()
	layers[layer.ID] = layer
	return Root{Layers: layers, Positions: positions, Catalog: catalog}, nil
}

// Remove deletes the entry at p. Removing a category removes its members too.
func Remove(root Root, p Pos) (Root, error) {
	const op = "document.Remove"

	var (
		catalog Catalog
		removed []LayerID
	)
	switch p := p.(type) {
	case ElementPos:
		c, err := root.elementAt(p.Index, op)
		if err != nil {
			return root, err
		}
		_, catalog, _ = slicex.RemoveAt(root.Catalog, p.Index)
		removed = []LayerID{c.ID}
	case CategoryPos:
		cat, err := root.categoryAt(p.Index, op)
		if err != nil {
			return root, err
		}
		_, catalog, _ = slicex.RemoveAt(root.Catalog, p.Index)
		removed = append([]LayerID{cat.ID}, slicex.Map(cat.Elements, func(m LayerContainer) LayerID { return m.ID })...)
	case CategoryElementPos:
		cat, err := root.categoryAt(p.Category, op)
		if err != nil {
			return root, err
		}
		item, rest, err := slicex.RemoveAt(cat.Elements, p.Element)
		if err != nil {
			return root, addressError(op, err)
		}
		cat.Elements = rest
		catalog = slicex.Clone(root.Catalog)
		catalog[p.Category] = cat
		removed = []LayerID{item.ID}
	default:
		return root, posNotFound(op, p)
	}

	gone := make(map[LayerID]bool, len(removed))
	layers := root.cloneLayers()
	for _, id := range removed {
		gone[id] = true
		delete(layers, id)
	}
	positions := slicex.Filter(root.Positions, func(id LayerID) bool { return !gone[id] })
	return Root{Layers: layers, Positions: positions, Catalog: catalog}, nil
}

func mixedMoveError(op string, src, dst Pos) error {
	return mdwerror.Newf("cannot move %v to %v", src, dst).
		WithCode(mdwerror.CodeInvalidOperation).
		WithOperation(op)
}

func addressError(op string, err error) error {
	return mdwerror.Wrap(err, "position out of range").
		WithCode(mdwerror.CodeInvariantViolation).
		WithOperation(op)
}
