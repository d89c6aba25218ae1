// File: layers.go
// Title: SVG Layer Handles
// Description: Exposes the id-carrying top-level groups of the root <svg> as
//              document handles and reorders them in place.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package svgdoc

import (
	mdwerror "github.com/msto63/layerdeck/foundation/core/error"
	"github.com/msto63/layerdeck/internal/document"
)

const hiddenValue = "hidden"

// Group is a <g> element used as a layer
type Group struct {
	node *Node
}

var _ document.Handle = (*Group)(nil)

// ID returns the id attribute
func (g *Group) ID() string {
	id, _ := g.node.Attr("id")
	return id
}

// Hidden reports whether visibility="hidden"
func (g *Group) Hidden() bool {
	v, _ := g.node.Attr("visibility")
	return v == hiddenValue
}

// SetHidden writes the visibility attribute. Showing a layer writes an empty
// value rather than removing the attribute.
func (g *Group) SetHidden(hidden bool) {
	if hidden {
		g.node.SetAttr("visibility", hiddenValue)
		return
	}
	g.node.SetAttr("visibility", "")
}

// Node returns the underlying element
func (g *Group) Node() *Node {
	return g.node
}

// Groups returns the top-level groups that carry an id, in document order
func (d *Document) Groups() []*Group {
	root := d.Root()
	if root == nil {
		return nil
	}
	var out []*Group
	for _, el := range root.Elements() {
		if el.Name.Space != "" || el.Name.Local != "g" {
			continue
		}
		if _, ok := el.Attr("id"); ok {
			out = append(out, &Group{node: el})
		}
	}
	return out
}

// Layers returns the groups as handles, topmost first. SVG paints later
// siblings over earlier ones, so this is the reverse of document order.
func (d *Document) Layers() []document.Handle {
	groups := d.Groups()
	out := make([]document.Handle, len(groups))
	for i, g := range groups {
		out[len(groups)-1-i] = g
	}
	return out
}

// Reorder moves src next to dst among the root's children: after dst when src
// came first, before it otherwise.
func (d *Document) Reorder(src, dst document.Handle) error {
	const op = "svgdoc.Reorder"

	s, okSrc := src.(*Group)
	t, okDst := dst.(*Group)
	if !okSrc || !okDst {
		return mdwerror.New("handles do not belong to an svg document").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation(op)
	}

	root := d.Root()
	if root == nil || s.node.Parent != root || t.node.Parent != root {
		return mdwerror.New("group is not a child of the svg root").
			WithCode(mdwerror.CodeNotFound).
			WithOperation(op).
			WithDetail("src", s.ID()).
			WithDetail("dst", t.ID())
	}
	if s.node == t.node {
		return nil
	}

	si := root.indexOf(s.node)
	after := si < root.indexOf(t.node)
	moved := root.removeAt(si)
	di := root.indexOf(t.node)
	if after {
		di++
	}
	root.insertAt(di, moved)
	return nil
}
