// File: node.go
// Title: SVG Node Tree
// Description: Node types of the document tree and attribute access.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-15
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation
// - 2026-10-16 v0.1.1: Keep source text of parsed nodes

package svgdoc

import (
	"encoding/xml"
	"slices"
)

// NodeKind identifies what a Node holds
type NodeKind int

const (
	DocumentNode NodeKind = iota
	ElementNode
	TextNode
	CommentNode
	ProcInstNode
	DirectiveNode
)

// Node is one entry of the document tree. Name and Attrs keep namespace
// prefixes as written.
//
// Parsed nodes remember their source text and are written back with it until
// SetAttr changes them. Editing Attrs directly does not drop that text.
type Node struct {
	Kind     NodeKind
	Name     xml.Name
	Attrs    []xml.Attr
	Data     string
	Target   string
	Children []*Node
	Parent   *Node

	raw    string // source of the node, or of the start tag for elements
	rawEnd string // source of the end tag, empty when self-closing
}

// Attr returns the value of the attribute with the given local name and no
// prefix
func (n *Node) Attr(local string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name.Space == "" && a.Name.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

// SetAttr sets or adds an unprefixed attribute
func (n *Node) SetAttr(local, value string) {
	for i, a := range n.Attrs {
		if a.Name.Space == "" && a.Name.Local == local {
			n.Attrs[i].Value = value
			n.raw = ""
			return
		}
	}
	n.raw = ""
	n.Attrs = append(n.Attrs, xml.Attr{Name: xml.Name{Local: local}, Value: value})
}

// Elements returns the element children of n
func (n *Node) Elements() []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Kind == ElementNode {
			out = append(out, c)
		}
	}
	return out
}

func (n *Node) appendChild(c *Node) {
	c.Parent = n
	n.Children = append(n.Children, c)
}

func (n *Node) indexOf(c *Node) int {
	return slices.Index(n.Children, c)
}

func (n *Node) removeAt(i int) *Node {
	c := n.Children[i]
	n.Children = slices.Delete(n.Children, i, i+1)
	c.Parent = nil
	return c
}

func (n *Node) insertAt(i int, c *Node) {
	c.Parent = n
	n.Children = slices.Insert(n.Children, i, c)
}
