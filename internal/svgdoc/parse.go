// File: parse.go
// Title: SVG Reader and Writer
// Description: Builds the node tree from raw XML tokens and serialises it
//              back.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-15
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation
// - 2026-10-16 v0.1.1: Write unedited nodes back from their source text

package svgdoc

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"

	mdwerror "github.com/msto63/layerdeck/foundation/core/error"
)

// Document is a parsed SVG file
type Document struct {
	node *Node
}

// Parse reads an SVG document from r. Every node keeps the exact source text
// it was read from, so unedited markup (entities, CDATA, quoting, spacing
// inside tags) is written back unchanged.
func Parse(r io.Reader) (*Document, error) {
	const op = "svgdoc.Parse"

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, mdwerror.Wrap(err, "read svg").
			WithCode(mdwerror.CodeIOError).
			WithOperation(op)
	}

	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Entity = xml.HTMLEntity

	doc := &Node{Kind: DocumentNode}
	cur := doc
	for {
		start := dec.InputOffset()
		tok, err := dec.RawToken()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, mdwerror.Wrap(err, "read svg").
				WithCode(mdwerror.CodeInvalidInput).
				WithOperation(op).
				WithDetail("offset", dec.InputOffset())
		}

		raw := string(data[start:dec.InputOffset()])

		switch t := tok.(type) {
		case xml.StartElement:
			el := &Node{Kind: ElementNode, Name: t.Name, Attrs: append([]xml.Attr(nil), t.Attr...), raw: raw}
			cur.appendChild(el)
			cur = el
		case xml.EndElement:
			if cur.Kind != ElementNode || cur.Name != t.Name {
				return nil, mdwerror.Newf("unexpected end element </%s>", qualified(t.Name)).
					WithCode(mdwerror.CodeInvalidInput).
					WithOperation(op).
					WithDetail("offset", dec.InputOffset())
			}
			cur.rawEnd = raw
			cur = cur.Parent
		case xml.CharData:
			cur.appendChild(&Node{Kind: TextNode, Data: string(t), raw: raw})
		case xml.Comment:
			cur.appendChild(&Node{Kind: CommentNode, Data: string(t), raw: raw})
		case xml.ProcInst:
			cur.appendChild(&Node{Kind: ProcInstNode, Target: t.Target, Data: string(t.Inst), raw: raw})
		case xml.Directive:
			cur.appendChild(&Node{Kind: DirectiveNode, Data: string(t), raw: raw})
		}
	}

	if cur != doc {
		return nil, mdwerror.Newf("unclosed element <%s>", qualified(cur.Name)).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation(op)
	}
	d := &Document{node: doc}
	if d.Root() == nil {
		return nil, mdwerror.New("document has no <svg> root element").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation(op)
	}
	return d, nil
}

// Root returns the root <svg> element, or nil
func (d *Document) Root() *Node {
	for _, c := range d.node.Children {
		if c.Kind == ElementNode {
			if c.Name.Local == "svg" {
				return c
			}
			return nil
		}
	}
	return nil
}

// WriteTo serialises the document
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: bufio.NewWriter(w)}
	for _, c := range d.node.Children {
		writeNode(cw, c)
	}
	if cw.err == nil {
		cw.err = cw.w.Flush()
	}
	if cw.err != nil {
		return cw.n, mdwerror.Wrap(cw.err, "write svg").
			WithCode(mdwerror.CodeIOError).
			WithOperation("svgdoc.WriteTo")
	}
	return cw.n, nil
}

// String returns the serialised document
func (d *Document) String() string {
	var b strings.Builder
	_, _ = d.WriteTo(&b)
	return b.String()
}

type countingWriter struct {
	w   *bufio.Writer
	n   int64
	err error
}

func (c *countingWriter) str(s string) {
	if c.err != nil {
		return
	}
	n, err := c.w.WriteString(s)
	c.n += int64(n)
	c.err = err
}

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", "\"", "&quot;",
		"\n", "&#xA;", "\r", "&#xD;", "\t", "&#x9;")
)

func writeNode(w *countingWriter, n *Node) {
	if n.Kind == ElementNode {
		writeElement(w, n)
		return
	}
	if n.raw != "" {
		w.str(n.raw)
		return
	}

	switch n.Kind {
	case TextNode:
		w.str(textEscaper.Replace(n.Data))
	case CommentNode:
		w.str("<!--" + n.Data + "-->")
	case ProcInstNode:
		if n.Data == "" {
			w.str("<?" + n.Target + "?>")
		} else {
			w.str("<?" + n.Target + " " + n.Data + "?>")
		}
	case DirectiveNode:
		w.str("<!" + n.Data + ">")
	}
}

func writeElement(w *countingWriter, n *Node) {
	selfClosing := len(n.Children) == 0 && n.rawEnd == ""
	if n.raw != "" {
		w.str(n.raw)
	} else {
		w.str("<" + qualified(n.Name))
		for _, a := range n.Attrs {
			w.str(" " + qualified(a.Name) + `="` + attrEscaper.Replace(a.Value) + `"`)
		}
		if selfClosing {
			w.str("/>")
			return
		}
		w.str(">")
	}
	if selfClosing {
		return
	}

	for _, c := range n.Children {
		writeNode(w, c)
	}
	if n.rawEnd != "" {
		w.str(n.rawEnd)
	} else {
		w.str("</" + qualified(n.Name) + ">")
	}
}

func qualified(name xml.Name) string {
	if name.Space == "" {
		return name.Local
	}
	return name.Space + ":" + name.Local
}
