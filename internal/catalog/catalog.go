// File: catalog.go
// Title: Catalog Grammar
// Description: Folds the ordered stream of decoded layer tokens into the
//              two-level catalog and assembles the document root around it.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

// Package catalog builds document roots from ordered layer tokens.
//
// A category token owns every element token that directly follows it, up to
// the next category or the end of the stream. Elements seen before any
// category stay at the top level. Categories do not nest.
package catalog

import (
	mdwerror "github.com/msto63/layerdeck/foundation/core/error"
	"github.com/msto63/layerdeck/foundation/parsec"
	"github.com/msto63/layerdeck/foundation/utils/slicex"
	"github.com/msto63/layerdeck/internal/document"
	"github.com/msto63/layerdeck/internal/ident"
)

// Token is one layer handle with its decoded identifier. Err is set when the
// identifier could not be decoded; such a token is rejected by the grammar.
type Token struct {
	Handle     document.Handle
	Descriptor ident.Descriptor
	Err        error
}

// NewToken decodes the id of h
func NewToken(h document.Handle) Token {
	d, err := ident.Decode(h.ID())
	return Token{Handle: h, Descriptor: d, Err: err}
}

// ID returns the layer id of the token
func (t Token) ID() document.LayerID {
	return document.LayerID(t.Handle.ID())
}

func (t Token) is(kind ident.Kind) bool {
	return t.Err == nil && t.Descriptor.Kind == kind
}

func (t Token) layer() document.Layer {
	return document.Layer{
		ID:     t.ID(),
		Name:   t.Descriptor.Name,
		Hidden: t.Handle.Hidden(),
		Handle: t.Handle,
	}
}

type parser[T any] = parsec.Parser[Token, T]

type grammar struct {
	entries parser[[]document.Entry]
	catalog parser[[]document.Entry]
}

func newGrammar() grammar {
	element := parsec.TestMap(func(t Token) (document.LayerContainer, bool) {
		if !t.is(ident.KindElement) {
			return document.LayerContainer{}, false
		}
		return document.LayerContainer{ID: t.ID()}, true
	})

	elements := parsec.Many(element)

	category := parsec.Pipe2(
		parsec.Test(func(t Token) bool { return t.is(ident.KindCategory) }),
		elements,
		func(head Token, members []document.LayerContainer) document.Category {
			return document.Category{
				ID:       head.ID(),
				Include:  head.Descriptor.Include,
				Elements: members,
			}
		},
	)

	entry := parsec.Alt(
		parsec.Map(category, func(c document.Category) document.Entry { return c }),
		parsec.Map(element, func(c document.LayerContainer) document.Entry { return c }),
	)

	entries := parsec.Many(entry)
	return grammar{entries: entries, catalog: parsec.EOF(entries)}
}

var rules = newGrammar()

// Parse runs the catalog grammar over tokens
func Parse(tokens []Token) parsec.Result[document.Catalog] {
	return parsec.Map(rules.catalog, func(es []document.Entry) document.Catalog {
		return document.Catalog(es)
	})(tokens, 0)
}

// Build parses tokens and wraps the catalog into a root whose position list
// follows token order.
func Build(tokens []Token) (document.Root, error) {
	const op = "catalog.Build"

	res := Parse(tokens)
	if !res.IsSuccess() {
		return document.Root{}, rejectionError(tokens, res.Err(op))
	}

	layers := slicex.Map(tokens, Token.layer)
	positions := slicex.Map(tokens, Token.ID)
	root, err := document.NewRoot(layers, positions, res.Value)
	if err != nil {
		return document.Root{}, mdwerror.Wrap(err, "assemble document").WithOperation(op)
	}
	return root, nil
}

// Import decodes the id of every handle and builds the root
func Import(handles []document.Handle) (document.Root, error) {
	return Build(slicex.Map(handles, NewToken))
}

// rejectionError points at the first token the grammar could not place
func rejectionError(tokens []Token, cause error) error {
	stop := rules.entries(tokens, 0)
	if !stop.IsSuccess() || stop.Next >= len(tokens) {
		return cause
	}

	tok := tokens[stop.Next]
	err := mdwerror.Wrap(cause, "layer token rejected").
		WithDetail("index", stop.Next).
		WithDetail("id", string(tok.ID()))
	if tok.Err != nil {
		err = err.WithDetail("decode_error", tok.Err.Error())
	}
	return err
}
