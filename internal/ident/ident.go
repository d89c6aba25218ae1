// File: ident.go
// Title: Layer Identifier Codec
// Description: Decodes layer ids into element or category descriptors with
//              a rune grammar, and encodes descriptors back into ids.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package ident

import (
	"fmt"
	"strings"

	mdwerror "github.com/msto63/layerdeck/foundation/core/error"
	"github.com/msto63/layerdeck/foundation/parsec"
)

// Escape tokens recognised in identifiers
const (
	EscGreater = "_x003e_"
	EscPlus    = "_x002b_"
	EscSpace   = "_x0020_"
)

// Kind tells elements and categories apart
type Kind int

const (
	KindElement Kind = iota
	KindCategory
)

func (k Kind) String() string {
	switch k {
	case KindElement:
		return "element"
	case KindCategory:
		return "category"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Descriptor is a decoded identifier. Include is only meaningful for
// categories and marks a radio group.
type Descriptor struct {
	Kind    Kind
	Include bool
	Name    string
}

// Element returns an element descriptor
func Element(name string) Descriptor {
	return Descriptor{Kind: KindElement, Name: name}
}

// Category returns a category descriptor
func Category(name string, include bool) Descriptor {
	return Descriptor{Kind: KindCategory, Include: include, Name: name}
}

// IsCategory reports whether d describes a category
func (d Descriptor) IsCategory() bool {
	return d.Kind == KindCategory
}

func (d Descriptor) String() string {
	if d.Kind == KindCategory {
		return fmt.Sprintf("category{include=%t name=%q}", d.Include, d.Name)
	}
	return fmt.Sprintf("element{name=%q}", d.Name)
}

type parser[T any] = parsec.Parser[rune, T]

type categoryMark struct {
	include bool
}

func lit(s string) parser[[]rune] {
	return parsec.Literal([]rune(s)...)
}

func newGrammar() parser[Descriptor] {
	greater := parsec.Alt(lit(EscGreater), lit(">"))
	plus := parsec.Alt(lit(EscPlus), lit("+"))
	space := parsec.Map(lit(EscSpace), func([]rune) string { return " " })

	category := parsec.Then(greater, parsec.Map(parsec.Opt(plus), func(o parsec.Option[[]rune]) categoryMark {
		return categoryMark{include: o.Ok}
	}))

	plain := parsec.Map(
		parsec.Many1(parsec.Test(func(r rune) bool { return r != '_' })),
		func(rs []rune) string { return string(rs) },
	)
	anyRune := parsec.Map(parsec.Any[rune](), func(r rune) string { return string(r) })
	name := parsec.Map(
		parsec.Many(parsec.Alt(plain, parsec.Alt(space, anyRune))),
		func(parts []string) string { return strings.Join(parts, "") },
	)

	head := parsec.Trim(parsec.Opt(category), parsec.Many(space))

	body := parsec.Pipe2(head, name, func(mark parsec.Option[categoryMark], name string) Descriptor {
		if mark.Ok {
			return Category(name, mark.Value.include)
		}
		return Element(name)
	})

	return parsec.EOF(parsec.Then(parsec.Opt(lit("_")), body))
}

var grammar = newGrammar()

// Decode parses one identifier. The grammar accepts every string, so an error
// means the grammar itself is broken.
func Decode(id string) (Descriptor, error) {
	res := parsec.Run(grammar)([]rune(id))
	if !res.IsSuccess() {
		return Descriptor{}, mdwerror.Wrap(res.Err("ident.Decode"), "identifier grammar did not accept input").
			WithCode(mdwerror.CodeInternal).
			WithDetail("id", id)
	}
	return res.Value, nil
}

// Decoded pairs a decode result with its error
type Decoded struct {
	Descriptor Descriptor
	Err        error
}

// DecodeAll decodes each id independently
func DecodeAll(ids []string) []Decoded {
	out := make([]Decoded, len(ids))
	for i, id := range ids {
		d, err := Decode(id)
		out[i] = Decoded{Descriptor: d, Err: err}
	}
	return out
}

// Encode builds an identifier that decodes back to d. Names the grammar cannot
// reproduce (leading spaces, an element name starting with '>', a literal
// escape token in the name) are rejected.
func Encode(d Descriptor) (string, error) {
	name := strings.ReplaceAll(d.Name, " ", EscSpace)

	var id string
	switch d.Kind {
	case KindCategory:
		var b strings.Builder
		b.WriteString("_" + EscGreater)
		if d.Include {
			b.WriteString(EscPlus)
		}
		b.WriteString(EscSpace)
		b.WriteString(name)
		id = b.String()
	default:
		id = name
		if strings.HasPrefix(id, "_") {
			id = "_" + id
		}
	}

	if d.Kind != KindCategory {
		d = Element(d.Name)
	}
	back, err := Decode(id)
	if err != nil {
		return "", err
	}
	if back != d {
		return "", mdwerror.Newf("%s cannot be encoded as an identifier", d).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("ident.Encode").
			WithDetail("name", d.Name)
	}
	return id, nil
}
