// File: pos.go
// Title: Catalog Addressing
// Description: Pos addresses a top-level element, a top-level category or an
//              element inside a category. Positions have a compact text form
//              ("e:3", "c:1", "c:1/2") used on the command line.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package document

import (
	"fmt"
	"strconv"
	"strings"

	mdwerror "github.com/msto63/layerdeck/foundation/core/error"
)

// Pos is one of ElementPos, CategoryPos or CategoryElementPos
type Pos interface {
	fmt.Stringer
	pos()
}

// ElementPos addresses a top-level catalog slot holding an element
type ElementPos struct {
	Index int
}

// CategoryPos addresses a top-level catalog slot holding a category
type CategoryPos struct {
	Index int
}

// CategoryElementPos addresses an element inside a category
type CategoryElementPos struct {
	Category int
	Element  int
}

func (ElementPos) pos()         {}
func (CategoryPos) pos()        {}
func (CategoryElementPos) pos() {}

func (p ElementPos) String() string  { return fmt.Sprintf("e:%d", p.Index) }
func (p CategoryPos) String() string { return fmt.Sprintf("c:%d", p.Index) }
func (p CategoryElementPos) String() string {
	return fmt.Sprintf("c:%d/%d", p.Category, p.Element)
}

// ParsePos reads the text form produced by Pos.String
func ParsePos(s string) (Pos, error) {
	kind, rest, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return nil, posError(s)
	}

	switch kind {
	case "e":
		n, err := parseIndex(rest)
		if err != nil {
			return nil, posError(s)
		}
		return ElementPos{Index: n}, nil
	case "c":
		catPart, elemPart, nested := strings.Cut(rest, "/")
		c, err := parseIndex(catPart)
		if err != nil {
			return nil, posError(s)
		}
		if !nested {
			return CategoryPos{Index: c}, nil
		}
		e, err := parseIndex(elemPart)
		if err != nil {
			return nil, posError(s)
		}
		return CategoryElementPos{Category: c, Element: e}, nil
	}
	return nil, posError(s)
}

func parseIndex(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, strconv.ErrRange
	}
	return n, nil
}

func posError(s string) error {
	return mdwerror.Newf("invalid position %q, expected e:N, c:N or c:N/M", s).
		WithCode(mdwerror.CodeInvalidInput).
		WithOperation("document.ParsePos")
}

// topIndex returns the catalog slot of a top-level position
func topIndex(p Pos) (int, bool) {
	switch p := p.(type) {
	case ElementPos:
		return p.Index, true
	case CategoryPos:
		return p.Index, true
	}
	return 0, false
}
