// ============================================================================
// layerdeck - SVG layer editor
// ============================================================================
//
// Package:     cmd
// Description: Printable views of a document root (tree, JSON, YAML)
// Author:      Mike Stoffels
// Created:     2026-10-15
// License:     MIT
// ============================================================================

package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/layerdeck/foundation/core/error"
	"github.com/msto63/layerdeck/foundation/utils/stringx"
	"github.com/msto63/layerdeck/internal/document"
	appconfig "github.com/msto63/layerdeck/pkg/core/config"
)

// layerView is one printed layer
type layerView struct {
	Pos    string `json:"pos" yaml:"pos"`
	ID     string `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	Hidden bool   `json:"hidden" yaml:"hidden"`
}

// entryView is one top-level catalog entry
type entryView struct {
	layerView `yaml:",inline"`
	Kind      string      `json:"kind" yaml:"kind"`
	Include   bool        `json:"include,omitempty" yaml:"include,omitempty"`
	Members   []layerView `json:"members,omitempty" yaml:"members,omitempty"`
}

// documentView is the printed form of a Root
type documentView struct {
	Source    string      `json:"source,omitempty" yaml:"source,omitempty"`
	Positions []string    `json:"positions" yaml:"positions"`
	Catalog   []entryView `json:"catalog" yaml:"catalog"`
}

func newLayerView(root document.Root, p document.Pos) layerView {
	l, _ := root.Resolve(p)
	return layerView{Pos: p.String(), ID: string(l.ID), Name: l.Name, Hidden: l.Hidden}
}

func newDocumentView(root document.Root, source string) documentView {
	v := documentView{Source: source, Catalog: make([]entryView, 0, len(root.Catalog))}
	for _, id := range root.Positions {
		v.Positions = append(v.Positions, string(id))
	}

	for i, e := range root.Catalog {
		switch e := e.(type) {
		case document.LayerContainer:
			v.Catalog = append(v.Catalog, entryView{
				layerView: newLayerView(root, document.ElementPos{Index: i}),
				Kind:      "element",
			})
		case document.Category:
			ev := entryView{
				layerView: newLayerView(root, document.CategoryPos{Index: i}),
				Kind:      "category",
				Include:   e.Include,
			}
			for j := range e.Elements {
				ev.Members = append(ev.Members, newLayerView(root, document.CategoryElementPos{Category: i, Element: j}))
			}
			v.Catalog = append(v.Catalog, ev)
		}
	}
	return v
}

// printRoot writes root in the given output format
func printRoot(w io.Writer, root document.Root, source, format string, showIDs bool) error {
	switch format {
	case appconfig.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(newDocumentView(root, source))
	case appconfig.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(newDocumentView(root, source)); err != nil {
			return err
		}
		return enc.Close()
	case appconfig.OutputTree, "":
		printTree(w, newDocumentView(root, source), showIDs)
		return nil
	default:
		return mdwerror.Newf("unknown output format %q", format).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("cmd.printRoot")
	}
}

var (
	posColor      = color.New(color.FgHiBlack)
	categoryColor = color.New(color.FgCyan, color.Bold)
	hiddenColor   = color.New(color.Faint)
	includeColor  = color.New(color.FgYellow)
)

func printTree(w io.Writer, v documentView, showIDs bool) {
	line := func(indent string, l layerView, c *color.Color) {
		name := l.Name
		if l.Hidden {
			name = hiddenColor.Sprint(name + " (hidden)")
		} else if c != nil {
			name = c.Sprint(name)
		}
		if showIDs {
			name += " " + posColor.Sprintf("[%s]", l.ID)
		}
		fmt.Fprintf(w, "%s%s %s\n", indent, posColor.Sprint(stringx.PadRight(l.Pos, 7, ' ')), name)
	}

	for _, e := range v.Catalog {
		if e.Kind != "category" {
			line("", e.layerView, nil)
			continue
		}
		line("", e.layerView, categoryColor)
		if e.Include {
			fmt.Fprintf(w, "        %s\n", includeColor.Sprint("(one visible at a time)"))
		}
		for i, m := range e.Members {
			branch := "├─ "
			if i == len(e.Members)-1 {
				branch = "└─ "
			}
			line("  "+branch, m, nil)
		}
	}
}
