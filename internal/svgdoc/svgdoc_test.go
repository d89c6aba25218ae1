// File: svgdoc_test.go
// Title: SVG Document Tests
// Description: Round trips, layer extraction, visibility write-through and
//              in-place reordering of groups.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-15
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation
// - 2026-10-16 v0.1.1: Source text preservation cases

package svgdoc

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	mdwerror "github.com/msto63/layerdeck/foundation/core/error"
	"github.com/msto63/layerdeck/internal/catalog"
	"github.com/msto63/layerdeck/internal/document"
)

const header = "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n" +
	"<!DOCTYPE svg PUBLIC \"-//W3C//DTD SVG 1.1//EN\" \"http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd\">\n"

func svgOf(groups ...string) string {
	var b strings.Builder
	b.WriteString(header)
	b.WriteString("<svg>\n")
	for _, g := range groups {
		b.WriteString(" " + g + "\n")
	}
	b.WriteString("</svg>")
	return b.String()
}

func numbered() string {
	var gs []string
	for _, id := range []string{"0", "1", "2", "3", "4", "5"} {
		gs = append(gs, `<g id="`+id+`">`+"\n </g>")
	}
	return svgOf(gs...)
}

func mustParse(t *testing.T, s string) *Document {
	t.Helper()
	d, err := Parse(strings.NewReader(s))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return d
}

func groupIDs(d *Document) []string {
	var ids []string
	for _, g := range d.Groups() {
		ids = append(ids, g.ID())
	}
	return ids
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"numbered groups", numbered()},
		{"self closing", `<svg><g id="a"/><rect width="1"/></svg>`},
		{"namespaces", `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink"><use xlink:href="#a"/></svg>`},
		{"comment and escapes", `<svg><!-- layers --><text title="x &lt; y">a &amp; b</text></svg>`},
		{"html entities", `<svg><text>a&nbsp;b &#160; &#x41;</text></svg>`},
		{"cdata", `<svg><style><![CDATA[g > rect { fill: red; }]]></style></svg>`},
		{"tag spelling", `<svg><g id='a'></g><rect  width = "1"  /></svg>`},
		{"attribute references", `<svg><g id="a" title="&#x41;&quot;"/></svg>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := mustParse(t, tt.in)
			if diff := cmp.Diff(tt.in, d.String()); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"mismatched end", `<svg><g></svg>`},
		{"unclosed", `<svg><g>`},
		{"not svg", `<html/>`},
		{"empty", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.in))
			if !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
				t.Errorf("Parse(%q) error = %v, want %v", tt.in, err, mdwerror.CodeInvalidInput)
			}
		})
	}
}

func TestLayersTopmostFirst(t *testing.T) {
	d := mustParse(t, svgOf(`<g id="a"/>`, `<g/>`, `<rect id="r"/>`, `<g id="b"><g id="nested"/></g>`))

	var ids []string
	for _, h := range d.Layers() {
		ids = append(ids, h.ID())
	}
	if diff := cmp.Diff([]string{"b", "a"}, ids); diff != "" {
		t.Errorf("Layers() mismatch (-want +got):\n%s", diff)
	}
}

func TestVisibility(t *testing.T) {
	d := mustParse(t, `<svg><g id="a" visibility="hidden"/><g id="b"/></svg>`)
	layers := d.Layers()
	b, a := layers[0], layers[1]

	if !a.Hidden() || b.Hidden() {
		t.Fatalf("Hidden() a=%t b=%t, want true false", a.Hidden(), b.Hidden())
	}

	a.SetHidden(false)
	b.SetHidden(true)
	want := `<svg><g id="a" visibility=""/><g id="b" visibility="hidden"/></svg>`
	if diff := cmp.Diff(want, d.String()); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestEditKeepsUntouchedMarkup(t *testing.T) {
	d := mustParse(t, "<svg><g id='a'></g>\n<style><![CDATA[g{}]]></style><g id=\"b\" title=\"&#x41;\"/></svg>")
	layers := d.Layers()
	layers[1].SetHidden(true)

	want := "<svg><g id=\"a\" visibility=\"hidden\"></g>\n<style><![CDATA[g{}]]></style><g id=\"b\" title=\"&#x41;\"/></svg>"
	if diff := cmp.Diff(want, d.String()); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestReorder(t *testing.T) {
	tests := []struct {
		src, dst int
		want     []string
	}{
		{1, 3, []string{"0", "2", "3", "1", "4", "5"}},
		{0, 5, []string{"1", "2", "3", "4", "5", "0"}},
		{3, 1, []string{"0", "3", "1", "2", "4", "5"}},
		{5, 0, []string{"5", "0", "1", "2", "3", "4"}},
		{2, 2, []string{"0", "1", "2", "3", "4", "5"}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d to %d", tt.src, tt.dst), func(t *testing.T) {
			d := mustParse(t, numbered())
			gs := d.Groups()
			if err := d.Reorder(gs[tt.src], gs[tt.dst]); err != nil {
				t.Fatalf("Reorder() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, groupIDs(d)); diff != "" {
				t.Errorf("group order mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReorderForeignHandle(t *testing.T) {
	d := mustParse(t, numbered())
	other := mustParse(t, numbered())

	if err := d.Reorder(d.Groups()[0], other.Groups()[1]); !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("Reorder(foreign) error = %v, want %v", err, mdwerror.CodeNotFound)
	}
}

func TestImportAndMovePosition(t *testing.T) {
	d := mustParse(t, numbered())

	root, err := catalog.Import(d.Layers())
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if diff := cmp.Diff(document.Positions{"5", "4", "3", "2", "1", "0"}, root.Positions); diff != "" {
		t.Fatalf("positions mismatch (-want +got):\n%s", diff)
	}

	next, err := document.MovePosition(root, d, 1, 3)
	if err != nil {
		t.Fatalf("MovePosition() error = %v", err)
	}

	ids := groupIDs(d)
	var reversed document.Positions
	for i := len(ids) - 1; i >= 0; i-- {
		reversed = append(reversed, document.LayerID(ids[i]))
	}
	if diff := cmp.Diff(next.Positions, reversed); diff != "" {
		t.Errorf("document order out of step with positions (-model +svg):\n%s", diff)
	}
}

func TestImportSampleDocument(t *testing.T) {
	d := mustParse(t, svgOf(
		`<g id="мохровая_x0020_штука">`+"\n </g>",
		`<g id="__x003e__x0020_туловище">`+"\n </g>",
		`<g id="носок_x0020_раскрас">`+"\n </g>",
		`<g id="носок_x0020_1" visibility="hidden">`+"\n </g>",
		`<g id="__x003e__x002b__x0020_категория_x0020_с_x0020_включениями">`+"\n </g>",
		`<g id="эелемент_x0020_вне_x0020_категории">`+"\n </g>",
	))

	root, err := catalog.Import(d.Layers())
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	want := document.Catalog{
		document.Element("эелемент_x0020_вне_x0020_категории"),
		document.NewCategory("__x003e__x002b__x0020_категория_x0020_с_x0020_включениями", true,
			"носок_x0020_1", "носок_x0020_раскрас"),
		document.NewCategory("__x003e__x0020_туловище", false, "мохровая_x0020_штука"),
	}
	if diff := cmp.Diff(want, root.Catalog, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("catalog mismatch (-want +got):\n%s", diff)
	}

	next, err := document.ToggleVisible(root, document.CategoryElementPos{Category: 1, Element: 0})
	if err != nil {
		t.Fatalf("ToggleVisible() error = %v", err)
	}
	if hidden, _ := next.IsHidden(document.CategoryElementPos{Category: 1, Element: 1}); !hidden {
		t.Error("sibling in include category still visible")
	}
	out := d.String()
	if !strings.Contains(out, `<g id="носок_x0020_1" visibility="">`) ||
		!strings.Contains(out, `<g id="носок_x0020_раскрас" visibility="hidden">`) {
		t.Errorf("visibility not written through:\n%s", out)
	}
}
