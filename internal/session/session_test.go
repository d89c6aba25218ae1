// File: session_test.go
// Title: Session Tests
// Description: Edits, failure handling, saving and row selection.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-15
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation
// - 2026-10-16 v0.1.1: Snapshot tests

package session

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	mdwerror "github.com/msto63/layerdeck/foundation/core/error"
	"github.com/msto63/layerdeck/internal/document"
)

const catN = "__x003e__x0020_n"

// Document order is bottom first: b, y, x, n, a.
const sample = `<svg>` +
	`<g id="b"/>` +
	`<g id="y"/>` +
	`<g id="x"/>` +
	`<g id="` + catN + `"/>` +
	`<g id="a"/>` +
	`</svg>`

func readSample(t *testing.T) *Session {
	t.Helper()
	s, err := Read(strings.NewReader(sample), nil)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	return s
}

func docOrder(s *Session) []string {
	var ids []string
	for _, g := range s.Document().Groups() {
		ids = append(ids, g.ID())
	}
	return ids
}

func TestRead(t *testing.T) {
	s := readSample(t)

	want := []document.LayerID{"a", catN, "x", "y", "b"}
	if diff := cmp.Diff(want, s.Root().Flatten()); diff != "" {
		t.Errorf("Flatten() mismatch (-want +got):\n%s", diff)
	}
	if s.Dirty() {
		t.Error("fresh session is dirty")
	}
}

func TestToggle(t *testing.T) {
	s := readSample(t)

	if err := s.Toggle(document.ElementPos{Index: 0}); err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}
	if !s.Dirty() {
		t.Error("Dirty() = false after toggle")
	}
	hidden, err := s.Root().IsHidden(document.ElementPos{Index: 0})
	if err != nil || !hidden {
		t.Errorf("IsHidden(e:0) = %v, %v; want true, nil", hidden, err)
	}
	if !strings.Contains(s.Document().String(), `<g id="a" visibility="hidden"/>`) {
		t.Errorf("document not updated:\n%s", s.Document().String())
	}
}

func TestFailedEditKeepsRoot(t *testing.T) {
	s := readSample(t)
	before := s.Root()

	err := s.Toggle(document.CategoryPos{Index: 1})
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidOperation) {
		t.Fatalf("Toggle(c:1) error = %v, want %v", err, mdwerror.CodeInvalidOperation)
	}
	if s.Dirty() {
		t.Error("failed edit marked the session dirty")
	}
	if diff := cmp.Diff(before.Flatten(), s.Root().Flatten()); diff != "" {
		t.Errorf("root changed (-before +after):\n%s", diff)
	}

	if err := s.Move(document.ElementPos{Index: 0}, document.CategoryElementPos{Category: 1, Element: 0}); err == nil {
		t.Error("Move() across classes succeeded")
	}
	if err := s.MovePosition(0, 9); err == nil {
		t.Error("MovePosition() out of range succeeded")
	}
}

func TestMove(t *testing.T) {
	s := readSample(t)

	// a | n{x, y, b}
	if err := s.Move(document.ElementPos{Index: 0}, document.CategoryPos{Index: 1}); err != nil {
		t.Fatalf("Move() error = %v", err)
	}
	if _, ok := s.Root().Catalog[1].(document.LayerContainer); !ok || s.Root().Catalog[1].EntryID() != "a" {
		t.Errorf("Catalog[1] = %v, want element a", s.Root().Catalog[1])
	}
	// the catalog is a view; the z-order is untouched
	if diff := cmp.Diff([]string{"b", "y", "x", catN, "a"}, docOrder(s)); diff != "" {
		t.Errorf("document order mismatch (-want +got):\n%s", diff)
	}
}

func TestMovePosition(t *testing.T) {
	s := readSample(t)

	if err := s.MovePosition(0, 4); err != nil {
		t.Fatalf("MovePosition() error = %v", err)
	}
	wantPos := document.Positions{catN, "x", "y", "b", "a"}
	if diff := cmp.Diff(wantPos, s.Root().Positions); diff != "" {
		t.Errorf("Positions mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a", "b", "y", "x", catN}, docOrder(s)); diff != "" {
		t.Errorf("document order mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveAndOpen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "art.svg")
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Open(path, nil)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if s.Path() != path {
		t.Errorf("Path() = %q, want %q", s.Path(), path)
	}
	if err := s.Toggle(document.CategoryElementPos{Category: 1, Element: 1}); err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}
	if err := s.Save(""); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if s.Dirty() {
		t.Error("Dirty() = true after save")
	}

	again, err := Open(path, nil)
	if err != nil {
		t.Fatalf("Open() after save error = %v", err)
	}
	hidden, err := again.Root().IsHidden(document.CategoryElementPos{Category: 1, Element: 1})
	if err != nil || !hidden {
		t.Errorf("IsHidden(c:1/1) = %v, %v; want true, nil", hidden, err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("directory holds %d entries after save, want 1", len(entries))
	}
}

func TestOpenAndSaveErrors(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.svg"), nil)
	if !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("Open(missing) error = %v, want %v", err, mdwerror.CodeNotFound)
	}

	_, err = Read(strings.NewReader(`<html/>`), nil)
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		t.Errorf("Read(html) error = %v, want %v", err, mdwerror.CodeInvalidInput)
	}

	s := readSample(t)
	if err := s.Save(""); !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		t.Errorf("Save(\"\") without path error = %v, want %v", err, mdwerror.CodeInvalidInput)
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	path := filepath.Join(t.TempDir(), "art.svg")
	s := readSample(t)
	if err := s.Toggle(document.ElementPos{Index: 0}); err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}

	snap, err := s.Snapshot(path)
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	if err := s.Toggle(document.ElementPos{Index: 0}); err != nil {
		t.Fatalf("second Toggle() error = %v", err)
	}
	if err := snap.Write(); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if !s.Dirty() {
		t.Error("Dirty() = false before MarkSaved")
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(got), `<g id="a" visibility="hidden"/>`) {
		t.Errorf("saved file lost the snapshot state:\n%s", got)
	}

	s.MarkSaved(snap.Path)
	if s.Dirty() {
		t.Error("Dirty() = true after MarkSaved")
	}

	bad, err := s.Snapshot(filepath.Join(t.TempDir(), "missing", "art.svg"))
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	if err := bad.Write(); !mdwerror.HasCode(err, mdwerror.CodeIOError) {
		t.Errorf("Write() into missing dir error = %v, want %v", err, mdwerror.CodeIOError)
	}
}

// a | k{m1, m2} | n{x} | b
func twoCategories(t *testing.T) document.Root {
	t.Helper()
	ids := []document.LayerID{"a", "k", "m1", "m2", "n", "x", "b"}
	var layers []document.Layer
	for _, id := range ids {
		layers = append(layers, document.Layer{ID: id, Name: string(id)})
	}
	root, err := document.NewRoot(layers, ids, document.Catalog{
		document.Element("a"),
		document.NewCategory("k", false, "m1", "m2"),
		document.NewCategory("n", true, "x"),
		document.Element("b"),
	})
	if err != nil {
		t.Fatalf("NewRoot() error = %v", err)
	}
	return root
}

func TestRows(t *testing.T) {
	want := []document.Pos{
		document.ElementPos{Index: 0},
		document.CategoryPos{Index: 1},
		document.CategoryElementPos{Category: 1, Element: 0},
		document.CategoryElementPos{Category: 1, Element: 1},
		document.CategoryPos{Index: 2},
		document.CategoryElementPos{Category: 2, Element: 0},
		document.ElementPos{Index: 3},
	}
	if diff := cmp.Diff(want, Rows(twoCategories(t))); diff != "" {
		t.Errorf("Rows() mismatch (-want +got):\n%s", diff)
	}
}

func TestStep(t *testing.T) {
	root := twoCategories(t)

	tests := []struct {
		name  string
		p     document.Pos
		delta int
		want  document.Pos
	}{
		{"element down onto category", document.ElementPos{Index: 0}, 1, document.CategoryPos{Index: 1}},
		{"top edge", document.ElementPos{Index: 0}, -1, nil},
		{"category down", document.CategoryPos{Index: 2}, 1, document.ElementPos{Index: 3}},
		{"bottom edge", document.ElementPos{Index: 3}, 1, nil},
		{"within category", document.CategoryElementPos{Category: 1, Element: 0}, 1, document.CategoryElementPos{Category: 1, Element: 1}},
		{"hop down", document.CategoryElementPos{Category: 1, Element: 1}, 1, document.CategoryElementPos{Category: 2, Element: 0}},
		{"hop up appends", document.CategoryElementPos{Category: 2, Element: 0}, -1, document.CategoryElementPos{Category: 1, Element: 2}},
		{"no category below", document.CategoryElementPos{Category: 2, Element: 0}, 1, nil},
		{"no category above", document.CategoryElementPos{Category: 1, Element: 0}, -1, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Step(root, tt.p, tt.delta)
			if ok != (tt.want != nil) || got != tt.want {
				t.Errorf("Step(%v, %d) = %v, %v; want %v", tt.p, tt.delta, got, ok, tt.want)
			}
		})
	}
}

func TestSelectionFollowsLayer(t *testing.T) {
	root := twoCategories(t)
	src := document.CategoryElementPos{Category: 1, Element: 1}
	sel := Select(root, src)
	if sel.ID != "m2" {
		t.Fatalf("Select() = %v, want m2", sel.ID)
	}

	dst, ok := Step(root, src, 1)
	if !ok {
		t.Fatal("Step() found no destination")
	}
	moved, err := document.Move(root, src, dst)
	if err != nil {
		t.Fatalf("Move() error = %v", err)
	}

	p, ok := sel.Pos(moved)
	if !ok || p != (document.CategoryElementPos{Category: 2, Element: 0}) {
		t.Errorf("Pos() = %v, %v; want c:2/0", p, ok)
	}
	if row := sel.Row(moved); row != 4 {
		t.Errorf("Row() = %d, want 4", row)
	}

	if _, ok := (Selection{}).Pos(moved); ok {
		t.Error("empty selection resolved")
	}
}
