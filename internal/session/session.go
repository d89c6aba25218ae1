// File: session.go
// Title: Editing Session
// Description: Holds the open SVG document and its current root, applies one
//              edit at a time and writes the result back.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-15
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation
// - 2026-10-16 v0.1.1: Split Save into Snapshot, Write and MarkSaved

// Package session owns the current document root of an open SVG file.
//
// Every edit goes through the pure functions of package document; on success
// the root is replaced as a whole, on failure it stays as it was.
package session

import (
	"bytes"
	"io"
	"os"

	mdwerror "github.com/msto63/layerdeck/foundation/core/error"
	"github.com/msto63/layerdeck/foundation/core/log"
	"github.com/msto63/layerdeck/foundation/utils/filex"
	"github.com/msto63/layerdeck/internal/catalog"
	"github.com/msto63/layerdeck/internal/document"
	"github.com/msto63/layerdeck/internal/svgdoc"
)

// Session is an open document. It is not safe for concurrent use.
type Session struct {
	path   string
	doc    *svgdoc.Document
	root   document.Root
	logger *log.Logger
	dirty  bool
}

// Open reads and imports the SVG file at path
func Open(path string, logger *log.Logger) (*Session, error) {
	f, err := os.Open(path)
	if err != nil {
		code := mdwerror.CodeIOError
		if os.IsNotExist(err) {
			code = mdwerror.CodeNotFound
		}
		return nil, mdwerror.Wrap(err, "open svg").
			WithCode(code).
			WithOperation("session.Open").
			WithDetail("path", path)
	}
	defer f.Close()

	s, err := Read(f, logger)
	if err != nil {
		return nil, mdwerror.Wrap(err, "import svg").
			WithOperation("session.Open").
			WithDetail("path", path)
	}
	s.path = path
	return s, nil
}

// Read imports an SVG document from r
func Read(r io.Reader, logger *log.Logger) (*Session, error) {
	if logger == nil {
		logger = log.Discard()
	}

	doc, err := svgdoc.Parse(r)
	if err != nil {
		return nil, err
	}
	root, err := catalog.Import(doc.Layers())
	if err != nil {
		return nil, err
	}

	logger.Debug("document imported", log.Fields{
		"layers":  root.Len(),
		"entries": len(root.Catalog),
	})
	return &Session{doc: doc, root: root, logger: logger}, nil
}

// Root returns the current snapshot
func (s *Session) Root() document.Root {
	return s.root
}

// Document returns the underlying SVG tree
func (s *Session) Document() *svgdoc.Document {
	return s.doc
}

// Path returns the file the session was opened from
func (s *Session) Path() string {
	return s.path
}

// Dirty reports whether there are unsaved edits
func (s *Session) Dirty() bool {
	return s.dirty
}

// Toggle flips the visibility of the element at pos
func (s *Session) Toggle(pos document.Pos) error {
	return s.apply("toggle", log.Fields{"pos": pos.String()}, func(r document.Root) (document.Root, error) {
		return document.ToggleVisible(r, pos)
	})
}

// Move moves a catalog entry
func (s *Session) Move(src, dst document.Pos) error {
	return s.apply("move", log.Fields{"src": src.String(), "dst": dst.String()}, func(r document.Root) (document.Root, error) {
		return document.Move(r, src, dst)
	})
}

// MovePosition moves a layer in the flat z-order and in the SVG
func (s *Session) MovePosition(src, dst int) error {
	return s.apply("reorder", log.Fields{"src": src, "dst": dst}, func(r document.Root) (document.Root, error) {
		return document.MovePosition(r, s.doc, src, dst)
	})
}

func (s *Session) apply(edit string, fields log.Fields, f func(document.Root) (document.Root, error)) error {
	next, err := f(s.root)
	if err != nil {
		s.logger.WithField("edit", edit).LogError(err)
		return err
	}
	s.root = next
	s.dirty = true
	s.logger.Debug("edit applied", log.Field("edit", edit), fields)
	return nil
}

// WriteTo writes the SVG document
func (s *Session) WriteTo(w io.Writer) (int64, error) {
	return s.doc.WriteTo(w)
}

// Save writes the document to path, or to the file it was opened from when
// path is empty. The file is replaced atomically.
func (s *Session) Save(path string) error {
	snap, err := s.Snapshot(path)
	if err != nil {
		return err
	}
	if err := snap.Write(); err != nil {
		return err
	}
	s.MarkSaved(snap.Path)
	return nil
}

// Snapshot captures the current markup for a save to path, or to the file
// the session was opened from when path is empty. The snapshot shares no
// state with the session, so its Write may run on another goroutine.
func (s *Session) Snapshot(path string) (Snapshot, error) {
	const op = "session.Snapshot"

	if path == "" {
		path = s.path
	}
	if path == "" {
		return Snapshot{}, mdwerror.New("no target path to save to").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation(op)
	}

	var buf bytes.Buffer
	if _, err := s.doc.WriteTo(&buf); err != nil {
		return Snapshot{}, mdwerror.Wrap(err, "render svg").
			WithOperation(op).
			WithDetail("path", path)
	}
	return Snapshot{Path: path, data: buf.Bytes()}, nil
}

// MarkSaved records that the document was written to path
func (s *Session) MarkSaved(path string) {
	s.dirty = false
	s.logger.Info("document saved", log.Field("path", path))
}

// Snapshot is the rendered document waiting to be written
type Snapshot struct {
	Path string
	data []byte
}

// Write replaces the file at Path atomically
func (p Snapshot) Write() error {
	err := filex.WriteAtomic(p.Path, 0o644, func(w io.Writer) error {
		_, err := w.Write(p.data)
		return err
	})
	if err != nil {
		return mdwerror.Wrap(err, "save svg").
			WithCode(mdwerror.CodeIOError).
			WithOperation("session.Save").
			WithDetail("path", p.Path)
	}
	return nil
}
