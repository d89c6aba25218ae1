// Package svgdoc reads and writes SVG documents as a node tree and exposes the
// top-level groups of the root <svg> element as layer handles.
//
// The tree keeps comments, processing instructions and directives so a
// document can be written back with only the edited parts changed. Layer
// visibility is the group's visibility attribute.
package svgdoc
