// Package ident decodes and encodes layer identifiers.
//
// Layer ids come from drawing tools that escape special characters as
// _xHHHH_ tokens. Three of them carry meaning here: _x003e_ ('>'), _x002b_
// ('+') and _x0020_ (space). An id shaped like
//
//	[_] [> [+]] {space} name
//
// describes a category ('>'), optionally a radio category ('+'), and its
// display name. The literal characters '>' and '+' are accepted in place of
// their escapes. Anything else is an element whose name is the decoded id.
//
//	ident.Decode("__x003e__x002b__x0020_Hats") // category{include=true name="Hats"}
//	ident.Decode("Red_x0020_hat")              // element{name="Red hat"}
//	ident.Decode("_3D-glasses")                // element{name="3D-glasses"}
//
// The leading underscore is optional and always consumed, which is how tools
// keep ids that start with a digit valid XML names.
package ident
