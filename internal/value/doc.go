// Package value holds the tagged-variant representation of a parsed
// document node.
//
// A Value is exactly one of: absence (null), text, integer, float,
// boolean, sequence, or mapping. The active variant is fixed at
// construction; accessors for any other variant fail with a type
// mismatch rather than converting. Containers own their children
// exclusively: Copy is deep, and nothing handed out by the parser
// shares mutable state with the source tree.
package value
