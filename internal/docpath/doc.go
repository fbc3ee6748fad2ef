/*
Package docpath provides a structured, type-safe representation for
lookup paths into parsed documents, based on the canonical format
`key.key[index]`.

The format is defined as a dot-separated sequence of segments, where
each segment names a mapping key and may carry one bracketed sequence
index, e.g. `servers[0].ports[1]`.

This package enforces the path schema and centralizes all formatting,
parsing, and traversal logic.
*/
package docpath
