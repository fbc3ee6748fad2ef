// Package linescan classifies raw document lines before parsing: indent
// measurement, blank/comment detection, and recognition of the structural
// markers (dash items, block scalar introducers, anchors, aliases, merge
// keys, inline sequences) the parser dispatches on.
package linescan
