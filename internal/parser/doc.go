/*
Package parser implements the indentation-driven structural parse over
mapping and sequence blocks.

Two mutually recursive entry points walk the line slice: one for mapping
blocks and one for sequence blocks. Each call receives the index of the
line to start at and an indentation floor, and returns the finished
container together with the index of the first line it did not consume.
Lines indented below the floor end the block and return control to the
caller. Blank and comment lines are skipped without affecting nesting.

The root kind is decided once, from the first significant line of input:
a leading dash makes the whole document a sequence, anything else a
mapping. Anchors, aliases and merge keys share a single flat namespace
per document and resolve strictly forward.
*/
package parser
