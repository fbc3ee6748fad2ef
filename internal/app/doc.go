// Package app contains the core application logic. It wires the document
// loader, path lookup, and the output renderers together behind a single
// Run entrypoint, decoupled from any specific entrypoint like a CLI.
package app
