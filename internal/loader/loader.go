// Package loader is the I/O front door for document parsing. It turns
// files, byte slices, and strings into parsed documents, and can load a
// whole directory tree of .yaml/.yml files concurrently.
package loader

import (
	"context"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/vk/yamlite/internal/ctxlog"
	"github.com/vk/yamlite/internal/fsutil"
	"github.com/vk/yamlite/internal/parser"
	"github.com/vk/yamlite/internal/yamlerr"
)

// SplitLines breaks raw document text into the line units the parser
// consumes. Windows line endings are tolerated by stripping a trailing
// carriage return from each line, and a final newline does not produce a
// phantom empty line at the end.
func SplitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}

// String parses a document held in a string.
func String(ctx context.Context, text string) (*parser.Document, error) {
	return parser.Parse(ctx, SplitLines(text))
}

// Bytes parses a document held in a byte slice.
func Bytes(ctx context.Context, data []byte) (*parser.Document, error) {
	return String(ctx, string(data))
}

// File reads and parses the document at path. A failure to read the file
// surfaces as a *yamlerr.FileError wrapping the underlying cause; parse
// failures pass through unchanged.
func File(ctx context.Context, path string) (*parser.Document, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading document from file", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &yamlerr.FileError{Path: path, Err: err}
	}
	return Bytes(ctx, data)
}

// Result pairs a parsed document with the file it came from.
type Result struct {
	Path string
	Doc  *parser.Document
}

// Dir loads every document under root, walking recursively and matching
// the .yaml and .yml extensions. Files are parsed concurrently and the
// results come back ordered by path. The first failure cancels the
// remaining work and is returned.
func Dir(ctx context.Context, root string) ([]Result, error) {
	logger := ctxlog.FromContext(ctx)

	paths, err := fsutil.FindFilesByExtensions(root, ".yaml", ".yml")
	if err != nil {
		logger.Error("Failed to walk documents directory", "path", root, "error", err)
		return nil, err
	}

	if len(paths) == 0 {
		logger.Warn("No document files found in path", "path", root)
		return nil, nil
	}

	logger.Debug("Found document files to load", "files", paths)

	results := make([]Result, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			doc, err := File(gctx, path)
			if err != nil {
				return err
			}
			results[i] = Result{Path: path, Doc: doc}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.Info("Documents loaded successfully.", "documents_loaded", len(results))
	return results, nil
}
