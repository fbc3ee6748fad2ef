package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vk/yamlite/internal/ctxlog"
	"github.com/vk/yamlite/internal/decode"
	"github.com/vk/yamlite/internal/docpath"
	"github.com/vk/yamlite/internal/hclout"
	"github.com/vk/yamlite/internal/loader"
	"github.com/vk/yamlite/internal/printer"
	"github.com/vk/yamlite/internal/value"
	"github.com/vk/yamlite/internal/yamlerr"
)

// Run executes the main application logic: load the input, apply the
// optional lookup path, and render the result in the configured format.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	info, err := os.Stat(a.config.InputPath)
	if err != nil {
		return &yamlerr.FileError{Path: a.config.InputPath, Err: err}
	}

	var output []byte
	if info.IsDir() {
		output, err = a.renderDir(ctx)
	} else {
		output, err = a.renderFile(ctx)
	}
	if err != nil {
		return err
	}

	if _, err := a.outW.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// renderFile converts a single document, optionally narrowed to one value
// by the configured lookup path.
func (a *App) renderFile(ctx context.Context) ([]byte, error) {
	doc, err := loader.File(ctx, a.config.InputPath)
	if err != nil {
		return nil, err
	}

	target := doc.Root()
	if a.config.GetPath != "" {
		target, err = docpath.LookupString(doc.Root(), a.config.GetPath)
		if err != nil {
			return nil, fmt.Errorf("failed to look up path %q: %w", a.config.GetPath, err)
		}
	}

	switch a.config.Format {
	case FormatJSON:
		out, err := decode.ToJSONIndent(target)
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	case FormatHCL:
		if a.config.GetPath != "" {
			out, err := hclout.RenderValue(lastPathKey(a.config.GetPath), target)
			if err != nil {
				// The last path key need not be a valid HCL identifier.
				return hclout.RenderValue("value", target)
			}
			return out, nil
		}
		return hclout.Render(target)
	default:
		text, err := printer.Sprint(target, 0)
		if err != nil {
			return nil, err
		}
		return []byte(text), nil
	}
}

// renderDir converts every document under the input directory into one
// combined output stream keyed by relative path.
func (a *App) renderDir(ctx context.Context) ([]byte, error) {
	if a.config.GetPath != "" {
		return nil, fmt.Errorf("a lookup path requires a single input file, not a directory")
	}

	results, err := loader.Dir(ctx, a.config.InputPath)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}

	switch a.config.Format {
	case FormatJSON:
		combined := value.Mapping{}
		for _, res := range results {
			combined[a.relPath(res.Path)] = res.Doc.Root()
		}
		out, err := decode.ToJSONIndent(value.Map(combined))
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	case FormatHCL:
		docs := make([]hclout.Document, len(results))
		for i, res := range results {
			docs[i] = hclout.Document{Name: a.relPath(res.Path), Value: res.Doc.Root()}
		}
		return hclout.RenderBlocks(docs)
	default:
		var sb strings.Builder
		for i, res := range results {
			if i > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString("# " + a.relPath(res.Path) + "\n")
			text, err := printer.Sprint(res.Doc.Root(), 0)
			if err != nil {
				return nil, fmt.Errorf("failed to render %s: %w", res.Path, err)
			}
			sb.WriteString(text)
		}
		return []byte(sb.String()), nil
	}
}

// relPath shortens an absolute result path to be relative to the input
// directory, with forward slashes for stable output across platforms.
func (a *App) relPath(path string) string {
	rel, err := filepath.Rel(a.config.InputPath, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}

// lastPathKey names the HCL attribute for a lookup result after its
// final path segment.
func lastPathKey(raw string) string {
	p, err := docpath.Parse(raw)
	if err != nil || len(p.Segments) == 0 {
		return "value"
	}
	return p.Segments[len(p.Segments)-1].Key
}
