// Package hclout renders document values in HCL syntax, so converted
// documents can feed tools that consume HCL natively.
package hclout

import (
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"

	"github.com/vk/yamlite/internal/decode"
	"github.com/vk/yamlite/internal/value"
)

// Render writes a whole document as an HCL attribute body. A mapping
// root becomes one attribute per key, a sequence root becomes a single
// `items` attribute, and anything else becomes a single `value`
// attribute. Mapping keys at the root must be valid HCL identifiers;
// nested keys have no such restriction because hclwrite quotes them.
func Render(v value.Value) ([]byte, error) {
	f := hclwrite.NewEmptyFile()
	if err := fillBody(f.Body(), v); err != nil {
		return nil, err
	}
	return f.Bytes(), nil
}

// Document pairs a label with a document value for block rendering.
type Document struct {
	Name  string
	Value value.Value
}

// RenderBlocks writes several documents into one file, each inside a
// `document` block labeled with its name. Labels are quoted strings, so
// any file name works.
func RenderBlocks(docs []Document) ([]byte, error) {
	f := hclwrite.NewEmptyFile()
	body := f.Body()

	for i, doc := range docs {
		if i > 0 {
			body.AppendNewline()
		}
		block := body.AppendNewBlock("document", []string{doc.Name})
		if err := fillBody(block.Body(), doc.Value); err != nil {
			return nil, fmt.Errorf("failed to render %s: %w", doc.Name, err)
		}
	}

	return f.Bytes(), nil
}

func fillBody(body *hclwrite.Body, v value.Value) error {
	switch v.Kind() {
	case value.KindMapping:
		mapping, _ := v.AsMapping()
		keys := make([]string, 0, len(mapping))
		for key := range mapping {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for _, key := range keys {
			if !hclsyntax.ValidIdentifier(key) {
				return fmt.Errorf("key %q is not a valid HCL identifier", key)
			}
			body.SetAttributeValue(key, decode.ToCty(mapping[key]))
		}
	case value.KindSequence:
		body.SetAttributeValue("items", decode.ToCty(v))
	default:
		body.SetAttributeValue("value", decode.ToCty(v))
	}
	return nil
}

// RenderValue writes a single document value as one named HCL attribute.
func RenderValue(name string, v value.Value) ([]byte, error) {
	if !hclsyntax.ValidIdentifier(name) {
		return nil, fmt.Errorf("attribute name %q is not a valid HCL identifier", name)
	}

	f := hclwrite.NewEmptyFile()
	f.Body().SetAttributeValue(name, decode.ToCty(v))
	return f.Bytes(), nil
}
