package parser

import (
	"context"
	"log/slog"
	"strings"

	"github.com/vk/yamlite/internal/anchor"
	"github.com/vk/yamlite/internal/ctxlog"
	"github.com/vk/yamlite/internal/linescan"
	"github.com/vk/yamlite/internal/scalar"
	"github.com/vk/yamlite/internal/value"
	"github.com/vk/yamlite/internal/yamlerr"
)

// parser holds the state of one parse: the line slice, the shared anchor
// table and a logger. A parser is used for exactly one document and is
// not safe for concurrent use.
type parser struct {
	lines   []string
	anchors *anchor.Table
	log     *slog.Logger
}

// Parse consumes the ordered lines of one document and returns the
// finished Document. Any structural defect aborts the whole parse; no
// partial document is ever returned.
func Parse(ctx context.Context, lines []string) (*Document, error) {
	p := &parser{
		lines:   lines,
		anchors: anchor.NewTable(),
		log:     ctxlog.FromContext(ctx),
	}

	rootIsSeq := false
	for _, raw := range p.lines {
		if linescan.IsSkippable(raw) {
			continue
		}
		rootIsSeq = linescan.HasDashLead(linescan.Trim(raw))
		break
	}
	p.log.Debug("Starting document parse", "lines", len(lines), "sequence_root", rootIsSeq)

	var root value.Value
	if rootIsSeq {
		seq, _, err := p.parseSequence(0, 0)
		if err != nil {
			return nil, err
		}
		root = value.Seq(seq)
	} else {
		m, _, err := p.parseMapping(0, 0)
		if err != nil {
			return nil, err
		}
		root = value.Map(m)
	}

	p.log.Debug("Document parse complete", "root_entries", root.Len(), "anchors", p.anchors.Len())
	return &Document{root: root, anchors: p.anchors}, nil
}

// parseMapping consumes mapping entries from start until the indentation
// drops below floor or input ends. It returns the finished mapping and
// the index of the first unconsumed line.
func (p *parser) parseMapping(start, floor int) (value.Mapping, int, error) {
	m := make(value.Mapping)
	// Keys written by an explicit entry of this block, as opposed to keys
	// introduced by a merge. Only explicit duplicates are errors, and only
	// explicit entries resist merge overwrites.
	explicit := make(map[string]bool)

	i := start
	for i < len(p.lines) {
		line := p.lines[i]
		if linescan.IsSkippable(line) {
			i++
			continue
		}
		ind := linescan.Indent(line)
		if ind < floor {
			break
		}
		trimmed := linescan.Trim(line)

		// A sequence item at mapping level is not key/value syntax. The
		// line is dropped rather than rejected so that stray items after
		// a mapping do not poison the whole parse.
		if linescan.HasDashLead(trimmed) {
			i++
			continue
		}

		key, val, err := splitKeyValue(trimmed, i)
		if err != nil {
			return nil, 0, err
		}
		if explicit[key] {
			return nil, 0, yamlerr.Structuralf(i+1, "duplicate mapping key %q", key)
		}

		switch {
		case val == "":
			v, next, err := p.parseEmptyValue(i, ind)
			if err != nil {
				return nil, 0, err
			}
			m[key] = v
			explicit[key] = true
			i = next

		case linescan.IsBlockScalar(val):
			text, next := p.parseBlockScalar(i+1, ind, val[0])
			m[key] = value.Text(text)
			explicit[key] = true
			i = next

		case linescan.IsAnchor(val):
			v, next, err := p.parseAnchorValue(val, i, ind)
			if err != nil {
				return nil, 0, err
			}
			m[key] = v
			explicit[key] = true
			i = next

		case linescan.IsMergeKey(key) && linescan.IsAlias(val):
			if err := p.applyMerge(val, m, i); err != nil {
				return nil, 0, err
			}
			i++

		case linescan.IsAlias(val):
			v, err := p.resolveAlias(val, i)
			if err != nil {
				return nil, 0, err
			}
			m[key] = v
			explicit[key] = true
			i++

		case linescan.IsInlineSeq(val):
			v, err := parseInlineSeq(val)
			if err != nil {
				return nil, 0, err
			}
			m[key] = v
			explicit[key] = true
			i++

		case linescan.HasInlineSeqStart(val) && !strings.HasSuffix(val, "]"):
			return nil, 0, yamlerr.Structuralf(i+1, "unterminated inline sequence: missing closing bracket")

		default:
			v, err := scalar.Infer(val)
			if err != nil {
				return nil, 0, err
			}
			m[key] = v
			explicit[key] = true
			i++
		}
	}
	return m, i, nil
}

// parseSequence consumes dash items from start until the indentation
// drops below floor, a non-item line appears, or input ends.
func (p *parser) parseSequence(start, floor int) (value.Sequence, int, error) {
	var seq value.Sequence

	i := start
	for i < len(p.lines) {
		line := p.lines[i]
		if linescan.IsSkippable(line) {
			i++
			continue
		}
		ind := linescan.Indent(line)
		if ind < floor {
			break
		}
		trimmed := linescan.Trim(line)
		if !linescan.HasDashLead(trimmed) {
			break
		}
		payload := linescan.DashPayload(trimmed)

		// An item whose immediate next line is significant and indented
		// deeper than the dash is a mapping item; the payload, when it
		// looks like key: value, seeds its first entry.
		if next := i + 1; next < len(p.lines) &&
			!linescan.IsSkippable(p.lines[next]) &&
			linescan.Indent(p.lines[next]) > ind {
			item, after, err := p.parseMappingItem(payload, i)
			if err != nil {
				return nil, 0, err
			}
			seq = append(seq, item)
			i = after
			continue
		}

		switch {
		case payload == "":
			seq = append(seq, value.Text(""))
		case linescan.IsInlineSeq(payload):
			v, err := parseInlineSeq(payload)
			if err != nil {
				return nil, 0, err
			}
			seq = append(seq, v)
		default:
			v, err := scalar.Infer(payload)
			if err != nil {
				return nil, 0, err
			}
			seq = append(seq, v)
		}
		i++
	}
	return seq, i, nil
}

// parseMappingItem builds one mapping-shaped sequence item: an optional
// inline first entry from the dash payload, then every entry of the
// deeper block starting on the next line. Block entries win over the
// seeded entry on key collision. A payload without a colon contributes
// nothing.
func (p *parser) parseMappingItem(payload string, i int) (value.Value, int, error) {
	item := make(value.Mapping)
	if ci := strings.Index(payload, ":"); ci >= 0 {
		v, err := scalar.Infer(linescan.Trim(payload[ci+1:]))
		if err != nil {
			return value.Value{}, 0, err
		}
		item[linescan.Trim(payload[:ci])] = v
	}

	blockFloor := linescan.Indent(p.lines[i+1])
	block, next, err := p.parseMapping(i+1, blockFloor)
	if err != nil {
		return value.Value{}, 0, err
	}
	for k, v := range block {
		item[k] = v
	}
	return value.Map(item), next, nil
}

// parseEmptyValue decides what an entry with no inline value holds: a
// nested block when the next significant line is indented deeper, an
// empty text scalar otherwise.
func (p *parser) parseEmptyValue(i, ind int) (value.Value, int, error) {
	j := i + 1
	for j < len(p.lines) && linescan.IsSkippable(p.lines[j]) {
		j++
	}
	if j < len(p.lines) {
		if nextInd := linescan.Indent(p.lines[j]); nextInd > ind {
			if linescan.HasDashLead(linescan.Trim(p.lines[j])) {
				seq, next, err := p.parseSequence(j, nextInd)
				if err != nil {
					return value.Value{}, 0, err
				}
				return value.Seq(seq), next, nil
			}
			m, next, err := p.parseMapping(j, nextInd)
			if err != nil {
				return value.Value{}, 0, err
			}
			return value.Map(m), next, nil
		}
	}
	return value.Text(""), i + 1, nil
}

// parseAnchorValue defines an anchor: the following deeper block (kind
// decided by its first significant line) becomes both the entry's value
// and the table entry. An anchor with no deeper content resolves to
// empty text.
func (p *parser) parseAnchorValue(val string, i, ind int) (value.Value, int, error) {
	name := val[1:]
	if !linescan.ValidName(name) {
		return value.Value{}, 0, yamlerr.Structuralf(i+1, "malformed anchor name %q", name)
	}

	j := i + 1
	for j < len(p.lines) && linescan.IsSkippable(p.lines[j]) {
		j++
	}

	v := value.Text("")
	next := i + 1
	if j < len(p.lines) && linescan.Indent(p.lines[j]) > ind {
		blockFloor := linescan.Indent(p.lines[j])
		if linescan.HasDashLead(linescan.Trim(p.lines[j])) {
			seq, after, err := p.parseSequence(j, blockFloor)
			if err != nil {
				return value.Value{}, 0, err
			}
			v, next = value.Seq(seq), after
		} else {
			m, after, err := p.parseMapping(j, blockFloor)
			if err != nil {
				return value.Value{}, 0, err
			}
			v, next = value.Map(m), after
		}
	}

	p.anchors.Define(name, v)
	p.log.Debug("Anchor defined", "name", name, "kind", v.Kind().String())
	return v, next, nil
}

// resolveAlias dereferences *name against the anchor table, returning an
// independent deep copy.
func (p *parser) resolveAlias(val string, i int) (value.Value, error) {
	name := val[1:]
	if !linescan.ValidName(name) {
		return value.Value{}, yamlerr.Structuralf(i+1, "malformed alias name %q", name)
	}
	return p.anchors.Resolve(name)
}

// applyMerge copies the referenced mapping's entries into m, skipping
// every key the block already holds. Explicit entries parsed after the
// merge may still overwrite merged keys; the merge key itself is never
// inserted.
func (p *parser) applyMerge(val string, m value.Mapping, i int) error {
	src, err := p.resolveAlias(val, i)
	if err != nil {
		return err
	}
	merged, err := src.AsMapping()
	if err != nil {
		return err
	}
	for k, v := range merged {
		if _, exists := m[k]; !exists {
			m[k] = v
		}
	}
	p.log.Debug("Merge applied", "source", val[1:], "keys", len(merged))
	return nil
}

// splitKeyValue divides a mapping line at its first colon.
func splitKeyValue(trimmed string, i int) (string, string, error) {
	ci := strings.Index(trimmed, ":")
	if ci < 0 {
		return "", "", yamlerr.Structuralf(i+1, "missing ':' in key-value pair %q", trimmed)
	}
	key := linescan.Trim(trimmed[:ci])
	val := linescan.Trim(trimmed[ci+1:])
	if key == "" {
		return "", "", yamlerr.Structuralf(i+1, "empty key in key-value pair")
	}
	return key, val, nil
}
