package docpath

import (
	"github.com/vk/yamlite/internal/value"
)

// Lookup walks v along the path and returns the value it lands on. Each
// segment first resolves its key against the current mapping, then
// applies its sequence index when one is present. Errors from the value
// accessors pass through unchanged, so callers can inspect them with
// errors.As.
func Lookup(v value.Value, p *Path) (value.Value, error) {
	current := v
	for _, segment := range p.Segments {
		next, err := current.Get(segment.Key)
		if err != nil {
			return value.Null(), err
		}
		if segment.HasIndex() {
			next, err = next.Index(segment.Index)
			if err != nil {
				return value.Null(), err
			}
		}
		current = next
	}
	return current, nil
}

// LookupString parses raw and walks v along the resulting path.
func LookupString(v value.Value, raw string) (value.Value, error) {
	p, err := Parse(raw)
	if err != nil {
		return value.Null(), err
	}
	return Lookup(v, p)
}
