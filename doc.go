/*
Package yamlite parses a restricted, indentation-driven YAML subset into an
immutable value tree and renders trees back to text.

The subset covers block mappings and sequences, inline sequences, literal
and folded block scalars, anchors, aliases and merge keys, comments, and
typed scalars (text, int64, float64, bool). Type inference is deliberately
narrow: only lowercase true/false are booleans, integers and decimal floats
follow two fixed patterns, and everything else is text.

	doc, err := yamlite.ParseString(ctx, "host: localhost\nport: 8080\n")
	if err != nil {
		return err
	}
	port, err := doc.Get("port")

Struct decoding and dotted-path lookup are available through Unmarshal and
Lookup:

	var cfg struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
	}
	err = yamlite.Unmarshal(ctx, []byte(text), &cfg)
*/
package yamlite
