// Package scalar converts raw value tokens into typed scalars. Rules apply
// in a fixed priority order with first match winning: lowercase boolean
// literals, then integers, then decimal floats, then text. Numeric forms
// outside the two patterns (scientific notation without a decimal point,
// hex/octal/binary prefixes, a leading '+') intentionally fall through to
// text.
package scalar

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/vk/yamlite/internal/value"
	"github.com/vk/yamlite/internal/yamlerr"
)

var (
	intRe   = regexp.MustCompile(`^-?\d+$`)
	floatRe = regexp.MustCompile(`^-?(?:\d+\.\d*|\.\d+)(?:[eE][+-]?\d+)?$`)
)

// StripComment trims the token and removes a trailing comment. Tokens whose
// first character is a quote are returned trimmed but otherwise intact;
// comment handling never looks inside quoted text. For unquoted tokens the
// first '#' at any position starts the comment.
func StripComment(token string) string {
	s := strings.Trim(token, " \t\r")
	if s == "" {
		return s
	}
	if s[0] == '\'' || s[0] == '"' {
		return s
	}
	if i := strings.IndexByte(s, '#'); i >= 0 {
		s = s[:i]
	}
	return strings.Trim(s, " \t\r")
}

// Unquote strips exactly one layer of matching single or double quotes.
// No escape sequences are interpreted; mismatched or absent quotes leave
// the token unchanged.
func Unquote(token string) string {
	if len(token) >= 2 {
		first, last := token[0], token[len(token)-1]
		if first == last && (first == '\'' || first == '"') {
			return token[1 : len(token)-1]
		}
	}
	return token
}

// IsInt reports whether the token matches the integer pattern.
func IsInt(token string) bool {
	return intRe.MatchString(token)
}

// IsFloat reports whether the token matches the decimal float pattern. A
// literal decimal point is mandatory; an exponent alone does not qualify.
func IsFloat(token string) bool {
	return floatRe.MatchString(token)
}

// Infer converts a raw value token into a typed scalar. Comment stripping
// runs first, then the priority rules. A token matched by a numeric
// pattern but outside the representable range fails with a conversion
// error instead of degrading to text. An empty token infers to empty text.
func Infer(token string) (value.Value, error) {
	clean := StripComment(token)

	switch clean {
	case "true":
		return value.Bool(true), nil
	case "false":
		return value.Bool(false), nil
	}

	if intRe.MatchString(clean) {
		n, err := strconv.ParseInt(clean, 10, 64)
		if err != nil {
			return value.Value{}, &yamlerr.ConversionError{Value: clean, Target: "integer", Err: err}
		}
		return value.Int(n), nil
	}

	if floatRe.MatchString(clean) {
		f, err := strconv.ParseFloat(clean, 64)
		if err != nil {
			return value.Value{}, &yamlerr.ConversionError{Value: clean, Target: "float", Err: err}
		}
		return value.Float(f), nil
	}

	return value.Text(Unquote(clean)), nil
}
