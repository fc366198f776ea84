package content

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/arena/vmath"
)

// maxFractionDigits bounds decimal precision; Q32.32 resolves ~2.3e-10
const maxFractionDigits = 9

// Fixed is a Q32.32 value authored as a plain decimal ("1.25")
// Parsing is exact integer arithmetic, never through float
type Fixed int64

// UnmarshalYAML implements yaml.Unmarshaler
func (f *Fixed) UnmarshalYAML(node *yaml.Node) error {
	v, err := ParseFixed(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*f = Fixed(v)
	return nil
}

// JSONSchema describes Fixed as a number
func (Fixed) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{Type: "number"}
}

// ParseFixed converts a decimal literal to Q32.32
func ParseFixed(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty number")
	}
	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" && frac == "" {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	if len(frac) > maxFractionDigits {
		return 0, fmt.Errorf("number %q: more than %d fraction digits", s, maxFractionDigits)
	}

	var w int64
	if whole != "" {
		n, err := strconv.ParseInt(whole, 10, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid number %q: %w", s, err)
		}
		w = n
	}
	v := w << vmath.Shift
	if frac != "" {
		n, err := strconv.ParseUint(frac, 10, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid number %q: %w", s, err)
		}
		den := int64(1)
		for range frac {
			den *= 10
		}
		v += vmath.FromRatio(int64(n), den)
	}
	if neg {
		v = -v
	}
	return v, nil
}

// Duration is a time.Duration authored as a Go duration string ("250ms")
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	v, err := time.ParseDuration(strings.TrimSpace(node.Value))
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*d = Duration(v)
	return nil
}

// JSONSchema describes Duration as a Go duration string
func (Duration) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:    "string",
		Pattern: `^-?([0-9]+(\.[0-9]+)?(ns|us|µs|ms|s|m|h))+$`,
	}
}
