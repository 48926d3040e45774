package validation

import (
	"encoding/json"
	"strings"
)

// Field is a request value with three states: absent (the key was never
// supplied), present but unusable (blank string, or a non-string JSON value
// such as 0, false or null), or present with a usable non-blank string.
// Distinguishing absent from present-but-empty is what drives the partial
// update rules: absent fields keep their stored value, supplied-but-empty
// fields are rejected outright.
type Field struct {
	present bool
	usable  bool
	value   string
}

// NewField returns a present Field holding value. Usability follows the
// non-blank rule.
func NewField(value string) Field {
	return Field{present: true, usable: strings.TrimSpace(value) != "", value: value}
}

// Present reports whether the key was supplied at all.
func (f Field) Present() bool { return f.present }

// Usable reports whether the field was supplied as a non-blank string.
func (f Field) Usable() bool { return f.present && f.usable }

// Blank reports whether the field was supplied but holds nothing usable.
func (f Field) Blank() bool { return f.present && !f.usable }

// Value returns the raw supplied string, or "" when absent or non-string.
func (f Field) Value() string { return f.value }

// UnmarshalJSON records presence for any supplied value. String values are
// kept; any other JSON type lands in the present-but-unusable state.
func (f *Field) UnmarshalJSON(data []byte) error {
	f.present = true
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		f.usable = false
		f.value = ""
		return nil
	}
	f.value = s
	f.usable = strings.TrimSpace(s) != ""
	return nil
}
