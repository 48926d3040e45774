package validation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeFields(t *testing.T, body string) map[string]Field {
	t.Helper()
	var doc struct {
		A Field `json:"a"`
		B Field `json:"b"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &doc))
	return map[string]Field{"a": doc.A, "b": doc.B}
}

func TestFieldAbsent(t *testing.T) {
	fields := decodeFields(t, `{"a":"x"}`)

	assert.False(t, fields["b"].Present())
	assert.False(t, fields["b"].Usable())
	assert.False(t, fields["b"].Blank())
}

func TestFieldUsable(t *testing.T) {
	fields := decodeFields(t, `{"a":"hello"}`)

	f := fields["a"]
	assert.True(t, f.Present())
	assert.True(t, f.Usable())
	assert.False(t, f.Blank())
	assert.Equal(t, "hello", f.Value())
}

func TestFieldPresentButBlank(t *testing.T) {
	for _, body := range []string{`{"a":""}`, `{"a":"   "}`} {
		fields := decodeFields(t, body)

		f := fields["a"]
		assert.True(t, f.Present(), body)
		assert.False(t, f.Usable(), body)
		assert.True(t, f.Blank(), body)
	}
}

func TestFieldPresentNonString(t *testing.T) {
	for _, body := range []string{`{"a":0}`, `{"a":false}`, `{"a":null}`, `{"a":[]}`, `{"a":{}}`} {
		fields := decodeFields(t, body)

		f := fields["a"]
		assert.True(t, f.Present(), body)
		assert.False(t, f.Usable(), body)
		assert.True(t, f.Blank(), body)
	}
}

func TestNewField(t *testing.T) {
	f := NewField("value")
	assert.True(t, f.Usable())
	assert.Equal(t, "value", f.Value())

	blank := NewField(" ")
	assert.True(t, blank.Present())
	assert.True(t, blank.Blank())
}
