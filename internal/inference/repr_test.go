package inference

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPyStr(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"top-level string is unquoted", `"hello"`, "hello"},
		{"key order kept", `{"b": 1, "a": 2}`, "{'b': 1, 'a': 2}"},
		{"nested", `{"x": [1, {"y": null}], "z": true}`, "{'x': [1, {'y': None}], 'z': True}"},
		{"empty containers", `{"a": [], "b": {}}`, "{'a': [], 'b': {}}"},
		{"false", `false`, "False"},
		{"float keeps fraction", `{"score": 1.0}`, "{'score': 1.0}"},
		{"float", `[0.5, -2.25]`, "[0.5, -2.25]"},
		{"exponent below threshold", `1e3`, "1000.0"},
		{"large exponent", `1e16`, "1e+16"},
		{"small exponent", `0.00001`, "1e-05"},
		{"overflow", `1e400`, "inf"},
		{"big integer", `123456789012345678901234567890`, "123456789012345678901234567890"},
		{"negative zero integer", `-0`, "0"},
		{"string with single quote", `["it's"]`, `["it's"]`},
		{"string with both quotes", `["it's \"x\""]`, `['it\'s "x"']`},
		{"escapes", `["a\nb\tc\\d"]`, `['a\nb\tc\\d']`},
		{"control char", `["\u0001"]`, `['\x01']`},
		{"unicode printable", `["héllo ✓"]`, `['héllo ✓']`},
		{"non-breaking space", `["a\u00a0b"]`, `['a\xa0b']`},
		{"zero width space", `["a\u200bb"]`, `['a\u200bb']`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pyStr([]byte(tt.doc))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPyStrInvalid(t *testing.T) {
	_, err := pyStr([]byte(`{"a": `))
	assert.Error(t, err)
}
