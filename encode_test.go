// FILE: lixenwraith/configure/encode_test.go
package configure

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEncode(t *testing.T) {
	doc := Document{
		KeyDocRoot: "/srv/www",
		"listen":   ":8080",
		"workers":  int64(4),
		"debug":    true,
	}

	t.Run("TOML", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, doc, FormatTOML))
		assert.Contains(t, buf.String(), `docRoot = "/srv/www"`)

		decoded := map[string]any{}
		_, err := toml.Decode(buf.String(), &decoded)
		require.NoError(t, err)
		assert.Equal(t, map[string]any(doc), decoded)
	})

	t.Run("JSON", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, doc, "JSON"))

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, "/srv/www", decoded[KeyDocRoot])
		assert.Equal(t, float64(4), decoded["workers"])
	})

	t.Run("YAML", func(t *testing.T) {
		for _, format := range []string{FormatYAML, "yml"} {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, doc, format))

			var decoded map[string]any
			require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
			assert.Equal(t, "/srv/www", decoded[KeyDocRoot])
			assert.Equal(t, 4, decoded["workers"])
			assert.Equal(t, true, decoded["debug"])
		}
	})

	t.Run("NilDocument", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, nil, FormatJSON))
		assert.JSONEq(t, `{}`, buf.String())
	})

	t.Run("UnknownFormat", func(t *testing.T) {
		var buf bytes.Buffer
		err := Encode(&buf, doc, "ini")
		assert.ErrorIs(t, err, ErrUnknownFormat)
		assert.Empty(t, buf.String())
	})
}
