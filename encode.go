// FILE: lixenwraith/configure/encode.go
package configure

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Output formats understood by Encode
const (
	FormatTOML = "toml"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Encode writes doc to w in the given format. Format names are
// case-insensitive and "yml" is accepted for YAML.
func Encode(w io.Writer, doc Document, format string) error {
	if doc == nil {
		doc = Document{}
	}

	switch strings.ToLower(format) {
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(map[string]any(doc)); err != nil {
			return fmt.Errorf("failed to encode TOML: %w", err)
		}
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
	case FormatYAML, "yml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(map[string]any(doc)); err != nil {
			encoder.Close()
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		if err := encoder.Close(); err != nil {
			return fmt.Errorf("failed to flush YAML: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return nil
}
