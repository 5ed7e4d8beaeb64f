// FILE: lixenwraith/configure/property_test.go
package configure

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/rs/zerolog"
)

// For any overrides without docRoot, the result is the default docRoot plus
// every override, and rebuilding yields an equal but distinct document.
func TestBuild_MergeProperty(t *testing.T) {
	root := t.TempDir()
	b := NewBuilder().WithDocRoot(root).WithLogger(zerolog.Nop())

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("overrides merged onto defaults", prop.ForAll(
		func(m map[string]int) bool {
			delete(m, KeyDocRoot)
			overrides := make(map[string]any, len(m))
			for k, v := range m {
				overrides[k] = v
			}

			first, err := b.Build(overrides).Unwrap()
			if err != nil {
				return false
			}
			second, err := b.Build(overrides).Unwrap()
			if err != nil {
				return false
			}

			if len(first) != len(m)+1 || first[KeyDocRoot] != root {
				return false
			}
			for k, v := range m {
				if first[k] != v || second[k] != v {
					return false
				}
			}

			first["__probe__"] = true
			_, shared := second["__probe__"]
			return !shared
		},
		gen.MapOf(gen.Identifier(), gen.Int()),
	))

	properties.TestingRun(t)
}

// For any docRoot override, the build succeeds exactly when the path is an
// existing directory, and a failure logs the path.
func TestBuild_DocRootProperty(t *testing.T) {
	base := t.TempDir()
	dirs := filepath.Join(base, "dirs")
	files := filepath.Join(base, "files")
	missing := filepath.Join(base, "missing")
	for _, d := range []string{dirs, files} {
		if err := os.MkdirAll(d, 0755); err != nil {
			t.Fatalf("failed to create %s: %v", d, err)
		}
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("docRoot accepted iff directory", prop.ForAll(
		func(name string, kind int) bool {
			var path string
			switch kind {
			case 0:
				path = filepath.Join(dirs, name)
				if err := os.MkdirAll(path, 0755); err != nil {
					return false
				}
			case 1:
				path = filepath.Join(files, name)
				if err := os.WriteFile(path, nil, 0644); err != nil {
					return false
				}
			default:
				path = filepath.Join(missing, name)
			}

			var buf bytes.Buffer
			b := NewBuilder().WithLogger(zerolog.New(&buf))
			result := b.Build(map[string]any{KeyDocRoot: path, "extra": name})

			if kind == 0 {
				doc, ok := result.Config()
				return ok && doc[KeyDocRoot] == path && doc["extra"] == name && buf.Len() == 0
			}
			_, ok := result.Config()
			return !ok && strings.Contains(buf.String(), path)
		},
		gen.Identifier(),
		gen.IntRange(0, 2),
	))

	properties.TestingRun(t)
}
