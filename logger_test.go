// FILE: lixenwraith/configure/logger_test.go
package configure

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnosticLoggerNoColorOffTerminal(t *testing.T) {
	t.Run("Buffer", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewDiagnosticLogger(&buf)
		logger.Error().Str("path", "/x").Msg("** /x does not exist or is not a directory!! **")

		assert.Contains(t, buf.String(), "** /x does not exist or is not a directory!! **")
		assert.NotContains(t, buf.String(), "\x1b[")
	})

	t.Run("RegularFile", func(t *testing.T) {
		f, err := os.Create(filepath.Join(t.TempDir(), "stderr.log"))
		require.NoError(t, err)
		defer f.Close()
		assert.False(t, isTerminal(f))

		logger := NewDiagnosticLogger(f)
		logger.Error().Msg("redirected")

		data, err := os.ReadFile(f.Name())
		require.NoError(t, err)
		assert.Contains(t, string(data), "redirected")
		assert.NotContains(t, string(data), "\x1b[")
	})
}
