// FILE: lixenwraith/configure/builder.go
package configure

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog"
)

// ValidatorFunc checks a merged Document after the docRoot check passed.
// It must not modify the document.
type ValidatorFunc func(doc Document) error

// StatFunc reports file metadata for a path, like os.Stat.
type StatFunc func(name string) (fs.FileInfo, error)

// Builder merges caller overrides onto a default Document and validates the
// result. A Builder holds no per-call state, so Build is safe for concurrent
// use once configuration through the With methods is done.
type Builder struct {
	defaults   Document
	logger     zerolog.Logger
	stat       StatFunc
	validators []ValidatorFunc
}

// NewBuilder creates a builder using DefaultDocument, os.Stat and a
// diagnostic logger on standard error.
func NewBuilder() *Builder {
	return &Builder{
		defaults:   DefaultDocument(),
		logger:     NewDiagnosticLogger(nil),
		stat:       os.Stat,
		validators: make([]ValidatorFunc, 0),
	}
}

// WithDefaults replaces the default document. The map is copied.
func (b *Builder) WithDefaults(defaults Document) *Builder {
	b.defaults = defaults.Clone()
	return b
}

// WithDocRoot sets the docRoot of the default document.
func (b *Builder) WithDocRoot(path string) *Builder {
	b.defaults[KeyDocRoot] = path
	return b
}

// WithLogger sets the logger receiving failure diagnostics
func (b *Builder) WithLogger(logger zerolog.Logger) *Builder {
	b.logger = logger
	return b
}

// WithStat replaces the function used to inspect docRoot
func (b *Builder) WithStat(fn StatFunc) *Builder {
	if fn != nil {
		b.stat = fn
	}
	return b
}

// WithValidator adds a check for keys other than docRoot.
// Validators run in the order they were added.
func (b *Builder) WithValidator(fn ValidatorFunc) *Builder {
	if fn != nil {
		b.validators = append(b.validators, fn)
	}
	return b
}

// Defaults returns a copy of the default document
func (b *Builder) Defaults() Document {
	return b.defaults.Clone()
}

// Build overlays overrides onto a copy of the defaults and checks that
// docRoot names an existing directory. Override values always replace the
// default, nested maps included. On failure the diagnostic is logged and the
// returned Result carries no configuration.
func (b *Builder) Build(overrides map[string]any) Result {
	doc := b.defaults.Clone()
	for key, value := range overrides {
		doc[key] = value
	}

	if err := b.checkDocRoot(doc); err != nil {
		return failed(err)
	}

	for _, validator := range b.validators {
		if err := validator(doc); err != nil {
			b.logger.Error().Err(err).Msg("configuration rejected by validator")
			return failed(fmt.Errorf("%w: %w", ErrValidation, err))
		}
	}

	return succeeded(doc)
}

// MustBuild is like Build but panics on failure
func (b *Builder) MustBuild(overrides map[string]any) Document {
	doc, err := b.Build(overrides).Unwrap()
	if err != nil {
		panic(fmt.Sprintf("config build failed: %v", err))
	}
	return doc
}

// checkDocRoot stats the docRoot entry. Any stat error is absorbed into the
// returned *InvalidDocRootError and only surfaces in the log line.
func (b *Builder) checkDocRoot(doc Document) *InvalidDocRootError {
	raw := doc[KeyDocRoot]
	path, isString := raw.(string)
	if !isString {
		path = fmt.Sprint(raw)
	}

	var statErr error
	isDir := false
	if isString {
		var info fs.FileInfo
		info, statErr = b.stat(path)
		isDir = statErr == nil && info.IsDir()
	}
	if isDir {
		return nil
	}

	invalid := newInvalidDocRootError(path)
	event := b.logger.Error().Str("path", path)
	if statErr != nil {
		event = event.AnErr("stat_error", statErr)
	}
	event.Msg(invalid.Reason)
	return invalid
}
