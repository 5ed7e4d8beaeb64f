// FILE: lixenwraith/configure/document.go
package configure

import (
	"fmt"
	"maps"
	"slices"
)

const (
	// KeyDocRoot names the entry that must resolve to an existing directory.
	KeyDocRoot = "docRoot"

	// DefaultDocRoot is the docRoot of DefaultDocument.
	DefaultDocRoot = "/somewhere"
)

// Document is a configuration: an open mapping from keys to arbitrary values.
// Known keys are read through the typed accessors.
type Document map[string]any

// DefaultDocument returns a fresh copy of the built-in default configuration.
func DefaultDocument() Document {
	return Document{KeyDocRoot: DefaultDocRoot}
}

// Get returns the raw value stored under key.
func (d Document) Get(key string) (any, bool) {
	val, ok := d[key]
	return val, ok
}

// Clone returns a shallow copy. Cloning a nil Document yields an empty one.
func (d Document) Clone() Document {
	clone := make(Document, len(d))
	maps.Copy(clone, d)
	return clone
}

// Keys returns the document keys in lexical order.
func (d Document) Keys() []string {
	return slices.Sorted(maps.Keys(d))
}

// DocRoot returns the docRoot entry. Only string values are accepted.
func (d Document) DocRoot() (string, error) {
	val, ok := d[KeyDocRoot]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrKeyNotSet, KeyDocRoot)
	}
	path, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("%s must be a string, got %T", KeyDocRoot, val)
	}
	return path, nil
}
