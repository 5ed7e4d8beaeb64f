// FILE: lixenwraith/configure/env.go
package configure

import (
	"fmt"
	"strings"
)

// OverridesFromEnv collects overrides from environ entries ("NAME=value")
// whose name starts with prefix. The rest of the name is turned from
// SNAKE_CASE into lowerCamel, so with prefix "APP_" the entry
// "APP_DOC_ROOT=/srv" becomes {"docRoot": "/srv"}. Entries that do not map
// to a valid key are skipped.
func OverridesFromEnv(prefix string, environ []string) map[string]any {
	overrides := make(map[string]any)
	for _, entry := range environ {
		name, value, found := strings.Cut(entry, "=")
		if !found || !strings.HasPrefix(name, prefix) {
			continue
		}

		key := envNameToKey(strings.TrimPrefix(name, prefix))
		if !isValidKey(key) {
			continue
		}
		overrides[key] = parseOverride(key, value)
	}
	return overrides
}

// envNameToKey converts "DOC_ROOT" to "docRoot"
func envNameToKey(name string) string {
	var b strings.Builder
	for _, part := range strings.Split(strings.ToLower(name), "_") {
		if part == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(strings.ToUpper(part[:1]))
			b.WriteString(part[1:])
			continue
		}
		b.WriteString(part)
	}
	return b.String()
}

// ParseAssignment splits "key=value" and converts the value with ParseValue.
func ParseAssignment(s string) (string, any, error) {
	key, value, found := strings.Cut(s, "=")
	if !found {
		return "", nil, fmt.Errorf("%w: %q is not in key=value form", ErrInvalidAssignment, s)
	}
	if !isValidKey(key) {
		return "", nil, fmt.Errorf("%w: invalid key %q", ErrInvalidAssignment, key)
	}
	return key, parseOverride(key, value), nil
}

// parseOverride keeps docRoot textual so that a directory named "2024" or
// "true" is checked as a path.
func parseOverride(key, value string) any {
	if key == KeyDocRoot {
		return unquote(value)
	}
	return ParseValue(value)
}

// ParseValue recognizes the literals true and false and strips surrounding
// double quotes. Everything else stays a string; Decode and the typed
// accessors convert on read.
func ParseValue(s string) any {
	switch s {
	case "true":
		return true
	case "false":
		return false
	}
	return unquote(s)
}

func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

// isValidKey checks a key against the TOML bare key alphabet (A-Za-z0-9_-).
func isValidKey(s string) bool {
	if len(s) == 0 {
		return false
	}

	for _, r := range s {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		isDigit := r >= '0' && r <= '9'
		isUnderscore := r == '_'
		isDash := r == '-'

		if !(isLetter || isDigit || isUnderscore || isDash) {
			return false
		}
	}
	return true
}
