// FILE: lixenwraith/configure/doc.go

// Package configure builds validated runtime configurations from a default
// document and caller-supplied overrides.
//
// A configuration is a Document, an open map from keys to arbitrary values.
// Building one copies the defaults, overlays the overrides (caller values
// always win) and then checks that the "docRoot" entry names an existing
// directory. Nothing else is validated unless the caller registers a
// ValidatorFunc.
//
// Quick Start:
//
//	result := configure.NewBuilder().
//	    WithDocRoot("/var/www").
//	    Build(map[string]any{"listen": ":8080"})
//
//	doc, ok := result.Config()
//	if !ok {
//	    // the diagnostic has already been logged
//	    return result.Err()
//	}
//	root, _ := doc.DocRoot()
//	port, _ := doc.String("listen")
//
// Failure:
// When docRoot is missing, unreadable or not a directory, Build logs
//
//	** /does/not/exist does not exist or is not a directory!! **
//
// to the builder's logger (standard error by default) and returns a Result
// without a configuration. Result.Err matches ErrInvalidDocRoot; the cause
// reported by the filesystem is never part of the returned error.
//
// Typed access:
// Document offers converting accessors (String, Int64, Bool, Float64) and
// Decode, which fills a struct through mapstructure using `config` tags.
//
// Overrides from outside the program:
// OverridesFromEnv maps prefixed environment variables to keys and
// ParseAssignment reads "key=value" pairs. Values stay strings apart from
// the literals true and false; docRoot is always kept as text. Encode renders a Document as TOML, JSON or YAML.
//
// Thread Safety:
// Build keeps no state between calls; one Builder may serve concurrent
// callers once its With methods have been applied.
package configure
