// FILE: lixenwraith/configure/result.go
package configure

// Result is the outcome of Builder.Build: either a validated Document or a
// failure reason, never both. The zero Result reports failure.
type Result struct {
	doc Document
	err error
}

func succeeded(doc Document) Result {
	return Result{doc: doc}
}

func failed(err error) Result {
	return Result{err: err}
}

// OK reports whether the build produced a configuration.
func (r Result) OK() bool {
	return r.err == nil && r.doc != nil
}

// Config returns the built configuration and whether there is one.
func (r Result) Config() (Document, bool) {
	if !r.OK() {
		return nil, false
	}
	return r.doc, true
}

// Reason returns the human-readable failure reason, or "" on success.
func (r Result) Reason() string {
	if err := r.Err(); err != nil {
		return err.Error()
	}
	return ""
}

// Err returns nil on success. A rejected docRoot yields an
// *InvalidDocRootError; a validator failure wraps ErrValidation.
func (r Result) Err() error {
	if r.OK() {
		return nil
	}
	if r.err == nil {
		return errNoResult
	}
	return r.err
}

// Unwrap converts the result into the conventional value, error pair.
func (r Result) Unwrap() (Document, error) {
	if err := r.Err(); err != nil {
		return nil, err
	}
	return r.doc, nil
}
