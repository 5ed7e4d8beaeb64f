// FILE: lixenwraith/configure/decode.go
package configure

import (
	"fmt"
	"net/url"
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"
)

// TagName is the struct tag consulted by Decode.
const TagName = "config"

// Decode copies the document into target, which must be a non-nil pointer to
// a struct or map. Fields are matched by the `config` tag, falling back to a
// case-insensitive field name match. Input is weakly typed, so a value set
// from the environment as "8080" decodes into an int field.
func (d Document) Decode(target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("decode target must be non-nil pointer, got %T", target)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          TagName,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			stringToURLHookFunc(),
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToTimeHookFunc(time.RFC3339),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}

	if err := decoder.Decode(map[string]any(d)); err != nil {
		return fmt.Errorf("decode failed: %w", err)
	}
	return nil
}

// stringToURLHookFunc handles url.URL and *url.URL targets
func stringToURLHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String {
			return data, nil
		}
		isPtr := t.Kind() == reflect.Ptr
		targetType := t
		if isPtr {
			targetType = t.Elem()
		}
		if targetType != reflect.TypeOf(url.URL{}) {
			return data, nil
		}

		str := data.(string)
		if len(str) > 2048 {
			return nil, fmt.Errorf("URL too long: %d bytes", len(str))
		}
		u, err := url.Parse(str)
		if err != nil {
			return nil, fmt.Errorf("invalid URL: %w", err)
		}
		if isPtr {
			return u, nil
		}
		return *u, nil
	}
}
