// FILE: lixenwraith/configure/type.go
package configure

import (
	"fmt"
	"reflect"
	"strconv"
)

// String retrieves a string value, converting common scalar types.
func (d Document) String(key string) (string, error) {
	val, found := d.Get(key)
	if !found {
		return "", fmt.Errorf("%w: %s", ErrKeyNotSet, key)
	}
	if val == nil {
		return "", nil
	}

	switch v := val.(type) {
	case string:
		return v, nil
	case fmt.Stringer:
		return v.String(), nil
	case []byte:
		return string(v), nil
	case int, int8, int16, int32, int64:
		return strconv.FormatInt(reflect.ValueOf(val).Int(), 10), nil
	case uint, uint8, uint16, uint32, uint64:
		return strconv.FormatUint(reflect.ValueOf(val).Uint(), 10), nil
	case float32, float64:
		return strconv.FormatFloat(reflect.ValueOf(val).Float(), 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(v), nil
	default:
		return "", fmt.Errorf("cannot convert %T to string for key %s", val, key)
	}
}

// Int64 retrieves an integer value. Floats are truncated, booleans map to 0/1
// and strings are parsed with base detection.
func (d Document) Int64(key string) (int64, error) {
	val, found := d.Get(key)
	if !found {
		return 0, fmt.Errorf("%w: %s", ErrKeyNotSet, key)
	}
	if val == nil {
		return 0, fmt.Errorf("value for key %s is nil, cannot convert to int64", key)
	}

	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := v.Uint()
		if u > uint64(1<<63-1) {
			return 0, fmt.Errorf("value %d for key %s overflows int64", u, key)
		}
		return int64(u), nil
	case reflect.Float32, reflect.Float64:
		return int64(v.Float()), nil
	case reflect.String:
		s := v.String()
		i, err := strconv.ParseInt(s, 0, 64)
		if err == nil {
			return i, nil
		}
		if f, ferr := strconv.ParseFloat(s, 64); ferr == nil {
			return int64(f), nil
		}
		return 0, fmt.Errorf("cannot convert %q to int64 for key %s: %w", s, key, err)
	case reflect.Bool:
		if v.Bool() {
			return 1, nil
		}
		return 0, nil
	}

	return 0, fmt.Errorf("cannot convert %T to int64 for key %s", val, key)
}

// Bool retrieves a boolean value. Numbers are true when non-zero.
func (d Document) Bool(key string) (bool, error) {
	val, found := d.Get(key)
	if !found {
		return false, fmt.Errorf("%w: %s", ErrKeyNotSet, key)
	}
	if val == nil {
		return false, fmt.Errorf("value for key %s is nil, cannot convert to bool", key)
	}

	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.Bool:
		return v.Bool(), nil
	case reflect.String:
		b, err := strconv.ParseBool(v.String())
		if err != nil {
			return false, fmt.Errorf("cannot convert %q to bool for key %s: %w", v.String(), key, err)
		}
		return b, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() != 0, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() != 0, nil
	case reflect.Float32, reflect.Float64:
		return v.Float() != 0, nil
	}

	return false, fmt.Errorf("cannot convert %T to bool for key %s", val, key)
}

// Float64 retrieves a floating point value.
func (d Document) Float64(key string) (float64, error) {
	val, found := d.Get(key)
	if !found {
		return 0, fmt.Errorf("%w: %s", ErrKeyNotSet, key)
	}
	if val == nil {
		return 0, fmt.Errorf("value for key %s is nil, cannot convert to float64", key)
	}

	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return v.Float(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), nil
	case reflect.String:
		f, err := strconv.ParseFloat(v.String(), 64)
		if err != nil {
			return 0, fmt.Errorf("cannot convert %q to float64 for key %s: %w", v.String(), key, err)
		}
		return f, nil
	case reflect.Bool:
		if v.Bool() {
			return 1, nil
		}
		return 0, nil
	}

	return 0, fmt.Errorf("cannot convert %T to float64 for key %s", val, key)
}
