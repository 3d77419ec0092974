// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glstate

import (
	"fmt"
	"math"
	"reflect"

	"github.com/gogpu/glstate/gl"
)

// Value is a parameter value in its canonical form (see Kind). Canonical
// values are comparable with ==.
type Value = any

// State maps parameter keys to their values.
type State map[gl.Enum]Value

// normalize converts a caller-supplied value into the canonical type of
// kind k. Numeric inputs of any Go type are accepted, as are slices and
// arrays of the right length, enum names for KindEnum and gl.Object or nil
// for KindHandle.
func normalize(k Kind, v any) (Value, error) {
	switch k {
	case KindBool:
		return toBool(v)
	case KindFloat:
		f, err := toFloat(v)
		return float32(f), err
	case KindEnum:
		return toEnum(v)
	case KindInt:
		n, err := toInt(v)
		if err != nil {
			return nil, err
		}
		if n < math.MinInt32 || n > math.MaxInt32 {
			return nil, fmt.Errorf("%d overflows int32", n)
		}
		return int32(n), nil
	case KindMask:
		n, err := toInt(v)
		if err != nil {
			return nil, err
		}
		// Negative masks wrap the way GLint stencil masks do.
		if n < math.MinInt32 || n > math.MaxUint32 {
			return nil, fmt.Errorf("%d overflows a 32-bit mask", n)
		}
		return uint32(n), nil
	case KindHandle:
		return toHandle(v)
	case KindBool4:
		elems, err := vector(v, 4)
		if err != nil {
			return nil, err
		}
		var out [4]bool
		for i, e := range elems {
			if out[i], err = toBool(e); err != nil {
				return nil, err
			}
		}
		return out, nil
	case KindFloat2:
		elems, err := vector(v, 2)
		if err != nil {
			return nil, err
		}
		var out [2]float32
		for i, e := range elems {
			f, err := toFloat(e)
			if err != nil {
				return nil, err
			}
			out[i] = float32(f)
		}
		return out, nil
	case KindFloat4:
		elems, err := vector(v, 4)
		if err != nil {
			return nil, err
		}
		var out [4]float32
		for i, e := range elems {
			f, err := toFloat(e)
			if err != nil {
				return nil, err
			}
			out[i] = float32(f)
		}
		return out, nil
	case KindInt4:
		elems, err := vector(v, 4)
		if err != nil {
			return nil, err
		}
		var out [4]int32
		for i, e := range elems {
			n, err := toInt(e)
			if err != nil {
				return nil, err
			}
			if n < math.MinInt32 || n > math.MaxInt32 {
				return nil, fmt.Errorf("%d overflows int32", n)
			}
			out[i] = int32(n)
		}
		return out, nil
	}
	return nil, fmt.Errorf("unknown kind %v", k)
}

// arguments flattens a composite argument list. A slice or array yields
// its elements; any other value is a single argument.
func arguments(v any) []any {
	if v == nil {
		return []any{nil}
	}
	if args, ok := v.([]any); ok {
		return args
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		args := make([]any, rv.Len())
		for i := range args {
			args[i] = rv.Index(i).Interface()
		}
		return args
	}
	return []any{v}
}

func vector(v any, n int) ([]any, error) {
	if v == nil {
		return nil, fmt.Errorf("nil, want %d elements", n)
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, fmt.Errorf("%T, want %d elements", v, n)
	}
	if rv.Len() != n {
		return nil, fmt.Errorf("%d elements, want %d", rv.Len(), n)
	}
	return arguments(v), nil
}

func toBool(v any) (bool, error) {
	switch b := v.(type) {
	case bool:
		return b, nil
	case nil, string:
		return false, fmt.Errorf("%T, want bool", v)
	}
	// GLboolean: any non-zero number is true.
	f, err := toFloat(v)
	if err != nil {
		return false, fmt.Errorf("%T, want bool", v)
	}
	return f != 0, nil
}

func toFloat(v any) (float64, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), nil
	}
	return 0, fmt.Errorf("%T, want number", v)
}

func toInt(v any) (int64, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return 0, fmt.Errorf("%d out of range", u)
		}
		return int64(u), nil
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if f != math.Trunc(f) || math.IsInf(f, 0) {
			return 0, fmt.Errorf("%v is not an integer", f)
		}
		return int64(f), nil
	}
	return 0, fmt.Errorf("%T, want integer", v)
}

func toEnum(v any) (gl.Enum, error) {
	switch e := v.(type) {
	case gl.Enum:
		return e, nil
	case string:
		if x, ok := gl.Lookup(e); ok {
			return x, nil
		}
		return 0, fmt.Errorf("unknown enum name %q", e)
	case bool, nil:
		return 0, fmt.Errorf("%T, want enum", v)
	}
	n, err := toInt(v)
	if err != nil {
		return 0, fmt.Errorf("%T, want enum", v)
	}
	if n < 0 || n > math.MaxUint32 {
		return 0, fmt.Errorf("enum value %d out of range", n)
	}
	return gl.Enum(n), nil
}

func toHandle(v any) (gl.Handle, error) {
	switch h := v.(type) {
	case nil:
		return gl.NoHandle, nil
	case gl.Handle:
		return h, nil
	case gl.Object:
		if rv := reflect.ValueOf(h); rv.Kind() == reflect.Pointer && rv.IsNil() {
			return gl.NoHandle, nil
		}
		return h.Handle(), nil
	case bool, string:
		return 0, fmt.Errorf("%T, want handle", v)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := toInt(v)
		if err != nil || n < 0 || n > math.MaxUint32 {
			return 0, fmt.Errorf("handle %v out of range", v)
		}
		return gl.Handle(n), nil
	}
	return 0, fmt.Errorf("%T, want handle", v)
}
