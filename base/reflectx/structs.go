// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reflectx provides a collection of helpers for the reflect
// package in the Go standard library.
package reflectx

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"cogentcore.org/collide/base/errors"
)

var textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()

// IsLeaf returns whether values of the given type are set as a whole
// from a string, rather than walked into field by field.
func IsLeaf(typ reflect.Type) bool {
	if reflect.PointerTo(typ).Implements(textUnmarshalerType) {
		return true
	}
	return typ.Kind() != reflect.Struct
}

// WalkFields calls fun for every exported leaf field of the given struct
// pointer, descending into nested struct fields. The path is the dotted
// field name path from the top level struct. Walking stops at the first
// error returned by fun.
func WalkFields(obj any, fun func(path string, field reflect.StructField, value reflect.Value) error) error {
	v := NonPointerValue(reflect.ValueOf(obj))
	if v.Kind() != reflect.Struct {
		return fmt.Errorf("reflectx.WalkFields: %T is not a pointer to a struct", obj)
	}
	return walkFields(v, "", fun)
}

func walkFields(v reflect.Value, prefix string, fun func(path string, field reflect.StructField, value reflect.Value) error) error {
	typ := v.Type()
	for i := range typ.NumField() {
		f := typ.Field(i)
		embedded := f.Anonymous && f.Type.Kind() == reflect.Struct
		if !f.IsExported() && !embedded {
			continue
		}
		fv := v.Field(i)
		path := prefix + f.Name
		if embedded {
			path = prefix
		}
		if IsLeaf(f.Type) {
			if !f.IsExported() {
				continue
			}
			if err := fun(path, f, fv); err != nil {
				return err
			}
			continue
		}
		if path != prefix {
			path += "."
		}
		if err := walkFields(fv, path, fun); err != nil {
			return err
		}
	}
	return nil
}

// SetFromDefaultTags sets the values of fields in the given struct
// pointer from their `default:` struct field tags. Fields without
// the tag are left unchanged.
func SetFromDefaultTags(obj any) error {
	if AnyIsNil(obj) {
		return nil
	}
	return WalkFields(obj, func(path string, field reflect.StructField, value reflect.Value) error {
		def, ok := field.Tag.Lookup("default")
		if !ok {
			return nil
		}
		if err := SetString(value, def); err != nil {
			return fmt.Errorf("reflectx.SetFromDefaultTags: field %s: %w", path, err)
		}
		return nil
	})
}

// SetString sets the given settable value from the given string.
// Strings, bools, integers, floats, durations, slices of those
// (comma separated) and [encoding.TextUnmarshaler] values are supported.
func SetString(v reflect.Value, s string) error {
	if !v.CanSet() {
		return errors.New("value is not settable")
	}
	if tu, ok := v.Addr().Interface().(encoding.TextUnmarshaler); ok {
		return tu.UnmarshalText([]byte(s))
	}
	if v.Type() == reflect.TypeFor[time.Duration]() {
		d, err := time.ParseDuration(s)
		if err != nil {
			return err
		}
		v.SetInt(int64(d))
		return nil
	}
	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(f)
	case reflect.Slice:
		if s == "" {
			v.Set(reflect.Zero(v.Type()))
			return nil
		}
		parts := strings.Split(s, ",")
		sl := reflect.MakeSlice(v.Type(), len(parts), len(parts))
		for i, p := range parts {
			if err := SetString(sl.Index(i), strings.TrimSpace(p)); err != nil {
				return err
			}
		}
		v.Set(sl)
	default:
		return fmt.Errorf("cannot set %v from a string", v.Type())
	}
	return nil
}

// AnyIsNil checks if an interface value is nil. The interface itself
// could be nil, or the value pointed to by the interface could be nil.
func AnyIsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return rv.IsNil()
	}
	return false
}
