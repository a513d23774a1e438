package util

import (
	"fmt"
	"reflect"
)

// IsStructInitialized checks all exported fields of the given struct pointer for zero values.
// Fields tagged with `wire:"-"` are skipped as they are initialized outside of the injector.
func IsStructInitialized(s any) error {
	val := reflect.ValueOf(s)
	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return fmt.Errorf("nil pointer of type %T", s)
		}
		val = val.Elem()
	}

	if val.Kind() != reflect.Struct {
		return fmt.Errorf("expected struct, got %s", val.Kind())
	}

	typ := val.Type()
	for i := 0; i < val.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() || field.Tag.Get("wire") == "-" {
			continue
		}

		if val.Field(i).IsZero() {
			return fmt.Errorf("struct field %q of %s is not initialized", field.Name, typ.Name())
		}
	}

	return nil
}
