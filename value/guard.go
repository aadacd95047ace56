package value

import (
	"fmt"
	"reflect"

	"github.com/wippyai/wasm-values/errors"
)

// Host type tags returned by TypeOf.
const (
	TagUndefined = "undefined"
	TagNumber    = "number"
	TagString    = "string"
	TagBoolean   = "boolean"
	TagFunction  = "function"
	TagObject    = "object"
)

// TypeOf returns the host type tag of v. Long, like any other composite,
// is an object; only unboxed numbers and Float are numbers.
func TypeOf(v any) string {
	if v == nil {
		return TagUndefined
	}
	switch v.(type) {
	case Long:
		return TagObject
	case string:
		return TagString
	case bool:
		return TagBoolean
	}
	if IsNumber(v) {
		return TagNumber
	}
	if reflect.TypeOf(v).Kind() == reflect.Func {
		return TagFunction
	}
	return TagObject
}

func AssertDefined(v any) error {
	if v == nil {
		return errors.New(errors.ClassType, errors.PhaseValidate, errors.KindUndefined).
			Detail("value is undefined").
			Build()
	}
	return nil
}

// AssertInstance fails unless v holds a T (or implements T, for interfaces).
func AssertInstance[T any](v any) error {
	if _, ok := v.(T); ok {
		return nil
	}
	want := reflect.TypeOf((*T)(nil)).Elem().String()
	return errors.TypeMismatch(errors.PhaseValidate, nil, fmt.Sprintf("%T", v), want)
}

func AssertType(v any, tag string) error {
	if got := TypeOf(v); got != tag {
		return errors.New(errors.ClassType, errors.PhaseValidate, errors.KindTypeMismatch).
			GoType(fmt.Sprintf("%T", v)).
			Value(v).
			Detail("expected %s, got %s", tag, got).
			Build()
	}
	return nil
}

func AssertCallable(v any) error {
	if v == nil || reflect.TypeOf(v).Kind() != reflect.Func || reflect.ValueOf(v).IsNil() {
		return errors.New(errors.ClassType, errors.PhaseValidate, errors.KindNotCallable).
			GoType(fmt.Sprintf("%T", v)).
			Detail("value is not callable").
			Build()
	}
	return nil
}
