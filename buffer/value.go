package buffer

import (
	"fmt"
	"reflect"
)

// nullText stands in for absent input.
const nullText = "null"

func textOf(v any) string {
	if v == nil || isNil(v) {
		return nullText
	}
	switch t := v.(type) {
	case string:
		return t
	case *string:
		return *t
	case rune:
		return string(t)
	case []rune:
		return string(t)
	case []byte:
		return string(t)
	case fmt.Stringer:
		return t.String()
	case error:
		return t.Error()
	default:
		return fmt.Sprint(v)
	}
}

func isNil(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
