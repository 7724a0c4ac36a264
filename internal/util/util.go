package util

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"
)

// FormatList renders a list of strings as ['a', 'b'], the format used in
// validation messages and shape descriptions
func FormatList(values []string) string {
	var res strings.Builder
	res.WriteString("[")
	for i, v := range values {
		if i > 0 {
			res.WriteString(", ")
		}
		fmt.Fprintf(&res, "'%s'", v)
	}
	res.WriteString("]")
	return res.String()
}

// TypeName produces the name of the dynamic type of v
func TypeName(v interface{}) string {
	if v == nil {
		return NoneTypeName
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		if rv.IsNil() {
			return NoneTypeName
		}
	}
	return rv.Type().String()
}

// FuncName produces the short name of a function value, without its package path
func FuncName(fn interface{}) string {
	rv := reflect.ValueOf(fn)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return ""
	}
	f := runtime.FuncForPC(rv.Pointer())
	if f == nil {
		return ""
	}
	name := f.Name()
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		name = name[idx+1:]
	}
	if idx := strings.Index(name, "."); idx >= 0 {
		name = name[idx+1:]
	}
	return name
}

// FormatMultiError formats multierrors for logging
func FormatMultiError(merrs []error) string {
	var msg = ""
	for i := 0; i < len(merrs); i++ {
		msg += fmt.Sprintf("%+v\n", merrs[i])
	}
	return msg
}
