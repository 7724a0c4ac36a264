package valido

import "reflect"

// ColumnDtype pairs a column name with the engine's name for its type
type ColumnDtype struct {
	Name  string
	Dtype string
}

// A DataFrame is any columnar value which can describe its own shape.
// Validation only ever reads these two methods.
type DataFrame interface {
	ColumnNames() []string       // ColumnNames returns the column names, in order
	ColumnDtypes() []ColumnDtype // ColumnDtypes returns (name, dtype) pairs, in column order
}

// asDataFrame returns v as a DataFrame iff it implements the interface and is not a nil pointer
func asDataFrame(v interface{}) (DataFrame, bool) {
	df, ok := v.(DataFrame)
	if !ok {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		if rv.IsNil() {
			return nil, false
		}
	}
	return df, true
}
