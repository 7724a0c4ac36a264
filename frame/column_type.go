package frame

import (
	"fmt"
	"strings"
	"time"
)

// ColumnType is an interface which is implemented to define supported column types.
// Dtype names follow Spark's simple-string form, so that contracts written against
// one engine remain valid against another.
type ColumnType interface {
	Dtype() string                 // returns the dtype name of a column type
	Accepts(v interface{}) bool    // returns true iff v may be stored in a column of this type. nil is always accepted.
	ToString(v interface{}) string // produces a string representation of a value of this type
}

// BoolColumnType is a column type which stores a boolean value
type BoolColumnType struct{}

// Dtype of a BoolColumn
func (b *BoolColumnType) Dtype() string {
	return "boolean"
}

// Accepts returns true iff v is a bool
func (b *BoolColumnType) Accepts(v interface{}) bool {
	_, ok := v.(bool)
	return ok || v == nil
}

// ToString produces a string representation of a value of a BoolColumnType value
func (b *BoolColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%t", v.(bool))
}

// Int8ColumnType is a column type which stores a int8 value
type Int8ColumnType struct{}

// Dtype of a Int8Column
func (b *Int8ColumnType) Dtype() string {
	return "tinyint"
}

// Accepts returns true iff v is an int8
func (b *Int8ColumnType) Accepts(v interface{}) bool {
	_, ok := v.(int8)
	return ok || v == nil
}

// ToString produces a string representation of a value of a Int8ColumnType value
func (b *Int8ColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%d", v.(int8))
}

// Int16ColumnType is a column type which stores a int16 value
type Int16ColumnType struct{}

// Dtype of a Int16Column
func (b *Int16ColumnType) Dtype() string {
	return "smallint"
}

// Accepts returns true iff v is an int16
func (b *Int16ColumnType) Accepts(v interface{}) bool {
	_, ok := v.(int16)
	return ok || v == nil
}

// ToString produces a string representation of a value of a Int16ColumnType value
func (b *Int16ColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%d", v.(int16))
}

// Int32ColumnType is a column type which stores a int32 value
type Int32ColumnType struct{}

// Dtype of a Int32Column
func (b *Int32ColumnType) Dtype() string {
	return "int"
}

// Accepts returns true iff v is an int32
func (b *Int32ColumnType) Accepts(v interface{}) bool {
	_, ok := v.(int32)
	return ok || v == nil
}

// ToString produces a string representation of a value of a Int32ColumnType value
func (b *Int32ColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%d", v.(int32))
}

// Int64ColumnType is a column type which stores a int64 value
type Int64ColumnType struct{}

// Dtype of a Int64Column
func (b *Int64ColumnType) Dtype() string {
	return "bigint"
}

// Accepts returns true iff v is an int64
func (b *Int64ColumnType) Accepts(v interface{}) bool {
	_, ok := v.(int64)
	return ok || v == nil
}

// ToString produces a string representation of a value of a Int64ColumnType value
func (b *Int64ColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%d", v.(int64))
}

// Float32ColumnType is a column type which stores a float32 value
type Float32ColumnType struct{}

// Dtype of a Float32Column
func (b *Float32ColumnType) Dtype() string {
	return "float"
}

// Accepts returns true iff v is a float32
func (b *Float32ColumnType) Accepts(v interface{}) bool {
	_, ok := v.(float32)
	return ok || v == nil
}

// ToString produces a string representation of a value of a Float32ColumnType value
func (b *Float32ColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%f", v.(float32))
}

// Float64ColumnType is a column type which stores a float64 value
type Float64ColumnType struct{}

// Dtype of a Float64Column
func (b *Float64ColumnType) Dtype() string {
	return "double"
}

// Accepts returns true iff v is a float64
func (b *Float64ColumnType) Accepts(v interface{}) bool {
	_, ok := v.(float64)
	return ok || v == nil
}

// ToString produces a string representation of a value of a Float64ColumnType value
func (b *Float64ColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%f", v.(float64))
}

// TimeColumnType is a column type which stores a time.Time value
type TimeColumnType struct {
	Format string
}

// Dtype of a TimeColumn
func (b *TimeColumnType) Dtype() string {
	return "timestamp"
}

// Accepts returns true iff v is a time.Time
func (b *TimeColumnType) Accepts(v interface{}) bool {
	_, ok := v.(time.Time)
	return ok || v == nil
}

// ToString produces a string representation of a value of a TimeColumnType value
func (b *TimeColumnType) ToString(v interface{}) string {
	format := b.Format
	if format == "" {
		format = time.RFC3339Nano
	}
	return fmt.Sprintf("\"%s\"", v.(time.Time).Format(format))
}

// StringColumnType is a column type which stores strings
type StringColumnType struct{}

// Dtype of a StringColumn
func (b *StringColumnType) Dtype() string {
	return "string"
}

// Accepts returns true iff v is a string
func (b *StringColumnType) Accepts(v interface{}) bool {
	_, ok := v.(string)
	return ok || v == nil
}

// ToString produces a string representation of a value of a StringColumnType value
func (b *StringColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("\"%s\"", v.(string))
}

// BytesColumnType is a column type which stores byte arrays
type BytesColumnType struct{}

// Dtype of a BytesColumn
func (b *BytesColumnType) Dtype() string {
	return "binary"
}

// Accepts returns true iff v is a []byte
func (b *BytesColumnType) Accepts(v interface{}) bool {
	_, ok := v.([]byte)
	return ok || v == nil
}

// ToString produces a string representation of a value of a BytesColumnType value
func (b *BytesColumnType) ToString(v interface{}) string {
	bytes := v.([]byte)
	var res strings.Builder
	fmt.Fprint(&res, "[")
	i := 0
	for _, v := range bytes {
		// don't print more than 5 entries
		if i >= 5 {
			fmt.Fprintf(&res, "... %d more", len(bytes)-i)
			break
		}
		fmt.Fprintf(&res, "%x", v)
		i++
	}
	fmt.Fprint(&res, "]")
	return res.String()
}
