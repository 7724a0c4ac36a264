package arrowframe

import (
	"fmt"
	"strings"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/go-sif/valido"
)

// Frame is a valido.DataFrame backed by an Arrow schema
type Frame struct {
	schema *arrow.Schema
}

// FromSchema is a factory for Frames
func FromSchema(schema *arrow.Schema) *Frame {
	return &Frame{schema: schema}
}

// FromRecord produces a Frame describing an Arrow record
func FromRecord(rec arrow.Record) *Frame {
	return FromSchema(rec.Schema())
}

// FromTable produces a Frame describing an Arrow table
func FromTable(tbl arrow.Table) *Frame {
	return FromSchema(tbl.Schema())
}

// Schema returns the underlying Arrow schema
func (f *Frame) Schema() *arrow.Schema {
	return f.schema
}

// ColumnNames returns the names of the fields of the schema, in order
func (f *Frame) ColumnNames() []string {
	fields := f.schema.Fields()
	names := make([]string, len(fields))
	for i, field := range fields {
		names[i] = field.Name
	}
	return names
}

// ColumnDtypes returns the names and dtypes of the fields of the schema, in order
func (f *Frame) ColumnDtypes() []valido.ColumnDtype {
	fields := f.schema.Fields()
	dtypes := make([]valido.ColumnDtype, len(fields))
	for i, field := range fields {
		dtypes[i] = valido.ColumnDtype{Name: field.Name, Dtype: Dtype(field.Type)}
	}
	return dtypes
}

// Dtype names an Arrow data type
func Dtype(dt arrow.DataType) string {
	switch dt.ID() {
	case arrow.NULL:
		return "void"
	case arrow.BOOL:
		return "boolean"
	case arrow.INT8:
		return "tinyint"
	case arrow.INT16:
		return "smallint"
	case arrow.INT32:
		return "int"
	case arrow.INT64:
		return "bigint"
	case arrow.FLOAT32:
		return "float"
	case arrow.FLOAT64:
		return "double"
	case arrow.STRING, arrow.LARGE_STRING, arrow.STRING_VIEW:
		return "string"
	case arrow.BINARY, arrow.LARGE_BINARY, arrow.FIXED_SIZE_BINARY, arrow.BINARY_VIEW:
		return "binary"
	case arrow.DATE32, arrow.DATE64:
		return "date"
	case arrow.TIMESTAMP:
		return "timestamp"
	case arrow.DECIMAL128:
		t := dt.(*arrow.Decimal128Type)
		return fmt.Sprintf("decimal(%d,%d)", t.Precision, t.Scale)
	case arrow.DECIMAL256:
		t := dt.(*arrow.Decimal256Type)
		return fmt.Sprintf("decimal(%d,%d)", t.Precision, t.Scale)
	case arrow.LIST:
		return fmt.Sprintf("array<%s>", Dtype(dt.(*arrow.ListType).Elem()))
	case arrow.LARGE_LIST:
		return fmt.Sprintf("array<%s>", Dtype(dt.(*arrow.LargeListType).Elem()))
	case arrow.MAP:
		t := dt.(*arrow.MapType)
		return fmt.Sprintf("map<%s,%s>", Dtype(t.KeyType()), Dtype(t.ItemType()))
	case arrow.STRUCT:
		fields := dt.(*arrow.StructType).Fields()
		parts := make([]string, len(fields))
		for i, field := range fields {
			parts[i] = fmt.Sprintf("%s:%s", field.Name, Dtype(field.Type))
		}
		return fmt.Sprintf("struct<%s>", strings.Join(parts, ","))
	default:
		return dt.String()
	}
}
