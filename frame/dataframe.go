package frame

import (
	"fmt"
	"strings"

	"github.com/go-sif/valido"
	"github.com/go-sif/valido/errors"
)

// A DataFrame is an immutable, in-memory table of Rows respecting a Schema
type DataFrame struct {
	schema *Schema
	rows   [][]interface{}
}

// CreateDataFrame is a factory for DataFrames. Each row must match the width of the Schema,
// and each value must be accepted by the type of its column.
func CreateDataFrame(schema *Schema, rows ...[]interface{}) (*DataFrame, error) {
	schema = schema.Clone()
	types := schema.ColumnTypes()
	names := schema.ColumnNames()
	for i, row := range rows {
		if len(row) != len(types) {
			return nil, errors.IncompatibleRowError{Expected: len(types), Got: len(row)}
		}
		for j, v := range row {
			if !types[j].Accepts(v) {
				return nil, fmt.Errorf("Row %d: value %#v is not a valid %s for column %s", i, v, types[j].Dtype(), names[j])
			}
		}
	}
	stored := make([][]interface{}, len(rows))
	for i, row := range rows {
		stored[i] = make([]interface{}, len(row))
		copy(stored[i], row)
	}
	return &DataFrame{schema: schema, rows: stored}, nil
}

// ColumnNames returns the names of this DataFrame's columns, in order
func (df *DataFrame) ColumnNames() []string {
	return df.schema.ColumnNames()
}

// ColumnDtypes returns the names and dtypes of this DataFrame's columns, in order
func (df *DataFrame) ColumnDtypes() []valido.ColumnDtype {
	dtypes := make([]valido.ColumnDtype, 0, df.schema.NumColumns())
	df.schema.ForEachColumn(func(name string, col *Column) error {
		dtypes = append(dtypes, valido.ColumnDtype{Name: name, Dtype: col.Type().Dtype()})
		return nil
	})
	return dtypes
}

// Schema returns a copy of the Schema of this DataFrame
func (df *DataFrame) Schema() *Schema {
	return df.schema.Clone()
}

// NumRows returns the number of Rows in this DataFrame
func (df *DataFrame) NumRows() int {
	return len(df.rows)
}

// Row returns a copy of the Row at the given index
func (df *DataFrame) Row(idx int) []interface{} {
	row := make([]interface{}, len(df.rows[idx]))
	copy(row, df.rows[idx])
	return row
}

// RowString returns a string representation of the Row at the given index
func (df *DataFrame) RowString(idx int) string {
	var res strings.Builder
	fmt.Fprint(&res, "{")
	df.schema.ForEachColumn(func(name string, col *Column) error {
		v := df.rows[idx][col.Index()]
		val := "nil"
		if v != nil {
			val = col.Type().ToString(v)
		}
		fmt.Fprintf(&res, "\"%s\": %s,", name, val)
		return nil
	})
	fmt.Fprint(&res, "}")
	return res.String()
}

// Value returns the value of a column within the Row at the given index
func (df *DataFrame) Value(idx int, colName string) (interface{}, error) {
	col, err := df.schema.GetColumn(colName)
	if err != nil {
		return nil, err
	}
	return df.rows[idx][col.Index()], nil
}

// Select produces a new DataFrame containing only the given columns, in the given order
func (df *DataFrame) Select(colNames ...string) (*DataFrame, error) {
	schema := CreateSchema()
	indices := make([]int, len(colNames))
	for i, name := range colNames {
		col, err := df.schema.GetColumn(name)
		if err != nil {
			return nil, err
		}
		if _, err := schema.CreateColumn(name, col.Type()); err != nil {
			return nil, err
		}
		indices[i] = col.Index()
	}
	rows := make([][]interface{}, len(df.rows))
	for i, row := range df.rows {
		projected := make([]interface{}, len(indices))
		for j, idx := range indices {
			projected[j] = row[idx]
		}
		rows[i] = projected
	}
	return &DataFrame{schema: schema, rows: rows}, nil
}

// Rename produces a new DataFrame in which a column has a new name and the same position
func (df *DataFrame) Rename(oldName string, newName string) (*DataFrame, error) {
	schema, err := df.schema.Clone().RenameColumn(oldName, newName)
	if err != nil {
		return nil, err
	}
	// rows are never mutated, so they can be shared
	return &DataFrame{schema: schema, rows: df.rows}, nil
}

// Drop produces a new DataFrame without the given columns
func (df *DataFrame) Drop(colNames ...string) (*DataFrame, error) {
	schema := df.schema.Clone()
	drop := make(map[int]bool, len(colNames))
	for _, name := range colNames {
		col, err := df.schema.GetColumn(name)
		if err != nil {
			return nil, err
		}
		drop[col.Index()] = true
		schema.RemoveColumn(name)
	}
	rows := make([][]interface{}, len(df.rows))
	for i, row := range df.rows {
		kept := make([]interface{}, 0, schema.NumColumns())
		for j, v := range row {
			if !drop[j] {
				kept = append(kept, v)
			}
		}
		rows[i] = kept
	}
	return &DataFrame{schema: schema, rows: rows}, nil
}

// Union produces a new DataFrame containing the rows of this DataFrame followed by the rows
// of another. Both must have equal Schemas.
func (df *DataFrame) Union(other *DataFrame) (*DataFrame, error) {
	if err := df.schema.Equals(other.schema); err != nil {
		return nil, err
	}
	rows := make([][]interface{}, 0, len(df.rows)+len(other.rows))
	rows = append(rows, df.rows...)
	rows = append(rows, other.rows...)
	return &DataFrame{schema: df.schema.Clone(), rows: rows}, nil
}
