package frame

import (
	"fmt"
	"reflect"

	"github.com/go-sif/valido/errors"
)

// Column describes the position and type of a field in a Row
type Column struct {
	idx     int
	colType ColumnType
}

// Index returns the index of this Column within a Schema
func (c *Column) Index() int {
	return c.idx
}

// Type returns the ColumnType of this Column
func (c *Column) Type() ColumnType {
	return c.colType
}

// Schema is a mapping from column names to positions within a Row.
// It allows one to obtain positions by name, define new columns, remove columns, etc.
// Schemas are modified in place, and Clone()d when a DataFrame derives a new one.
type Schema struct {
	schema map[string]*Column
	names  []string
}

// CreateSchema is a factory for Schemas
func CreateSchema() *Schema {
	return &Schema{
		schema: make(map[string]*Column),
		names:  make([]string, 0),
	}
}

// Equals returns nil iff this and another Schema are equivalent
func (s *Schema) Equals(otherSchema *Schema) error {
	if s.NumColumns() != otherSchema.NumColumns() {
		return fmt.Errorf("Schemas have unequal numbers of columns")
	}
	for i, name := range s.names {
		otherCol, err := otherSchema.GetColumn(name)
		if err != nil {
			return err
		}
		if i != otherCol.Index() {
			return fmt.Errorf("Column %s indices do not match", name)
		}
		if reflect.TypeOf(s.schema[name].Type()) != reflect.TypeOf(otherCol.Type()) {
			return fmt.Errorf("Column %s types do not match", name)
		}
	}
	return nil
}

// Clone returns a copy of this Schema
func (s *Schema) Clone() *Schema {
	newSchema := make(map[string]*Column, len(s.schema))
	for k, v := range s.schema {
		newSchema[k] = &Column{v.idx, v.colType}
	}
	newNames := make([]string, len(s.names))
	copy(newNames, s.names)
	return &Schema{schema: newSchema, names: newNames}
}

// NumColumns returns the number of columns in this Schema
func (s *Schema) NumColumns() int {
	return len(s.names)
}

// GetColumn returns the Column with the given name
func (s *Schema) GetColumn(colName string) (*Column, error) {
	col, ok := s.schema[colName]
	if !ok {
		return nil, errors.MissingColumnInSchemaError{Name: colName}
	}
	return col, nil
}

// HasColumn returns true iff this schema contains a column with the given name
func (s *Schema) HasColumn(colName string) bool {
	_, ok := s.schema[colName]
	return ok
}

// CreateColumn defines a new column at the end of the Schema
func (s *Schema) CreateColumn(colName string, columnType ColumnType) (*Schema, error) {
	if s.HasColumn(colName) {
		return nil, fmt.Errorf("Schema already contains column with name %s", colName)
	}
	s.schema[colName] = &Column{len(s.names), columnType}
	s.names = append(s.names, colName)
	return s, nil
}

// RenameColumn renames a column within the Schema, retaining its position
func (s *Schema) RenameColumn(oldName string, newName string) (*Schema, error) {
	col, err := s.GetColumn(oldName)
	if err != nil {
		return nil, err
	}
	if s.HasColumn(newName) {
		return nil, fmt.Errorf("Schema already contains column with name %s", newName)
	}
	s.schema[newName] = col
	delete(s.schema, oldName)
	s.names[col.idx] = newName
	return s, nil
}

// RemoveColumn removes a column from the Schema, shifting the columns after it
func (s *Schema) RemoveColumn(colName string) (*Schema, bool) {
	col, ok := s.schema[colName]
	if !ok {
		return s, false
	}
	delete(s.schema, colName)
	s.names = append(s.names[:col.idx], s.names[col.idx+1:]...)
	for i := col.idx; i < len(s.names); i++ {
		s.schema[s.names[i]].idx = i
	}
	return s, true
}

// ColumnNames returns the names in the schema, in index order
func (s *Schema) ColumnNames() []string {
	names := make([]string, len(s.names))
	copy(names, s.names)
	return names
}

// ColumnTypes returns the types in the schema, in index order
func (s *Schema) ColumnTypes() []ColumnType {
	types := make([]ColumnType, len(s.names))
	for i, name := range s.names {
		types[i] = s.schema[name].Type()
	}
	return types
}

// ForEachColumn iterates over the columns in this Schema, in index order
func (s *Schema) ForEachColumn(fn func(name string, col *Column) error) error {
	for _, name := range s.names {
		if err := fn(name, s.schema[name]); err != nil {
			return err
		}
	}
	return nil
}
