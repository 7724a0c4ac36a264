package valido

import "sort"

// Columns describes the columns a DataFrame is expected to contain. It is either a list of Names,
// or a list of Dtypes which also constrains the type of each column.
type Columns interface {
	Len() int // Len returns the number of specified columns
	columnNames() []string
}

// Names is an ordered list of required column names
type Names []string

// Len returns the number of required columns
func (n Names) Len() int {
	return len(n)
}

func (n Names) columnNames() []string {
	return n
}

// Dtypes is an ordered list of required columns and their expected dtypes
type Dtypes []ColumnDtype

// DtypeMap builds Dtypes from a mapping of column name to expected dtype.
// Entries are ordered by column name so that checking is deterministic.
func DtypeMap(m map[string]string) Dtypes {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	dtypes := make(Dtypes, len(names))
	for i, name := range names {
		dtypes[i] = ColumnDtype{Name: name, Dtype: m[name]}
	}
	return dtypes
}

// Len returns the number of required columns
func (d Dtypes) Len() int {
	return len(d)
}

func (d Dtypes) columnNames() []string {
	names := make([]string, len(d))
	for i, cd := range d {
		names[i] = cd.Name
	}
	return names
}

// Contract pairs a column specification with a strictness flag. A strict Contract rejects
// DataFrames with columns beyond those specified.
type Contract struct {
	Columns Columns
	Strict  bool
}

// IsEmpty returns true iff this Contract specifies no columns, and therefore places no constraint
func (c Contract) IsEmpty() bool {
	return c.Columns == nil || c.Columns.Len() == 0
}

// Check verifies df against this Contract. An empty Contract always passes, even when strict.
func (c Contract) Check(df DataFrame) error {
	if c.IsEmpty() {
		return nil
	}
	return Check(df, c.Columns, c.Strict)
}
