package valido

import (
	"sort"

	"github.com/go-sif/valido/errors"
)

// Check verifies that df contains the given columns. Names only require presence, while Dtypes
// also require each column's dtype to match exactly. If strict is true, df may not contain
// any other columns. The first violation found is returned.
func Check(df DataFrame, columns Columns, strict bool) error {
	if columns == nil {
		columns = Names{}
	}
	actual := df.ColumnNames()
	present := make(map[string]bool, len(actual))
	for _, name := range actual {
		present[name] = true
	}
	switch cols := columns.(type) {
	case Names:
		for _, name := range cols {
			if !present[name] {
				return errors.MissingColumnError{Name: name, Columns: actual}
			}
		}
	case Dtypes:
		dtypes := make(map[string]string, len(actual))
		for _, cd := range df.ColumnDtypes() {
			dtypes[cd.Name] = cd.Dtype
		}
		for _, expected := range cols {
			if !present[expected.Name] {
				return errors.MissingColumnError{Name: expected.Name, Columns: actual}
			}
			if dtypes[expected.Name] != expected.Dtype {
				return errors.DtypeMismatchError{
					Name:     expected.Name,
					Actual:   dtypes[expected.Name],
					Expected: expected.Dtype,
				}
			}
		}
	}
	if strict && len(actual) != columns.Len() {
		return errors.UnexpectedColumnsError{Names: unexpectedColumns(actual, columns.columnNames())}
	}
	return nil
}

// unexpectedColumns returns the sorted set of names in actual which are not in specified
func unexpectedColumns(actual []string, specified []string) []string {
	expected := make(map[string]bool, len(specified))
	for _, name := range specified {
		expected[name] = true
	}
	seen := make(map[string]bool)
	surplus := make([]string, 0)
	for _, name := range actual {
		if !expected[name] && !seen[name] {
			seen[name] = true
			surplus = append(surplus, name)
		}
	}
	sort.Strings(surplus)
	return surplus
}
