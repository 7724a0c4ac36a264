package errors

import (
	"fmt"
	"strings"

	"github.com/go-sif/valido/internal/util"
)

// WrongParameterTypeError occurs when the value resolved for a wrapped function's input is not a DataFrame
type WrongParameterTypeError struct{ Got string }

// Error returns a textual representation of this WrongParameterTypeError
func (e WrongParameterTypeError) Error() string {
	return fmt.Sprintf("Wrong parameter type. Expected Spark DataFrame, got %s instead.", e.Got)
}

// WrongReturnTypeError occurs when a wrapped function returns something other than a DataFrame
type WrongReturnTypeError struct{ Got string }

// Error returns a textual representation of this WrongReturnTypeError
func (e WrongReturnTypeError) Error() string {
	return fmt.Sprintf("Wrong return type. Expected Spark DataFrame, got %s instead.", e.Got)
}

// MissingColumnError occurs when a required column is absent from a DataFrame.
// Columns holds the DataFrame's actual column names.
type MissingColumnError struct {
	Name    string
	Columns []string
}

// Error returns a textual representation of this MissingColumnError
func (e MissingColumnError) Error() string {
	return fmt.Sprintf("Column %s missing from DataFrame. Got columns: %s", e.Name, util.FormatList(e.Columns))
}

// DtypeMismatchError occurs when a required column is present with a different dtype
type DtypeMismatchError struct {
	Name     string
	Actual   string
	Expected string
}

// Error returns a textual representation of this DtypeMismatchError
func (e DtypeMismatchError) Error() string {
	return fmt.Sprintf("Column %s has wrong dtype. Was %s, expected %s", e.Name, e.Actual, e.Expected)
}

// UnexpectedColumnsError occurs when a strict contract meets a DataFrame with surplus columns.
// Names is sorted.
type UnexpectedColumnsError struct{ Names []string }

// Error returns a textual representation of this UnexpectedColumnsError
func (e UnexpectedColumnsError) Error() string {
	return fmt.Sprintf("DataFrame contained unexpected column(s): %s", strings.Join(e.Names, ", "))
}

// MissingKeywordError occurs when a named parameter was not supplied as a keyword argument
type MissingKeywordError struct{ Name string }

// Error returns a textual representation of this MissingKeywordError
func (e MissingKeywordError) Error() string {
	return fmt.Sprintf("Missing keyword argument %s", e.Name)
}

// IncompatibleRowError occurs when a Row's width does not match an expected Schema
type IncompatibleRowError struct {
	Expected int
	Got      int
}

// Error returns a textual representation of this IncompatibleRowError
func (e IncompatibleRowError) Error() string {
	return fmt.Sprintf("Row width %d is not compatible with Schema of %d columns", e.Got, e.Expected)
}

// MissingColumnInSchemaError occurs when an operation references a column a Schema does not define
type MissingColumnInSchemaError struct{ Name string }

// Error returns a textual representation of this MissingColumnInSchemaError
func (e MissingColumnInSchemaError) Error() string {
	return fmt.Sprintf("Schema does not contain column with name %s", e.Name)
}

// UnsupportedFormatError occurs when a file cannot be opened as a DataFrame or contract because of its extension
type UnsupportedFormatError struct{ Path string }

// Error returns a textual representation of this UnsupportedFormatError
func (e UnsupportedFormatError) Error() string {
	return fmt.Sprintf("Unsupported file format for %s", e.Path)
}

// InvalidContractError occurs when a contract definition is malformed
type InvalidContractError struct{ Reason string }

// Error returns a textual representation of this InvalidContractError
func (e InvalidContractError) Error() string {
	return fmt.Sprintf("Invalid contract: %s", e.Reason)
}
