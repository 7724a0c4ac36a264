package valido

import (
	"fmt"
	"io"
	"os"

	"github.com/go-sif/valido/internal/util"
)

// LogOptions are options for Log
type LogOptions struct {
	Name          string    // name of the keyword argument holding the input DataFrame. If empty, the first positional argument is used.
	IncludeDtypes bool      // iff true, log the dtypes of each column as well
	FuncName      string    // name of the function in log lines. Defaults to the Go name of the wrapped Func.
	Writer        io.Writer // destination of log lines. Defaults to os.Stdout.
}

// Describe produces a description of the shape of a DataFrame, such as
// columns: ['Brand', 'Price'] with dtypes ['string', 'int']
func Describe(df DataFrame, includeDtypes bool) string {
	result := fmt.Sprintf("columns: %s", util.FormatList(df.ColumnNames()))
	if includeDtypes {
		cds := df.ColumnDtypes()
		dtypes := make([]string, len(cds))
		for i, cd := range cds {
			dtypes[i] = cd.Dtype
		}
		result += fmt.Sprintf(" with dtypes %s", util.FormatList(dtypes))
	}
	return result
}

// Log writes the shape of a Func's DataFrame input and result, one line each.
// It never fails: inputs or results which are not DataFrames are simply not logged.
func Log(opts *LogOptions) Decorator {
	if opts == nil {
		opts = &LogOptions{}
	}
	name := opts.Name
	includeDtypes := opts.IncludeDtypes
	var w io.Writer = os.Stdout
	if opts.Writer != nil {
		w = opts.Writer
	}
	return func(fn Func) Func {
		funcName := opts.FuncName
		if funcName == "" {
			funcName = util.FuncName(fn)
		}
		return func(args Args) (interface{}, error) {
			if value, present, err := Resolve(name, args); err == nil && present {
				if df, ok := asDataFrame(value); ok {
					fmt.Fprintf(w, "Function %s parameters contained a DataFrame: %s\n", funcName, Describe(df, includeDtypes))
				}
			}
			result, err := fn(args)
			if df, ok := asDataFrame(result); ok {
				fmt.Fprintf(w, "Function %s returned a DataFrame: %s\n", funcName, Describe(df, includeDtypes))
			}
			return result, err
		}
	}
}
