package valido

import (
	"github.com/go-sif/valido/errors"
	"github.com/go-sif/valido/internal/util"
)

// Func - A generic function which may be wrapped with contracts. It receives its arguments as Args
// and returns a result, which is expected to be a DataFrame when wrapped by Out.
type Func func(args Args) (interface{}, error)

// Decorator - A function transformer which injects checks before and/or after a Func, without altering its arguments or result
type Decorator func(fn Func) Func

// InOptions are options for In
type InOptions struct {
	Name    string  // name of the keyword argument holding the DataFrame. If empty, the first positional argument is used.
	Columns Columns // expected columns. If nil or empty, only the type of the argument is checked.
	Strict  bool    // iff true, the DataFrame may not contain columns beyond Columns
}

// OutOptions are options for Out
type OutOptions struct {
	Columns Columns // expected columns. If nil or empty, only the type of the result is checked.
	Strict  bool    // iff true, the DataFrame may not contain columns beyond Columns
}

// In declares a DataFrame input of a Func. Before each call, the input is resolved with Resolve,
// required to be a DataFrame, and checked against the declared columns.
func In(opts *InOptions) Decorator {
	if opts == nil {
		opts = &InOptions{}
	}
	name := opts.Name
	contract := Contract{Columns: opts.Columns, Strict: opts.Strict}
	return func(fn Func) Func {
		return func(args Args) (interface{}, error) {
			value, _, err := Resolve(name, args)
			if err != nil {
				return nil, err
			}
			df, ok := asDataFrame(value)
			if !ok {
				return nil, errors.WrongParameterTypeError{Got: util.TypeName(value)}
			}
			if err := contract.Check(df); err != nil {
				return nil, err
			}
			return fn(args)
		}
	}
}

// Out declares the DataFrame result of a Func. After each call, the result is required to be a
// DataFrame and checked against the declared columns. Errors from the Func itself are returned as-is.
func Out(opts *OutOptions) Decorator {
	if opts == nil {
		opts = &OutOptions{}
	}
	contract := Contract{Columns: opts.Columns, Strict: opts.Strict}
	return func(fn Func) Func {
		return func(args Args) (interface{}, error) {
			result, err := fn(args)
			if err != nil {
				return result, err
			}
			df, ok := asDataFrame(result)
			if !ok {
				return nil, errors.WrongReturnTypeError{Got: util.TypeName(result)}
			}
			if err := contract.Check(df); err != nil {
				return nil, err
			}
			return result, nil
		}
	}
}

// Chain composes Decorators in declaration order: Chain(a, b)(fn) is a(b(fn)).
// The checks of the first Decorator run first on entry, and last on exit.
func Chain(ds ...Decorator) Decorator {
	return func(fn Func) Func {
		for i := len(ds) - 1; i >= 0; i-- {
			fn = ds[i](fn)
		}
		return fn
	}
}
