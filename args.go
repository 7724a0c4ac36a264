package valido

import "github.com/go-sif/valido/errors"

// Args are the arguments of a call to a wrapped function
type Args struct {
	Positional []interface{}
	Keyword    map[string]interface{}
}

// Positional is a convenience factory for Args with only positional arguments
func Positional(args ...interface{}) Args {
	return Args{Positional: args}
}

// Resolve locates the argument to validate. Without a name, it is the first positional argument
// and present is false if there are none. With a name, it is the keyword argument of that name,
// and a MissingKeywordError is returned if it was not supplied.
func Resolve(name string, args Args) (value interface{}, present bool, err error) {
	if name == "" {
		if len(args.Positional) == 0 {
			return nil, false, nil
		}
		return args.Positional[0], true, nil
	}
	value, present = args.Keyword[name]
	if !present {
		return nil, false, errors.MissingKeywordError{Name: name}
	}
	return value, true, nil
}
