// Package valido contains the core components of Valido, a runtime validator for functions which
// consume or produce DataFrames. Functions are wrapped with In, Out and Log to declare and check the
// columns (and optionally dtypes) of their inputs and outputs, so that the wrapping documents the
// function and the documentation is verified on every call.
//
// A DataFrame is anything which can report its column names and dtypes. The frame and arrowframe
// packages adapt concrete engines to this interface.
package valido
