package contract

import "errors"

// ErrNilRegistry signals that a nil schema registry has been provided
var ErrNilRegistry = errors.New("nil schema registry")

// ErrNilCodec signals that a nil values codec has been provided
var ErrNilCodec = errors.New("nil values codec")

// ErrNilMetricsHandler signals that a nil metrics handler has been provided
var ErrNilMetricsHandler = errors.New("nil metrics handler")

// ErrMissingHandler signals that a declared function has no handler
var ErrMissingHandler = errors.New("missing handler")

// ErrUndeclaredHandler signals that a handler has been provided for a function that is not declared
var ErrUndeclaredHandler = errors.New("handler for an undeclared function")

// ErrUnknownFunction signals that the invoked function is not declared
var ErrUnknownFunction = errors.New("unknown function")

// ErrWrongNumberOfArguments signals that the number of arguments differs from the number of declared inputs
var ErrWrongNumberOfArguments = errors.New("wrong number of arguments")

// ErrUndeclaredContractError signals that a handler failed with a contract error its function does not declare
var ErrUndeclaredContractError = errors.New("undeclared contract error")

// ErrInvalidResult signals that a handler returned a value not matching the declared output
var ErrInvalidResult = errors.New("invalid result")

// ErrEmptyCallData signals that the call data holds no function name
var ErrEmptyCallData = errors.New("empty call data")
