package binding

import "errors"

// ErrNilTarget signals that a nil target has been provided for binding
var ErrNilTarget = errors.New("nil binding target")

// ErrUnknownCase signals that a case name is not declared by the enum or union
var ErrUnknownCase = errors.New("unknown case")
