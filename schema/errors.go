package schema

import "errors"

// ErrDuplicateDeclaration signals that a name is declared more than once
var ErrDuplicateDeclaration = errors.New("duplicate declaration")

// ErrUnknownType signals that a type expression references an undeclared type
var ErrUnknownType = errors.New("unknown type")

// ErrRecursiveType signals that a user-defined type contains itself
var ErrRecursiveType = errors.New("recursive type")

// ErrInvalidTypeExpression signals a malformed type expression
var ErrInvalidTypeExpression = errors.New("invalid type expression")

// ErrUnknownFunction signals that the requested function is not declared
var ErrUnknownFunction = errors.New("unknown function")

// ErrEmptyName signals that a declaration has an empty name
var ErrEmptyName = errors.New("empty name")
