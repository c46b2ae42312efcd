package schema

import (
	"strings"

	"github.com/multiversx/mx-contract-fixtures-go/scval"
)

const hiddenFunctionPrefix = "__"

// Parameter is a resolved function input
type Parameter struct {
	Name string
	Type *scval.TypeDescriptor
}

// FunctionSpec is a resolved function declaration
type FunctionSpec struct {
	Name   string
	Doc    string
	Inputs []Parameter
	Output *scval.TypeDescriptor
	// Errors is the error enum of a function returning Result<T, E>, nil otherwise
	Errors *scval.TypeDescriptor
}

// InputTypes returns the types of the inputs, in declaration order
func (f *FunctionSpec) InputTypes() []*scval.TypeDescriptor {
	types := make([]*scval.TypeDescriptor, len(f.Inputs))
	for i, input := range f.Inputs {
		types[i] = input.Type
	}

	return types
}

// IsHidden returns true for functions that are not listed
func (f *FunctionSpec) IsHidden() bool {
	return strings.HasPrefix(f.Name, hiddenFunctionPrefix)
}

// Signature renders the function as name(input: type, ...) -> output
func (f *FunctionSpec) Signature() string {
	inputs := make([]string, len(f.Inputs))
	for i, input := range f.Inputs {
		inputs[i] = input.Name + ": " + input.Type.String()
	}

	output := f.Output.String()
	if f.Errors != nil {
		output = "Result<" + output + ", " + f.Errors.String() + ">"
	}

	return f.Name + "(" + strings.Join(inputs, ", ") + ") -> " + output
}
