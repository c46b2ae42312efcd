package contract

import (
	"github.com/multiversx/mx-contract-fixtures-go/schema"
	"github.com/multiversx/mx-contract-fixtures-go/scval"
)

// Handler implements a contract function over already decoded arguments
type Handler func(args []scval.Value) (scval.Value, error)

// SchemaRegistry resolves the declared functions
type SchemaRegistry interface {
	Function(name string) (*schema.FunctionSpec, error)
	Functions() []*schema.FunctionSpec
	IsInterfaceNil() bool
}

// ArgumentsSerializer translates argument lists to and from hex parts joined by "@"
type ArgumentsSerializer interface {
	Serialize(values []scval.Value, types []*scval.TypeDescriptor) (string, error)
	Deserialize(data string, types []*scval.TypeDescriptor) ([]scval.Value, error)
	IsInterfaceNil() bool
}

// MetricsHandler records the outcome of every invocation
type MetricsHandler interface {
	AddInvocation(function string, outcome string)
	IsInterfaceNil() bool
}

// Dispatcher invokes declared functions over encoded arguments
type Dispatcher interface {
	Invoke(function string, rawArgs [][]byte) ([]byte, error)
	InvokeCallData(callData string) (string, error)
	Functions() []*schema.FunctionSpec
	IsInterfaceNil() bool
}
