package fixtures

import (
	"github.com/multiversx/mx-contract-fixtures-go/binding"
	"github.com/multiversx/mx-contract-fixtures-go/contract"
	"github.com/multiversx/mx-contract-fixtures-go/schema"
	"github.com/multiversx/mx-contract-fixtures-go/scval"
)

const helloSymbol = "Hello"

// Handlers returns the implementation of every fixture function
func Handlers() map[string]contract.Handler {
	handlers := map[string]contract.Handler{
		"void":             void,
		"empty_tuple":      emptyTuple,
		"val":              val,
		"u32_fail_on_even": u32FailOnEven,
		"strukt_hel":       struktHel,
		"not":              not,
		"multi_args":       multiArgs,
	}

	for _, decl := range Declarations().Functions {
		_, exists := handlers[decl.Name]
		if !exists {
			handlers[decl.Name] = echo
		}
	}

	return handlers
}

// NewRegistry creates the schema registry of the fixture contract
func NewRegistry() (*schema.Registry, error) {
	return schema.NewRegistry(Declarations())
}

func echo(args []scval.Value) (scval.Value, error) {
	return args[0], nil
}

func void(_ []scval.Value) (scval.Value, error) {
	return scval.VoidValue{}, nil
}

func emptyTuple(_ []scval.Value) (scval.Value, error) {
	return scval.TupleValue{Items: []scval.Value{}}, nil
}

func val(args []scval.Value) (scval.Value, error) {
	switch args[0].(scval.U32Value).Value {
	case 0:
		return scval.BoolValue{Value: true}, nil
	case 1:
		return scval.U32Value{Value: 123}, nil
	case 2:
		return scval.I32Value{Value: -123}, nil
	case 3:
		return scval.VoidValue{}, nil
	default:
		return args[1], nil
	}
}

func u32FailOnEven(args []scval.Value) (scval.Value, error) {
	n := args[0].(scval.U32Value)
	if n.Value%2 == 1 {
		return n, nil
	}

	return nil, contract.NewContractError(ErrorNumberMustBeOdd)
}

func struktHel(args []scval.Value) (scval.Value, error) {
	var strukt SimpleStruct
	err := binding.Bind(args[0], simpleStructType(), &strukt)
	if err != nil {
		return nil, err
	}

	return binding.FromNative(scval.ListOf(scval.TypeSymbol()), []string{helloSymbol, strukt.C})
}

func not(args []scval.Value) (scval.Value, error) {
	return scval.BoolValue{Value: !args[0].(scval.BoolValue).Value}, nil
}

func multiArgs(args []scval.Value) (scval.Value, error) {
	if args[1].(scval.BoolValue).Value {
		return args[0], nil
	}

	return scval.U32Value{Value: 0}, nil
}

func simpleStructType() *scval.TypeDescriptor {
	return scval.StructOf("SimpleStruct",
		scval.FieldDescriptor{Name: "a", Type: scval.TypeU32()},
		scval.FieldDescriptor{Name: "b", Type: scval.TypeBool()},
		scval.FieldDescriptor{Name: "c", Type: scval.TypeSymbol()},
	)
}
