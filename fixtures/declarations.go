package fixtures

import "github.com/multiversx/mx-contract-fixtures-go/schema"

const (
	simpleStructDoc = "This is from the rust doc above the struct SimpleStruct"
	numberMustBeOdd = "Please provide an odd number"
)

// Declarations returns the interface of the fixture contract
func Declarations() schema.Declarations {
	return schema.Declarations{
		Structs: []schema.StructDecl{
			{
				Name: "SimpleStruct",
				Doc:  simpleStructDoc,
				Fields: []schema.FieldDecl{
					{Name: "a", Type: "u32"},
					{Name: "b", Type: "bool"},
					{Name: "c", Type: "Symbol"},
				},
			},
			{
				Name: "TupleStruct",
				Fields: []schema.FieldDecl{
					{Name: "0", Type: "SimpleStruct"},
					{Name: "1", Type: "SimpleEnum"},
				},
			},
			{
				Name:   "True",
				Doc:    simpleStructDoc,
				Fields: []schema.FieldDecl{{Name: "def", Type: "u32"}},
			},
		},
		Enums: []schema.EnumDecl{
			{
				Name: "SimpleEnum",
				Cases: []schema.EnumCaseDecl{
					{Name: "First", Value: 0},
					{Name: "Second", Value: 1},
					{Name: "Third", Value: 2},
				},
			},
			{
				Name: "RoyalCard",
				Cases: []schema.EnumCaseDecl{
					{Name: "Jack", Value: 11},
					{Name: "Queen", Value: 12},
					{Name: "King", Value: 13},
				},
			},
			{
				Name: "import",
				Cases: []schema.EnumCaseDecl{
					{Name: "not", Value: 11},
					{Name: "elif", Value: 12},
				},
			},
		},
		Unions: []schema.UnionDecl{
			{
				Name: "ComplexEnum",
				Cases: []schema.UnionCaseDecl{
					{Name: "Struct", Types: []string{"SimpleStruct"}},
					{Name: "Tuple", Types: []string{"TupleStruct"}},
					{Name: "Enum", Types: []string{"SimpleEnum"}},
					{Name: "Asset", Types: []string{"Address", "i128"}},
					{Name: "Void"},
				},
			},
			{
				Name: "None",
				Cases: []schema.UnionCaseDecl{
					{Name: "elif"},
					{Name: "nonlocal"},
					{Name: "not"},
				},
			},
		},
		ErrorEnums: []schema.EnumDecl{
			{
				Name:  "Error",
				Cases: []schema.EnumCaseDecl{{Name: "NumberMustBeOdd", Value: ErrorNumberMustBeOdd, Doc: numberMustBeOdd}},
			},
			{
				Name:  "False",
				Cases: []schema.EnumCaseDecl{{Name: "elif", Value: 1, Doc: numberMustBeOdd}},
			},
		},
		Functions: []schema.FunctionDecl{
			passThrough("hello", "hello", "Symbol"),
			passThrough("from", "finally", "Symbol"),
			{Name: "void"},
			{
				Name: "val",
				Inputs: []schema.FieldDecl{
					{Name: "a", Type: "u32"},
					{Name: "b", Type: "Val"},
				},
				Output: "Val",
			},
			{
				Name:   "u32_fail_on_even",
				Inputs: []schema.FieldDecl{{Name: "u32_", Type: "u32"}},
				Output: "Result<u32, Error>",
			},
			passThrough("u32", "u32", "u32"),
			passThrough("i32", "i32", "i32"),
			passThrough("u64", "u64", "u64"),
			passThrough("i64", "i64", "i64"),
			{
				Name:   "strukt_hel",
				Doc:    "Example contract method which takes a struct",
				Inputs: []schema.FieldDecl{{Name: "strukt", Type: "SimpleStruct"}},
				Output: "Vec<Symbol>",
			},
			passThrough("strukt", "strukt", "SimpleStruct"),
			passThrough("simple", "simple", "SimpleEnum"),
			passThrough("complex", "complex", "ComplexEnum"),
			passThrough("address", "address", "Address"),
			passThrough("bytes_", "bytes_", "Bytes"),
			passThrough("bytes_n", "bytes_n", "BytesN<9>"),
			passThrough("card", "card", "RoyalCard"),
			passThrough("boolean", "boolean", "bool"),
			{
				Name:   "not",
				Doc:    "Negates a boolean value",
				Inputs: []schema.FieldDecl{{Name: "boolean", Type: "bool"}},
				Output: "bool",
			},
			passThrough("i128", "i128", "i128"),
			passThrough("u128", "u128", "u128"),
			{
				Name: "multi_args",
				Inputs: []schema.FieldDecl{
					{Name: "a", Type: "u32"},
					{Name: "b", Type: "bool"},
				},
				Output: "u32",
			},
			passThrough("map", "map", "Map<u32, bool>"),
			passThrough("vec", "vec", "Vec<u32>"),
			passThrough("tuple", "tuple", "(Symbol, u32)"),
			{Name: "empty_tuple", Output: "()"},
			{
				Name:   "option",
				Doc:    "Example of an optional argument",
				Inputs: []schema.FieldDecl{{Name: "option", Type: "Option<u32>"}},
				Output: "Option<u32>",
			},
			passThrough("u256", "u256", "U256"),
			passThrough("i256", "i256", "I256"),
			passThrough("string", "string", "String"),
			passThrough("tuple_strukt", "tuple_strukt", "TupleStruct"),
			passThrough("tuple_strukt_nested", "tuple_strukt", "(SimpleStruct, SimpleEnum)"),
			passThrough("timepoint", "timepoint", "Timepoint"),
			passThrough("duration", "duration", "Duration"),
		},
	}
}

func passThrough(name string, input string, typ string) schema.FunctionDecl {
	return schema.FunctionDecl{
		Name:   name,
		Inputs: []schema.FieldDecl{{Name: input, Type: typ}},
		Output: typ,
	}
}
