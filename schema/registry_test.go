package schema

import (
	"testing"

	"github.com/multiversx/mx-contract-fixtures-go/scval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTestRegistry(t *testing.T) *Registry {
	declarations, err := LoadDeclarations("testdata/declarations.toml")
	require.Nil(t, err)

	registry, err := NewRegistry(declarations)
	require.Nil(t, err)

	return registry
}

func TestLoadDeclarations(t *testing.T) {
	t.Parallel()

	t.Run("missing file should error", func(t *testing.T) {
		t.Parallel()

		_, err := LoadDeclarations("testdata/missing.toml")
		require.NotNil(t, err)
	})
	t.Run("should work", func(t *testing.T) {
		t.Parallel()

		declarations, err := LoadDeclarations("testdata/declarations.toml")
		require.Nil(t, err)

		require.Len(t, declarations.Structs, 2)
		require.Len(t, declarations.Enums, 2)
		require.Len(t, declarations.Unions, 1)
		require.Len(t, declarations.ErrorEnums, 1)
		require.Len(t, declarations.Functions, 5)
		assert.Equal(t, "This is from the rust doc above the struct Test", declarations.Structs[0].Doc)
		assert.Equal(t, uint32(13), declarations.Enums[1].Cases[2].Value)
		assert.Equal(t, []string{"Address", "i128"}, declarations.Unions[0].Cases[3].Types)
		assert.Empty(t, declarations.Unions[0].Cases[4].Types)
	})
}

func TestNewRegistry(t *testing.T) {
	t.Parallel()

	t.Run("should work", func(t *testing.T) {
		t.Parallel()

		registry := loadTestRegistry(t)
		require.False(t, registry.IsInterfaceNil())
		require.Equal(t, []string{"SimpleStruct", "TupleStruct", "SimpleEnum", "RoyalCard", "ComplexEnum", "Error"}, registry.TypeNames())

		complexEnum, err := registry.Type("ComplexEnum")
		require.Nil(t, err)
		require.Equal(t, scval.KindUnion, complexEnum.Kind)
		require.Len(t, complexEnum.Variants, 5)
		require.Equal(t, []*scval.TypeDescriptor{scval.TypeAddress(), scval.TypeI128()}, complexEnum.Variants[3].Items)

		tupleStruct, err := registry.Type("TupleStruct")
		require.Nil(t, err)
		simpleStruct, err := registry.Type("SimpleStruct")
		require.Nil(t, err)
		require.Same(t, simpleStruct, tupleStruct.Fields[0].Type)
		require.True(t, IsTupleStruct(tupleStruct))
		require.False(t, IsTupleStruct(simpleStruct))

		require.True(t, registry.IsErrorEnum("Error"))
		require.False(t, registry.IsErrorEnum("SimpleEnum"))
	})
	t.Run("duplicate type names should error", func(t *testing.T) {
		t.Parallel()

		_, err := NewRegistry(Declarations{
			Structs: []StructDecl{{Name: "A"}},
			Enums:   []EnumDecl{{Name: "A"}},
		})
		require.ErrorIs(t, err, ErrDuplicateDeclaration)
	})
	t.Run("builtin type names should error", func(t *testing.T) {
		t.Parallel()

		_, err := NewRegistry(Declarations{Structs: []StructDecl{{Name: "u32"}}})
		require.ErrorIs(t, err, ErrDuplicateDeclaration)

		_, err = NewRegistry(Declarations{Structs: []StructDecl{{Name: "Vec"}}})
		require.ErrorIs(t, err, ErrDuplicateDeclaration)
	})
	t.Run("reserved words of other languages are valid names", func(t *testing.T) {
		t.Parallel()

		registry, err := NewRegistry(Declarations{
			Structs:    []StructDecl{{Name: "True", Fields: []FieldDecl{{Name: "def", Type: "u32"}}}},
			ErrorEnums: []EnumDecl{{Name: "False", Cases: []EnumCaseDecl{{Name: "elif", Value: 1}}}},
			Unions:     []UnionDecl{{Name: "None", Cases: []UnionCaseDecl{{Name: "elif"}, {Name: "nonlocal"}, {Name: "not"}}}},
			Enums:      []EnumDecl{{Name: "import", Cases: []EnumCaseDecl{{Name: "not", Value: 11}, {Name: "elif", Value: 12}}}},
			Functions:  []FunctionDecl{{Name: "not", Inputs: []FieldDecl{{Name: "boolean", Type: "bool"}}, Output: "bool"}},
		})
		require.Nil(t, err)

		typ, err := registry.Type("import")
		require.Nil(t, err)
		enumCase, ok := typ.CaseByName("elif")
		require.True(t, ok)
		require.Equal(t, uint32(12), enumCase.Value)
	})
	t.Run("duplicate enum values should error", func(t *testing.T) {
		t.Parallel()

		_, err := NewRegistry(Declarations{Enums: []EnumDecl{{Name: "E", Cases: []EnumCaseDecl{{Name: "A", Value: 1}, {Name: "B", Value: 1}}}}})
		require.ErrorIs(t, err, ErrDuplicateDeclaration)
	})
	t.Run("duplicate fields should error", func(t *testing.T) {
		t.Parallel()

		_, err := NewRegistry(Declarations{Structs: []StructDecl{{Name: "S", Fields: []FieldDecl{{Name: "a", Type: "u32"}, {Name: "a", Type: "bool"}}}}})
		require.ErrorIs(t, err, ErrDuplicateDeclaration)
	})
	t.Run("unknown types should error", func(t *testing.T) {
		t.Parallel()

		_, err := NewRegistry(Declarations{Structs: []StructDecl{{Name: "S", Fields: []FieldDecl{{Name: "a", Type: "Vec<Missing>"}}}}})
		require.ErrorIs(t, err, ErrUnknownType)
	})
	t.Run("recursive types should error", func(t *testing.T) {
		t.Parallel()

		_, err := NewRegistry(Declarations{
			Structs: []StructDecl{{Name: "Node", Fields: []FieldDecl{{Name: "next", Type: "Option<Wrapper>"}}}},
			Unions:  []UnionDecl{{Name: "Wrapper", Cases: []UnionCaseDecl{{Name: "Inner", Types: []string{"Node"}}}}},
		})
		require.ErrorIs(t, err, ErrRecursiveType)
	})
	t.Run("result outside function outputs should error", func(t *testing.T) {
		t.Parallel()

		_, err := NewRegistry(Declarations{
			ErrorEnums: []EnumDecl{{Name: "Error", Cases: []EnumCaseDecl{{Name: "A", Value: 1}}}},
			Structs:    []StructDecl{{Name: "S", Fields: []FieldDecl{{Name: "a", Type: "Result<u32, Error>"}}}},
		})
		require.ErrorIs(t, err, ErrInvalidTypeExpression)
	})
	t.Run("result with a plain enum should error", func(t *testing.T) {
		t.Parallel()

		_, err := NewRegistry(Declarations{
			Enums:     []EnumDecl{{Name: "E", Cases: []EnumCaseDecl{{Name: "A", Value: 1}}}},
			Functions: []FunctionDecl{{Name: "f", Output: "Result<u32, E>"}},
		})
		require.ErrorIs(t, err, ErrInvalidTypeExpression)
	})
	t.Run("duplicate functions should error", func(t *testing.T) {
		t.Parallel()

		_, err := NewRegistry(Declarations{Functions: []FunctionDecl{{Name: "f"}, {Name: "f"}}})
		require.ErrorIs(t, err, ErrDuplicateDeclaration)
	})
}

func TestRegistry_Functions(t *testing.T) {
	t.Parallel()

	registry := loadTestRegistry(t)

	t.Run("hidden functions should not be listed", func(t *testing.T) {
		t.Parallel()

		names := make([]string, 0)
		for _, spec := range registry.Functions() {
			names = append(names, spec.Name)
		}
		require.Equal(t, []string{"hello", "map", "tuple_strukt_nested", "u32_fail_on_even"}, names)

		hidden, err := registry.Function("__constructor")
		require.Nil(t, err)
		require.True(t, hidden.IsHidden())
		require.Equal(t, scval.TypeVoid(), hidden.Output)
	})
	t.Run("unknown function should error", func(t *testing.T) {
		t.Parallel()

		spec, err := registry.Function("missing")
		require.ErrorIs(t, err, ErrUnknownFunction)
		require.Nil(t, spec)
	})
	t.Run("result outputs should carry the error enum", func(t *testing.T) {
		t.Parallel()

		spec, err := registry.Function("u32_fail_on_even")
		require.Nil(t, err)
		require.Equal(t, scval.TypeU32(), spec.Output)
		require.NotNil(t, spec.Errors)
		require.Equal(t, "Error", spec.Errors.Name)
		require.Equal(t, "u32_fail_on_even(u32_: u32) -> Result<u32, Error>", spec.Signature())
	})
	t.Run("signatures should render type expressions", func(t *testing.T) {
		t.Parallel()

		spec, err := registry.Function("tuple_strukt_nested")
		require.Nil(t, err)
		require.Equal(t, "tuple_strukt_nested(tuple_strukt: (SimpleStruct, SimpleEnum)) -> (SimpleStruct, SimpleEnum)", spec.Signature())
		require.Equal(t, spec.Output, spec.InputTypes()[0])
	})
}

func TestRegistry_Resolve(t *testing.T) {
	t.Parallel()

	registry := loadTestRegistry(t)

	typ, err := registry.Resolve("Map<Symbol, Vec<RoyalCard>>")
	require.Nil(t, err)
	require.Equal(t, "Map<Symbol, Vec<RoyalCard>>", typ.String())
	require.Equal(t, scval.KindEnum, typ.Val.Elem.Kind)

	typ, err = registry.Resolve("BytesN<32>")
	require.Nil(t, err)
	require.Equal(t, uint32(32), typ.Length)

	_, err = registry.Resolve("Missing")
	require.ErrorIs(t, err, ErrUnknownType)

	_, err = registry.Resolve("BytesN<x>")
	require.ErrorIs(t, err, ErrInvalidTypeExpression)

	_, err = registry.Resolve("u32<bool>")
	require.ErrorIs(t, err, ErrInvalidTypeExpression)

	_, err = registry.Resolve("Option")
	require.ErrorIs(t, err, ErrInvalidTypeExpression)
}
