package schema

import (
	"fmt"
	"sort"
	"strconv"

	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/multiversx/mx-contract-fixtures-go/scval"
)

var log = logger.GetOrCreate("schema")

const (
	optionTypeName = "Option"
	vecTypeName    = "Vec"
	mapTypeName    = "Map"
	bytesNTypeName = "BytesN"
	resultTypeName = "Result"
)

var builtinTypes = map[string]*scval.TypeDescriptor{
	"void":      scval.TypeVoid(),
	"bool":      scval.TypeBool(),
	"u32":       scval.TypeU32(),
	"i32":       scval.TypeI32(),
	"u64":       scval.TypeU64(),
	"i64":       scval.TypeI64(),
	"u128":      scval.TypeU128(),
	"i128":      scval.TypeI128(),
	"u256":      scval.TypeU256(),
	"U256":      scval.TypeU256(),
	"i256":      scval.TypeI256(),
	"I256":      scval.TypeI256(),
	"Timepoint": scval.TypeTimepoint(),
	"Duration":  scval.TypeDuration(),
	"Symbol":    scval.TypeSymbol(),
	"String":    scval.TypeString(),
	"Bytes":     scval.TypeBytes(),
	"Address":   scval.TypeAddress(),
	"Val":       scval.TypeAny(),
}

var genericTypes = map[string]bool{
	optionTypeName: true,
	vecTypeName:    true,
	mapTypeName:    true,
	bytesNTypeName: true,
	resultTypeName: true,
}

// Registry maps the declared type and function names to their resolved descriptors.
// It is immutable once created and may be shared between goroutines.
type Registry struct {
	types         map[string]*scval.TypeDescriptor
	typeNames     []string
	errorEnums    map[string]bool
	functions     map[string]*FunctionSpec
	functionNames []string
}

// NewRegistry resolves all the declarations. Any unresolvable reference fails the whole registry.
func NewRegistry(declarations Declarations) (*Registry, error) {
	b, err := newRegistryBuilder(declarations)
	if err != nil {
		return nil, err
	}

	for _, name := range b.declarationOrder {
		_, err = b.resolveNamed(name)
		if err != nil {
			return nil, err
		}
	}

	r := &Registry{
		types:         b.resolved,
		typeNames:     b.declarationOrder,
		errorEnums:    b.errorEnums,
		functions:     make(map[string]*FunctionSpec, len(declarations.Functions)),
		functionNames: make([]string, 0, len(declarations.Functions)),
	}

	for _, decl := range declarations.Functions {
		if len(decl.Name) == 0 {
			return nil, fmt.Errorf("%w for a function", ErrEmptyName)
		}
		if _, exists := r.functions[decl.Name]; exists {
			return nil, fmt.Errorf("%w: function %s", ErrDuplicateDeclaration, decl.Name)
		}

		spec, errResolve := b.resolveFunction(decl)
		if errResolve != nil {
			return nil, fmt.Errorf("function %s: %w", decl.Name, errResolve)
		}

		r.functions[decl.Name] = spec
		r.functionNames = append(r.functionNames, decl.Name)
	}

	log.Debug("schema registry created", "types", len(r.typeNames), "functions", len(r.functionNames))

	return r, nil
}

// Type returns the descriptor of a declared type
func (r *Registry) Type(name string) (*scval.TypeDescriptor, error) {
	typ, ok := r.types[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, name)
	}

	return typ, nil
}

// TypeNames returns the names of the declared types, in declaration order
func (r *Registry) TypeNames() []string {
	names := make([]string, len(r.typeNames))
	copy(names, r.typeNames)

	return names
}

// IsErrorEnum returns true if the name belongs to a declared error enum
func (r *Registry) IsErrorEnum(name string) bool {
	return r.errorEnums[name]
}

// Resolve parses a type expression against the declared types
func (r *Registry) Resolve(expression string) (*scval.TypeDescriptor, error) {
	expr, err := parseTypeExpression(expression)
	if err != nil {
		return nil, err
	}

	b := &registryBuilder{resolved: r.types}

	return b.resolveExpression(expr)
}

// Function returns the declared function with the provided name, hidden ones included
func (r *Registry) Function(name string) (*FunctionSpec, error) {
	spec, ok := r.functions[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFunction, name)
	}

	return spec, nil
}

// Functions returns the functions that are not hidden, sorted by name
func (r *Registry) Functions() []*FunctionSpec {
	specs := make([]*FunctionSpec, 0, len(r.functionNames))
	for _, name := range r.functionNames {
		spec := r.functions[name]
		if spec.IsHidden() {
			continue
		}

		specs = append(specs, spec)
	}

	sort.Slice(specs, func(i, j int) bool {
		return specs[i].Name < specs[j].Name
	})

	return specs
}

// IsInterfaceNil returns true if there is no value under the interface
func (r *Registry) IsInterfaceNil() bool {
	return r == nil
}

// IsTupleStruct returns true for structs whose field names are all decimal digits
func IsTupleStruct(typ *scval.TypeDescriptor) bool {
	if typ == nil || typ.Kind != scval.KindStruct || len(typ.Fields) == 0 {
		return false
	}

	for _, field := range typ.Fields {
		if !isNumeric(field.Name) {
			return false
		}
	}

	return true
}

func isNumeric(name string) bool {
	if len(name) == 0 {
		return false
	}

	for i := 0; i < len(name); i++ {
		if name[i] < '0' || name[i] > '9' {
			return false
		}
	}

	return true
}

type registryBuilder struct {
	structs          map[string]StructDecl
	enums            map[string]EnumDecl
	unions           map[string]UnionDecl
	errorEnums       map[string]bool
	declarationOrder []string
	resolved         map[string]*scval.TypeDescriptor
	resolving        map[string]bool
}

func newRegistryBuilder(declarations Declarations) (*registryBuilder, error) {
	b := &registryBuilder{
		structs:    make(map[string]StructDecl),
		enums:      make(map[string]EnumDecl),
		unions:     make(map[string]UnionDecl),
		errorEnums: make(map[string]bool),
		resolved:   make(map[string]*scval.TypeDescriptor),
		resolving:  make(map[string]bool),
	}

	for _, decl := range declarations.Structs {
		err := b.declare(decl.Name)
		if err != nil {
			return nil, err
		}
		b.structs[decl.Name] = decl
	}
	for _, decl := range declarations.Enums {
		err := b.declare(decl.Name)
		if err != nil {
			return nil, err
		}
		b.enums[decl.Name] = decl
	}
	for _, decl := range declarations.Unions {
		err := b.declare(decl.Name)
		if err != nil {
			return nil, err
		}
		b.unions[decl.Name] = decl
	}
	for _, decl := range declarations.ErrorEnums {
		err := b.declare(decl.Name)
		if err != nil {
			return nil, err
		}
		b.enums[decl.Name] = decl
		b.errorEnums[decl.Name] = true
	}

	return b, nil
}

func (b *registryBuilder) declare(name string) error {
	if len(name) == 0 {
		return fmt.Errorf("%w for a type", ErrEmptyName)
	}
	if builtinTypes[name] != nil || genericTypes[name] {
		return fmt.Errorf("%w: %s is a builtin type", ErrDuplicateDeclaration, name)
	}
	for _, existing := range b.declarationOrder {
		if existing == name {
			return fmt.Errorf("%w: type %s", ErrDuplicateDeclaration, name)
		}
	}

	b.declarationOrder = append(b.declarationOrder, name)

	return nil
}

func (b *registryBuilder) resolveNamed(name string) (*scval.TypeDescriptor, error) {
	typ, ok := b.resolved[name]
	if ok {
		return typ, nil
	}

	structDecl, isStruct := b.structs[name]
	enumDecl, isEnum := b.enums[name]
	unionDecl, isUnion := b.unions[name]
	if !isStruct && !isEnum && !isUnion {
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, name)
	}
	if b.resolving[name] {
		return nil, fmt.Errorf("%w: %s", ErrRecursiveType, name)
	}

	b.resolving[name] = true
	defer delete(b.resolving, name)

	var err error
	switch {
	case isStruct:
		typ, err = b.resolveStruct(structDecl)
	case isEnum:
		typ, err = b.resolveEnum(enumDecl)
	default:
		typ, err = b.resolveUnion(unionDecl)
	}
	if err != nil {
		return nil, err
	}

	b.resolved[name] = typ

	return typ, nil
}

func (b *registryBuilder) resolveStruct(decl StructDecl) (*scval.TypeDescriptor, error) {
	seen := make(map[string]bool, len(decl.Fields))
	fields := make([]scval.FieldDescriptor, 0, len(decl.Fields))
	for _, field := range decl.Fields {
		if seen[field.Name] {
			return nil, fmt.Errorf("%w: field %s.%s", ErrDuplicateDeclaration, decl.Name, field.Name)
		}
		seen[field.Name] = true

		typ, err := b.resolveString(field.Type)
		if err != nil {
			return nil, fmt.Errorf("field %s.%s: %w", decl.Name, field.Name, err)
		}

		fields = append(fields, scval.FieldDescriptor{Name: field.Name, Type: typ})
	}

	return scval.StructOf(decl.Name, fields...), nil
}

func (b *registryBuilder) resolveEnum(decl EnumDecl) (*scval.TypeDescriptor, error) {
	names := make(map[string]bool, len(decl.Cases))
	values := make(map[uint32]bool, len(decl.Cases))
	cases := make([]scval.EnumCase, 0, len(decl.Cases))
	for _, enumCase := range decl.Cases {
		if names[enumCase.Name] {
			return nil, fmt.Errorf("%w: case %s::%s", ErrDuplicateDeclaration, decl.Name, enumCase.Name)
		}
		if values[enumCase.Value] {
			return nil, fmt.Errorf("%w: value %d of %s", ErrDuplicateDeclaration, enumCase.Value, decl.Name)
		}
		names[enumCase.Name] = true
		values[enumCase.Value] = true

		cases = append(cases, scval.EnumCase{Name: enumCase.Name, Value: enumCase.Value})
	}

	return scval.EnumOf(decl.Name, cases...), nil
}

func (b *registryBuilder) resolveUnion(decl UnionDecl) (*scval.TypeDescriptor, error) {
	names := make(map[string]bool, len(decl.Cases))
	variants := make([]scval.VariantDescriptor, 0, len(decl.Cases))
	for _, unionCase := range decl.Cases {
		if names[unionCase.Name] {
			return nil, fmt.Errorf("%w: case %s::%s", ErrDuplicateDeclaration, decl.Name, unionCase.Name)
		}
		names[unionCase.Name] = true

		items := make([]*scval.TypeDescriptor, 0, len(unionCase.Types))
		for _, expression := range unionCase.Types {
			typ, err := b.resolveString(expression)
			if err != nil {
				return nil, fmt.Errorf("case %s::%s: %w", decl.Name, unionCase.Name, err)
			}

			items = append(items, typ)
		}

		variants = append(variants, scval.VariantDescriptor{Name: unionCase.Name, Items: items})
	}

	return scval.UnionOf(decl.Name, variants...), nil
}

func (b *registryBuilder) resolveFunction(decl FunctionDecl) (*FunctionSpec, error) {
	spec := &FunctionSpec{
		Name:   decl.Name,
		Doc:    decl.Doc,
		Inputs: make([]Parameter, 0, len(decl.Inputs)),
		Output: scval.TypeVoid(),
	}

	seen := make(map[string]bool, len(decl.Inputs))
	for _, input := range decl.Inputs {
		if seen[input.Name] {
			return nil, fmt.Errorf("%w: input %s", ErrDuplicateDeclaration, input.Name)
		}
		seen[input.Name] = true

		typ, err := b.resolveString(input.Type)
		if err != nil {
			return nil, fmt.Errorf("input %s: %w", input.Name, err)
		}

		spec.Inputs = append(spec.Inputs, Parameter{Name: input.Name, Type: typ})
	}

	if len(decl.Output) == 0 {
		return spec, nil
	}

	expr, err := parseTypeExpression(decl.Output)
	if err != nil {
		return nil, err
	}

	if expr.name == resultTypeName && !expr.isTuple {
		return b.resolveResult(spec, expr)
	}

	spec.Output, err = b.resolveExpression(expr)
	if err != nil {
		return nil, fmt.Errorf("output: %w", err)
	}

	return spec, nil
}

func (b *registryBuilder) resolveResult(spec *FunctionSpec, expr *typeExpression) (*FunctionSpec, error) {
	if len(expr.args) != 2 {
		return nil, fmt.Errorf("%w: %s takes 2 type arguments", ErrInvalidTypeExpression, resultTypeName)
	}

	errorsName := expr.args[1].name
	if !b.errorEnums[errorsName] || len(expr.args[1].args) > 0 {
		return nil, fmt.Errorf("%w: %s is not an error enum", ErrInvalidTypeExpression, expr.args[1])
	}

	var err error
	spec.Output, err = b.resolveExpression(expr.args[0])
	if err != nil {
		return nil, fmt.Errorf("output: %w", err)
	}

	spec.Errors, err = b.resolveNamed(errorsName)
	if err != nil {
		return nil, fmt.Errorf("output: %w", err)
	}

	return spec, nil
}

func (b *registryBuilder) resolveString(expression string) (*scval.TypeDescriptor, error) {
	expr, err := parseTypeExpression(expression)
	if err != nil {
		return nil, err
	}

	return b.resolveExpression(expr)
}

func (b *registryBuilder) resolveExpression(expr *typeExpression) (*scval.TypeDescriptor, error) {
	if expr.isTuple {
		items, err := b.resolveAll(expr.args)
		if err != nil {
			return nil, err
		}

		return scval.TupleOf(items...), nil
	}

	if len(expr.args) == 0 {
		builtin, ok := builtinTypes[expr.name]
		if ok {
			return builtin, nil
		}
		if genericTypes[expr.name] {
			return nil, fmt.Errorf("%w: %s needs type arguments", ErrInvalidTypeExpression, expr.name)
		}

		return b.resolveNamed(expr.name)
	}

	switch expr.name {
	case optionTypeName, vecTypeName:
		if len(expr.args) != 1 {
			return nil, fmt.Errorf("%w: %s takes 1 type argument", ErrInvalidTypeExpression, expr.name)
		}

		elem, err := b.resolveExpression(expr.args[0])
		if err != nil {
			return nil, err
		}

		if expr.name == optionTypeName {
			return scval.OptionOf(elem), nil
		}

		return scval.ListOf(elem), nil
	case mapTypeName:
		if len(expr.args) != 2 {
			return nil, fmt.Errorf("%w: %s takes 2 type arguments", ErrInvalidTypeExpression, expr.name)
		}

		items, err := b.resolveAll(expr.args)
		if err != nil {
			return nil, err
		}

		return scval.MapOf(items[0], items[1]), nil
	case bytesNTypeName:
		if len(expr.args) != 1 || len(expr.args[0].args) > 0 || expr.args[0].isTuple {
			return nil, fmt.Errorf("%w: %s takes a length", ErrInvalidTypeExpression, expr.name)
		}

		length, err := strconv.ParseUint(expr.args[0].name, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid length %q of %s", ErrInvalidTypeExpression, expr.args[0].name, expr.name)
		}

		return scval.FixedBytesOf(uint32(length)), nil
	case resultTypeName:
		return nil, fmt.Errorf("%w: %s is only allowed as a function output", ErrInvalidTypeExpression, resultTypeName)
	default:
		return nil, fmt.Errorf("%w: %s does not take type arguments", ErrInvalidTypeExpression, expr.name)
	}
}

func (b *registryBuilder) resolveAll(expressions []*typeExpression) ([]*scval.TypeDescriptor, error) {
	types := make([]*scval.TypeDescriptor, 0, len(expressions))
	for _, expr := range expressions {
		typ, err := b.resolveExpression(expr)
		if err != nil {
			return nil, err
		}

		types = append(types, typ)
	}

	return types, nil
}
