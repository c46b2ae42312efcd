package schema

// Declarations holds every user-defined type and function of a contract interface
type Declarations struct {
	Structs    []StructDecl   `toml:"Structs"`
	Enums      []EnumDecl     `toml:"Enums"`
	Unions     []UnionDecl    `toml:"Unions"`
	ErrorEnums []EnumDecl     `toml:"ErrorEnums"`
	Functions  []FunctionDecl `toml:"Functions"`
}

// FieldDecl is a named member holding a type expression, used by struct fields and function inputs
type FieldDecl struct {
	Name string `toml:"Name"`
	Type string `toml:"Type"`
	Doc  string `toml:"Doc"`
}

// StructDecl declares a struct. A struct whose field names are all decimal digits is a tuple struct.
type StructDecl struct {
	Name   string      `toml:"Name"`
	Doc    string      `toml:"Doc"`
	Fields []FieldDecl `toml:"Fields"`
}

// EnumCaseDecl is a case of a simple enum, carrying its declared value
type EnumCaseDecl struct {
	Name  string `toml:"Name"`
	Value uint32 `toml:"Value"`
	Doc   string `toml:"Doc"`
}

// EnumDecl declares a simple enum or a contract error enum
type EnumDecl struct {
	Name  string         `toml:"Name"`
	Doc   string         `toml:"Doc"`
	Cases []EnumCaseDecl `toml:"Cases"`
}

// UnionCaseDecl is a case of a union: a void case when Types is empty, a tuple case otherwise
type UnionCaseDecl struct {
	Name  string   `toml:"Name"`
	Types []string `toml:"Types"`
	Doc   string   `toml:"Doc"`
}

// UnionDecl declares a tagged union
type UnionDecl struct {
	Name  string          `toml:"Name"`
	Doc   string          `toml:"Doc"`
	Cases []UnionCaseDecl `toml:"Cases"`
}

// FunctionDecl declares a contract function. An empty Output stands for void.
// The output may be written as Result<T, E> with E an error enum.
type FunctionDecl struct {
	Name   string      `toml:"Name"`
	Doc    string      `toml:"Doc"`
	Inputs []FieldDecl `toml:"Inputs"`
	Output string      `toml:"Output"`
}
