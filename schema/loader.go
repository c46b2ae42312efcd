package schema

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml"
)

// LoadDeclarations reads the declarations from a TOML file
func LoadDeclarations(path string) (Declarations, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Declarations{}, err
	}

	declarations, err := ParseDeclarations(data)
	if err != nil {
		return Declarations{}, fmt.Errorf("%w while loading %s", err, path)
	}

	log.Debug("loaded declarations", "file", path,
		"structs", len(declarations.Structs),
		"enums", len(declarations.Enums),
		"unions", len(declarations.Unions),
		"error enums", len(declarations.ErrorEnums),
		"functions", len(declarations.Functions),
	)

	return declarations, nil
}

// ParseDeclarations decodes TOML declarations
func ParseDeclarations(data []byte) (Declarations, error) {
	declarations := Declarations{}
	err := toml.Unmarshal(data, &declarations)
	if err != nil {
		return Declarations{}, err
	}

	return declarations, nil
}
