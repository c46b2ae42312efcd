package display

import (
	"fmt"
	"strings"

	"github.com/multiversx/mx-contract-fixtures-go/schema"
	"github.com/multiversx/mx-contract-fixtures-go/scval"
)

// FunctionsTable lists the functions with their signatures and docs
func FunctionsTable(specs []*schema.FunctionSpec) (string, error) {
	rows := make([]*Row, 0, len(specs))
	for _, spec := range specs {
		rows = append(rows, NewRow(false, spec.Name, spec.Signature(), spec.Doc))
	}

	return CreateTableString([]string{"Function", "Signature", "Doc"}, rows)
}

// TypesTable lists the declared types of the registry, one row per field, case or variant
func TypesTable(registry *schema.Registry) (string, error) {
	rows := make([]*Row, 0)
	for _, name := range registry.TypeNames() {
		typ, err := registry.Type(name)
		if err != nil {
			return "", err
		}

		members := describeMembers(typ)
		kind := typ.Kind.String()
		if registry.IsErrorEnum(name) {
			kind = "Error"
		} else if schema.IsTupleStruct(typ) {
			kind = "TupleStruct"
		}

		if len(members) == 0 {
			rows = append(rows, NewRow(true, name, kind, ""))
			continue
		}

		for i, member := range members {
			rowName, rowKind := "", ""
			if i == 0 {
				rowName, rowKind = name, kind
			}

			rows = append(rows, NewRow(i == len(members)-1, rowName, rowKind, member))
		}
	}

	return CreateTableString([]string{"Type", "Kind", "Members"}, rows)
}

func describeMembers(typ *scval.TypeDescriptor) []string {
	members := make([]string, 0)

	switch typ.Kind {
	case scval.KindStruct:
		for _, field := range typ.Fields {
			members = append(members, fmt.Sprintf("%s: %s", field.Name, field.Type))
		}
	case scval.KindEnum:
		for _, enumCase := range typ.Cases {
			members = append(members, fmt.Sprintf("%s = %d", enumCase.Name, enumCase.Value))
		}
	case scval.KindUnion:
		for _, variant := range typ.Variants {
			if len(variant.Items) == 0 {
				members = append(members, variant.Name)
				continue
			}

			items := make([]string, len(variant.Items))
			for i, item := range variant.Items {
				items[i] = item.String()
			}
			members = append(members, fmt.Sprintf("%s(%s)", variant.Name, strings.Join(items, ", ")))
		}
	}

	return members
}
