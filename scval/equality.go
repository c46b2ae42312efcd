package scval

import (
	"bytes"
	"fmt"
)

// Equal reports whether two values are structurally equal. Maps are compared as sets of entries, so two maps
// holding the same pairs are equal whatever the order of their entries.
func Equal(a Value, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if checkConcreteValue(a) != nil || checkConcreteValue(b) != nil {
		return false
	}
	if a.Kind() != b.Kind() {
		return false
	}

	switch va := a.(type) {
	case BytesValue:
		vb, ok := b.(BytesValue)
		return ok && bytes.Equal(va.Value, vb.Value)
	case FixedBytesValue:
		vb, ok := b.(FixedBytesValue)
		return ok && bytes.Equal(va.Value, vb.Value)
	case AddressValue:
		vb, ok := b.(AddressValue)
		return ok && va.Type == vb.Type && bytes.Equal(va.Value, vb.Value)
	case OptionValue:
		vb, ok := b.(OptionValue)
		return ok && Equal(va.Value, vb.Value)
	case TupleValue:
		vb, ok := b.(TupleValue)
		return ok && equalItems(va.Items, vb.Items)
	case ListValue:
		vb, ok := b.(ListValue)
		return ok && equalItems(va.Items, vb.Items)
	case MapValue:
		vb, ok := b.(MapValue)
		return ok && equalEntries(va.Entries, vb.Entries)
	case StructValue:
		vb, ok := b.(StructValue)
		return ok && equalFields(va.Fields, vb.Fields)
	case UnionValue:
		vb, ok := b.(UnionValue)
		return ok && va.Discriminant == vb.Discriminant && equalItems(va.Items, vb.Items)
	default:
		// the remaining kinds are comparable structs
		return a == b
	}
}

func equalItems(a []Value, b []Value) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}

	return true
}

func equalFields(a []Field, b []Field) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i].Name != b[i].Name || !Equal(a[i].Value, b[i].Value) {
			return false
		}
	}

	return true
}

func equalEntries(a []MapEntry, b []MapEntry) bool {
	if len(a) != len(b) {
		return false
	}

	for _, entryA := range a {
		found := false
		for _, entryB := range b {
			if Equal(entryA.Key, entryB.Key) {
				found = Equal(entryA.Value, entryB.Value)
				break
			}
		}

		if !found {
			return false
		}
	}

	return true
}

// CanonicalMap returns a map holding the provided entries in canonical order: ascending by encoded key bytes
func CanonicalMap(entries []MapEntry, keyType *TypeDescriptor) (MapValue, error) {
	if keyType == nil {
		return MapValue{}, ErrNilTypeDescriptor
	}

	c := NewCodec()
	for i, entry := range entries {
		err := c.doValidate(entry.Key, keyType)
		if err != nil {
			return MapValue{}, fmt.Errorf("key %d: %w", i, err)
		}
	}

	sorted, err := c.sortEntries(entries, keyType)
	if err != nil {
		return MapValue{}, err
	}

	canonical := make([]MapEntry, len(sorted))
	for i, item := range sorted {
		canonical[i] = item.entry
	}

	return MapValue{Entries: canonical}, nil
}
