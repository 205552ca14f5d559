package ir

// Length is an array's element count, which may be statically unknown
// (§3: "length (may be unknown)").
type Length struct {
	Known bool
	N     int
}

// KnownLength constructs a statically known array length.
func KnownLength(n int) Length { return Length{Known: true, N: n} }

// UnknownLength is the unresolved length used when the document specifies
// length: null.
var UnknownLength = Length{Known: false}

// DefineArray registers an array type over a previously registered
// element type. Size is element.size × length when both are known, else
// unknown. Automatically implements Equality and IndexCollection.
func DefineArray(p *Protocol, name, elementType string, length Length) (*Type, error) {
	elem, ok := p.Type(elementType)
	if !ok {
		return nil, newErr(CategoryReference, name, "Array %q references unknown element type %q", name, elementType)
	}

	elemSize, _ := elem.Attributes["size"].(Size)
	size := elemSize.Mul(length.N, length.Known)
	if !elemSize.Known {
		size = UnknownSize
	}

	t, err := p.DefineType(KindArray, name, map[string]any{
		"element_type": elementType,
		"length":       length,
		"size":         size,
	}, nil)
	if err != nil {
		return nil, err
	}
	if err := p.Implement(name, []string{TraitEquality, TraitIndexCollection}); err != nil {
		return nil, err
	}
	return t, nil
}
