package ir

// DefineBitString registers a fixed-width bit string type. Per §4.2 it
// requires a positive integer size and automatically implements Value and
// Equality.
func DefineBitString(p *Protocol, name string, size int) (*Type, error) {
	if size <= 0 {
		return nil, newErr(CategoryTyping, name, "BitString %q must have a positive size, got %d", name, size)
	}
	t, err := p.DefineType(KindBitString, name, map[string]any{
		"size": KnownSize(size),
	}, nil)
	if err != nil {
		return nil, err
	}
	if err := p.Implement(name, []string{TraitValue, TraitEquality}); err != nil {
		return nil, err
	}
	return t, nil
}
