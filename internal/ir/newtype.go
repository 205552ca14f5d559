package ir

// DefineNewType registers a derived type: it inherits its base type's
// kind, attributes, and components (copied, not aliased), but gets a
// fresh name, an empty method table of its own, and the union of the
// base's implemented traits with any additional traits listed. Per §4.2,
// equality between a newtype and its base is structural-by-name only:
// downstream they are distinct types.
func DefineNewType(p *Protocol, name, derivedFrom string, implements []string) (*Type, error) {
	base, ok := p.Type(derivedFrom)
	if !ok {
		return nil, newErr(CategoryReference, name, "NewType %q derives from unknown type %q", name, derivedFrom)
	}

	attributes := make(map[string]any, len(base.Attributes))
	for k, v := range base.Attributes {
		attributes[k] = v
	}
	components := make(map[string]any, len(base.Components))
	for k, v := range base.Components {
		components[k] = v
	}

	t, err := p.DefineType(base.Kind, name, attributes, components)
	if err != nil {
		return nil, err
	}

	if len(base.Traits) > 0 {
		if err := p.Implement(name, base.Traits); err != nil {
			return nil, err
		}
	}
	if len(implements) > 0 {
		if err := p.Implement(name, implements); err != nil {
			return nil, err
		}
	}

	return t, nil
}
