package ir

import "sort"

// DefineEnum registers a tagged union over the given variant type names.
// Each variant must reference a registered type; the stored variant list
// is sorted for determinism. An enum's size is always unknown until it is
// instantiated to a particular variant downstream.
func DefineEnum(p *Protocol, name string, variantTypes []string) (*Type, error) {
	for _, v := range variantTypes {
		if !p.isTypeName(v) {
			return nil, newErr(CategoryReference, name, "enum %q references unknown variant type %q", name, v)
		}
	}

	sorted := append([]string(nil), variantTypes...)
	sort.Strings(sorted)

	return p.DefineType(KindEnum, name, map[string]any{
		"size": UnknownSize,
	}, map[string]any{
		"variants": sorted,
	})
}
