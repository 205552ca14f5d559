package ir

import "github.com/protoir/protoir/internal/expr"

// FieldSpec is one field of a struct definition, as handed to DefineStruct
// after JSON decoding.
type FieldSpec struct {
	Name      string
	Type      string
	IsPresent expr.Expression
	Transform *TransformSpec
}

// TransformSpec is the optional per-field reinterpretation described in
// §3/§4.2.
type TransformSpec struct {
	IntoName string
	IntoType string
	Using    string
}

// DefineStruct registers a struct type, validating each field in
// declaration order so that a field's is_present predicate may reference
// `this.<earlier field>`, then checks constraints and actions against the
// fully populated struct.
func DefineStruct(p *Protocol, name string, fieldSpecs []FieldSpec, constraints, actions []expr.Expression) (*Type, error) {
	t, err := p.DefineType(KindStruct, name, map[string]any{
		"size": KnownSize(0),
	}, map[string]any{
		"fields":      []*Field{},
		"constraints": []expr.Expression{},
		"actions":     []expr.Expression{},
	})
	if err != nil {
		return nil, err
	}

	used := map[string]bool{}
	size := KnownSize(0)
	fields := make([]*Field, 0, len(fieldSpecs))

	for _, spec := range fieldSpecs {
		if !IsFieldName(spec.Name) {
			return nil, newErr(CategoryNaming, name, "struct %q has malformed field name %q", name, spec.Name)
		}
		if used[spec.Name] {
			return nil, newErr(CategoryStructural, name, "struct %q declares field %q more than once", name, spec.Name)
		}

		fieldType, ok := p.Type(spec.Type)
		if !ok {
			return nil, newErr(CategoryReference, name, "struct %q field %q references unknown type %q", name, spec.Name, spec.Type)
		}

		if err := expr.CheckBoolean(spec.IsPresent, name, p); err != nil {
			return nil, newErr(CategoryTyping, name, "struct %q field %q is_present: %v", name, spec.Name, err)
		}

		var transform *Transform
		if spec.Transform != nil {
			if used[spec.Transform.IntoName] {
				return nil, newErr(CategoryStructural, name, "struct %q field %q transform into_name %q collides with an existing field", name, spec.Name, spec.Transform.IntoName)
			}
			if !IsFieldName(spec.Transform.IntoName) {
				return nil, newErr(CategoryNaming, name, "struct %q field %q has malformed transform into_name %q", name, spec.Name, spec.Transform.IntoName)
			}
			intoType, ok := p.Type(spec.Transform.IntoType)
			if !ok {
				return nil, newErr(CategoryReference, name, "struct %q field %q transform references unknown into_type %q", name, spec.Name, spec.Transform.IntoType)
			}
			usingFn, ok := p.Type(spec.Transform.Using)
			if !ok || usingFn.Kind != KindFunction {
				return nil, newErr(CategoryReference, name, "struct %q field %q transform references unknown function %q", name, spec.Name, spec.Transform.Using)
			}

			params, _ := usingFn.Attributes["parameters"].([]expr.Param)
			returnType, _ := usingFn.Attributes["return_type"].(string)
			if len(params) != 1 || params[0].Type != spec.Type {
				return nil, newErr(CategoryTyping, name, "struct %q field %q transform function %q must take a single parameter of type %q", name, spec.Name, spec.Transform.Using, spec.Type)
			}
			if returnType != spec.Transform.IntoType {
				return nil, newErr(CategoryTyping, name, "struct %q field %q transform function %q must return %q, got %q", name, spec.Name, spec.Transform.Using, spec.Transform.IntoType, returnType)
			}

			fromSize, _ := fieldType.Attributes["size"].(Size)
			intoSize, _ := intoType.Attributes["size"].(Size)
			if !fromSize.Known || !intoSize.Known || fromSize.Bits != intoSize.Bits {
				return nil, newErr(CategoryTyping, name, "struct %q field %q transform size mismatch: %s bits vs %s bits", name, spec.Name, fromSize, intoSize)
			}

			transform = &Transform{IntoName: spec.Transform.IntoName, IntoType: spec.Transform.IntoType, Using: spec.Transform.Using}
			used[spec.Transform.IntoName] = true
		}

		used[spec.Name] = true
		field := &Field{Name: spec.Name, Type: spec.Type, IsPresent: spec.IsPresent, Transform: transform}
		fields = append(fields, field)
		t.Components["fields"] = fields

		declaredSize, _ := fieldType.Attributes["size"].(Size)
		size = size.Add(declaredSize)
	}

	t.Attributes["size"] = size

	for i, c := range constraints {
		if err := expr.CheckBoolean(c, name, p); err != nil {
			return nil, newErr(CategoryTyping, name, "struct %q constraint %d: %v", name, i, err)
		}
	}
	t.Components["constraints"] = constraints

	for i, a := range actions {
		got, err := expr.Check(a, name, p)
		if err != nil {
			return nil, newErr(CategoryTyping, name, "struct %q action %d: %v", name, i, err)
		}
		if got != string(KindNothing) {
			return nil, newErr(CategoryTyping, name, "struct %q action %d must have type Nothing, got %q", name, i, got)
		}
	}
	t.Components["actions"] = actions

	return t, nil
}
