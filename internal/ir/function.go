package ir

import "github.com/protoir/protoir/internal/expr"

// ParamSpec is one formal parameter of a function definition.
type ParamSpec struct {
	Name string
	Type string
}

// DefineFunction registers a pure function type: an ordered parameter
// list plus a return type, both referencing previously registered types.
func DefineFunction(p *Protocol, name string, paramSpecs []ParamSpec, returnType string) (*Type, error) {
	seen := map[string]bool{}
	params := make([]expr.Param, 0, len(paramSpecs))
	for _, spec := range paramSpecs {
		if !IsFieldName(spec.Name) {
			return nil, newErr(CategoryNaming, name, "function %q has malformed parameter name %q", name, spec.Name)
		}
		if seen[spec.Name] {
			return nil, newErr(CategoryStructural, name, "function %q declares parameter %q more than once", name, spec.Name)
		}
		seen[spec.Name] = true
		if !p.isTypeName(spec.Type) {
			return nil, newErr(CategoryReference, name, "function %q parameter %q references unknown type %q", name, spec.Name, spec.Type)
		}
		params = append(params, expr.Param{Name: spec.Name, Type: spec.Type})
	}

	if !IsTypeName(returnType) {
		return nil, newErr(CategoryNaming, name, "function %q has malformed return type name %q", name, returnType)
	}
	if !p.isTypeName(returnType) {
		return nil, newErr(CategoryReference, name, "function %q returns unknown type %q", name, returnType)
	}

	return p.DefineType(KindFunction, name, map[string]any{
		"parameters":  params,
		"return_type": returnType,
	}, nil)
}
