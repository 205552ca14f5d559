package ir

import (
	"sort"

	"github.com/protoir/protoir/internal/expr"
)

// Protocol owns every registered type, trait, and context field, plus the
// resolved PDU list. It is the single writer during loading (§3
// Lifecycle) and a read-only, shareable value once loading completes.
type Protocol struct {
	Name   string
	LoadID string

	types     map[string]*Type
	typeOrder []string

	traits     map[string]*Trait
	traitOrder []string

	context      map[string]*ContextField
	contextOrder []string

	PDUs []string
}

// NewProtocol creates an empty registry seeded with the built-in
// primitives and traits (§4.1, §8 scenario 1).
func NewProtocol(name, loadID string) *Protocol {
	p := &Protocol{
		Name:    name,
		LoadID:  loadID,
		types:   make(map[string]*Type),
		traits:  make(map[string]*Trait),
		context: make(map[string]*ContextField),
	}
	registerBuiltins(p)
	return p
}

// Types returns every registered type in declaration order (built-ins
// first, then user definitions in document order).
func (p *Protocol) Types() []*Type {
	out := make([]*Type, 0, len(p.typeOrder))
	for _, name := range p.typeOrder {
		out = append(out, p.types[name])
	}
	return out
}

// Traits returns every registered trait in declaration order.
func (p *Protocol) Traits() []*Trait {
	out := make([]*Trait, 0, len(p.traitOrder))
	for _, name := range p.traitOrder {
		out = append(out, p.traits[name])
	}
	return out
}

// Type looks up a registered type by name.
func (p *Protocol) Type(name string) (*Type, bool) {
	t, ok := p.types[name]
	return t, ok
}

// Trait looks up a registered trait by name.
func (p *Protocol) Trait(name string) (*Trait, bool) {
	t, ok := p.traits[name]
	return t, ok
}

// ContextFields returns the protocol-wide context fields in declaration
// order.
func (p *Protocol) ContextFields() []*ContextField {
	out := make([]*ContextField, 0, len(p.contextOrder))
	for _, name := range p.contextOrder {
		out = append(out, p.context[name])
	}
	return out
}

func (p *Protocol) isTypeName(name string) bool {
	_, ok := p.types[name]
	return ok
}

func (p *Protocol) isTraitName(name string) bool {
	_, ok := p.traits[name]
	return ok
}

// DefineType registers a fresh type record with empty implemented-traits
// and empty methods. Per §4.1, it fails if name is malformed or already
// in use by a type or a trait.
func (p *Protocol) DefineType(kind Kind, name string, attributes, components map[string]any) (*Type, error) {
	if !IsTypeName(name) {
		return nil, newErr(CategoryNaming, name, "malformed type name %q", name)
	}
	if p.isTypeName(name) {
		return nil, newErr(CategoryNaming, name, "type %q is already defined", name)
	}
	if p.isTraitName(name) {
		return nil, newErr(CategoryNaming, name, "name %q is already used by a trait", name)
	}
	if attributes == nil {
		attributes = map[string]any{}
	}
	if components == nil {
		components = map[string]any{}
	}
	t := &Type{
		Kind:       kind,
		Name:       name,
		Methods:    map[string]Method{},
		Attributes: attributes,
		Components: components,
	}
	p.types[name] = t
	p.typeOrder = append(p.typeOrder, name)
	return t, nil
}

// DefineTrait registers a trait, validating every method signature per
// §4.1: malformed trait name, name collision, malformed method name,
// missing/malformed leading self parameter, and unknown non-self
// parameter or return types.
func (p *Protocol) DefineTrait(name string, methods []Method) (*Trait, error) {
	if !IsTypeName(name) {
		return nil, newErr(CategoryNaming, name, "malformed trait name %q", name)
	}
	if p.isTypeName(name) {
		return nil, newErr(CategoryNaming, name, "name %q is already used by a type", name)
	}
	if p.isTraitName(name) {
		return nil, newErr(CategoryNaming, name, "trait %q is already defined", name)
	}

	seen := map[string]bool{}
	for _, m := range methods {
		if !IsFieldName(m.Name) {
			return nil, newErr(CategoryNaming, name, "malformed method name %q", m.Name)
		}
		if seen[m.Name] {
			return nil, newErr(CategoryStructural, name, "trait %q declares method %q more than once", name, m.Name)
		}
		seen[m.Name] = true

		if len(m.Params) == 0 || m.Params[0].Name != "self" || m.Params[0].Type != selfPlaceholder {
			return nil, newErr(CategoryShape, name, "method %q must take self as its first parameter", m.Name)
		}
		for _, param := range m.Params[1:] {
			if !IsFieldName(param.Name) {
				return nil, newErr(CategoryNaming, name, "malformed parameter name %q on method %q", param.Name, m.Name)
			}
			if param.Type != selfPlaceholder && !p.isTypeName(param.Type) {
				return nil, newErr(CategoryReference, name, "method %q references unknown parameter type %q", m.Name, param.Type)
			}
		}
		if m.ReturnType != selfPlaceholder && !p.isTypeName(m.ReturnType) {
			return nil, newErr(CategoryReference, name, "method %q references unknown return type %q", m.Name, m.ReturnType)
		}
	}

	t := &Trait{Name: name, Methods: methods}
	p.traits[name] = t
	p.traitOrder = append(p.traitOrder, name)
	return t, nil
}

// Implement registers typeName as implementing each of traits, in order,
// materializing every trait method onto the type with self-placeholders
// substituted for typeName. Per §4.1: fails on an unknown trait, a trait
// already implemented by the type, or a method name collision with one
// already present on the type (no overloads, no overrides).
func (p *Protocol) Implement(typeName string, traits []string) error {
	t, ok := p.types[typeName]
	if !ok {
		return newErr(CategoryReference, typeName, "cannot implement traits on unknown type %q", typeName)
	}

	already := map[string]bool{}
	for _, name := range t.Traits {
		already[name] = true
	}

	for _, traitName := range traits {
		trait, ok := p.traits[traitName]
		if !ok {
			return newErr(CategoryReference, typeName, "type %q implements unknown trait %q", typeName, traitName)
		}
		if already[traitName] {
			return newErr(CategoryStructural, typeName, "type %q already implements trait %q", typeName, traitName)
		}

		for _, m := range trait.Methods {
			if _, exists := t.Methods[m.Name]; exists {
				return newErr(CategoryStructural, typeName, "type %q already defines method %q", typeName, m.Name)
			}
		}

		for _, m := range trait.Methods {
			t.Methods[m.Name] = substituteSelf(m, typeName)
		}

		already[traitName] = true
		t.Traits = append(t.Traits, traitName)
		sort.Strings(t.Traits)
	}

	return nil
}

func substituteSelf(m Method, typeName string) Method {
	params := make([]expr.Param, len(m.Params))
	for i, param := range m.Params {
		if param.Type == selfPlaceholder && i > 0 {
			param.Type = typeName
		}
		params[i] = param
	}
	returnType := m.ReturnType
	if returnType == selfPlaceholder {
		returnType = typeName
	}
	return Method{Name: m.Name, Params: params, ReturnType: returnType}
}

// -- expr.Registry --

// TypeExists implements expr.Registry.
func (p *Protocol) TypeExists(name string) bool {
	return p.isTypeName(name)
}

// IsStruct implements expr.Registry.
func (p *Protocol) IsStruct(typeName string) bool {
	t, ok := p.types[typeName]
	return ok && t.Kind == KindStruct
}

// StructField implements expr.Registry.
func (p *Protocol) StructField(typeName, field string) (string, bool) {
	t, ok := p.types[typeName]
	if !ok || t.Kind != KindStruct {
		return "", false
	}
	fields, _ := t.Components["fields"].([]*Field)
	for _, f := range fields {
		if f.Name == field {
			return f.Type, true
		}
	}
	return "", false
}

// Method implements expr.Registry.
func (p *Protocol) Method(typeName, method string) ([]expr.Param, string, bool) {
	t, ok := p.types[typeName]
	if !ok {
		return nil, "", false
	}
	m, ok := t.Methods[method]
	if !ok {
		return nil, "", false
	}
	// Skip the leading self parameter: callers only supply the rest.
	if len(m.Params) == 0 {
		return nil, m.ReturnType, true
	}
	return m.Params[1:], m.ReturnType, true
}

// Function implements expr.Registry.
func (p *Protocol) Function(name string) ([]expr.Param, string, bool) {
	t, ok := p.types[name]
	if !ok || t.Kind != KindFunction {
		return nil, "", false
	}
	params, _ := t.Attributes["parameters"].([]expr.Param)
	returnType, _ := t.Attributes["return_type"].(string)
	return params, returnType, true
}

// ContextField implements expr.Registry.
func (p *Protocol) ContextField(name string) (string, bool) {
	f, ok := p.context[name]
	if !ok {
		return "", false
	}
	return f.Type, true
}
