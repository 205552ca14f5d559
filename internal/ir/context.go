package ir

// ApplyContext adds fields to the protocol-wide mutable context. It is not
// a type constructor: it mutates Protocol.context directly. Each field's
// name is pattern-checked and must be unique; each field's type must be
// registered. Fields are inserted with their current_value left unset,
// since evaluation is out of scope for the core (§3, §9 Context).
func ApplyContext(p *Protocol, fields []ParamSpec) error {
	for _, f := range fields {
		if !IsFieldName(f.Name) {
			return newErr(CategoryNaming, "context", "context field has malformed name %q", f.Name)
		}
		if _, exists := p.context[f.Name]; exists {
			return newErr(CategoryStructural, "context", "context field %q is already defined", f.Name)
		}
		if !p.isTypeName(f.Type) {
			return newErr(CategoryReference, "context", "context field %q references unknown type %q", f.Name, f.Type)
		}
		p.context[f.Name] = &ContextField{Name: f.Name, Type: f.Type}
		p.contextOrder = append(p.contextOrder, f.Name)
	}
	return nil
}
