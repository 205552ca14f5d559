package ir

import "github.com/protoir/protoir/internal/expr"

// Built-in trait names, per spec §2/§9 (the richer, recommended variant;
// see DESIGN.md for the resolution of the two-variant ambiguity).
const (
	TraitValue           = "Value"
	TraitSized           = "Sized"
	TraitIndexCollection = "IndexCollection"
	TraitEquality        = "Equality"
	TraitOrdinal         = "Ordinal"
	TraitBooleanOps      = "BooleanOps"
	TraitArithmeticOps   = "ArithmeticOps"
)

func selfParam() expr.Param { return expr.Param{Name: "self", Type: selfPlaceholder} }

func otherParam() expr.Param { return expr.Param{Name: "other", Type: selfPlaceholder} }

// registerBuiltins seeds a fresh Protocol with the four primitive types
// and seven built-in traits described in spec §2/§3, and wires up the
// traits each primitive implements.
func registerBuiltins(p *Protocol) {
	mustDefineTrait(p, TraitValue, nil)

	mustDefineTrait(p, TraitSized, []Method{
		{Name: "size", Params: []expr.Param{selfParam()}, ReturnType: "Size"},
	})

	mustDefineTrait(p, TraitIndexCollection, []Method{
		{Name: "length", Params: []expr.Param{selfParam()}, ReturnType: "Size"},
	})

	mustDefineTrait(p, TraitEquality, []Method{
		{Name: "equals", Params: []expr.Param{selfParam(), otherParam()}, ReturnType: "Boolean"},
		{Name: "not_equals", Params: []expr.Param{selfParam(), otherParam()}, ReturnType: "Boolean"},
	})

	mustDefineTrait(p, TraitOrdinal, []Method{
		{Name: "less_than", Params: []expr.Param{selfParam(), otherParam()}, ReturnType: "Boolean"},
		{Name: "greater_than", Params: []expr.Param{selfParam(), otherParam()}, ReturnType: "Boolean"},
		{Name: "less_or_equal", Params: []expr.Param{selfParam(), otherParam()}, ReturnType: "Boolean"},
		{Name: "greater_or_equal", Params: []expr.Param{selfParam(), otherParam()}, ReturnType: "Boolean"},
	})

	mustDefineTrait(p, TraitBooleanOps, []Method{
		{Name: "and", Params: []expr.Param{selfParam(), otherParam()}, ReturnType: selfPlaceholder},
		{Name: "or", Params: []expr.Param{selfParam(), otherParam()}, ReturnType: selfPlaceholder},
		{Name: "not", Params: []expr.Param{selfParam()}, ReturnType: selfPlaceholder},
	})

	mustDefineTrait(p, TraitArithmeticOps, []Method{
		{Name: "add", Params: []expr.Param{selfParam(), otherParam()}, ReturnType: selfPlaceholder},
		{Name: "subtract", Params: []expr.Param{selfParam(), otherParam()}, ReturnType: selfPlaceholder},
		{Name: "multiply", Params: []expr.Param{selfParam(), otherParam()}, ReturnType: selfPlaceholder},
		{Name: "divide", Params: []expr.Param{selfParam(), otherParam()}, ReturnType: selfPlaceholder},
	})

	mustDefineType(p, KindNothing, "Nothing", nil)
	mustDefineType(p, KindBoolean, "Boolean", []string{TraitBooleanOps, TraitEquality})
	mustDefineType(p, KindSize, "Size", []string{TraitArithmeticOps, TraitOrdinal, TraitEquality})
	mustDefineType(p, KindFieldName, "FieldName", []string{TraitEquality})
}

func mustDefineTrait(p *Protocol, name string, methods []Method) {
	if _, err := p.DefineTrait(name, methods); err != nil {
		panic("ir: invalid built-in trait " + name + ": " + err.Error())
	}
}

func mustDefineType(p *Protocol, kind Kind, name string, traits []string) {
	if _, err := p.DefineType(kind, name, nil, nil); err != nil {
		panic("ir: invalid built-in type " + name + ": " + err.Error())
	}
	if len(traits) > 0 {
		if err := p.Implement(name, traits); err != nil {
			panic("ir: invalid built-in trait wiring for " + name + ": " + err.Error())
		}
	}
}
