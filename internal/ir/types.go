package ir

import "github.com/protoir/protoir/internal/expr"

// Kind discriminates the kind-specific shape of a Type, per spec §3.
type Kind string

const (
	KindNothing   Kind = "Nothing"
	KindBoolean   Kind = "Boolean"
	KindSize      Kind = "Size"
	KindFieldName Kind = "FieldName"
	KindBitString Kind = "BitString"
	KindArray     Kind = "Array"
	KindStruct    Kind = "Struct"
	KindEnum      Kind = "Enum"
	KindNewType   Kind = "NewType"
	KindFunction  Kind = "Function"
)

// selfPlaceholder is the sentinel used in trait-level method signatures to
// mean "the self-type of whichever type implements this trait." No real
// type name is ever empty, so it doubles safely as the zero value.
const selfPlaceholder = ""

// Method is a concrete (post-substitution) or trait-level (pre-substitution)
// method signature. ReturnType and any Params[i].Type equal to
// selfPlaceholder denote an unsubstituted self-type reference.
type Method struct {
	Name       string
	Params     []expr.Param
	ReturnType string
}

// Trait is a named bundle of method signatures polymorphic over a self-type.
type Trait struct {
	Name    string
	Methods []Method
}

// Type is the canonical record for every registered type: primitives,
// bit strings, arrays, structs, enums, newtypes, and functions all share
// this shape, varying only in Kind and in the contents of Attributes and
// Components.
type Type struct {
	Kind Kind
	Name string

	// Traits is the sorted, deduplicated list of trait names this type
	// implements.
	Traits []string

	// Methods is the flattened method table: trait methods materialized
	// at Implement time, with self-placeholders substituted for Name.
	Methods map[string]Method

	// Attributes is the kind-specific public attribute bag (§3's table),
	// exposed to downstream consumers.
	Attributes map[string]any

	// Components is the kind-specific bag used internally while checking
	// (struct fields/constraints/actions, enum variants). Per §6 it is
	// still exposed read-only through the programmatic surface.
	Components map[string]any
}

// Field is one entry of a Struct's ordered field list.
type Field struct {
	Name      string
	Type      string
	IsPresent expr.Expression
	Transform *Transform
}

// Transform is the optional field reinterpretation described in §3/§4.2.
type Transform struct {
	IntoName string
	IntoType string
	Using    string
}

// ContextField is one entry of the protocol-wide mutable context.
type ContextField struct {
	Name string
	Type string
}
