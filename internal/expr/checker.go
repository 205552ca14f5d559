package expr

import "fmt"

// Param is a method or function parameter as seen by the checker: a name
// and a concrete type name (self-type placeholders are already resolved
// by the time a Registry hands one of these back).
type Param struct {
	Name string
	Type string
}

// Registry is everything the checker needs from the type/trait registry.
// ir.Protocol implements this interface; expr never imports ir, so the
// dependency only runs one way.
type Registry interface {
	// TypeExists reports whether name is a registered type.
	TypeExists(name string) bool

	// StructField returns the declared type name of field on the struct
	// type typeName, if typeName is a struct and the field exists.
	StructField(typeName, field string) (typeName2 string, ok bool)

	// IsStruct reports whether typeName names a registered struct type.
	IsStruct(typeName string) bool

	// Method returns the materialized (self already substituted)
	// signature of method on typeName, skipping the implicit self
	// parameter.
	Method(typeName, method string) (params []Param, returnType string, ok bool)

	// Function returns a registered function's declared parameters and
	// return type.
	Function(name string) (params []Param, returnType string, ok bool)

	// ContextField returns the declared type of a context field.
	ContextField(name string) (typeName string, ok bool)
}

const (
	typeBoolean = "Boolean"
)

// Check type-checks expression e with `this` bound to thisType, returning
// the expression's type name or the first validation failure. Checking is
// bottom-up and fails fast: no partial result is ever returned.
func Check(e Expression, thisType string, reg Registry) (string, error) {
	switch e.Kind {
	case KindThis:
		return thisType, nil

	case KindConstant:
		if !reg.TypeExists(e.ConstantType) {
			return "", fmt.Errorf("constant references unknown type %q", e.ConstantType)
		}
		return e.ConstantType, nil

	case KindFieldAccess:
		if e.Target == nil {
			return "", fmt.Errorf("field access %q has no target", e.Field)
		}
		targetType, err := Check(*e.Target, thisType, reg)
		if err != nil {
			return "", err
		}
		if !reg.IsStruct(targetType) {
			return "", fmt.Errorf("field access target has type %q, which is not a struct", targetType)
		}
		fieldType, ok := reg.StructField(targetType, e.Field)
		if !ok {
			return "", fmt.Errorf("struct %q has no field %q", targetType, e.Field)
		}
		return fieldType, nil

	case KindContextAccess:
		fieldType, ok := reg.ContextField(e.Field)
		if !ok {
			return "", fmt.Errorf("context has no field %q", e.Field)
		}
		return fieldType, nil

	case KindMethodInvocation:
		if e.Target == nil {
			return "", fmt.Errorf("method invocation %q has no target", e.Method)
		}
		targetType, err := Check(*e.Target, thisType, reg)
		if err != nil {
			return "", err
		}
		params, returnType, ok := reg.Method(targetType, e.Method)
		if !ok {
			return "", fmt.Errorf("type %q has no method %q", targetType, e.Method)
		}
		if err := checkArguments("method "+e.Method, params, e.Arguments, thisType, reg); err != nil {
			return "", err
		}
		return returnType, nil

	case KindFunctionInvocation:
		params, returnType, ok := reg.Function(e.FunctionName)
		if !ok {
			return "", fmt.Errorf("unknown function %q", e.FunctionName)
		}
		if err := checkArguments("function "+e.FunctionName, params, e.Arguments, thisType, reg); err != nil {
			return "", err
		}
		return returnType, nil

	case KindIfElse:
		if e.Condition == nil || e.IfTrue == nil || e.IfFalse == nil {
			return "", fmt.Errorf("if/else is missing a branch")
		}
		condType, err := Check(*e.Condition, thisType, reg)
		if err != nil {
			return "", err
		}
		if condType != typeBoolean {
			return "", fmt.Errorf("if/else condition has type %q, want Boolean", condType)
		}
		trueType, err := Check(*e.IfTrue, thisType, reg)
		if err != nil {
			return "", err
		}
		falseType, err := Check(*e.IfFalse, thisType, reg)
		if err != nil {
			return "", err
		}
		if trueType != falseType {
			return "", fmt.Errorf("if/else branches disagree: %q vs %q", trueType, falseType)
		}
		return trueType, nil

	default:
		return "", fmt.Errorf("unrecognized expression kind %q", e.Kind)
	}
}

// CheckBoolean checks e and additionally requires it to have type Boolean,
// as is required of presence predicates and constraints.
func CheckBoolean(e Expression, thisType string, reg Registry) error {
	got, err := Check(e, thisType, reg)
	if err != nil {
		return err
	}
	if got != typeBoolean {
		return fmt.Errorf("expected Boolean, got %q", got)
	}
	return nil
}

func checkArguments(what string, params []Param, args []Argument, thisType string, reg Registry) error {
	if len(args) != len(params) {
		return fmt.Errorf("%s: expected %d argument(s), got %d", what, len(params), len(args))
	}
	for i, param := range params {
		arg := args[i]
		if arg.Name != param.Name {
			return fmt.Errorf("%s: argument %d is named %q, want %q", what, i, arg.Name, param.Name)
		}
		argType, err := Check(arg.Value, thisType, reg)
		if err != nil {
			return err
		}
		if argType != param.Type {
			return fmt.Errorf("%s: argument %q has type %q, want %q", what, arg.Name, argType, param.Type)
		}
	}
	return nil
}
