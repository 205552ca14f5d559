// Package expr implements the expression language used by struct field
// presence predicates, transforms, and constraints: method invocation,
// function invocation, field access, context access, if/else, this, and
// constants.
package expr

import (
	"encoding/json"
	"fmt"
)

// Kind discriminates an Expression's case.
type Kind string

const (
	KindMethodInvocation   Kind = "MethodInvocation"
	KindFunctionInvocation Kind = "FunctionInvocation"
	KindFieldAccess        Kind = "FieldAccess"
	KindContextAccess      Kind = "ContextAccess"
	KindIfElse             Kind = "IfElse"
	KindThis               Kind = "This"
	KindConstant           Kind = "Constant"
)

// Argument is a named actual parameter in a method or function invocation.
type Argument struct {
	Name  string     `json:"name"`
	Value Expression `json:"value"`
}

// Expression is a tagged union over the seven expression cases. Only the
// fields relevant to Kind are populated; JSON decoding dispatches on the
// "expression" tag.
type Expression struct {
	Kind Kind

	// MethodInvocation
	Target    *Expression
	Method    string
	Arguments []Argument

	// FunctionInvocation
	FunctionName string

	// FieldAccess
	Field string

	// ContextAccess uses Field too.

	// IfElse
	Condition *Expression
	IfTrue    *Expression
	IfFalse   *Expression

	// Constant
	ConstantType  string
	ConstantValue any
}

// wireExpression mirrors the JSON shape described in spec §6.
type wireExpression struct {
	Expression string          `json:"expression"`
	Target     json.RawMessage `json:"target,omitempty"`
	Method     string          `json:"method,omitempty"`
	Arguments  []wireArgument  `json:"arguments,omitempty"`
	Name       string          `json:"name,omitempty"`
	Field      string          `json:"field,omitempty"`
	Condition  json.RawMessage `json:"condition,omitempty"`
	IfTrue     json.RawMessage `json:"if_true,omitempty"`
	IfFalse    json.RawMessage `json:"if_false,omitempty"`
	Type       string          `json:"type,omitempty"`
	Value      any             `json:"value,omitempty"`
}

type wireArgument struct {
	Name  string          `json:"name"`
	Value json.RawMessage `json:"value"`
}

// UnmarshalJSON decodes a tagged expression object into the matching case.
func (e *Expression) UnmarshalJSON(data []byte) error {
	var w wireExpression
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("expr: %w", err)
	}

	e.Kind = Kind(w.Expression)

	switch e.Kind {
	case KindThis:
		return nil

	case KindConstant:
		e.ConstantType = w.Type
		e.ConstantValue = w.Value
		return nil

	case KindFieldAccess:
		target, err := decodeSub(w.Target)
		if err != nil {
			return err
		}
		e.Target = target
		e.Field = w.Field
		return nil

	case KindContextAccess:
		e.Field = w.Field
		return nil

	case KindFunctionInvocation:
		e.FunctionName = w.Name
		args, err := decodeArgs(w.Arguments)
		if err != nil {
			return err
		}
		e.Arguments = args
		return nil

	case KindMethodInvocation:
		target, err := decodeSub(w.Target)
		if err != nil {
			return err
		}
		e.Target = target
		e.Method = w.Method
		args, err := decodeArgs(w.Arguments)
		if err != nil {
			return err
		}
		e.Arguments = args
		return nil

	case KindIfElse:
		cond, err := decodeSub(w.Condition)
		if err != nil {
			return err
		}
		ifTrue, err := decodeSub(w.IfTrue)
		if err != nil {
			return err
		}
		ifFalse, err := decodeSub(w.IfFalse)
		if err != nil {
			return err
		}
		e.Condition, e.IfTrue, e.IfFalse = cond, ifTrue, ifFalse
		return nil

	default:
		return fmt.Errorf("expr: unknown expression kind %q", w.Expression)
	}
}

func decodeSub(raw json.RawMessage) (*Expression, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("expr: missing sub-expression")
	}
	var sub Expression
	if err := json.Unmarshal(raw, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

func decodeArgs(wargs []wireArgument) ([]Argument, error) {
	args := make([]Argument, 0, len(wargs))
	for _, wa := range wargs {
		val, err := decodeSub(wa.Value)
		if err != nil {
			return nil, err
		}
		args = append(args, Argument{Name: wa.Name, Value: *val})
	}
	return args, nil
}
