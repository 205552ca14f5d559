package expr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/protoir/protoir/internal/expr"
)

// fakeRegistry is a minimal expr.Registry double, hand-wired per test
// instead of routing through internal/ir, to keep this package's tests
// independent of the registry's own behavior.
type fakeRegistry struct {
	types        map[string]bool
	structFields map[string]map[string]string
	methods      map[string]map[string]fakeMethod
	functions    map[string]fakeMethod
	context      map[string]string
}

type fakeMethod struct {
	params     []expr.Param
	returnType string
}

func newFakeRegistry() *fakeRegistry {
	return &fakeRegistry{
		types:        map[string]bool{},
		structFields: map[string]map[string]string{},
		methods:      map[string]map[string]fakeMethod{},
		functions:    map[string]fakeMethod{},
		context:      map[string]string{},
	}
}

func (f *fakeRegistry) TypeExists(name string) bool { return f.types[name] }

func (f *fakeRegistry) StructField(typeName, field string) (string, bool) {
	fields, ok := f.structFields[typeName]
	if !ok {
		return "", false
	}
	t, ok := fields[field]
	return t, ok
}

func (f *fakeRegistry) IsStruct(typeName string) bool {
	_, ok := f.structFields[typeName]
	return ok
}

func (f *fakeRegistry) Method(typeName, method string) ([]expr.Param, string, bool) {
	m, ok := f.methods[typeName]
	if !ok {
		return nil, "", false
	}
	sig, ok := m[method]
	return sig.params, sig.returnType, ok
}

func (f *fakeRegistry) Function(name string) ([]expr.Param, string, bool) {
	sig, ok := f.functions[name]
	return sig.params, sig.returnType, ok
}

func (f *fakeRegistry) ContextField(name string) (string, bool) {
	t, ok := f.context[name]
	return t, ok
}

func thisExpr() expr.Expression { return expr.Expression{Kind: expr.KindThis} }

func constExpr(typeName string, value any) expr.Expression {
	return expr.Expression{Kind: expr.KindConstant, ConstantType: typeName, ConstantValue: value}
}

func TestCheckThisReturnsThisType(t *testing.T) {
	reg := newFakeRegistry()
	got, err := expr.Check(thisExpr(), "Header", reg)
	require.NoError(t, err)
	assert.Equal(t, "Header", got)
}

func TestCheckConstantRequiresKnownType(t *testing.T) {
	reg := newFakeRegistry()
	_, err := expr.Check(constExpr("Byte", 1), "Header", reg)
	require.Error(t, err)

	reg.types["Byte"] = true
	got, err := expr.Check(constExpr("Byte", 1), "Header", reg)
	require.NoError(t, err)
	assert.Equal(t, "Byte", got)
}

func TestCheckFieldAccessRequiresStructTarget(t *testing.T) {
	reg := newFakeRegistry()
	reg.types["Byte"] = true

	e := expr.Expression{Kind: expr.KindFieldAccess, Target: &expr.Expression{Kind: expr.KindConstant, ConstantType: "Byte"}, Field: "x"}
	_, err := expr.Check(e, "Header", reg)
	require.Error(t, err)
}

func TestCheckFieldAccessResolvesFieldType(t *testing.T) {
	reg := newFakeRegistry()
	reg.structFields["Header"] = map[string]string{"sequence": "Byte"}

	e := expr.Expression{Kind: expr.KindFieldAccess, Target: &expr.Expression{Kind: expr.KindThis}, Field: "sequence"}
	got, err := expr.Check(e, "Header", reg)
	require.NoError(t, err)
	assert.Equal(t, "Byte", got)
}

func TestCheckFieldAccessUnknownFieldErrors(t *testing.T) {
	reg := newFakeRegistry()
	reg.structFields["Header"] = map[string]string{}

	e := expr.Expression{Kind: expr.KindFieldAccess, Target: &expr.Expression{Kind: expr.KindThis}, Field: "missing"}
	_, err := expr.Check(e, "Header", reg)
	require.Error(t, err)
}

func TestCheckContextAccess(t *testing.T) {
	reg := newFakeRegistry()
	reg.context["epoch"] = "Byte"

	got, err := expr.Check(expr.Expression{Kind: expr.KindContextAccess, Field: "epoch"}, "Header", reg)
	require.NoError(t, err)
	assert.Equal(t, "Byte", got)

	_, err = expr.Check(expr.Expression{Kind: expr.KindContextAccess, Field: "missing"}, "Header", reg)
	require.Error(t, err)
}

func TestCheckMethodInvocationValidatesArguments(t *testing.T) {
	reg := newFakeRegistry()
	reg.types["Byte"] = true
	reg.types["Boolean"] = true
	reg.methods["Byte"] = map[string]fakeMethod{
		"equals": {params: []expr.Param{{Name: "other", Type: "Byte"}}, returnType: "Boolean"},
	}

	e := expr.Expression{
		Kind:   expr.KindMethodInvocation,
		Target: &expr.Expression{Kind: expr.KindConstant, ConstantType: "Byte"},
		Method: "equals",
		Arguments: []expr.Argument{
			{Name: "other", Value: expr.Expression{Kind: expr.KindConstant, ConstantType: "Byte"}},
		},
	}
	got, err := expr.Check(e, "Header", reg)
	require.NoError(t, err)
	assert.Equal(t, "Boolean", got)
}

func TestCheckMethodInvocationArgumentCountMismatch(t *testing.T) {
	reg := newFakeRegistry()
	reg.types["Byte"] = true
	reg.methods["Byte"] = map[string]fakeMethod{
		"equals": {params: []expr.Param{{Name: "other", Type: "Byte"}}, returnType: "Boolean"},
	}

	e := expr.Expression{
		Kind:   expr.KindMethodInvocation,
		Target: &expr.Expression{Kind: expr.KindConstant, ConstantType: "Byte"},
		Method: "equals",
	}
	_, err := expr.Check(e, "Header", reg)
	require.Error(t, err)
}

func TestCheckMethodInvocationArgumentNameMismatch(t *testing.T) {
	reg := newFakeRegistry()
	reg.types["Byte"] = true
	reg.methods["Byte"] = map[string]fakeMethod{
		"equals": {params: []expr.Param{{Name: "other", Type: "Byte"}}, returnType: "Boolean"},
	}

	e := expr.Expression{
		Kind:   expr.KindMethodInvocation,
		Target: &expr.Expression{Kind: expr.KindConstant, ConstantType: "Byte"},
		Method: "equals",
		Arguments: []expr.Argument{
			{Name: "wrong", Value: expr.Expression{Kind: expr.KindConstant, ConstantType: "Byte"}},
		},
	}
	_, err := expr.Check(e, "Header", reg)
	require.Error(t, err)
}

func TestCheckFunctionInvocation(t *testing.T) {
	reg := newFakeRegistry()
	reg.types["Byte"] = true
	reg.functions["isValid"] = fakeMethod{params: nil, returnType: "Boolean"}

	got, err := expr.Check(expr.Expression{Kind: expr.KindFunctionInvocation, FunctionName: "isValid"}, "Header", reg)
	require.NoError(t, err)
	assert.Equal(t, "Boolean", got)

	_, err = expr.Check(expr.Expression{Kind: expr.KindFunctionInvocation, FunctionName: "missing"}, "Header", reg)
	require.Error(t, err)
}

func TestCheckIfElseRequiresBooleanCondition(t *testing.T) {
	reg := newFakeRegistry()
	reg.types["Byte"] = true

	e := expr.Expression{
		Kind:      expr.KindIfElse,
		Condition: &expr.Expression{Kind: expr.KindConstant, ConstantType: "Byte"},
		IfTrue:    &expr.Expression{Kind: expr.KindConstant, ConstantType: "Byte"},
		IfFalse:   &expr.Expression{Kind: expr.KindConstant, ConstantType: "Byte"},
	}
	_, err := expr.Check(e, "Header", reg)
	require.Error(t, err)
}

func TestCheckIfElseBranchesMustAgree(t *testing.T) {
	reg := newFakeRegistry()
	reg.types["Boolean"] = true
	reg.types["Byte"] = true
	reg.types["Word"] = true

	e := expr.Expression{
		Kind:      expr.KindIfElse,
		Condition: &expr.Expression{Kind: expr.KindConstant, ConstantType: "Boolean"},
		IfTrue:    &expr.Expression{Kind: expr.KindConstant, ConstantType: "Byte"},
		IfFalse:   &expr.Expression{Kind: expr.KindConstant, ConstantType: "Word"},
	}
	_, err := expr.Check(e, "Header", reg)
	require.Error(t, err)
}

func TestCheckBooleanHelper(t *testing.T) {
	reg := newFakeRegistry()
	reg.types["Boolean"] = true
	reg.types["Byte"] = true

	require.NoError(t, expr.CheckBoolean(constExpr("Boolean", true), "Header", reg))
	require.Error(t, expr.CheckBoolean(constExpr("Byte", 1), "Header", reg))
}
