package ir_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/protoir/protoir/internal/ir"
)

func TestNewProtocolRegistersBuiltins(t *testing.T) {
	p := ir.NewProtocol("Demo", "load-1")

	for _, name := range []string{"Nothing", "Boolean", "Size", "FieldName"} {
		_, ok := p.Type(name)
		assert.Truef(t, ok, "expected built-in type %q to be registered", name)
	}
	for _, name := range []string{ir.TraitValue, ir.TraitSized, ir.TraitIndexCollection, ir.TraitEquality, ir.TraitOrdinal, ir.TraitBooleanOps, ir.TraitArithmeticOps} {
		_, ok := p.Trait(name)
		assert.Truef(t, ok, "expected built-in trait %q to be registered", name)
	}
}

func TestBuiltinTraitWiring(t *testing.T) {
	p := ir.NewProtocol("Demo", "load-1")

	boolean, ok := p.Type("Boolean")
	require.True(t, ok)
	assert.Equal(t, []string{ir.TraitBooleanOps, ir.TraitEquality}, boolean.Traits)

	size, ok := p.Type("Size")
	require.True(t, ok)
	assert.Equal(t, []string{ir.TraitArithmeticOps, ir.TraitEquality, ir.TraitOrdinal}, size.Traits)

	nothing, ok := p.Type("Nothing")
	require.True(t, ok)
	assert.Empty(t, nothing.Traits)
}

func TestDefineTypeRejectsMalformedName(t *testing.T) {
	p := ir.NewProtocol("Demo", "load-1")

	_, err := p.DefineType(ir.KindBitString, "lowercase", nil, nil)
	require.Error(t, err)

	var verr *ir.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, ir.CategoryNaming, verr.Category)
}

func TestDefineTypeRejectsCollisionWithType(t *testing.T) {
	p := ir.NewProtocol("Demo", "load-1")

	_, err := p.DefineType(ir.KindBitString, "Boolean", nil, nil)
	require.Error(t, err)
}

func TestDefineTypeRejectsCollisionWithTrait(t *testing.T) {
	p := ir.NewProtocol("Demo", "load-1")

	_, err := p.DefineType(ir.KindBitString, ir.TraitEquality, nil, nil)
	require.Error(t, err)
}

func TestDefineTraitRequiresLeadingSelf(t *testing.T) {
	p := ir.NewProtocol("Demo", "load-1")

	_, err := p.DefineTrait("Broken", []ir.Method{
		{Name: "oops", Params: nil, ReturnType: "Boolean"},
	})
	require.Error(t, err)

	var verr *ir.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, ir.CategoryShape, verr.Category)
}

func TestImplementMaterializesSelfType(t *testing.T) {
	p := ir.NewProtocol("Demo", "load-1")
	_, err := ir.DefineBitString(p, "Flag", 1)
	require.NoError(t, err)

	flag, ok := p.Type("Flag")
	require.True(t, ok)
	eq, ok := flag.Methods["equals"]
	require.True(t, ok)
	assert.Equal(t, "Boolean", eq.ReturnType)
	require.Len(t, eq.Params, 2)
	assert.Equal(t, "Flag", eq.Params[1].Type)
}

func TestImplementRejectsAlreadyImplemented(t *testing.T) {
	p := ir.NewProtocol("Demo", "load-1")
	_, err := ir.DefineBitString(p, "Flag", 1)
	require.NoError(t, err)

	err = p.Implement("Flag", []string{ir.TraitEquality})
	require.Error(t, err)
}

func TestImplementRejectsUnknownTrait(t *testing.T) {
	p := ir.NewProtocol("Demo", "load-1")
	_, err := ir.DefineBitString(p, "Flag", 1)
	require.NoError(t, err)

	err = p.Implement("Flag", []string{"NoSuchTrait"})
	require.Error(t, err)
}

func TestTypesPreservesDeclarationOrder(t *testing.T) {
	p := ir.NewProtocol("Demo", "load-1")
	_, err := ir.DefineBitString(p, "A", 1)
	require.NoError(t, err)
	_, err = ir.DefineBitString(p, "B", 1)
	require.NoError(t, err)

	types := p.Types()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.Name
	}
	assert.Equal(t, "A", names[len(names)-2])
	assert.Equal(t, "B", names[len(names)-1])
}
