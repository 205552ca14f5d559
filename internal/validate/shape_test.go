package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/protoir/protoir/internal/validate"
)

func TestShapeCheckAcceptsWellFormedEnvelope(t *testing.T) {
	doc := `{
		"construct": "Protocol",
		"name": "Demo",
		"definitions": [{"construct": "BitString", "name": "Byte", "size": 8}],
		"pdus": [{"type": "Byte"}]
	}`
	require.NoError(t, validate.ShapeCheck([]byte(doc)))
}

func TestShapeCheckRejectsWrongConstruct(t *testing.T) {
	doc := `{
		"construct": "NotAProtocol",
		"name": "Demo",
		"definitions": [],
		"pdus": []
	}`
	require.Error(t, validate.ShapeCheck([]byte(doc)))
}

func TestShapeCheckRejectsMissingTopLevelKeys(t *testing.T) {
	require.Error(t, validate.ShapeCheck([]byte(`{"construct": "Protocol"}`)))
}

func TestShapeCheckRejectsUnknownDefinitionConstruct(t *testing.T) {
	doc := `{
		"construct": "Protocol",
		"name": "Demo",
		"definitions": [{"construct": "NotAKind"}],
		"pdus": []
	}`
	require.Error(t, validate.ShapeCheck([]byte(doc)))
}

func TestShapeCheckRejectsInvalidJSON(t *testing.T) {
	err := validate.ShapeCheck([]byte(`not json`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not valid JSON")
}
