package diff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/protoir/protoir/internal/config"
	"github.com/protoir/protoir/internal/diff"
	"github.com/protoir/protoir/internal/ir"
	"github.com/protoir/protoir/internal/loader"
)

func mustLoad(t *testing.T, doc string) *ir.Protocol {
	t.Helper()
	p, err := loader.Load([]byte(doc), config.Default(), "load-1")
	require.NoError(t, err)
	return p
}

func TestCompareNoChanges(t *testing.T) {
	doc := `{
		"construct": "Protocol",
		"name": "Demo",
		"definitions": [{"construct": "BitString", "name": "Byte", "size": 8}],
		"pdus": [{"type": "Byte"}]
	}`
	base := mustLoad(t, doc)
	head := mustLoad(t, doc)

	result := diff.Compare(base, head)
	assert.Empty(t, result.Changes)
	assert.Equal(t, 0, result.BreakingCount)
}

func TestCompareDetectsRemovedTypeAndPDU(t *testing.T) {
	baseDoc := `{
		"construct": "Protocol",
		"name": "Demo",
		"definitions": [
			{"construct": "BitString", "name": "Byte", "size": 8},
			{"construct": "BitString", "name": "Word", "size": 16}
		],
		"pdus": [{"type": "Byte"}, {"type": "Word"}]
	}`
	headDoc := `{
		"construct": "Protocol",
		"name": "Demo",
		"definitions": [{"construct": "BitString", "name": "Byte", "size": 8}],
		"pdus": [{"type": "Byte"}]
	}`
	base := mustLoad(t, baseDoc)
	head := mustLoad(t, headDoc)

	result := diff.Compare(base, head)
	assert.Greater(t, result.BreakingCount, 0)

	var sawTypeRemoved, sawPDURemoved bool
	for _, c := range result.Sorted() {
		if c.Kind == diff.ChangeTypeRemoved {
			sawTypeRemoved = true
		}
		if c.Kind == diff.ChangePDURemoved {
			sawPDURemoved = true
		}
	}
	assert.True(t, sawTypeRemoved)
	assert.True(t, sawPDURemoved)
}

func TestCompareDetectsAddedTypeAsNonBreaking(t *testing.T) {
	baseDoc := `{
		"construct": "Protocol",
		"name": "Demo",
		"definitions": [{"construct": "BitString", "name": "Byte", "size": 8}],
		"pdus": [{"type": "Byte"}]
	}`
	headDoc := `{
		"construct": "Protocol",
		"name": "Demo",
		"definitions": [
			{"construct": "BitString", "name": "Byte", "size": 8},
			{"construct": "BitString", "name": "Word", "size": 16}
		],
		"pdus": [{"type": "Byte"}]
	}`
	base := mustLoad(t, baseDoc)
	head := mustLoad(t, headDoc)

	result := diff.Compare(base, head)
	assert.Equal(t, 0, result.BreakingCount)

	var sawTypeAdded bool
	for _, c := range result.Changes {
		if c.Kind == diff.ChangeTypeAdded {
			sawTypeAdded = true
			assert.Equal(t, diff.SeverityNonBreaking, c.Severity)
		}
	}
	assert.True(t, sawTypeAdded)
}
