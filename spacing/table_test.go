package spacing_test

import (
	"testing"

	"github.com/katalvlaran/lgraphlayout/spacing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type kind int

const (
	kindNormal kind = iota
	kindDummy
)

func TestNewTableRejectsNegativeSpacing(t *testing.T) {
	d := spacing.DefaultDefaults()
	d.NodeNode = -1
	_, err := spacing.NewTable[kind](d, nil)
	require.ErrorIs(t, err, spacing.ErrNegativeSpacing)
}

func TestTableOverridesSupersedeDefaults(t *testing.T) {
	d := spacing.DefaultDefaults()
	overrides := map[kind]spacing.Defaults{
		kindDummy: {NodeNode: 1, NodeNodeBetweenLayers: 2},
	}
	tbl, err := spacing.NewTable(d, overrides)
	require.NoError(t, err)

	assert.Equal(t, float64(1), tbl.IntraTypeVertical(kindDummy))
	assert.Equal(t, d.NodeNode, tbl.IntraTypeVertical(kindNormal))

	h, v := tbl.IntraType(kindDummy)
	assert.Equal(t, float64(2), h)
	assert.Equal(t, float64(1), v)
}

func TestInterTypeTakesMax(t *testing.T) {
	d := spacing.DefaultDefaults()
	overrides := map[kind]spacing.Defaults{
		kindDummy: {NodeNode: d.NodeNode + 50, NodeNodeBetweenLayers: d.NodeNodeBetweenLayers + 50},
	}
	tbl, err := spacing.NewTable(d, overrides)
	require.NoError(t, err)

	assert.Equal(t, d.NodeNode+50, tbl.InterTypeVertical(kindNormal, kindDummy))

	h, v := tbl.InterType(kindNormal, kindDummy)
	assert.Equal(t, d.NodeNodeBetweenLayers+50, h)
	assert.Equal(t, d.NodeNode+50, v)
}
