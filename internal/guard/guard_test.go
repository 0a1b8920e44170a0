package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowUnlimited(t *testing.T) {
	g := New(0, 0)
	for i := 0; i < 100; i++ {
		require.NoError(t, g.Allow("list-containers"))
	}
}

func TestMaxTotalPerTool(t *testing.T) {
	g := New(2, 0)
	require.NoError(t, g.Allow("list-containers"))
	require.NoError(t, g.Allow("list-containers"))

	err := g.Allow("list-containers")
	assert.ErrorIs(t, err, ErrLimited)

	// Counters are per tool.
	assert.NoError(t, g.Allow("get-container-stats"))
}

func TestRatePerMinute(t *testing.T) {
	g := New(0, 2)
	require.NoError(t, g.Allow("list-containers"))
	require.NoError(t, g.Allow("list-containers"))

	// Burst is exhausted and a 2/min rate refills far too slowly for this test.
	err := g.Allow("list-containers")
	assert.ErrorIs(t, err, ErrLimited)
}
