package lifesearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayAllUnknown(t *testing.T) {
	cfg := Config{Width: 2, Height: 2, Period: 1, RuleString: "B3/S23"}
	w, err := NewWorld(cfg)
	require.NoError(t, err)
	assert.Equal(t, "??$??$!", w.Display(0))
}

func TestDisplayReflectsKnownCells(t *testing.T) {
	cfg := Config{Width: 2, Height: 1, Period: 1, RuleString: "B3/S23"}
	w, err := NewWorld(cfg)
	require.NoError(t, err)
	idx := w.index(0, 0, 0)
	require.True(t, w.Cells[idx].Free)
	w.Cells[idx].State = Alive
	assert.Equal(t, "O?$!", w.Display(0))
}

func TestSearchStatsStartsAtZero(t *testing.T) {
	cfg := Config{Width: 3, Height: 3, Period: 1, RuleString: "B3/S23"}
	s, err := NewSearch(cfg)
	require.NoError(t, err)
	stats := s.Stats()
	assert.Equal(t, 0, stats.Conflicts)
	assert.Equal(t, 0, stats.Depth)
}

func TestExplainOutOfRange(t *testing.T) {
	cfg := Config{Width: 3, Height: 3, Period: 1, RuleString: "B3/S23"}
	s, err := NewSearch(cfg)
	require.NoError(t, err)
	assert.Equal(t, "out of range", s.Explain(100, 100, 0))
}

func TestExplainUnknown(t *testing.T) {
	cfg := Config{Width: 3, Height: 3, Period: 1, RuleString: "B3/S23"}
	s, err := NewSearch(cfg)
	require.NoError(t, err)
	assert.Equal(t, "Unknown", s.Explain(0, 0, 0))
}

func TestExplainKnownCellShowsReason(t *testing.T) {
	cfg := Config{Width: 3, Height: 3, Period: 1, RuleString: "B3/S23"}
	s, err := NewSearch(cfg)
	require.NoError(t, err)
	// The border is fixed Dead with ReasonInit during world construction.
	assert.Equal(t, ". Init", s.Explain(-1, -1, 0))
}
