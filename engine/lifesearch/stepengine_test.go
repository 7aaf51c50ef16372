package lifesearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telepair/lifesearch/pkg/ui"
)

func TestSearchViewStepDrivesSearchToExhausted(t *testing.T) {
	cfg := Config{Width: 1, Height: 1, Period: 1, RuleString: "B3/S23"}
	s, err := NewSearch(cfg)
	require.NoError(t, err)
	e := NewSearchView(s, 0, DefaultPlayerConfig())

	_, more := e.Step()
	assert.False(t, more)
	assert.True(t, e.IsFinished())
}

func TestSearchViewPausedStepDoesNotAdvance(t *testing.T) {
	cfg := Config{Width: 3, Height: 3, Period: 1, RuleString: "B3/S23"}
	s, err := NewSearch(cfg)
	require.NoError(t, err)
	e := NewSearchView(s, 0, DefaultPlayerConfig())

	handled, err := e.Handle("space")
	require.NoError(t, err)
	assert.True(t, handled)

	conflicts, more := e.Step()
	assert.Equal(t, 0, conflicts)
	assert.True(t, more)
	assert.Equal(t, StatusSearching, s.Status)
}

func TestSearchViewHandleUnknownKeyIsUnhandled(t *testing.T) {
	cfg := Config{Width: 3, Height: 3, Period: 1, RuleString: "B3/S23"}
	s, err := NewSearch(cfg)
	require.NoError(t, err)
	e := NewSearchView(s, 0, DefaultPlayerConfig())
	handled, err := e.Handle("z")
	require.NoError(t, err)
	assert.False(t, handled)
}

func TestSearchViewStatusReportsSearchState(t *testing.T) {
	cfg := Config{Width: 3, Height: 3, Period: 1, RuleString: "B3/S23"}
	s, err := NewSearch(cfg)
	require.NoError(t, err)
	e := NewSearchView(s, 0, DefaultPlayerConfig())
	statuses := e.Status(ui.English)
	require.Len(t, statuses, 4)
	assert.Equal(t, "Status", statuses[0].Label)
	assert.Equal(t, "Searching", statuses[0].Value)
}

func TestSearchViewIsFinishedReflectsStatus(t *testing.T) {
	cfg := Config{Width: 1, Height: 1, Period: 1, RuleString: "B3/S23"}
	s, err := NewSearch(cfg)
	require.NoError(t, err)
	e := NewSearchView(s, 0, DefaultPlayerConfig())
	assert.False(t, e.IsFinished())
	e.Step()
	assert.True(t, e.IsFinished())
}
