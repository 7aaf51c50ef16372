package lifesearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func blinkerPattern() [][]State {
	// A vertical blinker in a 3x3 box, one step from horizontal.
	return [][]State{
		{Dead, Alive, Dead},
		{Dead, Alive, Dead},
		{Dead, Alive, Dead},
	}
}

func TestNewPlayerStepsBlinker(t *testing.T) {
	rule, err := ParseRule("B3/S23")
	require.NoError(t, err)
	p := NewPlayer(blinkerPattern(), rule, DefaultPlayerConfig())

	gen, ok := p.Step()
	assert.Equal(t, 1, gen)
	assert.True(t, ok)
	assert.Equal(t, Dead, p.current[0][1])
	assert.Equal(t, Alive, p.current[1][0])
	assert.Equal(t, Alive, p.current[1][1])
	assert.Equal(t, Alive, p.current[1][2])
	assert.Equal(t, Dead, p.current[2][1])
}

func TestPlayerNextStateBirth(t *testing.T) {
	rule, err := ParseRule("B3/S23")
	require.NoError(t, err)
	p := &Player{rule: rule}
	nbhd := [8]State{Alive, Alive, Alive, Dead, Dead, Dead, Dead, Dead}
	assert.Equal(t, Alive, p.nextState(Dead, nbhd))
}

func TestPlayerNextStateOverpopulationDeath(t *testing.T) {
	rule, err := ParseRule("B3/S23")
	require.NoError(t, err)
	p := &Player{rule: rule}
	nbhd := [8]State{Alive, Alive, Alive, Alive, Dead, Dead, Dead, Dead}
	assert.Equal(t, Dead, p.nextState(Alive, nbhd))
}

func TestPlayerNextStateSurvival(t *testing.T) {
	rule, err := ParseRule("B3/S23")
	require.NoError(t, err)
	p := &Player{rule: rule}
	nbhd := [8]State{Alive, Alive, Dead, Dead, Dead, Dead, Dead, Dead}
	assert.Equal(t, Alive, p.nextState(Alive, nbhd))
}

func TestPlayerCellAtBoundaryFixedIsDead(t *testing.T) {
	rule, err := ParseRule("B3/S23")
	require.NoError(t, err)
	p := NewPlayer(blinkerPattern(), rule, DefaultPlayerConfig())
	assert.Equal(t, Dead, p.cellAt(-1, -1))
	assert.Equal(t, Dead, p.cellAt(3, 3))
}

func TestPlayerCellAtBoundaryPeriodicWraps(t *testing.T) {
	rule, err := ParseRule("B3/S23")
	require.NoError(t, err)
	p := NewPlayer(blinkerPattern(), rule, DefaultPlayerConfig())
	p.boundary = BoundaryPeriodic
	assert.Equal(t, p.cellAt(0, 0), p.cellAt(3, 3))
}

func TestPlayerHandleSpaceTogglesPause(t *testing.T) {
	rule, err := ParseRule("B3/S23")
	require.NoError(t, err)
	p := NewPlayer(blinkerPattern(), rule, DefaultPlayerConfig())
	handled, err := p.Handle("space")
	require.NoError(t, err)
	assert.True(t, handled)
	assert.True(t, p.paused)

	gen, _ := p.Step()
	assert.Equal(t, 0, gen)
}

func TestPlayerHandleResetRestoresInitial(t *testing.T) {
	rule, err := ParseRule("B3/S23")
	require.NoError(t, err)
	p := NewPlayer(blinkerPattern(), rule, DefaultPlayerConfig())
	p.Step()
	handled, err := p.Handle("r")
	require.NoError(t, err)
	assert.True(t, handled)
	assert.Equal(t, 0, p.generation)
	assert.Equal(t, Alive, p.current[0][1])
}

func TestPlayerIsNeverFinished(t *testing.T) {
	rule, err := ParseRule("B3/S23")
	require.NoError(t, err)
	p := NewPlayer(blinkerPattern(), rule, DefaultPlayerConfig())
	assert.False(t, p.IsFinished())
}

func TestPlayerFromSearchSeedsGeneration0(t *testing.T) {
	cfg := Config{Width: 1, Height: 1, Period: 1, RuleString: "B3/S23"}
	s, err := NewSearch(cfg)
	require.NoError(t, err)
	p := PlayerFromSearch(s, DefaultPlayerConfig())
	assert.Equal(t, 1, p.width)
	assert.Equal(t, 1, p.height)
}
