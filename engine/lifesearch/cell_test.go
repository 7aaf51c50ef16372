package lifesearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCellDefaults(t *testing.T) {
	c := newCell(Coord{X: 1, Y: 2, T: 3}, Dead)
	assert.Equal(t, Coord{1, 2, 3}, c.Coord)
	assert.Equal(t, Dead, c.Background)
	assert.Equal(t, Dead, c.State)
	assert.Equal(t, noCell, c.Pred)
	assert.Equal(t, noCell, c.Succ)
	assert.True(t, c.Free)
	assert.Equal(t, -1, c.Level)
	for _, n := range c.Nbhd {
		assert.Equal(t, noCell, n)
	}
	assert.Empty(t, c.Sym)
}
