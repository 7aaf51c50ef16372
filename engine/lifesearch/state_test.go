package lifesearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateKnown(t *testing.T) {
	assert.False(t, Unknown.Known())
	assert.True(t, Alive.Known())
	assert.True(t, Dead.Known())
}

func TestStateOpposite(t *testing.T) {
	assert.Equal(t, Dead, Alive.Opposite())
	assert.Equal(t, Alive, Dead.Opposite())
	assert.Panics(t, func() { Unknown.Opposite() })
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "?", Unknown.String())
	assert.Equal(t, "O", Alive.String())
	assert.Equal(t, ".", Dead.String())
}

func TestReasonString(t *testing.T) {
	tests := []struct {
		name   string
		reason Reason
		want   string
	}{
		{"none", Reason{Kind: ReasonNone}, "None"},
		{"assume", Reason{Kind: ReasonAssume, AssumeIndex: 3}, "Assume(3)"},
		{"init", Reason{Kind: ReasonInit}, "Init"},
		{"deduce", Reason{Kind: ReasonDeduce, Source: 7}, "Deduce(from=7)"},
		{"symmetry", Reason{Kind: ReasonSymmetry, Source: 2}, "Symmetry(from=2)"},
		{"conflict", Reason{Kind: ReasonConflict}, "Conflict"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.reason.String())
		})
	}
}
