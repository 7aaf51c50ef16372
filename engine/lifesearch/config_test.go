package lifesearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransformStringRoundTrip(t *testing.T) {
	transforms := []Transform{Id, R90, R180, R270, FlipRow, FlipCol, FlipDiag, FlipAntidiag}
	for _, tr := range transforms {
		parsed, err := ParseTransform(tr.String())
		require.NoError(t, err)
		assert.Equal(t, tr, parsed)
	}
}

func TestTransformSquare(t *testing.T) {
	assert.True(t, R90.Square())
	assert.True(t, FlipDiag.Square())
	assert.False(t, Id.Square())
	assert.False(t, FlipRow.Square())
}

func TestParseTransformUnknown(t *testing.T) {
	_, err := ParseTransform("nope")
	assert.Error(t, err)
}

func TestSymmetryStringRoundTrip(t *testing.T) {
	symmetries := []Symmetry{C1, C2, C4, D2Row, D2Col, D2Diag, D2Antidiag, D4Ortho, D4Diag, D8}
	for _, s := range symmetries {
		parsed, err := ParseSymmetry(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}
}

func TestSymmetrySquare(t *testing.T) {
	assert.True(t, C4.Square())
	assert.True(t, D8.Square())
	assert.False(t, C1.Square())
	assert.False(t, D2Row.Square())
}

func TestSearchOrderParse(t *testing.T) {
	o, err := ParseSearchOrder("ColumnFirst")
	require.NoError(t, err)
	assert.Equal(t, ColumnFirst, o)

	o, err = ParseSearchOrder("")
	require.NoError(t, err)
	assert.Equal(t, Automatic, o)

	_, err = ParseSearchOrder("bogus")
	assert.Error(t, err)
}

func TestNewStateParse(t *testing.T) {
	n, err := ParseNewState("ChooseDead")
	require.NoError(t, err)
	assert.Equal(t, ChooseDead, n)

	n, err = ParseNewState("Random")
	require.NoError(t, err)
	assert.Equal(t, RandomState, n)

	_, err = ParseNewState("bogus")
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	base := Config{Width: 5, Height: 5, Period: 1, RuleString: "B3/S23"}
	assert.NoError(t, base.Validate())

	bad := base
	bad.Width = 0
	assert.Error(t, bad.Validate())

	squareOnly := base
	squareOnly.Width, squareOnly.Height = 5, 6
	squareOnly.Transform = R90
	assert.Error(t, squareOnly.Validate())

	negMax := base
	n := -1
	negMax.MaxCellCount = &n
	assert.Error(t, negMax.Validate())
}
