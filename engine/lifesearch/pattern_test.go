package lifesearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlaintextBlock(t *testing.T) {
	data := []byte(".O.$.O.$.O.!")
	rows, err := ParsePlaintext(data)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []State{Dead, Alive, Dead}, rows[0])
	assert.Equal(t, []State{Dead, Alive, Dead}, rows[1])
	assert.Equal(t, []State{Dead, Alive, Dead}, rows[2])
}

func TestParsePlaintextSkipsComments(t *testing.T) {
	data := []byte("# a blinker$.O.$.O.$.O.!")
	rows, err := ParsePlaintext(data)
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestParsePlaintextQuestionMarkIsUnknown(t *testing.T) {
	data := []byte("?O.!")
	rows, err := ParsePlaintext(data)
	require.NoError(t, err)
	assert.Equal(t, []State{Unknown, Alive, Dead}, rows[0])
}

func TestParsePlaintextRejectsUnknownChar(t *testing.T) {
	_, err := ParsePlaintext([]byte("X!"))
	assert.Error(t, err)
}

func TestParsePlaintextRejectsEmpty(t *testing.T) {
	_, err := ParsePlaintext([]byte("!"))
	assert.Error(t, err)
}

func TestParsePlaintextRejectsRaggedRows(t *testing.T) {
	_, err := ParsePlaintext([]byte(".O.$.O!"))
	assert.Error(t, err)
}
