package lifesearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRuleTotalistic(t *testing.T) {
	r, err := ParseRule("B3/S23")
	require.NoError(t, err)
	assert.True(t, r.Totalistic())
	assert.Equal(t, "B3/S23", r.String())
}

func TestParseRuleTotalisticB0(t *testing.T) {
	r, err := ParseRule("B0238/S0125678")
	require.NoError(t, err)
	assert.True(t, r.B0())
}

func TestParseRuleNonTotalistic(t *testing.T) {
	r, err := ParseRule("B2n3/S23-a")
	require.NoError(t, err)
	assert.False(t, r.Totalistic())
}

func TestParseRuleRejectsGenerations(t *testing.T) {
	_, err := ParseRule("B3/S23/G3")
	assert.Error(t, err)
}

func TestParseRuleRejectsGarbage(t *testing.T) {
	_, err := ParseRule("not a rule")
	assert.Error(t, err)
}

func TestCharBufPushback(t *testing.T) {
	c := newCharBuf("ab")
	r, ok := c.next()
	require.True(t, ok)
	assert.Equal(t, 'a', r)
	c.push(r)
	r2, ok := c.next()
	require.True(t, ok)
	assert.Equal(t, 'a', r2)
	r3, ok := c.next()
	require.True(t, ok)
	assert.Equal(t, 'b', r3)
	_, ok = c.next()
	assert.False(t, ok)
}

func TestParseContextKeysNegation(t *testing.T) {
	c := newCharBuf("-c")
	masks, err := parseContextKeys(c, 2)
	require.NoError(t, err)
	table := isotropicKeys[2]
	var want []uint8
	for k, v := range table {
		if k != 'c' {
			want = append(want, v...)
		}
	}
	assert.ElementsMatch(t, want, masks)
}

func TestParseContextKeysNoModifierMeansAll(t *testing.T) {
	c := newCharBuf("")
	masks, err := parseContextKeys(c, 1)
	require.NoError(t, err)
	table := isotropicKeys[1]
	var want []uint8
	for _, v := range table {
		want = append(want, v...)
	}
	assert.ElementsMatch(t, want, masks)
}

func TestParseContextKeysBareRun(t *testing.T) {
	c := newCharBuf("c")
	masks, err := parseContextKeys(c, 2)
	require.NoError(t, err)
	assert.ElementsMatch(t, isotropicKeys[2]['c'], masks)
}
