package starkname

import (
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	cases := []struct {
		label string
		want  int64
	}{
		{"", 0},
		{"b", 1},
		{"ab", 38},
		{"a", 37},    // trailing zero-ordinal escape
		{"aa", 1406}, // 0 + 37*38
		{"ba", 1407},
		{"这", 75},
		{"来", 113},
		{"这b", 8663}, // rewritten to an even-length trailing run
	}
	for _, c := range cases {
		got, err := Encode(c.label)
		require.NoError(t, err, c.label)
		assert.Equal(t, big.NewInt(c.want), got, c.label)
	}
}

func TestEncodeFricoben(t *testing.T) {
	got, err := Encode("fricoben")
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(1499554868251), got)
}

func TestEncodeUnknownCharacter(t *testing.T) {
	v, err := Encode("fri$coben")
	assert.Nil(t, v, "no partial result on failure")

	var uc *UnknownCharacterError
	require.True(t, errors.As(err, &uc))
	assert.Equal(t, '$', uc.Char)

	// fail fast on the first offending rune
	_, err = Encode("f$i!c")
	require.True(t, errors.As(err, &uc))
	assert.Equal(t, '$', uc.Char)

	_, err = Encode("Fricoben")
	require.True(t, errors.As(err, &uc))
	assert.Equal(t, 'F', uc.Char)
}

func TestEncodeFieldBoundary(t *testing.T) {
	// 47 basic runes always fit one field element, 48 may not
	max, err := Encode(strings.Repeat("z", 47))
	require.NoError(t, err)
	assert.True(t, FitsField(max))

	over, err := Encode(strings.Repeat("z", 48))
	require.NoError(t, err, "encoding itself is unreduced and never fails on length")
	assert.False(t, FitsField(over))
	assert.Equal(t, strings.Repeat("z", 48), Decode(over), "round-trip holds beyond the field bound")
}

func TestTrailingBiasRoundTrip(t *testing.T) {
	a := Default()
	cases := []string{
		"ben",
		"这b",
		"x这b",
		"来",
		"x来",
		"x来来",
		"来来来",
		"x这",
		"来这b",
	}
	for _, c := range cases {
		biased := a.applyTrailingBias([]rune(c))
		assert.Equal(t, c, string(a.removeTrailingBias(biased)), c)
	}
}

func TestTrailingBiasRewrites(t *testing.T) {
	a := Default()
	assert.Equal(t, "x来来", string(a.applyTrailingBias([]rune("x这b"))))
	assert.Equal(t, "x来", string(a.applyTrailingBias([]rune("x来"))))
	assert.Equal(t, "x来来来", string(a.applyTrailingBias([]rune("x来来"))))
	assert.Equal(t, "xyz", string(a.applyTrailingBias([]rune("xyz"))))
}
