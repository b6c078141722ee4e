package starkname

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	cases := []struct {
		value int64
		want  string
	}{
		{0, ""},
		{1, "b"},
		{37, "a"},
		{38, "ab"},
		{1406, "aa"},
		{1407, "ba"},
		{75, "这"},
		{113, "来"},
		{8663, "这b"},
		{1499554868251, "fricoben"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Decode(big.NewInt(c.value)), "decode(%d)", c.value)
	}
}

func TestDecodeNonPositive(t *testing.T) {
	assert.Equal(t, "", Decode(nil))
	assert.Equal(t, "", Decode(big.NewInt(-1499554868251)))
}

// decode is total: any representable value terminates with some string.
func TestDecodeTotality(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for i := 0; i < 2000; i++ {
		v := new(big.Int).Rand(rnd, FieldPrime)
		assert.NotPanics(t, func() { Decode(v) }, "decode(%s)", v)
	}
	// values beyond the field bound still decode
	huge := new(big.Int).Lsh(FieldPrime, 13)
	assert.NotPanics(t, func() { Decode(huge) })
}

func TestRoundTrip(t *testing.T) {
	labels := []string{
		"",
		"a",
		"aa",
		"aaa",
		"b",
		"ben",
		"fricoben",
		"th0rgal",
		"with-dash",
		"0123456789",
		"这",
		"来",
		"来来",
		"这b",
		"x这b",
		"这这b",
		"来这来",
		"ben这",
		"ben来",
		"ben来来a",
	}
	for _, label := range labels {
		v, err := Encode(label)
		require.NoError(t, err, label)
		assert.Equal(t, label, Decode(v), label)
	}
}

func TestRoundTripRandom(t *testing.T) {
	alphabet := []rune(defaultBasic + defaultExtended)
	rnd := rand.New(rand.NewSource(42))
	for i := 0; i < 5000; i++ {
		n := rnd.Intn(31)
		runes := make([]rune, n)
		for j := range runes {
			runes[j] = alphabet[rnd.Intn(len(alphabet))]
		}
		label := string(runes)
		v, err := Encode(label)
		require.NoError(t, err, label)
		assert.Equal(t, label, Decode(v), label)
	}
}

func TestInjectivityRandom(t *testing.T) {
	alphabet := []rune(defaultBasic + defaultExtended)
	rnd := rand.New(rand.NewSource(1337))
	seen := map[string]string{}
	for i := 0; i < 5000; i++ {
		n := rnd.Intn(16)
		runes := make([]rune, n)
		for j := range runes {
			runes[j] = alphabet[rnd.Intn(len(alphabet))]
		}
		label := string(runes)
		v, err := Encode(label)
		require.NoError(t, err, label)
		if prev, ok := seen[v.String()]; ok {
			assert.Equal(t, prev, label, "two labels collided on %s", v)
			continue
		}
		seen[v.String()] = label
	}
}
