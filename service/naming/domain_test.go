package naming

import (
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starknet-id/goapi/base/starkname"
	"github.com/starknet-id/goapi/domain"
)

func TestEncodeDomain(t *testing.T) {
	felts, err := EncodeDomain("fricoben.stark")
	require.NoError(t, err)
	require.Len(t, felts, 1)
	assert.Equal(t, "1499554868251", felts[0].String())

	// suffix is optional
	bare, err := EncodeDomain("fricoben")
	require.NoError(t, err)
	require.Len(t, bare, 1)
	assert.Equal(t, felts[0], bare[0])
}

func TestEncodeDomainSubdomain(t *testing.T) {
	felts, err := EncodeDomain("ab.b.stark")
	require.NoError(t, err)
	require.Len(t, felts, 2)
	assert.Equal(t, int64(38), felts[0].Int64())
	assert.Equal(t, int64(1), felts[1].Int64())
}

func TestEncodeDomainEmpty(t *testing.T) {
	felts, err := EncodeDomain("")
	require.NoError(t, err)
	assert.Empty(t, felts)

	felts, err = EncodeDomain(".stark")
	require.NoError(t, err)
	assert.Empty(t, felts)
}

func TestEncodeDomainUnknownCharacter(t *testing.T) {
	_, err := EncodeDomain("Invalid.stark")
	var ucErr *starkname.UnknownCharacterError
	require.True(t, errors.As(err, &ucErr))
	assert.Equal(t, 'I', ucErr.Char)
}

func TestEncodeDomainTooLong(t *testing.T) {
	// 48 base-37 digits of maximum weight overflow the field
	_, err := EncodeDomain(strings.Repeat("z", 48) + ".stark")
	assert.ErrorIs(t, err, domain.ErrInvalidDomain)

	felts, err := EncodeDomain(strings.Repeat("z", 47) + ".stark")
	require.NoError(t, err)
	assert.Len(t, felts, 1)
}

func TestDecodeDomain(t *testing.T) {
	assert.Equal(t, "", DecodeDomain(nil))
	assert.Equal(t, "", DecodeDomain([]*big.Int{}))
	assert.Equal(t, "fricoben.stark", DecodeDomain([]*big.Int{big.NewInt(1499554868251)}))
	assert.Equal(t, "ab.b.stark", DecodeDomain([]*big.Int{big.NewInt(38), big.NewInt(1)}))
}

func TestDomainRoundTrip(t *testing.T) {
	for _, name := range []string{
		"b.stark",
		"fricoben.stark",
		"ab.b.stark",
		"a.stark",
		"这来.stark",
		"x.y.z.stark",
	} {
		felts, err := EncodeDomain(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, DecodeDomain(felts), name)
	}
}
