package naming

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/starknet-id/goapi/base/ctx"
	"github.com/starknet-id/goapi/domain"
	"github.com/starknet-id/goapi/service/cache"
	"github.com/starknet-id/goapi/service/cache/provider/primitive"
	"github.com/starknet-id/goapi/service/starknet/mocks"
)

const testContract = domain.Address("0x6ac597f8116f886fa1c97a23fa4e08299975ecaf6b598873ca6792b9bbfb678")

type namingSuite struct {
	suite.Suite

	ctx    ctx.Ctx
	client *mocks.Client
	im     *impl
}

func (s *namingSuite) SetupTest() {
	s.ctx = ctx.Background()
	s.client = &mocks.Client{}
	s.im = &impl{
		client: s.client,
		contracts: map[domain.ChainId]domain.Address{
			domain.ChainIdMainnet: testContract,
		},
		cache: cache.New(cache.ServiceConfig{
			Ttl:   time.Minute,
			Pfx:   "namingtest",
			Cache: primitive.NewPrimitive("namingtest", 1),
		}),
	}
}

func TestNamingSuite(t *testing.T) {
	suite.Run(t, new(namingSuite))
}

func (s *namingSuite) TestResolve() {
	owner := big.NewInt(0)
	owner.SetString("abcdef0123456789", 16)
	s.client.On("Call", mock.Anything, domain.ChainIdMainnet, testContract, "domain_to_address", mock.Anything).
		Return([]*big.Int{owner}, nil).Once()

	addr, err := s.im.Resolve(s.ctx, domain.ChainIdMainnet, "fricoben.stark")
	s.Require().NoError(err)
	s.Equal(domain.Address("0xabcdef0123456789"), addr)

	// second call is served from cache, the mock allows a single call only
	addr, err = s.im.Resolve(s.ctx, domain.ChainIdMainnet, "fricoben.stark")
	s.Require().NoError(err)
	s.Equal(domain.Address("0xabcdef0123456789"), addr)

	s.client.AssertExpectations(s.T())
}

func (s *namingSuite) TestResolveCalldata() {
	s.client.On("Call", mock.Anything, domain.ChainIdMainnet, testContract, "domain_to_address",
		[]*big.Int{big.NewInt(2), big.NewInt(38), big.NewInt(1)}).
		Return([]*big.Int{big.NewInt(7)}, nil).Once()

	addr, err := s.im.Resolve(s.ctx, domain.ChainIdMainnet, "ab.b.stark")
	s.Require().NoError(err)
	s.Equal(domain.Address("0x7"), addr)
}

func (s *namingSuite) TestResolveUnregistered() {
	s.client.On("Call", mock.Anything, domain.ChainIdMainnet, testContract, "domain_to_address", mock.Anything).
		Return([]*big.Int{big.NewInt(0)}, nil).Once()

	addr, err := s.im.Resolve(s.ctx, domain.ChainIdMainnet, "nobody.stark")
	s.Require().NoError(err)
	s.True(addr.IsEmpty())
}

func (s *namingSuite) TestResolveUnsupportedChain() {
	_, err := s.im.Resolve(s.ctx, domain.ChainId(42), "fricoben.stark")
	s.ErrorIs(err, domain.ErrResolutionNotSupported)
	s.client.AssertNotCalled(s.T(), "Call")
}

func (s *namingSuite) TestResolveInvalidName() {
	_, err := s.im.Resolve(s.ctx, domain.ChainIdMainnet, "Nope.stark")
	s.Error(err)
	s.client.AssertNotCalled(s.T(), "Call")
}

func (s *namingSuite) TestResolveMalformedResult() {
	s.client.On("Call", mock.Anything, domain.ChainIdMainnet, testContract, "domain_to_address", mock.Anything).
		Return([]*big.Int{big.NewInt(1), big.NewInt(2)}, nil).Once()

	_, err := s.im.Resolve(s.ctx, domain.ChainIdMainnet, "fricoben.stark")
	s.ErrorIs(err, domain.ErrInvalidContractResult)
}

func (s *namingSuite) TestReverseResolve() {
	addr := domain.Address("0x123")
	s.client.On("Call", mock.Anything, domain.ChainIdMainnet, testContract, "address_to_domain",
		[]*big.Int{big.NewInt(0x123)}).
		Return([]*big.Int{big.NewInt(1), big.NewInt(1499554868251)}, nil).Once()

	name, err := s.im.ReverseResolve(s.ctx, domain.ChainIdMainnet, addr)
	s.Require().NoError(err)
	s.Equal("fricoben.stark", name)

	// cached
	name, err = s.im.ReverseResolve(s.ctx, domain.ChainIdMainnet, addr)
	s.Require().NoError(err)
	s.Equal("fricoben.stark", name)

	s.client.AssertExpectations(s.T())
}

func (s *namingSuite) TestReverseResolveNoDomain() {
	s.client.On("Call", mock.Anything, domain.ChainIdMainnet, testContract, "address_to_domain", mock.Anything).
		Return([]*big.Int{big.NewInt(0)}, nil).Once()

	name, err := s.im.ReverseResolve(s.ctx, domain.ChainIdMainnet, domain.Address("0x456"))
	s.Require().NoError(err)
	s.Equal("", name)
}

func (s *namingSuite) TestReverseResolveCountMismatch() {
	s.client.On("Call", mock.Anything, domain.ChainIdMainnet, testContract, "address_to_domain", mock.Anything).
		Return([]*big.Int{big.NewInt(3), big.NewInt(1)}, nil).Once()

	_, err := s.im.ReverseResolve(s.ctx, domain.ChainIdMainnet, domain.Address("0x456"))
	s.ErrorIs(err, domain.ErrInvalidContractResult)
}

func (s *namingSuite) TestReverseResolveBadAddress() {
	_, err := s.im.ReverseResolve(s.ctx, domain.ChainIdMainnet, domain.Address("123"))
	s.ErrorIs(err, domain.ErrInvalidAddress)
	s.client.AssertNotCalled(s.T(), "Call")
}

func (s *namingSuite) TestBatchReverseResolve() {
	good := domain.Address("0x1")
	bad := domain.Address("0x2")
	s.client.On("Call", mock.Anything, domain.ChainIdMainnet, testContract, "address_to_domain",
		[]*big.Int{big.NewInt(1)}).
		Return([]*big.Int{big.NewInt(1), big.NewInt(1)}, nil).Once()
	s.client.On("Call", mock.Anything, domain.ChainIdMainnet, testContract, "address_to_domain",
		[]*big.Int{big.NewInt(2)}).
		Return(nil, domain.ErrInvalidContractResult).Once()

	res, err := s.im.BatchReverseResolve(s.ctx, domain.ChainIdMainnet, []domain.Address{good, bad})
	s.Require().NoError(err)
	s.Equal("b.stark", res[good])
	// failed entries degrade to the empty string
	s.Equal("", res[bad])
	s.Len(res, 2)
}

func (s *namingSuite) TestBatchReverseResolveEmpty() {
	res, err := s.im.BatchReverseResolve(s.ctx, domain.ChainIdMainnet, nil)
	s.Require().NoError(err)
	s.Empty(res)

	_, err = s.im.BatchReverseResolve(s.ctx, domain.ChainId(42), nil)
	s.ErrorIs(err, domain.ErrResolutionNotSupported)
}

func TestNewBuildsCacheChain(t *testing.T) {
	// redis layer is exercised in integration, here we only assert wiring
	// does not panic with a nil-free construction
	client := &mocks.Client{}
	svc := New(client, map[domain.ChainId]domain.Address{domain.ChainIdMainnet: testContract}, nil)
	require.NotNil(t, svc)
}
