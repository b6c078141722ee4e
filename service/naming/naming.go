package naming

import (
	"github.com/starknet-id/goapi/base/ctx"
	"github.com/starknet-id/goapi/domain"
)

// Naming resolves starknet.id domains against the naming contract of each
// configured network.
type Naming interface {
	// Resolve returns the address owning a domain, or the empty address
	// when the domain is unregistered.
	Resolve(c ctx.Ctx, chainId domain.ChainId, name string) (domain.Address, error)
	// ReverseResolve returns the domain of an address, or the empty string
	// when the address has none.
	ReverseResolve(c ctx.Ctx, chainId domain.ChainId, address domain.Address) (string, error)
	// BatchReverseResolve reverse resolves many addresses concurrently,
	// degrading failed entries to the empty string.
	BatchReverseResolve(c ctx.Ctx, chainId domain.ChainId, addresses []domain.Address) (map[domain.Address]string, error)
}
