package starknet

import (
	"math/big"

	bCtx "github.com/starknet-id/goapi/base/ctx"
	"github.com/starknet-id/goapi/domain"
)

// Client is a read-only contract-call provider. It knows nothing about the
// naming protocol: callers hand it felt calldata and get felt results back.
type Client interface {
	Call(c bCtx.Ctx, chainId domain.ChainId, contract domain.Address, entrypoint string, calldata []*big.Int) ([]*big.Int, error)
}
