package starknet

import (
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/crypto"
	gethrpc "github.com/ethereum/go-ethereum/rpc"
	"golang.org/x/xerrors"

	bCtx "github.com/starknet-id/goapi/base/ctx"
	"github.com/starknet-id/goapi/base/log"
	"github.com/starknet-id/goapi/domain"
)

var ErrUnsupportedChain = errors.New("unsupported chain")

// selectorMask keeps the low 250 bits of the keccak digest, per the
// starknet-keccak definition of entry point selectors.
var selectorMask = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 250), big.NewInt(1))

// Selector computes the starknet-keccak of an entry point name.
func Selector(name string) *big.Int {
	v := new(big.Int).SetBytes(crypto.Keccak256([]byte(name)))
	return v.And(v, selectorMask)
}

type ClientCfg struct {
	RpcUrls map[domain.ChainId]string
}

type clientImpl struct {
	clients map[domain.ChainId]*gethrpc.Client
}

func NewClient(ctx bCtx.Ctx, cfg *ClientCfg) (Client, error) {
	var anyerr error
	clients := make(map[domain.ChainId]*gethrpc.Client)
	for chainId, url := range cfg.RpcUrls {
		client, err := gethrpc.DialContext(ctx, url)
		if err != nil {
			anyerr = err
			ctx.WithFields(log.Fields{
				"err":     err,
				"chainId": chainId,
				"url":     url,
			}).Warn("failed to dial rpc")
			// soft warning, still let the server start
			continue
		}
		clients[chainId] = client
	}
	return &clientImpl{clients: clients}, anyerr
}

// callRequest is the function invocation shape of the starknet_call method.
type callRequest struct {
	ContractAddress    string   `json:"contract_address"`
	EntryPointSelector string   `json:"entry_point_selector"`
	Calldata           []string `json:"calldata"`
}

func (c *clientImpl) Call(ctx bCtx.Ctx, chainId domain.ChainId, contract domain.Address, entrypoint string, calldata []*big.Int) ([]*big.Int, error) {
	client, ok := c.clients[chainId]
	if !ok {
		return nil, ErrUnsupportedChain
	}

	req := callRequest{
		ContractAddress:    contract.ToLowerStr(),
		EntryPointSelector: "0x" + Selector(entrypoint).Text(16),
		Calldata:           make([]string, 0, len(calldata)),
	}
	for _, felt := range calldata {
		req.Calldata = append(req.Calldata, "0x"+felt.Text(16))
	}

	var raw []string
	if err := client.CallContext(ctx, &raw, "starknet_call", req, "latest"); err != nil {
		ctx.WithFields(log.Fields{
			"err":        err,
			"entrypoint": entrypoint,
			"contract":   contract,
			"chainId":    chainId,
		}).Error("starknet_call failed")
		return nil, xerrors.Errorf("starknet_call %s: %w", entrypoint, err)
	}

	out := make([]*big.Int, 0, len(raw))
	for _, h := range raw {
		v, err := domain.Address(h).Big()
		if err != nil {
			ctx.WithFields(log.Fields{
				"felt":       h,
				"entrypoint": entrypoint,
			}).Error("malformed felt in call result")
			return nil, domain.ErrInvalidContractResult
		}
		out = append(out, v)
	}
	return out, nil
}
