package naming

import (
	"math/big"
	"strconv"
	"time"

	"github.com/viney-shih/goroutines"

	"github.com/starknet-id/goapi/base/ctx"
	"github.com/starknet-id/goapi/base/log"
	"github.com/starknet-id/goapi/domain"
	"github.com/starknet-id/goapi/domain/keys"
	"github.com/starknet-id/goapi/service/cache"
	compoundcache "github.com/starknet-id/goapi/service/cache/compoundCache"
	"github.com/starknet-id/goapi/service/cache/provider/primitive"
	redisCache "github.com/starknet-id/goapi/service/cache/provider/redis"
	"github.com/starknet-id/goapi/service/redis"
	"github.com/starknet-id/goapi/service/starknet"
)

const batchConcurrency = 10

type impl struct {
	client    starknet.Client
	contracts map[domain.ChainId]domain.Address
	cache     cache.Service
}

func New(client starknet.Client, contracts map[domain.ChainId]domain.Address, redis redis.Service) Naming {
	return &impl{
		client:    client,
		contracts: contracts,
		cache: compoundcache.NewCompoundCache([]cache.Service{
			cache.New(cache.ServiceConfig{
				Ttl:   30 * time.Second,
				Pfx:   keys.PfxNaming,
				Cache: primitive.NewPrimitive("naming", 512),
			}),
			cache.New(cache.ServiceConfig{
				Ttl:   10 * time.Minute,
				Pfx:   keys.PfxNaming,
				Cache: redisCache.NewRedis(redis),
			}),
		}),
	}
}

func (im *impl) contract(chainId domain.ChainId) (domain.Address, error) {
	contract, ok := im.contracts[chainId]
	if !ok {
		return "", domain.ErrResolutionNotSupported
	}
	return contract, nil
}

func (im *impl) Resolve(c ctx.Ctx, chainId domain.ChainId, name string) (domain.Address, error) {
	contract, err := im.contract(chainId)
	if err != nil {
		return "", err
	}

	felts, err := EncodeDomain(name)
	if err != nil {
		return "", err
	}

	res := domain.Address("")
	key := keys.RedisKey("resolve", strconv.Itoa(int(chainId)), name)
	err = im.cache.GetByFunc(c, key, &res, func() (interface{}, error) {
		calldata := append([]*big.Int{big.NewInt(int64(len(felts)))}, felts...)
		result, err := im.client.Call(c, chainId, contract, "domain_to_address", calldata)
		if err != nil {
			c.WithFields(log.Fields{
				"err":  err,
				"name": name,
			}).Error("failed to call domain_to_address")
			return nil, err
		}
		if len(result) != 1 {
			return nil, domain.ErrInvalidContractResult
		}
		if result[0].Sign() == 0 {
			// unregistered
			val := domain.Address("")
			return &val, nil
		}
		val := domain.AddressFromFelt(result[0])
		return &val, nil
	})

	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
		}).Error("failed to cache.GetByFunc")
		return "", err
	}

	return res, nil
}

func (im *impl) ReverseResolve(c ctx.Ctx, chainId domain.ChainId, address domain.Address) (string, error) {
	contract, err := im.contract(chainId)
	if err != nil {
		return "", err
	}

	addr, err := address.Big()
	if err != nil {
		return "", err
	}

	res := ""
	key := keys.RedisKey("reverse-resolve", strconv.Itoa(int(chainId)), address.ToLowerStr())
	err = im.cache.GetByFunc(c, key, &res, func() (interface{}, error) {
		result, err := im.client.Call(c, chainId, contract, "address_to_domain", []*big.Int{addr})
		if err != nil {
			c.WithFields(log.Fields{
				"err":     err,
				"address": address,
			}).Error("failed to call address_to_domain")
			return nil, err
		}
		felts, err := domainFromResult(result)
		if err != nil {
			return nil, err
		}
		val := DecodeDomain(felts)
		return &val, nil
	})

	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
		}).Error("failed to cache.GetByFunc")
		return "", err
	}

	return res, nil
}

func (im *impl) BatchReverseResolve(c ctx.Ctx, chainId domain.ChainId, addresses []domain.Address) (map[domain.Address]string, error) {
	if _, err := im.contract(chainId); err != nil {
		return nil, err
	}

	res := make(map[domain.Address]string, len(addresses))
	if len(addresses) == 0 {
		return res, nil
	}

	type entry struct {
		address domain.Address
		name    string
	}

	b := goroutines.NewBatch(batchConcurrency, goroutines.WithBatchSize(len(addresses)))
	defer b.Close()
	for _, address := range addresses {
		address := address
		b.Queue(func() (interface{}, error) {
			name, err := im.ReverseResolve(c, chainId, address)
			if err != nil {
				c.WithFields(log.Fields{
					"err":     err,
					"address": address,
				}).Warn("failed to ReverseResolve")
				name = ""
			}
			return entry{address, name}, nil
		})
	}
	b.QueueComplete()

	for ret := range b.Results() {
		if ret.Error() != nil {
			continue
		}
		e := ret.Value().(entry)
		res[e.address] = e.name
	}
	return res, nil
}

// domainFromResult validates the [count, label felts...] shape returned by
// address_to_domain.
func domainFromResult(result []*big.Int) ([]*big.Int, error) {
	if len(result) == 0 {
		return nil, domain.ErrInvalidContractResult
	}
	count := result[0]
	if !count.IsInt64() || count.Int64() != int64(len(result)-1) {
		return nil, domain.ErrInvalidContractResult
	}
	return result[1:], nil
}
