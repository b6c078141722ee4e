package repository

import (
	"time"

	"github.com/starknet-id/goapi/base/ctx"
	hcdomain "github.com/starknet-id/goapi/domain/healthcheck"
	"github.com/starknet-id/goapi/domain/keys"
	"github.com/starknet-id/goapi/service/redis"
)

type impl struct {
	redisCache redis.Service
}

// New creates new healthCheckUsecase object representation of HealthCheckUsecase interface
func New(
	redisCache redis.Service,
) hcdomain.HealthCheckRepo {
	return &impl{
		redisCache: redisCache,
	}
}

func (im *impl) PingDB(context ctx.Ctx) error {
	ctx, cancel := ctx.WithTimeout(context, 2*time.Second)
	defer cancel()
	if err := im.redisCache.Ping(ctx); err != nil {
		context.WithField("err", err).Error("ping redis error")
		return err
	}

	if err := im.redisCache.Set(ctx, keys.RedisKey(keys.PfxHealthCheck, "testset"), []byte("1"), 30*time.Second); err != nil {
		context.WithField("err", err).Error("test redis set failed")
		return err
	}
	return nil
}
