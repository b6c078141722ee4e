package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/go-playground/validator/v10"
	"github.com/starknet-id/goapi/base/ctx"
	"github.com/starknet-id/goapi/base/database/redisclient"
	"github.com/starknet-id/goapi/base/log"
	"github.com/starknet-id/goapi/base/metrics"
	bValidator "github.com/starknet-id/goapi/base/validator"
	"github.com/starknet-id/goapi/domain"
	mmiddleware "github.com/starknet-id/goapi/middleware"
	"github.com/starknet-id/goapi/service/naming"
	"github.com/starknet-id/goapi/service/redis"
	"github.com/starknet-id/goapi/service/starknet"
	hc_delivery "github.com/starknet-id/goapi/stores/healthcheck/delivery/http"
	hc_repo "github.com/starknet-id/goapi/stores/healthcheck/repository"
	hc_usecase "github.com/starknet-id/goapi/stores/healthcheck/usecase"
	naming_delivery "github.com/starknet-id/goapi/stores/naming/delivery/http"
)

func init() {
	configFile := pflag.String("config", "infra/configs/config.yaml", "path of the config file")
	pflag.Parse()

	viper.SetConfigType("yaml")
	viper.SetConfigFile(*configFile)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init Redis service
	context.Info("init redis cache")
	redisCacheName := viper.GetString("redis_cache.name")
	redisCacheURI := viper.GetString("redis_cache.uri")
	redisCachePwd := viper.GetString("redis_cache.password")
	redisCachePoolMultiplier := viper.GetFloat64("redis_cache.poolMultiplier")
	redisCachePool := redisclient.MustConnectRedis(redisCacheURI, redisCachePwd, redisclient.RedisParam{
		PoolMultiplier: redisCachePoolMultiplier,
		Retry:          true,
	})
	redisCache := redis.New(redisCacheName, metrics.New(redisCacheName), &redis.Pools{
		Src: redisCachePool,
	})

	// init starknet rpc client and the naming contracts per network
	networks := viper.Sub("networks")
	keys := networks.AllSettings()
	rpcs := make(map[domain.ChainId]string)
	contracts := make(map[domain.ChainId]domain.Address)
	for k := range keys {
		chainId := domain.ChainId(networks.GetInt32(fmt.Sprintf("%s.chainId", k)))
		rpcs[chainId] = networks.GetString(fmt.Sprintf("%s.rpcUrl", k))
		contract := networks.GetString(fmt.Sprintf("%s.namingContract", k))
		contracts[chainId] = domain.Address(contract).ToLower()
	}
	starknetClient, err := starknet.NewClient(context, &starknet.ClientCfg{
		RpcUrls: rpcs,
	})
	if err != nil {
		context.WithField("err", err).Warn("starknet client started with error")
	}

	namingService := naming.New(starknetClient, contracts, redisCache)

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(redisCache)
	hc := hc_usecase.New(hcRepo)

	hc_delivery.New(e, hc)
	naming_delivery.New(e, namingService)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
