package main

import (
	"context"
	"flag"

	"github.com/IDebnath/dijkstra-s-shortest-path-implementation/pkg/engine"
	"github.com/IDebnath/dijkstra-s-shortest-path-implementation/pkg/http"
	"github.com/IDebnath/dijkstra-s-shortest-path-implementation/pkg/http/usecases"
	"github.com/IDebnath/dijkstra-s-shortest-path-implementation/pkg/logger"
	"github.com/IDebnath/dijkstra-s-shortest-path-implementation/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	useRateLimit   = flag.Bool("use_rate_limit", false, "enable the process-wide request rate limit")
	routeCacheSize = flag.Int("route_cache_size", 1<<16, "number of recent route results kept in the lru cache")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}

	if err := util.ReadConfig(); err != nil {
		logger.Warn("no config file found, using defaults", zap.Error(err))
	}
	viper.SetDefault("PLACE_FILE", "./data/Place.txt")
	viper.SetDefault("ROAD_FILE", "./data/Road.txt")

	routingEngine, err := engine.NewEngine(viper.GetString("PLACE_FILE"), viper.GetString("ROAD_FILE"), logger)
	if err != nil {
		panic(err)
	}

	routingService, err := usecases.NewRoutingService(logger, routingEngine, *routeCacheSize)
	if err != nil {
		panic(err)
	}

	api := http.NewServer(logger)

	ctx, cleanup, err := NewContext()
	if err != nil {
		panic(err)
	}
	api.Use(ctx,
		logger, *useRateLimit, routingService)

	signal := http.GracefulShutdown()

	logger.Info("Route Finder Server Stopped", zap.String("signal", signal.String()))
	cleanup()
}

func NewContext() (context.Context, func(), error) {
	ctx, cancel := context.WithCancel(context.Background())
	cb := func() {
		cancel()
	}

	return ctx, cb, nil
}
