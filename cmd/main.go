// Package main runs the investment ledger API.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/go-petr/pet-invest/cmd/httpserver"
	"github.com/go-petr/pet-invest/internal/maturityjob"
	"github.com/go-petr/pet-invest/internal/middleware"
	"github.com/go-petr/pet-invest/pkg/configpkg"
	"github.com/go-petr/pet-invest/pkg/dbpkg"

	_ "github.com/lib/pq"
)

const shutdownTimeout = 10 * time.Second

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.CreateLogger(config)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := dbpkg.Setup(config.DBDriver, config.DBSource)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot connect to database")
	}
	defer db.Close()

	var rdb *redis.Client
	if config.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: config.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Fatal().Err(err).Str("addr", config.RedisAddr).Msg("cannot connect to redis")
		}
		defer rdb.Close()
	}

	server, err := httpserver.New(db, rdb, logger, config)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create server")
	}

	if config.MaturitySweepSchedule != "" {
		scheduler, err := maturityjob.NewScheduler(config.MaturitySweepSchedule, server.Sweeper, logger)
		if err != nil {
			logger.Fatal().Err(err).Msg("cannot schedule maturity sweep")
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	srv := &http.Server{
		Addr:              config.ServerAddress,
		Handler:           server,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("cannot shut down server")
		}
	}()

	logger.Info().Str("addr", config.ServerAddress).Msg("INVEST API SERVER HAS STARTED")

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal().Err(err).Msg("cannot start server")
	}

	logger.Info().Msg("INVEST API SERVER HAS STOPPED")
}
