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

	"github.com/GoSim-25-26J-441/biopax-network-mapper/config"
	httpapi "github.com/GoSim-25-26J-441/biopax-network-mapper/internal/api/http"
	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/bootstrap"
	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/db"
	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/logger"
	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/logger/console"
	cronjob "github.com/GoSim-25-26J-441/biopax-network-mapper/internal/pathway_mapping/cron"
	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/pathway_mapping/graph/export"
	biopaxhttp "github.com/GoSim-25-26J-441/biopax-network-mapper/internal/pathway_mapping/http"
	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/pathway_mapping/repository"
	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/pathway_mapping/style"
	"github.com/GoSim-25-26J-441/biopax-network-mapper/internal/storage/postgres"
)

const serviceName = "biopax-network-mapper"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Init(console.New(console.Params{}))
		logger.Fatal("invalid configuration", "error", err)
	}
	logger.Init(console.New(console.Params{Level: cfg.App.LogLevel, Prefix: "api"}))
	if !cfg.EnvFile {
		logger.Debug("no .env file found, using environment variables")
	}
	bootstrap.SetGinMode(cfg.App.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps := biopaxhttp.Deps{
		Styles:       style.NewCache(),
		DefaultRules: cfg.Mapping.SIFRules,
		MaxUpload:    cfg.UploadLimit(),
	}
	rdeps := bootstrap.RouterDeps{
		ServiceName:    serviceName,
		Version:        cfg.App.Version,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		RateLimitRPS:   cfg.Server.RateLimitRPS,
		RateLimitBurst: cfg.Server.RateLimitBurst,
	}
	purgers := map[string]cronjob.Purger{}

	// Postgres is optional: without it runs are not recorded.
	if sqlDB, err := postgres.NewConnection(ctx, &cfg.Database); err != nil {
		logger.Warn("run history disabled", "error", err)
	} else {
		defer sqlDB.Close()
		summaries := repository.NewSummaryRepository(sqlDB)
		if err := summaries.EnsureSchema(ctx); err != nil {
			logger.Fatal("failed to prepare summary table", "error", err)
		}
		deps.Summaries = summaries
		purgers["summaries"] = summaries
		rdeps.DB = summaries
	}
	if pool, err := db.Open(ctx, &cfg.Database); err != nil {
		logger.Warn("network storage disabled", "error", err)
	} else {
		defer pool.Close()
		store := repository.NewNetworkStore(pool.Pool)
		if err := store.EnsureSchema(ctx); err != nil {
			logger.Fatal("failed to prepare network table", "error", err)
		}
		deps.Networks = store
		purgers["networks"] = store
		if rdeps.DB == nil {
			rdeps.DB = pool.Pool
		}
	}

	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		defer rdb.Close()
		rdeps.Redis = httpapi.PingFunc(func(ctx context.Context) error { return rdb.Ping(ctx).Err() })
	}
	deps.Cache = repository.NewResultCache(rdb, cfg.Redis.CacheTTL)

	if cfg.Neo4j.URI != "" {
		neo, err := export.NewNeo4jExecutor(cfg.Neo4j.URI, cfg.Neo4j.User, cfg.Neo4j.Password, cfg.Neo4j.Database)
		if err != nil {
			logger.Fatal("failed to create neo4j driver", "error", err)
		}
		defer neo.Close(context.Background())
		if err := neo.Verify(ctx); err != nil {
			logger.Warn("neo4j unreachable, export disabled", "error", err)
		} else {
			deps.Neo4j = neo
		}
	}
	rdeps.BioPAX = deps

	if len(purgers) > 0 {
		sched := cronjob.NewRetentionScheduler(cfg.Mapping.RetentionDays, purgers)
		if err := sched.Start(cfg.Mapping.RetentionCron); err != nil {
			logger.Fatal("failed to start retention sweep", "error", err)
		}
		defer sched.Stop()
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           bootstrap.BuildRouter(rdeps),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Info("listening", "addr", srv.Addr, "env", cfg.App.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
	logger.Info("server stopped")
}
