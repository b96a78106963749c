package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"adgate/internal/adapter/geoip"
	httpadapter "adgate/internal/adapter/http"
	"adgate/internal/adapter/memory"
	"adgate/internal/adapter/postgres"
	redisstore "adgate/internal/adapter/redis"
	"adgate/internal/adapter/usecase"
	"adgate/internal/blocklist"
	"adgate/internal/candidate"
	"adgate/internal/config"
	"adgate/internal/core/port"
	"adgate/internal/db"
	"adgate/internal/frequency"
	"adgate/internal/geo"
	"adgate/internal/givt"
	"adgate/internal/pacing"
	"adgate/internal/telemetry"
	"adgate/internal/yield"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP decisioning server",
	RunE:  runServe,
}

// runServe loads configuration, optionally runs database migrations,
// connects the stores, wires the pipeline and starts the HTTP server. On a
// termination signal it gracefully shuts the server down.
func runServe(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return fmt.Errorf("database connection: %w", err)
	}
	defer pool.Close()

	store, closeStore, err := openSharedStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	geoDB := geo.OpenFirst(cfg.GeoIP.Paths, openGeoIP, logger)
	resolver := geo.NewResolver(geoDB, store, logger)
	defer resolver.Close()

	svc, metrics, err := buildUseCase(cfg, pool, store, resolver, logger)
	if err != nil {
		return err
	}

	handler := httpadapter.NewHandler(svc, logger, httpadapter.WithMetrics(metrics, metrics.Handler()))
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      handler.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err = <-serveErr:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.WithoutCancel(ctx), cfg.HTTP.ShutdownTimeout)
	defer cancelShutdown()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		return err
	}
	logger.Info("server gracefully stopped")
	return nil
}

// openSharedStore connects Redis when configured and falls back to the
// in-process store otherwise.
func openSharedStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (port.SharedStore, func(), error) {
	if !cfg.Redis.Enabled() {
		logger.Warn("REDIS_ADDRESS not set, counters are local to this instance")
		store := memory.NewStore()
		go store.RunJanitor(ctx, cfg.Redis.JanitorInterval)
		return store, func() {}, nil
	}
	client, err := db.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		return nil, nil, fmt.Errorf("redis connection: %w", err)
	}
	logger.Info("redis connected", slog.String("addr", cfg.Redis.Addr))
	return redisstore.NewStore(client, cfg.Redis.Prefix), func() {
		if err := client.Close(); err != nil {
			logger.Error("redis close error", slog.Any("error", err))
		}
	}, nil
}

func openGeoIP(path string) (port.GeoDatabase, error) {
	r, err := geoip.Open(path)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func buildUseCase(cfg config.Config, pool *pgxpool.Pool, store port.SharedStore, resolver *geo.Resolver, logger *slog.Logger) (*usecase.MatchUseCase, *telemetry.Metrics, error) {
	rules := givt.DefaultRules()
	if cfg.Match.GIVTRulesFile != "" {
		var err error
		if rules, err = givt.LoadRules(cfg.Match.GIVTRulesFile); err != nil {
			return nil, nil, fmt.Errorf("givt rules: %w", err)
		}
	}
	filter, err := givt.New(store, store, rules, logger, givt.WithRateLimit(cfg.Match.GIVTRateLimit))
	if err != nil {
		return nil, nil, fmt.Errorf("givt rules: %w", err)
	}

	metrics := telemetry.New()
	analytics := postgres.NewAnalyticsSink(pool)
	ranker := yield.NewRanker(postgres.NewCTRSource(pool), store, logger,
		yield.WithTimeout(cfg.Match.RepoTimeout), yield.WithConcurrency(cfg.Match.Concurrency))

	svc := usecase.NewMatchUseCase(usecase.Deps{
		Candidates: candidate.NewLoader(postgres.NewCampaignRepository(pool), store, cfg.Match.CandidateTTL, logger),
		Publishers: postgres.NewPublisherRepository(pool),
		Cache:      store,
		Geo:        resolver,
		Pacer:      pacing.NewPacer(store, pacing.WithMode(pacing.Mode(cfg.Match.PacingMode))),
		Capper:     frequency.NewCapper(store, cfg.Match.FrequencyCap),
		Blocklist:  blocklist.New(postgres.NewBlocklistStore(pool), store, store, logger),
		GIVT:       filter,
		Ranker:     ranker,
		Sink:       telemetry.MultiSink{metrics, analytics},
		Stats:      analytics,
	}, usecase.Config{
		FrequencyCap: cfg.Match.FrequencyCap,
		StoreTimeout: cfg.Match.StoreTimeout,
		RepoTimeout:  cfg.Match.RepoTimeout,
		SinkTimeout:  cfg.Match.SinkTimeout,
		Concurrency:  cfg.Match.Concurrency,
		PublisherTTL: cfg.Match.PublisherTTL,
	}, logger)
	return svc, metrics, nil
}
