package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/golazo-app/golazo-api/external/sofascore"
	"github.com/golazo-app/golazo-api/internal/config"
	"github.com/golazo-app/golazo-api/internal/domain/snapshot"
	"github.com/golazo-app/golazo-api/internal/infrastructure/repository/memory"
	"github.com/golazo-app/golazo-api/internal/infrastructure/repository/postgres"
	"github.com/golazo-app/golazo-api/internal/interfaces/httpapi"
	"github.com/golazo-app/golazo-api/internal/platform/cache"
	"github.com/golazo-app/golazo-api/internal/platform/logging"
	"github.com/golazo-app/golazo-api/internal/platform/resilience"
	"github.com/golazo-app/golazo-api/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	_ "github.com/lib/pq"
)

// NewHTTPServer wires the configured snapshot store, the upstream
// client and the services into a ready-to-listen server. The returned
// cleanup stops the warm loop and closes the database connection.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func(), error) {
	snapshots, closeStore, err := newSnapshotRepository(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	client := sofascore.NewClient(sofascore.ClientConfig{
		BaseURL:    cfg.SofaScoreBaseURL,
		UserAgent:  cfg.SofaScoreUserAgent,
		Timeout:    cfg.SofaScoreTimeout,
		MaxRetries: cfg.SofaScoreMaxRetries,
		Logger:     logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:        cfg.SofaScoreCircuitEnabled,
			TripThreshold:  cfg.SofaScoreCircuitFailureCount,
			Cooldown:       cfg.SofaScoreCircuitOpenTimeout,
			HalfOpenProbes: cfg.SofaScoreCircuitHalfOpenMaxReq,
		},
	})

	matchSvc := usecase.NewMatchService(client, logger)
	tournamentSvc := usecase.NewTournamentService(
		client,
		snapshots,
		cache.NewStore(cfg.TournamentCacheTTL),
		cfg.TournamentCacheTTL,
		logger,
	)
	detailSvc := usecase.NewDetailService(
		client,
		snapshots,
		cfg.MatchDetailCacheTTL,
		cfg.FoulCardMatchWindow,
		logger,
	)
	warmupSvc := usecase.NewWarmupService(matchSvc, detailSvc, cfg.WarmMaxWorkers, logger)

	handler := httpapi.NewHandler(matchSvc, tournamentSvc, detailSvc, warmupSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		closeStore()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	warmCtx, stopWarm := context.WithCancel(context.Background())
	if cfg.WarmEnabled {
		go runWarmLoop(warmCtx, warmupSvc, cfg.WarmInterval, logger)
	}

	cleanup := func() {
		stopWarm()
		closeStore()
	}

	return server, cleanup, nil
}

func newSnapshotRepository(cfg config.Config, logger *logging.Logger) (snapshot.Repository, func(), error) {
	switch cfg.SnapshotStore {
	case config.SnapshotStorePostgres:
		db, err := otelsqlx.Connect("postgres",
			normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary),
			otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
			otelsql.WithQueryFormatter(formatDBQueryForTrace),
		)
		if err != nil {
			return nil, nil, fmt.Errorf("connect snapshot database: %w", err)
		}
		closeDB := func() {
			if closeErr := db.Close(); closeErr != nil {
				logger.Warn("close snapshot database failed", "error", closeErr)
			}
		}
		return postgres.NewSnapshotRepository(db), closeDB, nil
	default:
		return memory.NewSnapshotRepository(), func() {}, nil
	}
}

// runWarmLoop keeps today's match-detail snapshots hot. It warms once
// at startup and then on every tick until the context is cancelled.
func runWarmLoop(ctx context.Context, warmup *usecase.WarmupService, interval time.Duration, logger *logging.Logger) {
	warmToday(ctx, warmup, logger)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			warmToday(ctx, warmup, logger)
		}
	}
}

func warmToday(ctx context.Context, warmup *usecase.WarmupService, logger *logging.Logger) {
	date := time.Now().UTC().Format("2006-01-02")
	if _, err := warmup.WarmDate(ctx, date); err != nil {
		logger.WarnContext(ctx, "warm loop iteration failed", "date", date, "error", err)
	}
}
