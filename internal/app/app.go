package app

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/yungbote/dinocatalog-backend/internal/data/db"
	catalogrepo "github.com/yungbote/dinocatalog-backend/internal/data/repos/catalog"
	"github.com/yungbote/dinocatalog-backend/internal/data/seed"
	"github.com/yungbote/dinocatalog-backend/internal/http"
	httpH "github.com/yungbote/dinocatalog-backend/internal/http/handlers"
	"github.com/yungbote/dinocatalog-backend/internal/observability"
	"github.com/yungbote/dinocatalog-backend/internal/platform/logger"
	"github.com/yungbote/dinocatalog-backend/internal/services"
)

type App struct {
	Log     *logger.Logger
	Cfg     Config
	DB      *db.Service
	Store   catalogrepo.SeededStore
	Catalog services.CatalogService
	Metrics *observability.Metrics
	Server  *http.Server

	migrate      func(context.Context) error
	otelShutdown func(context.Context) error
}

// New builds the object graph. It opens the database but does not touch the
// schema; call Setup before serving.
func New(ctx context.Context, cfg Config, log *logger.Logger) (*App, error) {
	a := &App{Log: log, Cfg: cfg, migrate: func(context.Context) error { return nil }}

	log.Info("Wiring store...", "backend", cfg.Store.Backend)
	switch cfg.Store.Backend {
	case BackendMemory:
		a.Store = catalogrepo.NewMemoryStore(log)
	default:
		svc, err := db.Open(db.Options{
			Backend:         cfg.Store.Backend,
			DSN:             cfg.Store.DSN,
			SQLitePath:      cfg.Store.SQLitePath,
			MaxOpenConns:    cfg.Store.MaxOpenConns,
			ConnMaxLifetime: cfg.Store.ConnMaxLifetime,
		}, log)
		if err != nil {
			return nil, fmt.Errorf("init database: %w", err)
		}
		a.DB = svc
		gs := catalogrepo.NewGormStore(svc.DB(), log, catalogrepo.WithQueryTimeout(cfg.Store.QueryTimeout))
		a.Store = gs
		a.migrate = gs.Migrate
	}

	shutdown, err := observability.InitOTel(ctx, log, observability.OtelConfig{
		Enabled:     cfg.Otel.Enabled,
		ServiceName: cfg.Otel.ServiceName,
		Environment: cfg.Env,
		Version:     Version,
		Exporter:    cfg.Otel.Exporter,
		Endpoint:    cfg.Otel.Endpoint,
		Insecure:    cfg.Otel.Insecure,
		Headers:     observability.ParseHeaders(cfg.Otel.Headers),
		SampleRatio: cfg.Otel.SampleRatio,
	})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("init tracing: %w", err)
	}
	a.otelShutdown = shutdown

	log.Info("Wiring services and handlers...")
	a.Catalog = services.NewCatalogService(log, a.Store)
	a.Metrics = observability.NewMetrics()
	a.Server = http.NewServer(http.ServerConfig{
		Addr:              cfg.HTTP.Addr,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		ShutdownTimeout:   cfg.HTTP.ShutdownTimeout,
	}, http.RouterConfig{
		Log:              log,
		Metrics:          a.Metrics,
		Tracing:          cfg.Otel.Enabled,
		ServiceName:      cfg.Otel.ServiceName,
		DinosaurHandler:  httpH.NewDinosaurHandler(log, a.Catalog),
		ReferenceHandler: httpH.NewReferenceHandler(a.Catalog),
		InfoHandler:      httpH.NewInfoHandler(log, a.Catalog, httpH.APIInfo{Version: Version, LastUpdated: CatalogUpdated}),
		HealthHandler:    httpH.NewHealthHandler(log, a.Catalog),
	})
	return a, nil
}

// Setup migrates the schema and loads the seed catalog when the store is
// empty. Running it again is harmless.
func (a *App) Setup(ctx context.Context) (int, error) {
	if err := a.migrate(ctx); err != nil {
		return 0, fmt.Errorf("migrate: %w", err)
	}
	records, err := seed.Load()
	if err != nil {
		return 0, fmt.Errorf("load seed: %w", err)
	}
	n, err := a.Store.SeedIfEmpty(ctx, records)
	if err != nil {
		return 0, fmt.Errorf("seed store: %w", err)
	}
	return n, nil
}

// Run serves HTTP until ctx is canceled, then flushes traces.
func (a *App) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return a.Server.Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.otelShutdown(flushCtx); err != nil {
			a.Log.Warn("otel shutdown failed", "error", err)
		}
		return nil
	})
	return g.Wait()
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			a.Log.Warn("close database", "error", err)
		}
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
