package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"mailcheck/internal/platform/config"
	"mailcheck/internal/platform/httpserver"
	"mailcheck/internal/platform/logger"
	platformredis "mailcheck/internal/platform/redis"
	"mailcheck/internal/validate/cache"
	"mailcheck/internal/validate/handler"
	"mailcheck/internal/validate/metrics"
	"mailcheck/internal/validate/service"
	"mailcheck/internal/validate/store/domainlist"
	"mailcheck/pkg/platform/middleware/requestid"
	"mailcheck/pkg/platform/middleware/requesttime"
)

// main wires high-level dependencies and keeps the server lifecycle small.
// Business logic lives in internal/validate.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var store domainlist.Store
	if cfg.DatabaseURL != "" {
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			log.Error("open database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		if err := db.PingContext(ctx); err != nil {
			log.Error("ping database", "error", err)
			os.Exit(1)
		}
		store = domainlist.NewPostgres(db)
		log.Info("using postgres domain list store")
	} else {
		store = domainlist.NewMemory()
		log.Info("using in-memory domain list store")
	}

	if len(cfg.SeedBlockedDomains) > 0 {
		var seedErr error
		if pg, ok := store.(*domainlist.PostgresStore); ok {
			seedErr = pg.SeedTx(ctx, cfg.SeedBlockedDomains, time.Now())
		} else {
			seedErr = domainlist.Seed(ctx, store, cfg.SeedBlockedDomains, time.Now())
		}
		if seedErr != nil {
			log.Error("seed blocked domains", "error", seedErr)
			os.Exit(1)
		}
		log.Info("seeded blocked domains", "count", len(cfg.SeedBlockedDomains))
	}

	var verdictCache service.Cache
	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("connect redis", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
		verdictCache = cache.NewRedis(redisClient.Client)
		log.Info("using redis verdict cache")
	} else {
		verdictCache = cache.NewMemory()
		log.Info("using in-memory verdict cache")
	}

	var verifier service.HostVerifier
	if cfg.VerifyHosts {
		verifier = service.NewDNSVerifier()
		log.Info("host verification enabled")
	}

	m := metrics.New(prometheus.DefaultRegisterer)
	svc := service.New(store, verdictCache, verifier, log, m, cfg.CacheTTL)

	router := chi.NewRouter()
	router.Use(chimiddleware.Recoverer)
	router.Use(requestid.Middleware)
	router.Use(requesttime.Middleware)
	handler.New(svc, log).Register(router)
	router.Method(http.MethodGet, "/metrics", promhttp.Handler())

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting mailcheck", "addr", cfg.Addr)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		return cleanupLoop(ctx, store, cfg.CleanupInterval)
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
	log.Info("shutdown complete")
}

// cleanupLoop removes expired deny-list entries until ctx is cancelled.
func cleanupLoop(ctx context.Context, store domainlist.Store, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := store.RemoveExpiredAt(ctx, time.Now()); err != nil {
				return err
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
