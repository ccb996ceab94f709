package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/maxviazov/pagination/internal/config"
	"github.com/maxviazov/pagination/internal/handler"
	"github.com/maxviazov/pagination/internal/logger"
	"github.com/maxviazov/pagination/internal/repository"
	"github.com/maxviazov/pagination/internal/repository/memory"
	"github.com/maxviazov/pagination/internal/repository/postgres"
	"github.com/maxviazov/pagination/internal/service"
	"github.com/maxviazov/pagination/migrations"
)

// storage bundles what the services and probes need from a driver.
type storage struct {
	articles repository.ArticleRepository
	tx       repository.TxManager
	pinger   repository.Pinger
	close    func()
}

func main() {
	path := os.Getenv("APP_CONFIG")
	if path == "" {
		path = "config.yaml"
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("❌ Config loading failed: %v", err)
	}

	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		log.Fatalf("❌ Logger initialization failed: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, appLogger); err != nil {
		appLogger.Fatal().Err(err).Msg("service stopped with error")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	store, err := openStorage(ctx, cfg, &log)
	if err != nil {
		return err
	}
	defer store.close()

	articles := service.NewArticleService(store.articles, store.tx, log)
	browse := service.NewBrowseService(store.articles, cfg.Pagination, log)

	if err := seed(ctx, store.articles, articles, cfg.Storage.Seed); err != nil {
		return fmt.Errorf("seed catalogue: %w", err)
	}

	if cfg.App.Env == "prod" || cfg.App.Env == "staging" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), handler.RequestLogger(log))
	handler.Register(r, store.pinger, articles, browse)

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.App.Port),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("storage", cfg.Storage.Driver).Msg("🚀 Service started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.App.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	log.Info().Msg("✅ Server exited")
	return nil
}

func openStorage(ctx context.Context, cfg *config.Config, log *zerolog.Logger) (*storage, error) {
	switch cfg.Storage.Driver {
	case "postgres":
		repo, err := repository.New(ctx, &cfg.Postgres, log)
		if err != nil {
			return nil, err
		}
		if cfg.Postgres.Migrate {
			if err := migrations.UpPool(ctx, repo.Pool()); err != nil {
				repo.Close()
				return nil, err
			}
			log.Info().Msg("migrations applied")
		}
		return &storage{
			articles: postgres.NewArticleRepository(repo.Pool()),
			tx:       postgres.NewTxManager(repo.Pool()),
			pinger:   repo,
			close:    repo.Close,
		}, nil
	default:
		s := memory.NewStore()
		return &storage{articles: s, tx: s, pinger: s, close: func() {}}, nil
	}
}
