package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/zhouzirui/z-bookstore/backend/internal/config"
	"github.com/zhouzirui/z-bookstore/backend/internal/handler"
	"github.com/zhouzirui/z-bookstore/backend/internal/handler/page"
	"github.com/zhouzirui/z-bookstore/backend/internal/logging"
	"github.com/zhouzirui/z-bookstore/backend/internal/model/book"
	"github.com/zhouzirui/z-bookstore/backend/internal/service/catalog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to load configuration")
	}

	logging.Init(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if envErr != nil {
		logging.Warn().Err(envErr).Msg("no .env file loaded, continuing with system environment variables only")
	}

	repo := newRepository(cfg.Catalog)
	catalogSvc := catalog.NewService(repo, cfg.Catalog.RecommendLimit)

	// Fail fast on a broken dataset; requests would reload and fail anyway.
	books, err := repo.List(ctx)
	if err != nil {
		logging.Fatal().Err(err).Msg("catalog data source is unusable")
	}
	logging.Info().
		Str("source", repo.SourceName()).
		Int("books", len(books)).
		Bool("cache", cfg.Catalog.Cache).
		Int("recommend_limit", catalogSvc.Limit()).
		Msg("catalog ready")

	cards, err := page.CardsFor(cfg.Catalog.IndexCard, cfg.Catalog.SampleCard)
	if err != nil {
		logging.Fatal().Err(err).Msg("invalid card variant")
	}

	router := handler.NewRouter(catalogSvc, cards, cfg.HTTP)

	startServer(ctx, cfg.Server, router)
}

func newRepository(cfg config.CatalogConfig) *book.Repository {
	var source book.Source = book.EmbeddedSource()
	if cfg.DataPath != "" {
		source = book.FileSource{Path: cfg.DataPath}
	}

	var opts []book.Option
	if cfg.Cache {
		opts = append(opts, book.WithCache())
	}
	return book.NewRepository(source, opts...)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	logging.Info().Str("addr", addr).Msg("bookstore listening")
	if err := runServer(ctx, srv); err != nil {
		logging.Fatal().Err(err).Msg("server error")
	}
	logging.Info().Msg("bookstore stopped")
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
