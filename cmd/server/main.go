package main

import (
	"context"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/winexplorer/backend/internal/api"
	"github.com/winexplorer/backend/internal/catalog"
	"github.com/winexplorer/backend/internal/infrastructure/config"
	"github.com/winexplorer/backend/internal/metrics"
	"github.com/winexplorer/backend/internal/service"
	"github.com/winexplorer/backend/internal/store"
	"github.com/winexplorer/backend/internal/web"

	_ "github.com/winexplorer/backend/docs" // generated swagger docs
)

// @title           Windows Explorer API
// @version         1.0
// @description     Read-only file and folder catalog: folder contents, tree, breadcrumbs and search.

// @host      localhost:8001
// @BasePath  /

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	pflag.StringVar(&cfg.ServerAddress, "addr", cfg.ServerAddress, "listen address")
	pflag.StringVar(&cfg.CatalogSource, "catalog", cfg.CatalogSource, "catalog file (.db, .sqlite, .yaml); empty for the built-in dataset")
	pflag.StringVar(&cfg.StaticDir, "static-dir", cfg.StaticDir, "directory with a prebuilt web client; empty for the embedded one")
	pflag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))

	// ── Dependencies ────────────────────────────────────────────────
	cat, err := loadCatalog(cfg.CatalogSource)
	if err != nil {
		logger.Error("failed to load catalog", "source", cfg.CatalogSource, "error", err)
		os.Exit(1)
	}
	explorer := service.NewExplorerService(cat, logger)
	logger.Info("catalog loaded", "source", sourceName(cfg.CatalogSource), "items", explorer.Size())

	handler := api.NewHandler(explorer, logger)

	var static fs.FS = web.Dist()
	if cfg.StaticDir != "" {
		static = os.DirFS(cfg.StaticDir)
	}

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           api.NewRouter(handler, static, cfg.CORSAllowedOrigins),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "address", cfg.ServerAddress)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}

func loadCatalog(source string) (*catalog.Catalog, error) {
	start := time.Now()
	src, closeSrc, err := store.Open(source, start)
	if err != nil {
		return nil, err
	}
	defer closeSrc()

	cat, err := store.LoadCatalog(context.Background(), src)
	if err != nil {
		return nil, err
	}
	metrics.RecordCatalogLoad(time.Since(start))

	var files, folders int
	for _, it := range cat.All() {
		if it.IsFolder() {
			folders++
		} else {
			files++
		}
	}
	metrics.SetCatalogItems(files, folders)
	return cat, nil
}

func sourceName(source string) string {
	if source == "" {
		return "builtin"
	}
	return source
}
