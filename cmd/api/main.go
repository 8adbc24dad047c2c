package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/pageza/alchemorsel-chat/backend/config"
	"github.com/pageza/alchemorsel-chat/backend/internal/api"
	"github.com/pageza/alchemorsel-chat/backend/internal/database"
	"github.com/pageza/alchemorsel-chat/backend/internal/logging"
	"github.com/pageza/alchemorsel-chat/backend/internal/router"
	"github.com/pageza/alchemorsel-chat/backend/internal/server"
	"github.com/pageza/alchemorsel-chat/backend/internal/service"
)

const name = "alchemorsel-chat"

// overridden during build with ldflags
var version = "dev"

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewStructuredLogger(name, version, cfg.LogLevel)
	gin.SetMode(cfg.Environment.GinMode())

	if err := run(cfg, logger); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx := context.Background()

	catalog, closeCatalog, err := buildCatalog(cfg, logger)
	if err != nil {
		return err
	}
	defer closeCatalog()

	uploads, err := buildUploadStore(ctx, cfg, logger)
	if err != nil {
		return err
	}

	var responder service.Responder = service.FixedResponder{}
	if cfg.ChatMode == config.ChatModeKeyword {
		responder = service.NewKeywordResponder(nil)
	}
	chatService := service.NewChatService(responder, catalog, uploads, logger)

	engine := router.SetupRouter(logger, router.Handlers{
		Chat:      api.NewChatHandler(chatService, logger, cfg.MaxUploadBytes),
		UserInfo:  api.NewUserInfoHandler(logger, cfg.MaxUploadBytes),
		Recipe:    api.NewRecipeHandler(catalog, logger),
		Nutrition: api.NewNutritionHandler(catalog, logger),
		Uploads:   api.NewUploadHandler(uploads, logger),
	})
	srv := server.New(cfg, engine, logger)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	// Channel to listen for an interrupt or terminate signal from the OS
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case sig := <-quit:
		logger.Info("received signal", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// buildCatalog returns the catalog selected by configuration, wrapped in the
// Redis cache when REDIS_URL is set. SQL catalogs are migrated and seeded
// from the built-in tables at startup.
func buildCatalog(cfg *config.Config, logger *slog.Logger) (service.ICatalogService, func(), error) {
	var catalog service.ICatalogService = service.NewStaticCatalog()
	var closers []func()
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	if cfg.CatalogDriver != config.CatalogDriverMemory {
		db, err := database.New(cfg, logger)
		if err != nil {
			return nil, nil, err
		}
		if sqlDB, err := db.DB(); err == nil {
			closers = append(closers, func() { _ = sqlDB.Close() })
		}
		if err := database.RunMigrations(db); err != nil {
			closeAll()
			return nil, nil, err
		}
		seeded, err := database.Seed(db, service.DefaultRecipes(), service.DefaultNutrition())
		if err != nil {
			closeAll()
			return nil, nil, err
		}
		logger.Info("catalog seeded", "recipes", seeded.Recipes, "nutrition", seeded.Nutrition)
		catalog = database.NewGormCatalog(db)
	}

	if cfg.RedisURL != "" {
		client, err := database.NewRedisClient(cfg, logger)
		if err != nil {
			closeAll()
			return nil, nil, err
		}
		closers = append(closers, func() { _ = client.Close() })
		catalog = database.NewCachedCatalog(catalog, client, cfg.CacheTTL, logger)
	}

	return catalog, closeAll, nil
}

// buildUploadStore returns the local directory store, creating the directory, or the S3 store
func buildUploadStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.IUploadStore, error) {
	if cfg.UploadBackend == config.UploadBackendS3 {
		s3Cfg, err := config.NewS3Config(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize S3: %w", err)
		}
		logger.Info("storing uploads in S3", "bucket", s3Cfg.BucketName, "prefix", s3Cfg.Prefix)
		return service.NewS3UploadStore(s3Cfg.Client, s3Cfg.BucketName, s3Cfg.Prefix), nil
	}

	store, err := service.NewLocalUploadStore(cfg.UploadDir)
	if err != nil {
		return nil, err
	}
	logger.Info("storing uploads on disk", "dir", store.Dir())
	return store, nil
}
