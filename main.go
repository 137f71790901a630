package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"finflix/domain/repository"
	"finflix/infrastructure/cache"
	"finflix/infrastructure/configuration"
	"finflix/infrastructure/logger"
	"finflix/infrastructure/persistence"
	"finflix/infrastructure/persistence/memory"
	httpHandler "finflix/interfaces/http"
	"finflix/server"
	"finflix/usecase"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

func recoverPanic() {
	if err := recover(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application panic recovered")
		os.Exit(2)
	}
}

func main() {
	defer recoverPanic()

	// Load env from files (non-destructive; OS env still has precedence)
	configuration.LoadEnvFromFile("config.env", ".env")

	cfg, err := configuration.LoadConfig()
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while loading config")
		os.Exit(1)
	}
	logger.Configure(cfg.Logger.Format, cfg.Logger.Level, cfg.Logger.ToFile)
	if os.Getenv("ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	repos, probes, closeStore, err := InitiateStore(ctx, cfg)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Database initialization failed")
		os.Exit(1)
	}
	defer closeStore()

	videoCache, closeCache := InitiateCache(ctx, cfg, probes)
	defer closeCache()

	authOpts := usecase.AuthOptions{
		SecretKey: cfg.App.SecretKey,
		AdminKey:  cfg.App.AdminKey,
		TokenTTL:  cfg.App.TokenTTL,
	}
	userUsecase := usecase.NewUserUsecase(repos.Users, authOpts)
	videoUsecase := usecase.NewVideoUsecase(repos.Videos, repos.Creators, repos.Categories, videoCache, cfg.RedisClient.TTL)
	creatorUsecase := usecase.NewCreatorUsecase(repos.Creators, videoCache)
	categoryUsecase := usecase.NewCategoryUsecase(repos.Categories, videoCache)
	collectionUsecase := usecase.NewCollectionUsecase(repos.Users, repos.Videos, repos.Creators, repos.Categories)
	playlistUsecase := usecase.NewPlaylistUsecase(repos.Users, repos.Playlists, repos.Videos, repos.Creators, repos.Categories)

	router := server.InitiateRouter(server.Handlers{
		User:       httpHandler.NewUserHandler(userUsecase),
		Video:      httpHandler.NewVideoHandler(videoUsecase),
		Creator:    httpHandler.NewCreatorHandler(creatorUsecase),
		Category:   httpHandler.NewCategoryHandler(categoryUsecase),
		Collection: httpHandler.NewCollectionHandler(collectionUsecase),
		Playlist:   httpHandler.NewPlaylistHandler(playlistUsecase),
		Health:     httpHandler.NewHealthHandler(probes),
	}, repos.Users, server.RouterOptions{
		SecretKey:    cfg.App.SecretKey,
		AllowOrigins: cfg.Cors.AllowOrigins,
	})

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.GetLogger().
			WithField("port", cfg.App.Port).
			WithField("tls", cfg.App.TLSEnabled).
			Info("Starting application")
		return serve(httpServer, cfg.App)
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.GetLogger().Info("Application shutdown requested")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Server returned an error")
		closeCache()
		closeStore()
		os.Exit(2)
	}
}

func serve(httpServer *http.Server, app configuration.App) error {
	var err error
	if app.TLSEnabled && app.TLSCertFile != "" && app.TLSKeyFile != "" {
		logger.GetLogger().WithField("cert", app.TLSCertFile).Info("Serving HTTPS")
		err = httpServer.ListenAndServeTLS(app.TLSCertFile, app.TLSKeyFile)
	} else {
		if app.TLSEnabled {
			logger.GetLogger().Error("TLS enabled but cert or key path empty; falling back to HTTP")
		}
		err = httpServer.ListenAndServe()
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// InitiateStore opens the configured database driver and returns its
// repositories, the health probes for it and a close function.
func InitiateStore(ctx context.Context, cfg *configuration.Config) (*repository.Repositories, map[string]httpHandler.Probe, func(), error) {
	probes := map[string]httpHandler.Probe{}

	switch cfg.Database.Driver {
	case configuration.DriverMemory:
		logger.GetLogger().Warn("Using in-memory store; data is lost on restart")
		return memory.NewStore(), probes, func() {}, nil

	case configuration.DriverMongo, "":
		connectCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
		defer cancel()
		client, err := persistence.NewMongoDb(connectCtx, cfg.Database.Mongo.MongoURI())
		if err != nil {
			return nil, nil, nil, err
		}
		db := client.Database(cfg.Database.Mongo.Name)
		if err := persistence.EnsureIndexes(connectCtx, db); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, nil, nil, err
		}
		logger.GetLogger().WithField("database", cfg.Database.Mongo.Name).Info("MongoDB connected successfully")

		probes["mongo"] = func(ctx context.Context) error { return client.Ping(ctx, nil) }
		closeFn := func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := client.Disconnect(ctx); err != nil {
				logger.GetLogger().WithField("error", err).Warn("Error while disconnecting MongoDB")
			}
		}
		return persistence.NewRepositories(db), probes, closeFn, nil
	}
	return nil, nil, nil, fmt.Errorf("unknown database driver %q", cfg.Database.Driver)
}

// InitiateCache connects the projected-video cache when Redis is enabled. The
// API works without it, so connection failures only disable caching.
func InitiateCache(ctx context.Context, cfg *configuration.Config, probes map[string]httpHandler.Probe) (repository.IVideoCache, func()) {
	if !cfg.RedisClient.Enabled {
		logger.GetLogger().Info("Redis cache disabled")
		return nil, func() {}
	}
	addr := fmt.Sprintf("%s:%s", cfg.RedisClient.Host, cfg.RedisClient.Port)
	client, err := cache.NewCache(ctx, addr, cfg.RedisClient.Username, cfg.RedisClient.Password, cfg.RedisClient.DB)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Redis not available - continuing without video cache")
		return nil, func() {}
	}
	probes["redis"] = func(ctx context.Context) error { return client.Ping(ctx).Err() }
	return cache.NewRedisVideoCache(client), func() { _ = client.Close() }
}
