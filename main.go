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

	"media-portal/domain/repository"
	"media-portal/infrastructure/cache"
	youtubeclient "media-portal/infrastructure/clients/youtube"
	"media-portal/infrastructure/configuration"
	"media-portal/infrastructure/logger"
	httpHandler "media-portal/interfaces/http"
	"media-portal/interfaces/view"
	"media-portal/server"
	"media-portal/usecase"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

func recoverPanic() {
	if err := recover(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application panic recovered")
	}
}

func main() {
	defer recoverPanic()
	startedAt := time.Now()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	// Load env from files (non-destructive; OS env still has precedence)
	if loaded := configuration.LoadEnvFromFile("config.env", ".env"); len(loaded) > 0 {
		logger.GetLogger().WithField("files", loaded).Info("Loaded environment files")
		configuration.Reload()
	}

	app := configuration.C.App
	if !app.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	youtubeConfig := configuration.GetYouTubeConfig()
	searchCache := initiateSearchCache(ctx, youtubeConfig)

	var youtubeRepo repository.IYouTubeSearch
	if youtubeConfig.HasAPIKey() {
		client, err := youtubeclient.NewYouTubeClient(ctx, &youtubeclient.Config{APIKey: youtubeConfig.APIKey})
		if err != nil {
			logger.GetLogger().WithField("error", err).Warn("Failed to initialize YouTube client - searches will serve fallback data")
		} else {
			youtubeRepo = client
		}
	} else {
		logger.GetLogger().Warn("YOUTUBE_API_KEY not configured - searches will serve fallback data")
	}
	youtubeUseCase := usecase.NewYouTubeUseCase(youtubeRepo, searchCache, youtubeConfig.SearchTimeout)

	renderer, err := view.NewRenderer()
	if err != nil {
		logger.GetLogger().WithField("error", err).Fatal("Failed to load page templates")
	}

	router := server.InitiateRouter(
		httpHandler.NewHealthHandler(app.Env, startedAt),
		httpHandler.NewYouTubeHandler(youtubeUseCase),
		httpHandler.NewDeploymentHandler(configuration.C.Deployment.GitCommit, app.Env),
		httpHandler.NewPageHandler(renderer),
		app.IsDevelopment(),
	)

	g, ctx := errgroup.WithContext(ctx)
	httpServer := &http.Server{
		Addr:              app.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	logger.GetLogger().WithFields(map[string]interface{}{
		"addr":        app.Addr(),
		"environment": app.Env,
		"youtube":     youtubeRepo != nil,
		"cache":       youtubeConfig.CacheDriver,
	}).Info("Starting application")
	g.Go(func() error {
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	select {
	case sig := <-interrupt:
		// No draining: in-flight requests are dropped
		logger.GetLogger().WithField("signal", sig.String()).Info("Application shutdown requested")
		os.Exit(0)
	case <-ctx.Done():
	}

	if err := g.Wait(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Server returned an error")
		os.Exit(2)
	}
}

// initiateSearchCache picks the configured backend; Redis falls back to memory when unreachable
func initiateSearchCache(ctx context.Context, cfg *configuration.YouTubeConfig) repository.ISearchCache {
	if cfg.CacheDriver == configuration.CacheDriverRedis {
		rc := configuration.C.RedisClient
		client, err := cache.NewRedisClient(ctx, fmt.Sprintf("%s:%s", rc.Host, rc.Port), rc.Username, rc.Password, rc.DB)
		if err == nil {
			logger.GetLogger().Info("Using Redis search cache")
			return cache.NewRedisSearchCache(client, cfg.CacheTTL)
		}
		_ = client.Close()
		logger.GetLogger().WithField("error", err).Warn("Redis unavailable - using in-memory search cache")
	}
	return cache.NewSearchCache(cfg.CacheCapacity, cfg.CacheTTL)
}
