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

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/quickpost/publisher/internal/config"
	"github.com/quickpost/publisher/internal/database"
	"github.com/quickpost/publisher/internal/github"
	"github.com/quickpost/publisher/internal/publication/repository"
	"github.com/quickpost/publisher/internal/publication/service"
	"github.com/quickpost/publisher/internal/publish"
	"github.com/quickpost/publisher/internal/storage"
	"github.com/quickpost/publisher/pkg/logger"
	"github.com/quickpost/publisher/pkg/metrics"
	"github.com/redis/go-redis/v9"
)

var startTime = time.Now()

func main() {
	// LOG_LEVEL: debug|info|warn|error|fatal
	logger.Init(os.Getenv("LOG_LEVEL"))
	logger.Debugf("startup: LOG_LEVEL=%s", logger.LevelString())

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatalf("invalid config: %v", err)
	}
	logger.Infof("config loaded: repo=%s scheme=%s markdown=%v mongo=%v redis=%v minio=%v",
		cfg.GitHub.Repo, cfg.Publish.PathScheme, cfg.Publish.WriteMarkdown,
		cfg.MongoDB.URI != "", cfg.Redis.Host != "", cfg.MinIO.Endpoint != "")
	if cfg.Publish.UnsafeRawHTML {
		logger.Warn("PUBLISH_UNSAFE_RAW_HTML is set: submissions are published without HTML escaping")
	}

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	// Redis is optional and only backs the shared rate limiter.
	var rdb *redis.Client
	if cfg.Redis.Host != "" {
		c := redis.NewClient(&redis.Options{Addr: cfg.Redis.Host + ":" + cfg.Redis.Port, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err := c.Ping(ctx).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
		} else {
			rdb = c
			logger.Infof("connected to Redis at %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		}
	}

	// Publication log: Mongo when reachable, otherwise in memory.
	var pubLog *service.Service
	mongoUp := false
	if cfg.MongoDB.URI != "" {
		client, err := database.ConnectMongoWithRetry(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout, 5, time.Second)
		if err != nil {
			logger.Warnf("could not connect to MongoDB, using in-memory publication log: %v", err)
		} else {
			defer func() { _ = client.Disconnect(context.Background()) }()
			col := client.Database(cfg.MongoDB.Database).Collection("publications")
			repo, err := repository.NewMongoRepo(ctx, col)
			if err != nil {
				logger.Warnf("mongo publication repo: %v", err)
			} else {
				pubLog = service.New(repo)
				mongoUp = true
			}
		}
	}
	if pubLog == nil {
		pubLog = service.NewMemoryService()
	}
	hooks := []publish.Hook{pubLog}

	minioUp := false
	if cfg.MinIO.Endpoint != "" {
		store, err := storage.NewMinIOStorage(ctx, cfg.MinIO)
		if err != nil {
			logger.Warnf("MinIO archive disabled: %v", err)
		} else {
			hooks = append(hooks, storage.NewArchive(store))
			minioUp = true
		}
	}

	scheme, err := publish.ParseScheme(cfg.Publish.PathScheme)
	if err != nil {
		logger.Fatalf("%v", err)
	}
	gh := github.NewClient(github.Options{
		APIURL:    cfg.GitHub.APIURL,
		Repo:      cfg.GitHub.Repo,
		Token:     cfg.GitHub.Token,
		Branch:    cfg.GitHub.Branch,
		UserAgent: cfg.GitHub.UserAgent,
		Timeout:   cfg.GitHub.Timeout,
	})
	pub := publish.New(gh, publish.Options{
		Scheme:        scheme,
		TZOffset:      cfg.Publish.TZOffset,
		WriteMarkdown: cfg.Publish.WriteMarkdown,
		Render:        publish.RenderOptions{Raw: cfg.Publish.UnsafeRawHTML},
		Hooks:         hooks,
		HookTimeout:   cfg.Publish.HookTimeout,
	})

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r := setupRouter(cfg, routerDeps{
		Publisher: pub,
		PubLog:    pubLog,
		Redis:     rdb,
		MongoUp:   mongoUp,
		MinIOUp:   minioUp,
		StartTime: startTime,
	})

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	go func() {
		logger.Infof("publisher listening on %s (repo %s)", addr, gh.Repo())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("graceful shutdown failed: %v", err)
	}
}
