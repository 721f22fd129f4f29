package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/quickpost/publisher/handlers"
	"github.com/quickpost/publisher/internal/config"
	pubhandler "github.com/quickpost/publisher/internal/publication/handler"
	"github.com/quickpost/publisher/internal/publication/service"
	"github.com/quickpost/publisher/pkg/middleware"
	"github.com/redis/go-redis/v9"
)

// routerDeps are the runtime pieces main connects before routes are mounted.
type routerDeps struct {
	Publisher handlers.Publisher
	PubLog    *service.Service
	Redis     *redis.Client // nil when Redis is not configured or unreachable
	MongoUp   bool
	MinIOUp   bool
	StartTime time.Time
}

// setupRouter mounts every route. Health checks, metrics and docs are open; /upload
// and the publication log sit behind Basic auth, and the rate limiter runs
// after authentication so it keys on the user.
func setupRouter(cfg *config.Config, d routerDeps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), gin.Logger(), gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	// readiness: 200 only when every configured dependency is up
	r.GET("/ready", func(c *gin.Context) {
		deps := map[string]bool{"github": cfg.GitHub.Validate() == nil}
		if cfg.MongoDB.URI != "" {
			deps["mongodb"] = d.MongoUp
		}
		if cfg.RateLimit.Enabled && cfg.RateLimit.UseRedis {
			deps["redis"] = d.Redis != nil
		}
		if cfg.MinIO.Endpoint != "" {
			deps["minio"] = d.MinIOUp
		}
		ready := true
		for _, ok := range deps {
			ready = ready && ok
		}
		uptime := time.Since(d.StartTime).String()
		if !ready {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "deps": deps, "uptime": uptime})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "deps": deps, "uptime": uptime})
	})

	handlers.RegisterHello(r)
	handlers.RegisterSwagger(r)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	protected := r.Group("/", middleware.BasicAuth(cfg.Auth.Username, cfg.Auth.Password))
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && d.Redis != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			protected.Use(middleware.RedisRateLimitMiddleware(d.Redis, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			protected.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}
	handlers.NewUploadHandler(d.Publisher, cfg.Publish.BaseURL).Register(protected)
	pubhandler.RegisterPublicationRoutes(protected, d.PubLog)

	return r
}
