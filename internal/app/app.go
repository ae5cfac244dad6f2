package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/folio-space/core/internal/config"
	"github.com/folio-space/core/internal/database"
	"github.com/folio-space/core/internal/middleware"
	"github.com/folio-space/core/internal/pkg/jwt"
	redispkg "github.com/folio-space/core/internal/pkg/redis"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App owns the HTTP server and its dependencies.
type App struct {
	cfg    *config.AppConfig
	logger *zap.Logger
	db     *gorm.DB
	redis  *redispkg.Client
	engine *gin.Engine
	server *http.Server
}

func New(cfg *config.AppConfig, logger *zap.Logger) (*App, error) {
	if cfg.JWTSecret != "" {
		jwt.SetSecret(cfg.JWTSecret)
	}

	db, err := database.Connect(cfg, true)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	// Redis backs rate limiting and idempotence. In development the
	// server still runs without it, minus those two middlewares.
	rdb, err := redispkg.Connect(cfg.RedisURL)
	if err != nil {
		if !cfg.IsDev() {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		logger.Warn("redis unavailable, rate limiting and idempotence disabled", zap.Error(err))
		rdb = nil
	}

	if !cfg.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}

	a := &App{
		cfg:    cfg,
		logger: logger,
		db:     db,
		redis:  rdb,
		engine: gin.New(),
	}
	// OptionalAuth runs globally so the rate limiter can recognize
	// authenticated clients; routes needing a hard guard add Auth on top.
	a.engine.Use(
		gin.Recovery(),
		middleware.Logger(logger),
		corsMiddleware(cfg),
		middleware.OptionalAuth(db),
	)
	if rdb != nil {
		a.engine.Use(
			middleware.RateLimit(rdb.Raw()),
			middleware.Idempotence(rdb.Raw()),
		)
	}
	a.registerRoutes()

	a.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           a.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return a, nil
}

// Engine exposes the router, mainly for tests.
func (a *App) Engine() *gin.Engine { return a.engine }

// Run blocks serving HTTP until the listener fails or Shutdown is called.
func (a *App) Run() error {
	a.logger.Info("server listening", zap.String("addr", a.server.Addr))
	if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests.
func (a *App) Shutdown(ctx context.Context) error {
	return a.server.Shutdown(ctx)
}
