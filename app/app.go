package app

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"peminjaman-console/apiclient"
	"peminjaman-console/session"
)

// Shorthand aliases for handlers.
type Ctx = gin.Context
type H = gin.H

// App aggregates the console's dependencies.
type App struct {
	Router *gin.Engine
	RDB    *redis.Client
	API    *apiclient.Client
	Log    *zap.Logger
	Config Config

	sessions *session.Store
}

func (a *App) Sessions() *session.Store { return a.sessions }

// New wires an App from already-constructed dependencies. Tests use this
// directly with a fake backend and an in-memory Redis.
func New(cfg Config, logger *zap.Logger, rdb *redis.Client, api *apiclient.Client) *App {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(logger))
	r.Use(Metrics())
	useCORS(r, cfg.WebOrigin)

	return &App{
		Router:   r,
		RDB:      rdb,
		API:      api,
		Log:      logger,
		Config:   cfg,
		sessions: session.NewStore(rdb, cfg.SessionTTL),
	}
}

// MustNew builds the production App from the environment, exiting on any
// dependency that cannot be reached.
func MustNew() *App {
	cfg := loadConfig()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	if cfg.Env == "development" {
		if dev, err := zap.NewDevelopment(); err == nil {
			logger = dev
		}
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPwd, DB: 0})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Fatal("redis", zap.Error(err))
	}

	return New(cfg, logger, rdb, apiclient.New(cfg.BackendURL))
}

func (a *App) Close() {
	_ = a.RDB.Close()
	_ = a.Log.Sync()
}
