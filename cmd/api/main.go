package main

import (
	"os"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"cat-cafe/internal/app"
	"cat-cafe/internal/core/config"
	"cat-cafe/internal/core/logger"
	"cat-cafe/internal/core/server"
	"cat-cafe/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		// logger 还没建好
		_, _ = os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}
	log, cleanup := logger.New(logger.FromConfig(cfg.Log))
	defer cleanup()
	defer logger.RedirectStdLog(log, zapcore.InfoLevel)()
	gin.DefaultWriter = logger.ToWriter(log, zapcore.DebugLevel)

	// 存储（失败直接 Fatal）
	backend, closeStore, err := app.OpenBackend(cfg.Store, log)
	if err != nil {
		log.Fatal("store open", zap.Error(err))
	}
	defer closeStore()

	c := app.Build(cfg, backend, log)
	if cfg.Auth.Disabled {
		log.Warn("staff endpoints are NOT protected (auth.disabled=true)")
	}

	mode := gin.ReleaseMode
	if cfg.App.Env == "local" {
		mode = gin.DebugMode
	}
	r := router.NewAPIEngine(log, router.APIDeps{
		Cats:           c.Cats,
		Staff:          c.Staff,
		Adopters:       c.Adopters,
		Auth:           c.Auth,
		JWT:            c.JWT,
		AuthDisabled:   cfg.Auth.Disabled,
		LoginLimiter:   c.Limiter,
		TrustedProxies: cfg.App.TrustedProxies,
		Mode:           mode,
	})

	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	baseURL := server.BaseURL(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	log.Info("cat café api starting",
		zap.String("addr", addr),
		zap.String("open", baseURL),
		zap.String("health", baseURL+"/health"),
		zap.String("docs", baseURL+"/api-docs"),
	)
	server.Run(srv, log, "cat café api")
}
