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
		_, _ = os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}
	log, cleanup := logger.New(logger.FromConfig(cfg.Log))
	defer cleanup()
	defer logger.RedirectStdLog(log, zapcore.InfoLevel)()

	backend, closeStore, err := app.OpenBackend(cfg.Store, log)
	if err != nil {
		log.Fatal("store open", zap.Error(err))
	}
	defer closeStore()

	c := app.Build(cfg, backend, log)
	if len(cfg.Auth.Admins) == 0 {
		log.Warn("auth.admins is empty, every /admin/v1 request will be rejected")
	}

	r := router.NewAdminEngine(log, router.AdminDeps{
		Auth:           c.Auth,
		JWT:            c.JWT,
		Admins:         cfg.Auth.Admins,
		TrustedProxies: cfg.App.TrustedProxies,
		Mode:           gin.ReleaseMode,
	})

	addr := server.Addr(cfg.App.Admin.Host, cfg.App.Admin.Port)
	srv := server.BuildServer(addr, r, 5*time.Second, 10*time.Second, 60*time.Second)

	baseURL := server.BaseURL(cfg.App.Admin.Host, cfg.App.Admin.Port)
	log.Info("admin api starting",
		zap.String("addr", addr),
		zap.String("health", baseURL+"/health"),
		zap.String("admin_v1", baseURL+"/admin/v1"),
	)
	server.Run(srv, log, "admin api")
}
