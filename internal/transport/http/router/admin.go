package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"cat-cafe/internal/core/auth"
	"cat-cafe/internal/core/server"
	"cat-cafe/internal/service"
	"cat-cafe/internal/transport/http/handler"
	mdw "cat-cafe/internal/transport/http/middleware"
)

// AdminDeps 后台依赖；Admins 为允许访问的用户名
type AdminDeps struct {
	Auth           *service.AuthService
	JWT            *auth.JWTer
	Admins         []string
	TrustedProxies []string
	Mode           string
}

func NewAdminEngine(l *zap.Logger, d AdminDeps) *gin.Engine {
	r := server.NewRouter(l, d.Mode, d.TrustedProxies)

	r.Use(
		mdw.RequestID(),
		mdw.RateLimitPerIP(20, 40),
		mdw.ConcurrencyLimit(50),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		mdw.Recovery(l),
		mdw.Metrics(),
		mdw.AccessLog(l),
	)

	// 健康检查
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", mdw.MetricsHandler())

	// 管理端 v1（token + 用户名白名单）
	admin := r.Group("/admin/v1", mdw.AuthJWT(d.JWT, false), mdw.RequireUsers(d.Admins))

	reg := &Registry{}
	reg.Register(handler.NewAdminHandler(d.Auth, l))
	reg.MountAdmin(admin)

	return r
}
