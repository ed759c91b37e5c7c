package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	"cat-cafe/internal/core/auth"
	"cat-cafe/internal/core/server"
	_ "cat-cafe/internal/docs"
	"cat-cafe/internal/service"
	"cat-cafe/internal/transport/http/handler"
	mdw "cat-cafe/internal/transport/http/middleware"
)

// APIDeps 用户端依赖
type APIDeps struct {
	Cats     *service.CatService
	Staff    *service.StaffService
	Adopters *service.AdopterService
	Auth     *service.AuthService
	JWT      *auth.JWTer

	// AuthDisabled 员工接口不校验 token
	AuthDisabled bool
	// LoginLimiter 为空则 login 不限流
	LoginLimiter mdw.Limiter
	// TrustedProxies 见 config.App.TrustedProxies
	TrustedProxies []string
	Mode           string
}

func NewAPIEngine(l *zap.Logger, d APIDeps) *gin.Engine {
	r := server.NewRouter(l, d.Mode, d.TrustedProxies)

	// 中间件
	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		mdw.Recovery(l),
		mdw.Metrics(),
		mdw.AccessLog(l),
	)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome to Cat Café API",
			"endpoints": gin.H{
				"docs":     "/api-docs",
				"cats":     "/api/cats",
				"staff":    "/api/staff",
				"adopters": "/api/adopters",
				"auth":     "/api/auth",
			},
		})
	})
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", mdw.MetricsHandler())

	// 接口文档
	r.GET("/api-docs", func(c *gin.Context) { c.Redirect(http.StatusMovedPermanently, "/api-docs/index.html") })
	r.GET("/api-docs/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL("/api-docs/doc.json"))))

	var loginLimit gin.HandlerFunc
	if d.LoginLimiter != nil {
		loginLimit = mdw.Limit(d.LoginLimiter, l, "too many login attempts, please try again later")
	}

	reg := &Registry{}
	reg.Register(
		handler.NewAuthHandler(d.Auth, loginLimit, l),
		handler.NewCatHandler(d.Cats, l),
		handler.NewStaffHandler(d.Staff, mdw.AuthJWT(d.JWT, d.AuthDisabled), l),
		handler.NewAdopterHandler(d.Adopters, l),
	)
	reg.MountAPI(r.Group("/api"))

	return r
}
