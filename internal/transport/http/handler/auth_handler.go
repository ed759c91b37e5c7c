package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"cat-cafe/internal/core/auth"
	"cat-cafe/internal/domain"
	"cat-cafe/internal/service"
	"cat-cafe/internal/transport/http/ez"
)

type registerOut struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

type refreshIn struct {
	RefreshToken string `json:"refreshToken"`
}

// AuthHandler login 前挂限流中间件
type AuthHandler struct {
	svc          *service.AuthService
	loginLimiter gin.HandlerFunc
	log          *zap.Logger
}

func NewAuthHandler(svc *service.AuthService, loginLimiter gin.HandlerFunc, l *zap.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, loginLimiter: loginLimiter, log: l}
}

func (h *AuthHandler) Priority() int { return 0 }

func (h *AuthHandler) MountAPI(api *gin.RouterGroup) {
	e := ez.New(api, h.log).Group("/auth")

	ez.Register(e, ez.Action[domain.Credentials, registerOut]{
		Method: http.MethodPost, Path: "/register", Binder: ez.BindJSON, Status: http.StatusCreated,
		Handler: func(c *gin.Context, in *domain.Credentials) (registerOut, error) {
			u, err := h.svc.Register(c.Request.Context(), *in)
			if err != nil {
				return registerOut{}, err
			}
			return registerOut{Message: "User registered successfully", UserID: u.ID}, nil
		},
	})

	login := e
	if h.loginLimiter != nil {
		login = e.Group("", h.loginLimiter)
	}
	ez.Register(login, ez.Action[domain.Credentials, auth.TokenPair]{
		Method: http.MethodPost, Path: "/login", Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *domain.Credentials) (auth.TokenPair, error) {
			return h.svc.Login(c.Request.Context(), *in)
		},
	})

	ez.Register(e, ez.Action[refreshIn, auth.TokenPair]{
		Method: http.MethodPost, Path: "/refresh", Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *refreshIn) (auth.TokenPair, error) {
			return h.svc.Refresh(c.Request.Context(), in.RefreshToken)
		},
	})
}
