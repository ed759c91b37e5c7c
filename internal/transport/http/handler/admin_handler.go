package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"cat-cafe/internal/service"
	"cat-cafe/internal/transport/http/ez"
)

// userView 不含密码哈希
type userView struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

type AdminHandler struct {
	svc *service.AuthService
	log *zap.Logger
}

func NewAdminHandler(svc *service.AuthService, l *zap.Logger) *AdminHandler {
	return &AdminHandler{svc: svc, log: l}
}

func (h *AdminHandler) MountAdmin(admin *gin.RouterGroup) {
	e := ez.New(admin, h.log)

	ez.Register(e, ez.Action[struct{}, []userView]{
		Method: http.MethodGet, Path: "/users",
		Handler: func(c *gin.Context, _ *struct{}) ([]userView, error) {
			users, err := h.svc.Users(c.Request.Context())
			if err != nil {
				return nil, err
			}
			out := make([]userView, 0, len(users))
			for _, u := range users {
				out = append(out, userView{ID: u.ID, Username: u.Username, CreatedAt: u.CreatedAt})
			}
			return out, nil
		},
	})
}
