package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"cat-cafe/internal/domain"
	"cat-cafe/internal/service"
	"cat-cafe/internal/transport/http/ez"
)

// staffWithCats ?includeCats=true
type staffWithCats struct {
	domain.Staff
	Cats []domain.Cat `json:"cats"`
}

// StaffHandler 整组需要 bearer token
type StaffHandler struct {
	svc  *service.StaffService
	auth gin.HandlerFunc
	log  *zap.Logger
}

func NewStaffHandler(svc *service.StaffService, auth gin.HandlerFunc, l *zap.Logger) *StaffHandler {
	return &StaffHandler{svc: svc, auth: auth, log: l}
}

func (h *StaffHandler) Priority() int { return 20 }

func (h *StaffHandler) MountAPI(api *gin.RouterGroup) {
	e := ez.New(api, h.log).Group("/staff", h.auth)

	ez.Register(e, ez.Action[struct{}, []domain.Staff]{
		Method: http.MethodGet, Path: "",
		Handler: func(c *gin.Context, _ *struct{}) ([]domain.Staff, error) {
			return h.svc.List(c.Request.Context())
		},
	})
	ez.Register(e, ez.Action[struct{}, any]{
		Method: http.MethodGet, Path: "/:id",
		Handler: func(c *gin.Context, _ *struct{}) (any, error) {
			ctx := c.Request.Context()
			s, err := h.svc.Get(ctx, c.Param("id"))
			if err != nil || !includeCats(c) {
				return s, err
			}
			cats, err := h.svc.Cats(ctx, s.ID)
			if err != nil {
				return nil, err
			}
			return staffWithCats{Staff: s, Cats: cats}, nil
		},
	})
	ez.Register(e, ez.Action[domain.StaffInput, domain.Staff]{
		Method: http.MethodPost, Path: "", Binder: ez.BindJSON, Status: http.StatusCreated,
		Handler: func(c *gin.Context, in *domain.StaffInput) (domain.Staff, error) {
			return h.svc.Create(c.Request.Context(), *in)
		},
	})
	ez.Register(e, ez.Action[domain.StaffInput, domain.Staff]{
		Method: http.MethodPut, Path: "/:id", Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *domain.StaffInput) (domain.Staff, error) {
			return h.svc.Replace(c.Request.Context(), c.Param("id"), *in)
		},
	})
	ez.Register(e, ez.Action[struct{}, struct{}]{
		Method: http.MethodDelete, Path: "/:id", Status: http.StatusNoContent,
		Handler: func(c *gin.Context, _ *struct{}) (struct{}, error) {
			return struct{}{}, h.svc.Remove(c.Request.Context(), c.Param("id"))
		},
	})
}
