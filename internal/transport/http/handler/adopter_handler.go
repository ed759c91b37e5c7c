package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"cat-cafe/internal/domain"
	"cat-cafe/internal/service"
	"cat-cafe/internal/transport/http/ez"
)

type adopterWithCats struct {
	domain.Adopter
	Cats []domain.Cat `json:"cats"`
}

type AdopterHandler struct {
	svc *service.AdopterService
	log *zap.Logger
}

func NewAdopterHandler(svc *service.AdopterService, l *zap.Logger) *AdopterHandler {
	return &AdopterHandler{svc: svc, log: l}
}

func (h *AdopterHandler) Priority() int { return 30 }

func (h *AdopterHandler) MountAPI(api *gin.RouterGroup) {
	e := ez.New(api, h.log).Group("/adopters")

	ez.Register(e, ez.Action[struct{}, []domain.Adopter]{
		Method: http.MethodGet, Path: "",
		Handler: func(c *gin.Context, _ *struct{}) ([]domain.Adopter, error) {
			return h.svc.List(c.Request.Context())
		},
	})
	ez.Register(e, ez.Action[struct{}, any]{
		Method: http.MethodGet, Path: "/:id",
		Handler: func(c *gin.Context, _ *struct{}) (any, error) {
			id, err := ez.IntParam(c, "id")
			if err != nil {
				return nil, err
			}
			ctx := c.Request.Context()
			a, err := h.svc.Get(ctx, id)
			if err != nil || !includeCats(c) {
				return a, err
			}
			cats, err := h.svc.Cats(ctx, a.ID)
			if err != nil {
				return nil, err
			}
			return adopterWithCats{Adopter: a, Cats: cats}, nil
		},
	})
	ez.Register(e, ez.Action[domain.AdopterInput, domain.Adopter]{
		Method: http.MethodPost, Path: "", Binder: ez.BindJSON, Status: http.StatusCreated,
		Handler: func(c *gin.Context, in *domain.AdopterInput) (domain.Adopter, error) {
			return h.svc.Create(c.Request.Context(), *in)
		},
	})
	ez.Register(e, ez.Action[domain.AdopterInput, domain.Adopter]{
		Method: http.MethodPut, Path: "/:id", Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *domain.AdopterInput) (domain.Adopter, error) {
			id, err := ez.IntParam(c, "id")
			if err != nil {
				return domain.Adopter{}, err
			}
			return h.svc.Replace(c.Request.Context(), id, *in)
		},
	})
	ez.Register(e, ez.Action[struct{}, struct{}]{
		Method: http.MethodDelete, Path: "/:id", Status: http.StatusNoContent,
		Handler: func(c *gin.Context, _ *struct{}) (struct{}, error) {
			id, err := ez.IntParam(c, "id")
			if err != nil {
				return struct{}{}, err
			}
			return struct{}{}, h.svc.Remove(c.Request.Context(), id)
		},
	})
}
