package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"cat-cafe/internal/domain"
	"cat-cafe/internal/service"
	"cat-cafe/internal/transport/http/ez"
)

type CatHandler struct {
	svc *service.CatService
	log *zap.Logger
}

func NewCatHandler(svc *service.CatService, l *zap.Logger) *CatHandler {
	return &CatHandler{svc: svc, log: l}
}

func (h *CatHandler) Priority() int { return 10 }

func (h *CatHandler) MountAPI(api *gin.RouterGroup) {
	e := ez.New(api, h.log).Group("/cats")

	ez.Register(e, ez.Action[catQuery, []domain.Cat]{
		Method: http.MethodGet, Path: "", Binder: ez.BindQuery,
		Handler: func(c *gin.Context, q *catQuery) ([]domain.Cat, error) {
			return h.svc.List(c.Request.Context(), q.filter())
		},
	})
	ez.Register(e, ez.Action[struct{}, domain.Cat]{
		Method: http.MethodGet, Path: "/:id",
		Handler: func(c *gin.Context, _ *struct{}) (domain.Cat, error) {
			id, err := ez.IntParam(c, "id")
			if err != nil {
				return domain.Cat{}, err
			}
			return h.svc.Get(c.Request.Context(), id)
		},
	})
	ez.Register(e, ez.Action[domain.CatInput, domain.Cat]{
		Method: http.MethodPost, Path: "", Binder: ez.BindJSON, Status: http.StatusCreated,
		Handler: func(c *gin.Context, in *domain.CatInput) (domain.Cat, error) {
			return h.svc.Create(c.Request.Context(), *in)
		},
	})
	ez.Register(e, ez.Action[domain.CatInput, domain.Cat]{
		Method: http.MethodPut, Path: "/:id", Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *domain.CatInput) (domain.Cat, error) {
			id, err := ez.IntParam(c, "id")
			if err != nil {
				return domain.Cat{}, err
			}
			return h.svc.Replace(c.Request.Context(), id, *in)
		},
	})
	ez.Register(e, ez.Action[domain.CatPatch, domain.Cat]{
		Method: http.MethodPatch, Path: "/:id", Binder: ez.BindJSON,
		Handler: func(c *gin.Context, in *domain.CatPatch) (domain.Cat, error) {
			id, err := ez.IntParam(c, "id")
			if err != nil {
				return domain.Cat{}, err
			}
			return h.svc.Patch(c.Request.Context(), id, *in)
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
