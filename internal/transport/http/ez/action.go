// Package ez 把 “绑定入参 → 调用业务 → 写响应” 收敛成一个声明式 Action。
package ez

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"cat-cafe/internal/domain"
	mdw "cat-cafe/internal/transport/http/middleware"
	resp "cat-cafe/internal/transport/http/response"
)

type Binder int

const (
	BindNone Binder = iota
	BindJSON
	BindQuery
)

// Action 一个路由动作；Status 为成功时的状态码（默认 200，204 不写 body）
type Action[I, O any] struct {
	Method  string
	Path    string
	Binder  Binder
	Status  int
	Handler func(c *gin.Context, in *I) (O, error)
}

type EZ struct {
	g   *gin.RouterGroup
	log *zap.Logger
}

func New(g *gin.RouterGroup, l *zap.Logger) EZ {
	if l == nil {
		l = zap.NewNop()
	}
	return EZ{g: g, log: l}
}

// Group 子分组，附带中间件
func (e EZ) Group(path string, hs ...gin.HandlerFunc) EZ {
	return EZ{g: e.g.Group(path, hs...), log: e.log}
}

func Register[I, O any](e EZ, a Action[I, O]) {
	status := a.Status
	if status == 0 {
		status = http.StatusOK
	}
	e.g.Handle(a.Method, a.Path, func(c *gin.Context) {
		var in I
		if err := bind(c, a.Binder, &in); err != nil {
			Fail(c, e.log, err)
			return
		}
		out, err := a.Handler(c, &in)
		if err != nil {
			Fail(c, e.log, err)
			return
		}
		if status == http.StatusNoContent {
			c.Status(status)
			return
		}
		c.JSON(status, out)
	})
}

// Fail 领域错误 → 状态码 + 统一错误体；5xx 记日志
func Fail(c *gin.Context, l *zap.Logger, err error) {
	code, body := resp.FromError(err)
	if code >= http.StatusInternalServerError {
		l.Error("request failed",
			zap.String("path", c.FullPath()),
			zap.String("rid", c.GetString(mdw.KeyRequestID)),
			zap.Error(err),
		)
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(code, body)
}

func bind(c *gin.Context, b Binder, in any) error {
	var err error
	switch b {
	case BindJSON:
		err = c.ShouldBindJSON(in)
		// 空 body 视作空对象，交给字段校验
		if errors.Is(err, io.EOF) {
			err = nil
		}
	case BindQuery:
		err = c.ShouldBindQuery(in)
	}
	if err == nil {
		return nil
	}
	var mbe *http.MaxBytesError
	if errors.As(err, &mbe) {
		return domain.Validation("request body too large")
	}
	return &domain.Error{Kind: domain.KindValidation, Msg: "malformed request: " + err.Error(), Err: err}
}

// IntParam 路径整型 id
func IntParam(c *gin.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, domain.Validation("invalid "+name, domain.FieldError{Field: name, Message: "must be an integer"})
	}
	return id, nil
}
