package response

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"cat-cafe/internal/domain"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{domain.Validation("bad"), http.StatusBadRequest},
		{domain.NotFound("cat not found"), http.StatusNotFound},
		{domain.Conflict("username already exists"), http.StatusConflict},
		{domain.Referenced("still referenced"), http.StatusBadRequest},
		{domain.Unauthorized("nope"), http.StatusUnauthorized},
		{domain.RateLimited("slow"), http.StatusTooManyRequests},
		{domain.Storage("write cats", errors.New("disk full")), http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusOf(tt.err), tt.err.Error())
	}
}

func TestFromError(t *testing.T) {
	code, body := FromError(domain.Storage("write cats", errors.New("/var/data: disk full")))
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "Internal Server Error", body.Msg)
	assert.NotContains(t, body.Msg, "disk full")

	code, body = FromError(domain.Validation("validation failed",
		domain.FieldError{Field: "age", Message: "is required"}))
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "validation failed", body.Msg)
	assert.Equal(t, map[string]any{"fields": []domain.FieldError{{Field: "age", Message: "is required"}}}, body.Data)

	code, body = FromError(domain.NotFound("cat not found"))
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, Resp{Code: 404, Msg: "cat not found", Data: struct{}{}}, body)
}
