package response

import (
	"net/http"

	"cat-cafe/internal/domain"
)

// 错误码直接使用 HTTP 语义
const (
	CodeBadRequest      = http.StatusBadRequest
	CodeUnauthorized    = http.StatusUnauthorized
	CodeForbidden       = http.StatusForbidden
	CodeNotFound        = http.StatusNotFound
	CodeConflict        = http.StatusConflict
	CodeTooManyRequests = http.StatusTooManyRequests
	CodeServerError     = http.StatusInternalServerError
	CodeTimeout         = http.StatusGatewayTimeout
)

// CodeMsgMap code → 默认 msg
var CodeMsgMap = map[int]string{
	CodeBadRequest:      "Bad Request",
	CodeUnauthorized:    "Unauthorized",
	CodeForbidden:       "Forbidden",
	CodeNotFound:        "Not Found",
	CodeConflict:        "Conflict",
	CodeTooManyRequests: "Too Many Requests",
	CodeServerError:     "Internal Server Error",
	CodeTimeout:         "Timeout",
}

// StatusOf 领域错误 → HTTP 状态码
func StatusOf(err error) int {
	switch domain.KindOf(err) {
	case domain.KindValidation:
		return CodeBadRequest
	case domain.KindNotFound:
		return CodeNotFound
	case domain.KindConflict:
		// 删除被引用阻止时沿用 400
		var de *domain.Error
		if asDomain(err, &de) && de.Referenced {
			return CodeBadRequest
		}
		return CodeConflict
	case domain.KindUnauthorized:
		return CodeUnauthorized
	case domain.KindRateLimited:
		return CodeTooManyRequests
	default:
		return CodeServerError
	}
}
