package response

import (
	"errors"

	"cat-cafe/internal/domain"
)

// Resp 错误响应体
type Resp struct {
	Code int         `json:"code"`
	Msg  string      `json:"msg"`
	Data interface{} `json:"data"`
}

// New 保证 data 不为 null
func New(code int, msg string, data interface{}) Resp {
	if data == nil {
		data = struct{}{}
	}
	return Resp{Code: code, Msg: msg, Data: data}
}

// Error 可以传自定义 msg 覆盖默认
func Error(code int, customMsg string) Resp {
	msg := CodeMsgMap[code]
	if customMsg != "" {
		msg = customMsg
	}
	return New(code, msg, struct{}{})
}

// FromError 内部错误不向客户端暴露细节
func FromError(err error) (int, Resp) {
	code := StatusOf(err)
	if code == CodeServerError {
		return code, Error(code, "")
	}
	var de *domain.Error
	if asDomain(err, &de) && len(de.Fields) > 0 {
		return code, New(code, de.Msg, map[string]any{"fields": de.Fields})
	}
	msg := err.Error()
	if asDomain(err, &de) && de.Msg != "" {
		msg = de.Msg
	}
	return code, Error(code, msg)
}

func asDomain(err error, target **domain.Error) bool { return errors.As(err, target) }
