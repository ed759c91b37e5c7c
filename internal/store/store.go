// Package store 提供集合级 JSON 文档的读写原语与串行化器。
//
// 每个集合对应一个完整文档（如 cats.json），读取失败回落到种子值，
// 写入总是整体替换。调用方用 Sequencer 保证一次 读-改-写 不被打断。
package store

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"

	"go.uber.org/zap"

	"cat-cafe/internal/domain"
)

// Backend 文档的原始字节存取
type Backend interface {
	// Read 文档不存在时返回 fs.ErrNotExist
	Read(ctx context.Context, name string) ([]byte, error)
	Write(ctx context.Context, name string, data []byte) error
}

// Docs 绑定了日志的后端
type Docs struct {
	Backend
	log *zap.Logger
}

func NewDocs(b Backend, l *zap.Logger) *Docs {
	if l == nil {
		l = zap.NewNop()
	}
	return &Docs{Backend: b, log: l}
}

// LoadOrDefault 读取文档；缺失、为空、损坏或读失败时返回 seed()，从不返回错误
func LoadOrDefault[T any](ctx context.Context, d *Docs, name string, seed func() T) T {
	b, err := d.Read(ctx, name)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return seed()
	case err != nil:
		d.log.Warn("document unreadable, using default", zap.String("doc", name), zap.Error(err))
		return seed()
	case len(b) == 0:
		return seed()
	}
	var doc T
	if err := json.Unmarshal(b, &doc); err != nil {
		d.log.Warn("document corrupt, using default", zap.String("doc", name), zap.Error(err))
		return seed()
	}
	return doc
}

// Save 整体覆盖；写失败包装为 StorageError 返回
func Save[T any](ctx context.Context, d *Docs, name string, doc T) error {
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return domain.Storage("encode "+name, err)
	}
	if err := d.Write(ctx, name, b); err != nil {
		d.log.Error("document write failed", zap.String("doc", name), zap.Error(err))
		return domain.Storage("write "+name, err)
	}
	return nil
}
