// Package repo 实体集合服务：每个集合一个文档 + 一个串行化器，
// 每个公开方法恰好是一次 WithExclusiveAccess（一次 load + 可选 save）。
package repo

import "cat-cafe/internal/store"

// 集合文档名
const (
	CatsDoc     = "cats"
	StaffDoc    = "staff"
	AdoptersDoc = "adopters"
	UsersDoc    = "users"
)

// Collection 文档存取 + 该集合专属串行化器
type Collection struct {
	Docs *store.Docs
	Seq  *store.Sequencer
}

// NewCollection 串行化器由调用方注入，便于多个服务实例共享同一集合锁
func NewCollection(docs *store.Docs, seq *store.Sequencer) Collection {
	return Collection{Docs: docs, Seq: seq}
}

// nextID 计数器 +1；计数器不低于已存在的最大 id
func nextID(last int, ids func(yield func(int) bool)) int {
	for id := range ids {
		if id > last {
			last = id
		}
	}
	return last + 1
}
