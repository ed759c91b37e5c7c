package domain

import "time"

// User 认证用户；Password 只保存哈希
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"createdAt"`
}

// PasswordHasher 由调用方注入（生产为 bcrypt cost 12）
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

type HasherFunc func(plain string) (string, error)

func (f HasherFunc) Hash(plain string) (string, error) { return f(plain) }
