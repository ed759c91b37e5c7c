package utils

import "golang.org/x/crypto/bcrypt"

// PasswordCost 生产环境的 bcrypt 代价
const PasswordCost = 12

// BcryptHasher 实现 domain.PasswordHasher
type BcryptHasher struct{ Cost int }

func (h BcryptHasher) Hash(pw string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = PasswordCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(pw), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func HashPassword(pw string) (string, error) { return BcryptHasher{}.Hash(pw) }

func CheckPassword(pw, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(pw)) == nil
}
