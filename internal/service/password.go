// File: internal/service/password.go
package service

import (
	"crypto/sha256"
	"encoding/hex"

	"gethired/internal/apperr"

	"golang.org/x/crypto/bcrypt"
)

var (
	bcryptGenerateFromPassword   = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
)

// CredentialHasher 先以 SHA-256 摘要 (64 字元 hex) 再交給 bcrypt，
// 避免 bcrypt 靜默截斷 72 bytes 以上的密碼
type CredentialHasher struct {
	cost int
}

// NewCredentialHasher cost 超出 bcrypt 範圍時退回 bcrypt.DefaultCost
func NewCredentialHasher(cost int) *CredentialHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &CredentialHasher{cost: cost}
}

// Hash 接收明文密碼，回傳 bcrypt 哈希字串
func (h *CredentialHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", apperr.ErrEmptyPassword
	}
	hashBytes, err := bcryptGenerateFromPassword(prehash(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashBytes), nil
}

// Verify 以常數時間比對；格式錯誤的哈希視為不相符
func (h *CredentialHasher) Verify(password, hash string) bool {
	if password == "" || hash == "" {
		return false
	}
	return bcryptCompareHashAndPassword([]byte(hash), prehash(password)) == nil
}

func prehash(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	return []byte(hex.EncodeToString(sum[:]))
}
