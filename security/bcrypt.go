// Package security 提供密码哈希与比对能力。
// 帖子与评论的变更操作都以"提交时的明文密码 vs 入库的哈希"做授权判定。
package security

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordEncryptor 定义密码哈希器的行为
// - Hash 对明文生成单向哈希（含盐）
// - Verify 比对明文与哈希，不匹配返回 false 而非错误；
//   只有哈希本身损坏等异常情况才返回 error
type PasswordEncryptor interface {
	Hash(plain string) (string, error)
	Verify(plain, hashed string) (bool, error)
}

// bcryptEncryptor 基于 bcrypt 的默认实现
// - cost 固定为 bcrypt.DefaultCost，单次哈希约几十毫秒，
//   对低频的发帖/删帖场景足够
type bcryptEncryptor struct {
	cost int
}

// NewBcryptEncryptor 创建 bcrypt 密码哈希器
func NewBcryptEncryptor() PasswordEncryptor {
	return &bcryptEncryptor{cost: bcrypt.DefaultCost}
}

func (e *bcryptEncryptor) Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), e.cost)
	if err != nil {
		return "", fmt.Errorf("生成密码哈希失败: %w", err)
	}
	return string(hashed), nil
}

func (e *bcryptEncryptor) Verify(plain, hashed string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("比对密码哈希失败: %w", err)
}
