package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"traffic-info/internal/repository"
)

func newUserService(t *testing.T) *UserService {
	t.Helper()
	return NewUserService(repository.NewUserRepository(testDB(t)))
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newUserService(t)

	require.NoError(t, svc.Register("alice", "alice@example.com", "password123"))

	user, err := svc.Login("alice@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)
	// 密码只存哈希
	assert.NotEqual(t, "password123", user.PasswordHash)
	assert.NotEmpty(t, user.PasswordHash)
}

func TestRegisterDuplicate(t *testing.T) {
	svc := newUserService(t)

	require.NoError(t, svc.Register("alice", "alice@example.com", "password123"))

	// 用户名重复
	err := svc.Register("alice", "other@example.com", "password123")
	assert.ErrorIs(t, err, ErrUserExists)

	// 邮箱重复
	err = svc.Register("bob", "alice@example.com", "password123")
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc := newUserService(t)

	require.NoError(t, svc.Register("alice", "alice@example.com", "password123"))

	// 密码错误和用户不存在返回同一个错误，防止枚举
	_, err := svc.Login("alice@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("nobody@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
