package service

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"traffic-info/internal/model"
	"traffic-info/internal/repository"
)

var (
	// ErrUserExists 用户名或邮箱已被占用
	ErrUserExists = errors.New("username or email already taken")
	// ErrInvalidCredentials 凭证无效
	// 用户不存在和密码错误返回同一个错误，避免账号枚举
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// UserService 注册和登录
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService 创建用户服务
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Register 注册新用户，用户名和邮箱必须唯一
func (s *UserService) Register(username, email, password string) error {
	exists, err := s.userRepo.ExistsByUsernameOrEmail(username, email)
	if err != nil {
		return fmt.Errorf("check user existence: %w", err)
	}
	if exists {
		return ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(user); err != nil {
		// 并发注册时唯一索引兜底，同样按冲突处理
		return ErrUserExists
	}

	return nil
}

// Login 校验邮箱和密码，成功时返回用户
func (s *UserService) Login(email, password string) (*model.User, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
