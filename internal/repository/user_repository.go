package repository

import (
	"errors"

	"gorm.io/gorm"

	"traffic-info/internal/model"
)

// UserRepository 用户仓库接口
type UserRepository interface {
	Create(user *model.User) error
	FindByEmail(email string) (*model.User, error)
	ExistsByUsernameOrEmail(username, email string) (bool, error)
}

// GormUserRepository 基于GORM的用户仓库实现
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建用户仓库
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create 创建用户
func (r *GormUserRepository) Create(user *model.User) error {
	return r.db.Create(user).Error
}

// FindByEmail 根据邮箱查找用户，未找到时返回nil
func (r *GormUserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	result := r.db.Where("email = ?", email).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &user, nil
}

// ExistsByUsernameOrEmail 检查用户名或邮箱是否已被占用
func (r *GormUserRepository) ExistsByUsernameOrEmail(username, email string) (bool, error) {
	var count int64
	err := r.db.Model(&model.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
