package repository

import (
	"gorm.io/gorm"
)

// Repositories 存储所有仓库的集合
type Repositories struct {
	Traffic  TrafficRepository
	Settings SettingsRepository
	User     UserRepository
}

// NewRepositories 创建所有仓库的集合
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Traffic:  NewTrafficRepository(db),
		Settings: NewSettingsRepository(db),
		User:     NewUserRepository(db),
	}
}
