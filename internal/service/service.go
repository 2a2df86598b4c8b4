package service

import (
	"time"

	"gorm.io/gorm"

	"traffic-info/internal/broadcast"
	"traffic-info/internal/repository"
)

// Services 所有服务的集合
type Services struct {
	Traffic  *TrafficService
	User     *UserService
	Settings *SettingsService
}

// NewServices 初始化所有服务
func NewServices(db *gorm.DB, hub *broadcast.Hub) *Services {
	// 创建仓库集合
	repos := repository.NewRepositories(db)

	return &Services{
		Traffic:  NewTrafficService(repos.Traffic, hub),
		User:     NewUserService(repos.User),
		Settings: NewSettingsService(repos.Settings),
	}
}

// 聚合查询的时间窗口
const (
	summaryWindow = 30 * 24 * time.Hour
	historyWindow = 24 * time.Hour
)
