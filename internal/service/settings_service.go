package service

import (
	"traffic-info/internal/model"
	"traffic-info/internal/repository"
)

// SettingsService 面板设置的读写
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService 创建设置服务
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// Get 读取当前设置
func (s *SettingsService) Get() (*model.Settings, error) {
	return s.settingsRepo.Get()
}

// Update 更新设置并返回更新后的值
func (s *SettingsService) Update(dataLimitGB float64, alertsEnabled bool) (*model.Settings, error) {
	return s.settingsRepo.Update(dataLimitGB, alertsEnabled)
}
