package repository

import (
	"gorm.io/gorm"

	"traffic-info/internal/model"
)

// 设置表单行的默认值
const (
	defaultDataLimitGB = 100
)

// SettingsRepository 面板设置仓库接口
// 设置表永远只有一行，主键固定为model.SettingsID
type SettingsRepository interface {
	Get() (*model.Settings, error)
	Update(dataLimitGB float64, alertsEnabled bool) (*model.Settings, error)
}

// GormSettingsRepository 基于GORM的面板设置仓库实现
type GormSettingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository 创建面板设置仓库
func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &GormSettingsRepository{db: db}
}

// Get 读取设置，行不存在时先写入默认值
func (r *GormSettingsRepository) Get() (*model.Settings, error) {
	settings := model.Settings{
		ID:            model.SettingsID,
		DataLimitGB:   defaultDataLimitGB,
		AlertsEnabled: true,
	}
	err := r.db.Where("id = ?", model.SettingsID).FirstOrCreate(&settings).Error
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// Update 原地更新设置行
func (r *GormSettingsRepository) Update(dataLimitGB float64, alertsEnabled bool) (*model.Settings, error) {
	// 先确保行存在
	if _, err := r.Get(); err != nil {
		return nil, err
	}

	err := r.db.Model(&model.Settings{}).
		Where("id = ?", model.SettingsID).
		Updates(map[string]interface{}{
			"data_limit_gb":  dataLimitGB,
			"alerts_enabled": alertsEnabled,
		}).Error
	if err != nil {
		return nil, err
	}

	return r.Get()
}
