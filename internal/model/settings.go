package model

import (
	"time"
)

// SettingsID 设置表只有一行，主键固定
const SettingsID uint = 1

// Settings 面板设置，单行表
type Settings struct {
	ID            uint      `json:"-" gorm:"primaryKey"`
	DataLimitGB   float64   `json:"data_limit_gb"`
	AlertsEnabled bool      `json:"alerts_enabled"`
	CreatedAt     time.Time `json:"-"`
	UpdatedAt     time.Time `json:"-"`
}

func (Settings) TableName() string {
	return "settings"
}
