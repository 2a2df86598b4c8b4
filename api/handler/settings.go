package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"traffic-info/internal/service"
)

// UpdateSettingsRequest 更新设置请求
type UpdateSettingsRequest struct {
	DataLimitGB   *float64 `json:"data_limit_gb" binding:"required"`
	AlertsEnabled *bool    `json:"alerts_enabled" binding:"required"`
}

// GetSettings 读取面板设置
func GetSettings(settingsService *service.SettingsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		settings, err := settingsService.Get()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load settings"})
			return
		}

		c.JSON(http.StatusOK, settings)
	}
}

// UpdateSettings 更新面板设置，返回更新后的值
func UpdateSettings(settingsService *service.SettingsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateSettingsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		if *req.DataLimitGB < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "data_limit_gb must be non-negative"})
			return
		}

		settings, err := settingsService.Update(*req.DataLimitGB, *req.AlertsEnabled)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update settings"})
			return
		}

		c.JSON(http.StatusOK, settings)
	}
}
