package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"traffic-info/internal/service"
)

// GetTrafficSummary 获取30天汇总、Top5域名和协议分布
func GetTrafficSummary(trafficService *service.TrafficService) gin.HandlerFunc {
	return func(c *gin.Context) {
		summary, err := trafficService.Summary(time.Now().UTC())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute summary"})
			return
		}

		c.JSON(http.StatusOK, summary)
	}
}

// GetTrafficHistory 获取过去24小时按小时分桶的历史
func GetTrafficHistory(trafficService *service.TrafficService) gin.HandlerFunc {
	return func(c *gin.Context) {
		history, err := trafficService.History(time.Now().UTC())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute history"})
			return
		}

		c.JSON(http.StatusOK, history)
	}
}
