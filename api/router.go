package api

import (
	"github.com/gin-gonic/gin"

	"traffic-info/api/handler"
	"traffic-info/api/middleware"
	"traffic-info/internal/auth"
	"traffic-info/internal/broadcast"
	"traffic-info/internal/service"
)

// SetupRouter 设置API路由
func SetupRouter(services *service.Services, jwtService *auth.JWTService, hub *broadcast.Hub) *gin.Engine {
	// 创建Gin路由
	router := gin.New()
	// 添加中间件
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.Cors())

	// 认证接口，无需token
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/signup", handler.Signup(services.User))
		authGroup.POST("/login", handler.Login(services.User, jwtService))
	}

	apiGroup := router.Group("/api")
	apiGroup.Use(middleware.Auth(jwtService))
	{
		// 流量汇总和历史
		apiGroup.GET("/traffic/summary", handler.GetTrafficSummary(services.Traffic))
		apiGroup.GET("/traffic/history", handler.GetTrafficHistory(services.Traffic))

		// 面板设置
		apiGroup.GET("/settings", handler.GetSettings(services.Settings))
		apiGroup.POST("/settings", handler.UpdateSettings(services.Settings))
	}

	// 推送通道，token在查询参数里单独校验
	router.GET("/api/traffic/ws", handler.TrafficWebSocket(jwtService, hub))

	// 添加静态文件服务 - 放在最后添加，避免与API路由冲突
	router.Static("/static", "./web/build/static")
	router.StaticFile("/", "./web/build/index.html")
	// 处理其他前端路由
	router.NoRoute(func(c *gin.Context) {
		c.File("./web/build/index.html")
	})

	return router
}
