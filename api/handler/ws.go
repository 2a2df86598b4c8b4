package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"traffic-info/internal/auth"
	"traffic-info/internal/broadcast"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// 面板是跨端口访问的，和CORS中间件保持一致放开来源
	CheckOrigin: func(r *http.Request) bool { return true },
}

// TrafficWebSocket 建立推送连接，每生成一条记录推送一次
// 浏览器的WebSocket API带不了自定义header，token走查询参数
func TrafficWebSocket(jwtService *auth.JWTService, hub *broadcast.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Query("token")
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		if _, err := jwtService.ValidateToken(token); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("websocket upgrade failed: %v", err)
			return
		}

		hub.Register(conn)

		// 客户端不需要发任何消息，读循环只用来感知连接断开
		go func() {
			defer func() {
				hub.Unregister(conn)
				_ = conn.Close()
			}()
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()
	}
}
