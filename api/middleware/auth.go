package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"traffic-info/internal/auth"
)

// 认证通过后写入gin上下文的键
const (
	ContextUserID   = "user_id"
	ContextUsername = "username"
)

// Auth JWT认证中间件
// 无token、格式错误、签名或有效期校验失败都返回401
func Auth(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 从header里面获取token，格式为：Authorization: Bearer token
		authHeader := c.Request.Header.Get("Authorization")

		token, err := auth.ExtractTokenFromHeader(authHeader)
		if err != nil {
			unauthorized(c)
			return
		}

		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			unauthorized(c)
			return
		}

		// 把解码出的身份放进请求上下文
		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUsername, claims.Username)

		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"error": "unauthorized",
	})
	c.Abort()
}
