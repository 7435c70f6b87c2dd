package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"locale-gateway-go/constant"
)

func ZapGinLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		fields := []zap.Field{
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
			zap.Int("status", c.Writer.Status()),
			zap.String("client_ip", c.ClientIP()),
			zap.Duration("latency", latency),
		}
		// 带上请求使用的语言，方便排查翻译问题
		if lang, ok := c.Request.Context().Value(constant.LanguageContextKey).(string); ok {
			fields = append(fields, zap.String("language", lang))
		}

		logger.Info("HTTP Request", fields...)
	}
}
