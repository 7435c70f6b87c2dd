package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	thirdPartyI18n "github.com/nicksnyder/go-i18n/v2/i18n"

	"locale-gateway-go/constant"
	"locale-gateway-go/internal/service"
)

// I18nMiddleware 把当前激活语言的 Localizer 注入请求上下文。
// 语言来自 LanguageService（持久化槽位 + 启动时协商的结果），
// 而不是逐请求重新协商。
func I18nMiddleware(bundle *thirdPartyI18n.Bundle, langService *service.LanguageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := langService.Language().String()

		localizer := thirdPartyI18n.NewLocalizer(bundle, lang)
		ctx := context.WithValue(c.Request.Context(), constant.LocalizerContextKey, localizer)
		ctx = context.WithValue(ctx, constant.LanguageContextKey, lang)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
