package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"locale-gateway-go/internal/apperrors"
	"locale-gateway-go/internal/dto"
	"locale-gateway-go/internal/i18n"
	"locale-gateway-go/internal/locale"
	"locale-gateway-go/internal/service"
	"locale-gateway-go/response"
)

// GetLanguageHandler 返回当前语言状态
func GetLanguageHandler(langService *service.LanguageService, messages i18n.MessageSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		msg, err := messages.GetMessage(c.Request.Context(), "language.current")
		if err != nil {
			msg = "language.current"
		}

		state := dto.LanguageState{
			Language:         langService.Language().String(),
			DocumentLanguage: langService.DocumentLanguage().String(),
		}
		c.JSON(http.StatusOK, response.OK(state, msg))
	}
}

// SetLanguageHandler 切换当前语言
func SetLanguageHandler(langService *service.LanguageService, messages i18n.MessageSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.SetLanguageRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			zap.L().Warn("Request body binding failed",
				zap.Error(err),
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
			)
			_ = c.Error(apperrors.InvalidRequestErrorDefault())
			return
		}

		lang, err := langService.SetLanguage(req.Language)
		if err != nil {
			// 切换已生效，持久化失败单独上报
			zap.L().Warn("Language switch persisted with error",
				zap.String("language", lang.String()),
				zap.Error(err))
		}

		msg, msgErr := messages.GetMessage(c.Request.Context(), "language.updated")
		if msgErr != nil {
			msg = "language.updated"
		}

		state := dto.LanguageState{
			Language:         lang.String(),
			DocumentLanguage: langService.DocumentLanguage().String(),
		}
		c.JSON(http.StatusOK, response.OK(state, msg))
	}
}

// ListLanguagesHandler 返回语言选择器需要的受支持语言列表
func ListLanguagesHandler(langService *service.LanguageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		current := langService.Language()

		langs := locale.Languages()
		infos := make([]dto.LanguageInfo, 0, len(langs))
		for _, lang := range langs {
			infos = append(infos, dto.LanguageInfo{
				Code:   lang.String(),
				Label:  lang.Label(),
				Active: lang == current,
			})
		}
		c.JSON(http.StatusOK, response.OK(infos, "success"))
	}
}
