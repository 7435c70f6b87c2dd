package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"locale-gateway-go/internal/apperrors"
	"locale-gateway-go/internal/locale"
	"locale-gateway-go/internal/service"
	"locale-gateway-go/pkg/utils"
)

// GetLocaleBundleHandler 按 (语言, namespace) 返回翻译 bundle。
// 这是外部 i18n 库的加载入口，成功时直接返回 bundle 本身，
// 不套通用响应结构。
func GetLocaleBundleHandler(resolver *locale.Resolver, stats *service.ResolutionStats) gin.HandlerFunc {
	return func(c *gin.Context) {
		lng := c.Param("lng")
		ns := c.Param("ns")

		if err := utils.ValidateLanguageCode(lng); err != nil {
			_ = c.Error(apperrors.InvalidRequestError("invalid language code"))
			return
		}
		if err := utils.ValidateNamespace(ns); err != nil {
			_ = c.Error(apperrors.InvalidRequestError("invalid namespace"))
			return
		}

		bundle, err := resolver.Resolve(c.Request.Context(), lng, locale.Namespace(ns))
		if err != nil {
			var missing *locale.MissingResourceError
			var invalid *locale.InvalidFormatError
			switch {
			case errors.As(err, &missing):
				// 默认语言也缺这个 namespace，属于打包缺陷，必须显式暴露
				zap.L().Error("Locale resource missing",
					zap.String("key", missing.Key),
					zap.String("language", lng),
					zap.String("namespace", ns))
				_ = c.Error(apperrors.MissingResourceError(missing.Error()))
			case errors.As(err, &invalid):
				zap.L().Error("Locale resource malformed",
					zap.String("key", invalid.Key),
					zap.Error(err))
				_ = c.Error(apperrors.InvalidResourceFormatError(invalid.Error()))
			default:
				zap.L().Error("Locale resource load failed",
					zap.String("language", lng),
					zap.String("namespace", ns),
					zap.Error(err))
				_ = c.Error(apperrors.SystemError(err.Error()))
			}
			return
		}

		if stats != nil {
			stats.Record(resolver.Normalize(lng), locale.Namespace(ns))
		}

		c.JSON(http.StatusOK, bundle)
	}
}
