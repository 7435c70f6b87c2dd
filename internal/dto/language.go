package dto

import (
	"github.com/gin-gonic/gin"

	"locale-gateway-go/pkg/utils"
)

// SetLanguageRequest 切换当前语言的请求参数
type SetLanguageRequest struct {
	Language string `json:"language" binding:"required,langcode"`
}

// Validate 自定义验证逻辑
func (r *SetLanguageRequest) Validate() error {
	if err := utils.ValidateLanguageCode(r.Language); err != nil {
		return gin.Error{
			Err:  err,
			Type: gin.ErrorTypeBind,
		}
	}
	return nil
}

// LanguageInfo 受支持语言的描述
type LanguageInfo struct {
	Code   string `json:"code"`
	Label  string `json:"label"`
	Active bool   `json:"active"`
}

// LanguageState 当前语言状态
type LanguageState struct {
	Language         string `json:"language"`
	DocumentLanguage string `json:"documentLanguage"`
}
