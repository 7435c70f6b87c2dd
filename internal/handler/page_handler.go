package handler

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"locale-gateway-go/internal/apperrors"
	"locale-gateway-go/internal/dto"
	"locale-gateway-go/internal/locale"
	"locale-gateway-go/internal/service"
)

// 页面壳：html 标签的 lang 属性与当前归一化语言保持同步
const pageTemplateText = `<!DOCTYPE html>
<html lang="{{ .Lang }}">
<head>
<meta charset="utf-8">
<title>{{ .Title }}</title>
</head>
<body>
<h1>{{ .Title }}</h1>
<label for="language-select">{{ .SelectLabel }}</label>
<select id="language-select">
{{ range .Languages }}<option value="{{ .Code }}"{{ if .Active }} selected{{ end }}>{{ .Label }}</option>
{{ end }}</select>
</body>
</html>
`

// PageTemplate 返回页面模板，main 里注册到 gin
func PageTemplate() *template.Template {
	return template.Must(template.New("page").Parse(pageTemplateText))
}

type pageData struct {
	Lang        string
	Title       string
	SelectLabel string
	Languages   []dto.LanguageInfo
}

// PageHandler 渲染应用页面壳
func PageHandler(resolver *locale.Resolver, langService *service.LanguageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := langService.DocumentLanguage()

		bundle, err := resolver.Resolve(c.Request.Context(), lang.String(), locale.NSGlobal)
		if err != nil {
			zap.L().Error("Failed to resolve global bundle for page",
				zap.String("language", lang.String()),
				zap.Error(err))
			_ = c.Error(apperrors.SystemError("failed to load translations"))
			return
		}

		current := langService.Language()
		langs := locale.Languages()
		infos := make([]dto.LanguageInfo, 0, len(langs))
		for _, l := range langs {
			infos = append(infos, dto.LanguageInfo{
				Code:   l.String(),
				Label:  l.Label(),
				Active: l == current,
			})
		}

		c.HTML(http.StatusOK, "page", pageData{
			Lang:        lang.String(),
			Title:       bundleString(bundle, "app", "title"),
			SelectLabel: bundleString(bundle, "language", "select"),
			Languages:   infos,
		})
	}
}

// bundleString 沿嵌套键路径取字符串值，缺失时返回路径末段作为兜底
func bundleString(bundle locale.TranslationBundle, path ...string) string {
	var node any = map[string]any(bundle)
	for _, key := range path {
		m, ok := node.(map[string]any)
		if !ok {
			return path[len(path)-1]
		}
		node = m[key]
	}
	if s, ok := node.(string); ok {
		return s
	}
	return path[len(path)-1]
}
