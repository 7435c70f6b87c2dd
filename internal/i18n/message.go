package i18n

import (
	"context"

	"github.com/nicksnyder/go-i18n/v2/i18n"

	"locale-gateway-go/constant"
)

// MessageSource 面向调用方的消息查询接口
type MessageSource interface {
	GetMessage(ctx context.Context, messageID string) (string, error)
}

// DefaultMessageSource 基于 go-i18n Bundle 的默认实现
type DefaultMessageSource struct {
	Bundle      *i18n.Bundle
	DefaultLang string
}

func (m *DefaultMessageSource) GetMessage(ctx context.Context, messageID string) (string, error) {
	// 1. 优先使用 Context 中已缓存的 Localizer
	if localizer, ok := ctx.Value(constant.LocalizerContextKey).(*i18n.Localizer); ok {
		config := &i18n.LocalizeConfig{
			MessageID: messageID,
		}
		return localizer.Localize(config)
	}

	// 2. 否则根据 Context 中的语言标签新建 Localizer
	lang, ok := ctx.Value(constant.LanguageContextKey).(string)
	if !ok {
		lang = m.DefaultLang
	}
	localizer := i18n.NewLocalizer(m.Bundle, lang)
	config := &i18n.LocalizeConfig{
		MessageID: messageID,
	}
	return localizer.Localize(config)
}
