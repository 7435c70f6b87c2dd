package service

import (
	"sync"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"locale-gateway-go/internal/locale"
	"locale-gateway-go/internal/repository"
	"locale-gateway-go/pkg/logging"
)

// ChangeListener 语言切换监听器，收到的是归一化后的新语言
type ChangeListener func(lang locale.Language)

// LanguageService 管理当前激活语言。显式注入依赖，测试时可独立构造，
// 不依赖进程级单例。
type LanguageService struct {
	store       repository.LanguageStore
	defaultLang locale.Language

	mu        sync.Mutex
	current   locale.Language
	docLang   locale.Language
	listeners []ChangeListener
}

// NewLanguageService 创建语言服务并执行启动时检测。
// 检测顺序：持久化槽位 -> acceptLanguage 协商结果 -> 默认语言。
func NewLanguageService(store repository.LanguageStore, defaultLang locale.Language, acceptLanguage string) *LanguageService {
	s := &LanguageService{
		store:       store,
		defaultLang: defaultLang,
	}
	s.current = s.detect(acceptLanguage)
	s.docLang = s.current
	return s
}

// detect 启动时确定初始语言
func (s *LanguageService) detect(acceptLanguage string) locale.Language {
	if s.store != nil {
		persisted, err := s.store.Load()
		if err != nil {
			logging.Logger.Warn("Failed to load persisted language", zap.Error(err))
		} else if persisted != "" {
			return locale.Normalize(persisted, s.defaultLang)
		}
	}

	if acceptLanguage != "" {
		if tags, _, err := language.ParseAcceptLanguage(acceptLanguage); err == nil {
			for _, tag := range tags {
				if lang := locale.Normalize(tag.String(), ""); lang != "" {
					return lang
				}
			}
		}
	}

	return s.defaultLang
}

// Language 返回当前激活语言
func (s *LanguageService) Language() locale.Language {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// DocumentLanguage 返回展现层的语言属性（页面 lang 属性的值）。
// 始终持有归一化后的代码，在 SetLanguage 内与当前语言同步更新。
func (s *LanguageService) DocumentLanguage() locale.Language {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.docLang
}

// DefaultLanguage 返回配置的默认语言
func (s *LanguageService) DefaultLanguage() locale.Language {
	return s.defaultLang
}

// OnChange 注册语言切换监听器。监听器在 SetLanguage 内同步调用，
// 且一定在展现层属性更新之后。
func (s *LanguageService) OnChange(listener ChangeListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, listener)
}

// SetLanguage 切换当前语言。输入先归一化，再依次：
// 更新展现层属性、持久化、同步通知监听器。
// 持久化失败只记录并返回错误，不回滚已生效的切换。
func (s *LanguageService) SetLanguage(code string) (locale.Language, error) {
	lang := locale.Normalize(code, s.defaultLang)

	s.mu.Lock()
	s.current = lang
	s.docLang = lang
	listeners := make([]ChangeListener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	var saveErr error
	if s.store != nil {
		if err := s.store.Save(string(lang)); err != nil {
			logging.Logger.Error("Failed to persist language",
				zap.String("language", string(lang)),
				zap.Error(err))
			saveErr = err
		}
	}

	for _, listener := range listeners {
		listener(lang)
	}

	return lang, saveErr
}
