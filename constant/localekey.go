package constant

// 常量定义
const (
	BasePrefix = "i18n:"
)

// Redis 键
const (
	// PersistedLanguageKey 持久化的当前语言（对应浏览器端的 i18nextLng 槽位）
	PersistedLanguageKey = BasePrefix + "i18nextLng"
)

// Context 键
const (
	// LocalizerContextKey 请求上下文中的 go-i18n Localizer
	LocalizerContextKey = "i18n.Localizer"
	// LanguageContextKey 请求上下文中检测到的语言代码
	LanguageContextKey = "i18n.Language"
)
