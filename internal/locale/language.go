package locale

import "strings"

// Language 受支持的语言代码
type Language string

const (
	LangEN Language = "en"
	LangFR Language = "fr"
	LangNL Language = "nl"
)

// DefaultLanguage 默认回退语言
const DefaultLanguage = LangEN

// supportedLanguages 与 locales/ 目录下的语言子目录一一对应
var supportedLanguages = []Language{LangEN, LangFR, LangNL}

// nativeLabels 语言选择器展示用的本地名称
var nativeLabels = map[Language]string{
	LangEN: "English",
	LangFR: "Français",
	LangNL: "Nederlands",
}

// Languages 返回受支持语言的副本
func Languages() []Language {
	out := make([]Language, len(supportedLanguages))
	copy(out, supportedLanguages)
	return out
}

// IsSupported 判断语言代码是否受支持
func IsSupported(lang Language) bool {
	for _, l := range supportedLanguages {
		if l == lang {
			return true
		}
	}
	return false
}

// Label 返回语言的本地名称，未知语言返回代码本身
func (l Language) Label() string {
	if label, ok := nativeLabels[l]; ok {
		return label
	}
	return string(l)
}

func (l Language) String() string {
	return string(l)
}

// Normalize 把任意 locale 字符串归一化为受支持的语言代码。
// 规则：截取第一个 "-" 之前的前缀并转小写（"en-US" -> "en"），
// 前缀不受支持时回退到默认语言。该函数永不失败。
func Normalize(raw string, fallback Language) Language {
	prefix := raw
	if i := strings.Index(raw, "-"); i >= 0 {
		prefix = raw[:i]
	}
	lang := Language(strings.ToLower(prefix))
	if IsSupported(lang) {
		return lang
	}
	return fallback
}
