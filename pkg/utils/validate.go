package utils

import (
	"fmt"
	"regexp"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// BCP 47 的宽松子集：主语言子标签 + 可选的连字符分隔子标签
var languageCodePattern = regexp.MustCompile(`^[a-zA-Z]{2,3}(-[a-zA-Z0-9]{2,8})*$`)

var namespacePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// ValidateLanguageCode 校验 locale 代码是否合法。
// 只校验形状，不校验是否受支持：不支持的代码由归一化回退处理。
func ValidateLanguageCode(code string) error {
	if code == "" {
		return fmt.Errorf("error.language_required")
	}

	if ContainsWhitespace(code) {
		return fmt.Errorf("error.language_cannot_contain_spaces")
	}

	if !languageCodePattern.MatchString(code) {
		return fmt.Errorf("error.language_invalid")
	}

	return nil
}

// ValidateNamespace 校验 namespace 名称是否合法
func ValidateNamespace(ns string) error {
	if ns == "" {
		return fmt.Errorf("error.namespace_required")
	}

	if !namespacePattern.MatchString(ns) {
		return fmt.Errorf("error.namespace_invalid")
	}

	return nil
}

func ContainsWhitespace(s string) bool {
	for _, r := range s {
		if unicode.IsSpace(r) {
			return true
		}
	}
	return false
}

// RegisterValidations 在 gin 的 binding 引擎上注册自定义校验标签
func RegisterValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine")
	}

	return v.RegisterValidation("langcode", func(fl validator.FieldLevel) bool {
		return ValidateLanguageCode(fl.Field().String()) == nil
	})
}
