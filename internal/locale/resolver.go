package locale

import (
	"context"
	"fmt"
)

// TranslationBundle 一个 (语言, namespace) 的翻译键值映射，值可嵌套
type TranslationBundle map[string]any

// ModuleLoader 懒加载一个原始资源模块。加载失败时错误原样向上传播，
// 本组件不重试、不包装。
type ModuleLoader func(ctx context.Context) (any, error)

// ModuleMap 资源键到加载器的静态映射，启动时构建一次，之后只读。
// 并发解析之间没有共享可变状态，无需加锁。
type ModuleMap map[string]ModuleLoader

// ResourceKey 构造 ModuleMap 的查找键：locales/{language}/{namespace}.json。
// 纯字符串拼接，无 I/O。
func ResourceKey(lang Language, ns Namespace) string {
	return fmt.Sprintf("locales/%s/%s.json", lang, ns)
}

// Resolver 按 (语言, namespace) 解析翻译 bundle。
// 每次调用无状态、相互独立；缓存由上层 i18n 库负责。
type Resolver struct {
	modules     ModuleMap
	defaultLang Language
}

// NewResolver 创建解析器。defaultLang 同时作为归一化和资源查找的回退语言。
func NewResolver(modules ModuleMap, defaultLang Language) *Resolver {
	return &Resolver{
		modules:     modules,
		defaultLang: defaultLang,
	}
}

// DefaultLanguage 返回配置的回退语言
func (r *Resolver) DefaultLanguage() Language {
	return r.defaultLang
}

// Normalize 用解析器配置的回退语言做归一化
func (r *Resolver) Normalize(raw string) Language {
	return Normalize(raw, r.defaultLang)
}

// Resolve 解析一个 (语言, namespace) 的翻译 bundle：
//  1. 归一化语言；
//  2. 查找主键对应的加载器；
//  3. 未命中时改查默认语言的同 namespace 加载器（不做 namespace 级回退）；
//  4. 两级都未命中返回 MissingResourceError，携带原始请求键；
//  5. 调用加载器，加载错误原样传播；
//  6. 解包模块（default 包装 / 原始值），校验为键值映射后返回。
func (r *Resolver) Resolve(ctx context.Context, rawLang string, ns Namespace) (TranslationBundle, error) {
	lang := r.Normalize(rawLang)

	primaryKey := ResourceKey(lang, ns)
	loader, ok := r.modules[primaryKey]
	if !ok {
		fallbackKey := ResourceKey(r.defaultLang, ns)
		loader, ok = r.modules[fallbackKey]
		if !ok {
			return nil, &MissingResourceError{Key: primaryKey}
		}
	}

	loaded, err := loader(ctx)
	if err != nil {
		return nil, err
	}

	return classifyModule(loaded).Bundle(primaryKey)
}
