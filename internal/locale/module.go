package locale

// moduleShape 标记加载到的原始模块的形态
type moduleShape int

const (
	// rawValue 模块本身就是候选 bundle
	rawValue moduleShape = iota
	// wrappedDefault 模块是 { "default": {...} } 形式的包装
	wrappedDefault
)

// Module 对加载结果的显式分类，替代对 "default" 属性的鸭子类型探测
type Module struct {
	shape moduleShape
	value any
}

// classifyModule 判断模块形态：顶层对象含 "default" 键时取其值作为候选，
// 其余情况模块本身即候选
func classifyModule(loaded any) Module {
	if m, ok := loaded.(map[string]any); ok {
		if inner, ok := m["default"]; ok {
			return Module{shape: wrappedDefault, value: inner}
		}
	}
	return Module{shape: rawValue, value: loaded}
}

// Bundle 解析候选值为翻译 bundle。候选必须是键值映射，
// 列表、原始值和 null 均视为格式错误。
func (m Module) Bundle(key string) (TranslationBundle, error) {
	bundle, ok := m.value.(map[string]any)
	if !ok || bundle == nil {
		return nil, &InvalidFormatError{Key: key, Value: m.value}
	}
	return bundle, nil
}
