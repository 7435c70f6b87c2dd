package locale

import "fmt"

// MissingResourceError 请求语言和默认语言的资源文件都不存在。
// 属于打包缺陷（默认语言缺少某个 namespace 文件），不允许被静默吞掉。
type MissingResourceError struct {
	// Key 原始请求的资源键
	Key string
}

func (e *MissingResourceError) Error() string {
	return fmt.Sprintf("missing locale resource: %s", e.Key)
}

// InvalidFormatError 加载到的模块内容不是键值映射
type InvalidFormatError struct {
	Key   string
	Value any
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid locale resource format: %s (got %T)", e.Key, e.Value)
}
