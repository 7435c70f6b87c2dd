package locale

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
)

// localeFS 编译期嵌入的翻译资源目录，结构为 locales/{language}/{namespace}.json
//
//go:embed locales
var localeFS embed.FS

// NewModuleMap 从嵌入的资源目录构建静态 ModuleMap。
// 只收录实际存在的文件；加载器在首次调用时才读取并解析 JSON。
func NewModuleMap() ModuleMap {
	return NewModuleMapFromFS(localeFS)
}

// NewModuleMapFromFS 从任意文件系统构建 ModuleMap，测试用
func NewModuleMapFromFS(fsys fs.FS) ModuleMap {
	modules := make(ModuleMap)
	for _, lang := range Languages() {
		for _, ns := range Namespaces() {
			key := ResourceKey(lang, ns)
			if _, err := fs.Stat(fsys, key); err != nil {
				continue
			}
			modules[key] = newFSLoader(fsys, key)
		}
	}
	return modules
}

// newFSLoader 返回读取并解析单个 JSON 资源文件的加载器
func newFSLoader(fsys fs.FS, key string) ModuleLoader {
	return func(ctx context.Context) (any, error) {
		data, err := fs.ReadFile(fsys, key)
		if err != nil {
			return nil, fmt.Errorf("read locale resource %s: %w", key, err)
		}
		var loaded any
		if err := json.Unmarshal(data, &loaded); err != nil {
			return nil, fmt.Errorf("parse locale resource %s: %w", key, err)
		}
		return loaded, nil
	}
}
