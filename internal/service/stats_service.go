package service

import (
	"sort"
	"sync"

	"go.uber.org/zap"

	"locale-gateway-go/internal/locale"
	"locale-gateway-go/pkg/logging"
)

// ResolutionStats 按资源键统计 bundle 解析次数。纯内存计数器，
// 由定时任务周期性输出到日志，不落任何持久化存储。
type ResolutionStats struct {
	mu     sync.Mutex
	counts map[string]uint64
}

func NewResolutionStats() *ResolutionStats {
	return &ResolutionStats{counts: make(map[string]uint64)}
}

// Record 记录一次成功解析
func (s *ResolutionStats) Record(lang locale.Language, ns locale.Namespace) {
	key := locale.ResourceKey(lang, ns)
	s.mu.Lock()
	s.counts[key]++
	s.mu.Unlock()
}

// Snapshot 返回当前计数的副本
func (s *ResolutionStats) Snapshot() map[string]uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]uint64, len(s.counts))
	for k, v := range s.counts {
		out[k] = v
	}
	return out
}

// LogSummary 把当前计数写入日志并清零，供 cron 周期调用
func (s *ResolutionStats) LogSummary() {
	s.mu.Lock()
	counts := s.counts
	s.counts = make(map[string]uint64)
	s.mu.Unlock()

	if len(counts) == 0 {
		return
	}

	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var total uint64
	fields := make([]zap.Field, 0, len(keys)+1)
	for _, k := range keys {
		total += counts[k]
		fields = append(fields, zap.Uint64(k, counts[k]))
	}
	fields = append(fields, zap.Uint64("total", total))

	logging.Logger.Info("Locale resolution summary", fields...)
}
