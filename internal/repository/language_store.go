package repository

import (
	"sync"

	"github.com/gomodule/redigo/redis"

	"locale-gateway-go/constant"
)

// LanguageStore 持久化单个语言槽位（浏览器端 i18nextLng 的服务端等价物）。
// 启动时读取，语言切换时写入，除此之外不保存任何状态。
type LanguageStore interface {
	// Load 读取上次保存的语言代码，槽位为空时返回 ("", nil)
	Load() (string, error)
	// Save 保存语言代码
	Save(code string) error
}

// RedisLanguageStore 基于 Redis 的语言槽位实现
type RedisLanguageStore struct {
	pool *redis.Pool
}

func NewRedisLanguageStore(pool *redis.Pool) *RedisLanguageStore {
	return &RedisLanguageStore{pool: pool}
}

func (s *RedisLanguageStore) Load() (string, error) {
	conn := s.pool.Get()
	defer func() { _ = conn.Close() }()

	code, err := redis.String(conn.Do("GET", constant.PersistedLanguageKey))
	if err == redis.ErrNil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return code, nil
}

func (s *RedisLanguageStore) Save(code string) error {
	conn := s.pool.Get()
	defer func() { _ = conn.Close() }()

	_, err := conn.Do("SET", constant.PersistedLanguageKey, code)
	return err
}

// MemoryLanguageStore 内存实现，测试用
type MemoryLanguageStore struct {
	mu   sync.Mutex
	code string
	set  bool
}

func NewMemoryLanguageStore() *MemoryLanguageStore {
	return &MemoryLanguageStore{}
}

func (s *MemoryLanguageStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.set {
		return "", nil
	}
	return s.code, nil
}

func (s *MemoryLanguageStore) Save(code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.code = code
	s.set = true
	return nil
}
