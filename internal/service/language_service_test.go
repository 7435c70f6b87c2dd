package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"locale-gateway-go/internal/locale"
	"locale-gateway-go/internal/repository"
	"locale-gateway-go/pkg/logging"
)

func init() {
	logging.Logger = zap.NewNop()
}

func TestDetectionOrder(t *testing.T) {
	t.Run("persisted slot wins", func(t *testing.T) {
		store := repository.NewMemoryLanguageStore()
		require.NoError(t, store.Save("nl"))

		s := NewLanguageService(store, locale.LangEN, "fr-FR,fr;q=0.9")
		assert.Equal(t, locale.LangNL, s.Language())
	})

	t.Run("negotiated locale when slot is empty", func(t *testing.T) {
		s := NewLanguageService(repository.NewMemoryLanguageStore(), locale.LangEN, "fr-FR,fr;q=0.9,en;q=0.8")
		assert.Equal(t, locale.LangFR, s.Language())
	})

	t.Run("default when nothing matches", func(t *testing.T) {
		s := NewLanguageService(repository.NewMemoryLanguageStore(), locale.LangEN, "de-DE,ja;q=0.5")
		assert.Equal(t, locale.LangEN, s.Language())
	})

	t.Run("default without any signal", func(t *testing.T) {
		s := NewLanguageService(repository.NewMemoryLanguageStore(), locale.LangFR, "")
		assert.Equal(t, locale.LangFR, s.Language())
	})

	t.Run("persisted value is normalized", func(t *testing.T) {
		store := repository.NewMemoryLanguageStore()
		require.NoError(t, store.Save("FR-ca"))

		s := NewLanguageService(store, locale.LangEN, "")
		assert.Equal(t, locale.LangFR, s.Language())
	})
}

func TestSetLanguage(t *testing.T) {
	store := repository.NewMemoryLanguageStore()
	s := NewLanguageService(store, locale.LangEN, "")

	lang, err := s.SetLanguage("fr-FR")
	require.NoError(t, err)
	assert.Equal(t, locale.LangFR, lang)
	assert.Equal(t, locale.LangFR, s.Language())
	assert.Equal(t, locale.LangFR, s.DocumentLanguage())

	// 切换被持久化
	persisted, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "fr", persisted)

	// 不支持的代码归一化到默认语言
	lang, err = s.SetLanguage("de")
	require.NoError(t, err)
	assert.Equal(t, locale.LangEN, lang)
}

func TestOnChangeSeesUpdatedDocumentLanguage(t *testing.T) {
	s := NewLanguageService(repository.NewMemoryLanguageStore(), locale.LangEN, "")

	var got []locale.Language
	s.OnChange(func(lang locale.Language) {
		// 监听器触发时展现层属性必须已经更新
		assert.Equal(t, lang, s.DocumentLanguage())
		got = append(got, lang)
	})

	_, err := s.SetLanguage("nl")
	require.NoError(t, err)
	_, err = s.SetLanguage("en-US")
	require.NoError(t, err)

	assert.Equal(t, []locale.Language{locale.LangNL, locale.LangEN}, got)
}

type failingStore struct{}

func (failingStore) Load() (string, error) { return "", nil }
func (failingStore) Save(string) error     { return errors.New("redis down") }

func TestSetLanguagePersistFailure(t *testing.T) {
	s := NewLanguageService(failingStore{}, locale.LangEN, "")

	lang, err := s.SetLanguage("fr")
	assert.Error(t, err)
	// 切换仍然生效，不回滚
	assert.Equal(t, locale.LangFR, lang)
	assert.Equal(t, locale.LangFR, s.Language())
}

func TestResolutionStats(t *testing.T) {
	stats := NewResolutionStats()
	stats.Record(locale.LangEN, locale.NSGlobal)
	stats.Record(locale.LangEN, locale.NSGlobal)
	stats.Record(locale.LangFR, locale.NSRooms)

	snap := stats.Snapshot()
	assert.Equal(t, uint64(2), snap[locale.ResourceKey(locale.LangEN, locale.NSGlobal)])
	assert.Equal(t, uint64(1), snap[locale.ResourceKey(locale.LangFR, locale.NSRooms)])

	stats.LogSummary()
	assert.Empty(t, stats.Snapshot())
}
