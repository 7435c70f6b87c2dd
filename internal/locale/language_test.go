package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Run("region suffix is stripped", func(t *testing.T) {
		assert.Equal(t, LangEN, Normalize("en-US", DefaultLanguage))
		assert.Equal(t, LangFR, Normalize("fr-FR", DefaultLanguage))
		assert.Equal(t, LangNL, Normalize("nl-BE", DefaultLanguage))
	})

	t.Run("prefix is lowercased", func(t *testing.T) {
		assert.Equal(t, LangFR, Normalize("FR-fr", DefaultLanguage))
		assert.Equal(t, LangEN, Normalize("EN", DefaultLanguage))
	})

	t.Run("region suffix equals normalizing the bare prefix", func(t *testing.T) {
		for _, raw := range []string{"en-US", "fr-CA", "nl-NL", "de-DE", "PT-br"} {
			withRegion := Normalize(raw, DefaultLanguage)
			bare := Normalize(raw[:2], DefaultLanguage)
			assert.Equal(t, bare, withRegion, "raw=%s", raw)
		}
	})

	t.Run("unsupported prefix falls back to default", func(t *testing.T) {
		assert.Equal(t, DefaultLanguage, Normalize("de", DefaultLanguage))
		assert.Equal(t, DefaultLanguage, Normalize("pt-BR", DefaultLanguage))
		assert.Equal(t, DefaultLanguage, Normalize("", DefaultLanguage))
		assert.Equal(t, DefaultLanguage, Normalize("zz-ZZ", DefaultLanguage))
	})

	t.Run("fallback language is configurable", func(t *testing.T) {
		assert.Equal(t, LangFR, Normalize("de", LangFR))
	})
}

func TestLanguages(t *testing.T) {
	langs := Languages()
	assert.Equal(t, []Language{LangEN, LangFR, LangNL}, langs)

	// 返回的是副本，调用方修改不影响内部状态
	langs[0] = "zz"
	assert.Equal(t, LangEN, Languages()[0])
}

func TestIsSupported(t *testing.T) {
	assert.True(t, IsSupported(LangEN))
	assert.True(t, IsSupported(LangNL))
	assert.False(t, IsSupported("de"))
	assert.False(t, IsSupported("EN"))
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Français", LangFR.Label())
	assert.Equal(t, "Nederlands", LangNL.Label())
	assert.Equal(t, "de", Language("de").Label())
}
