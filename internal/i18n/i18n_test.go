package i18n

import (
	"context"
	"testing"

	thirdPartyI18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"locale-gateway-go/constant"
)

func testMessageFiles() []string {
	return []string{
		"../../messages/en.toml",
		"../../messages/fr.toml",
		"../../messages/nl.toml",
	}
}

func TestInitI18n(t *testing.T) {
	bundle, err := InitI18n(testMessageFiles(), "en")
	require.NoError(t, err)
	require.NotNil(t, bundle)
	assert.Equal(t, []string{"en", "fr", "nl"}, SupportedLanguages)
}

func TestInitI18nMissingFile(t *testing.T) {
	_, err := InitI18n([]string{"../../messages/zz.toml"}, "en")
	assert.Error(t, err)
}

func TestT(t *testing.T) {
	bundle, err := InitI18n(testMessageFiles(), "en")
	require.NoError(t, err)

	localizer := thirdPartyI18n.NewLocalizer(bundle, "fr")
	ctx := context.WithValue(context.Background(), constant.LocalizerContextKey, localizer)

	assert.Equal(t, "Langue mise à jour", T(ctx, "language.updated", nil))
}

func TestMessageSource(t *testing.T) {
	bundle, err := InitI18n(testMessageFiles(), "en")
	require.NoError(t, err)

	source := &DefaultMessageSource{Bundle: bundle, DefaultLang: "en"}

	t.Run("uses localizer from context", func(t *testing.T) {
		localizer := thirdPartyI18n.NewLocalizer(bundle, "nl")
		ctx := context.WithValue(context.Background(), constant.LocalizerContextKey, localizer)

		msg, err := source.GetMessage(ctx, "language.updated")
		require.NoError(t, err)
		assert.Equal(t, "Taal bijgewerkt", msg)
	})

	t.Run("falls back to language tag from context", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), constant.LanguageContextKey, "fr")

		msg, err := source.GetMessage(ctx, "language.updated")
		require.NoError(t, err)
		assert.Equal(t, "Langue mise à jour", msg)
	})

	t.Run("falls back to default language", func(t *testing.T) {
		msg, err := source.GetMessage(context.Background(), "language.updated")
		require.NoError(t, err)
		assert.Equal(t, "Language updated", msg)
	})
}
