package i18n

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedLocalesShareKeys(t *testing.T) {
	bundle, err := New(localeFS, "en")
	require.NoError(t, err)

	en := bundle.translations["en"]
	zh := bundle.translations["zh_TW"]
	require.NotEmpty(t, en)

	for key := range en {
		assert.Contains(t, zh, key, "zh_TW is missing %s", key)
	}
}

func TestT_FallsBackToDefaultLanguage(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/en.json":    {Data: []byte(`{"greeting":"Hello %s","only_en":"English"}`)},
		"locales/zh_TW.json": {Data: []byte(`{"greeting":"你好 %s"}`)},
	}
	bundle, err := New(fsys, "en")
	require.NoError(t, err)

	assert.Equal(t, "你好 Ada", bundle.T("zh_TW", "greeting", "Ada"))
	assert.Equal(t, "English", bundle.T("zh_TW", "only_en"))
	assert.Equal(t, "Hello Ada", bundle.T("fr", "greeting", "Ada"))
	assert.Equal(t, "missing.key", bundle.T("en", "missing.key"))
}

func TestNew_RequiresDefaultLocale(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/zh_TW.json": {Data: []byte(`{}`)},
	}

	_, err := New(fsys, "en")
	assert.Error(t, err)
}
