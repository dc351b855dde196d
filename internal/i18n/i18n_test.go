package i18n

import (
	"testing"

	"github.com/alexanderramin/stuath/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTables_HaveSameKeysAsEnglish(t *testing.T) {
	for code, table := range tables {
		for key := range tables[Default] {
			_, ok := table[key]
			assert.True(t, ok, "%s missing %s", code, key)
		}
	}
}

func TestTranslator_Fallbacks(t *testing.T) {
	fr := MustNew("fr")
	assert.Equal(t, "Lundi", fr.Day(domain.Monday))
	assert.Equal(t, "Repos", fr.ItemType(domain.ItemRest))
	assert.Equal(t, "no.such.key", fr.T("no.such.key"))

	en := MustNew("EN")
	assert.Equal(t, "Sunday", en.Day(domain.Sunday))
	assert.Equal(t, "en", en.Lang())
}

func TestNew_UnknownLanguage(t *testing.T) {
	_, err := New("klingon")
	require.ErrorIs(t, err, ErrUnknownLanguage)
	assert.Contains(t, err.Error(), "en, fr, zh")
}

func TestResolve(t *testing.T) {
	assert.Equal(t, "fr", Resolve("", "fr-CA", "zh"))
	assert.Equal(t, "zh", Resolve("de", "zh"))
	assert.Equal(t, Default, Resolve("de", ""))
	assert.Equal(t, Default, Resolve())
}

func TestLanguages(t *testing.T) {
	assert.Equal(t, []string{"en", "fr", "zh"}, Languages())
}
