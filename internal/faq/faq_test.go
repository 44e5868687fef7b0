package faq

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	catalog := Default()

	for _, key := range []string{KeyBrokenKeys, KeyRenew, KeyInvite, KeyInstallIOS, KeyInstallLinux} {
		entry, ok := catalog.Get(key)
		require.True(t, ok, key)
		assert.NotEmpty(t, entry.Text)
		assert.NotEmpty(t, entry.Label)
		assert.NotEmpty(t, entry.Triggers)
	}

	entry, _ := catalog.Get(KeyInstallIOS)
	assert.True(t, entry.Install())
	entry, _ = catalog.Get(KeyRenew)
	assert.False(t, entry.Install())

	_, ok := catalog.Get("main:unknown")
	assert.False(t, ok)
}

func TestMatch(t *testing.T) {
	catalog := Default()

	tests := []struct {
		name string
		text string
		key  string
	}{
		{"substring", "не работает ни один ключ", KeyBrokenKeys},
		{"case insensitive", "Как продлить ПОДПИСКУ?", KeyRenew},
		{"exact trigger", "ios", KeyInstallIOS},
		{"install keyword", "установка на айфон", KeyInstallIOS},
		{"invite", "хочу пригласить друга", KeyInvite},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, ok := catalog.Match(tt.text)
			require.True(t, ok)
			assert.Equal(t, tt.key, entry.Key)
		})
	}

	_, ok := catalog.Match("абракадабра")
	assert.False(t, ok)
	_, ok = catalog.Match("   ")
	assert.False(t, ok)
}

func TestLabel(t *testing.T) {
	catalog := Default()

	assert.Equal(t, "Как продлить подписку", catalog.Label(KeyRenew))
	assert.Equal(t, "something:else", catalog.Label("something:else"))
	assert.Equal(t, "—", catalog.Label(""))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "faq.yaml")
	content := `main:
  - key: "main:hours"
    label: "Часы работы"
    triggers: ["часы", "график"]
    text: "Мы на связи с 9 до 18."
    media:
      path: "media/hours.png"
      type: "photo"
install:
  - key: "install:ios"
    label: "iOS"
    triggers: ["ios"]
    text: "Установите приложение из App Store."
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	catalog, err := Load(path)
	require.NoError(t, err)

	entry, ok := catalog.Get("main:hours")
	require.True(t, ok)
	assert.Equal(t, "Часы работы", entry.Label)
	require.NotNil(t, entry.Media)
	assert.Equal(t, MediaPhoto, entry.Media.Type)

	matched, ok := catalog.Match("какой у вас график?")
	require.True(t, ok)
	assert.Equal(t, "main:hours", matched.Key)

	installEntry, ok := catalog.Get("install:ios")
	require.True(t, ok)
	assert.Nil(t, installEntry.Media)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("main: [key: {"), 0o644))
	_, err = Load(bad)
	assert.Error(t, err)

	empty := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("main: []\n"), 0o644))
	_, err = Load(empty)
	assert.Error(t, err)
}
