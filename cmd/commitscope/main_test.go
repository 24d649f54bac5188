package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLangFromArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"separate value", []string{"commitscope", "--lang", "es", "prompt"}, "es"},
		{"inline value", []string{"commitscope", "--lang=es"}, "es"},
		{"missing value", []string{"commitscope", "--lang"}, ""},
		{"absent", []string{"commitscope", "scope"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, langFromArgs(tt.args))
		})
	}
}

func TestInitializeApp(t *testing.T) {
	t.Run("should register every command", func(t *testing.T) {
		// Arrange
		t.Setenv("HOME", t.TempDir())

		// Act
		app, translations, err := initializeApp([]string{"commitscope"})

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, "en", translations.Language())
		names := make([]string, 0, len(app.Commands))
		for _, cmd := range app.Commands {
			names = append(names, cmd.Name)
		}
		assert.Equal(t, []string{"config", "doctor", "prompt", "scope", "completion", "help"}, names)
	})

	t.Run("should honor the lang flag before building help", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())

		_, translations, err := initializeApp([]string{"commitscope", "--lang", "es"})

		assert.NoError(t, err)
		assert.Equal(t, "es", translations.Language())
	})
}
