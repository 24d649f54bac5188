package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	domainErrors "github.com/thomas-vilte/commitscope/internal/errors"
)

func TestLoadConfig(t *testing.T) {
	t.Run("should create the default config on first load", func(t *testing.T) {
		// Arrange
		homeDir := t.TempDir()

		// Act
		cfg, err := LoadConfig(homeDir)

		// Assert
		require.NoError(t, err)
		wantPath := filepath.Join(homeDir, ".commitscope", "config.json")
		assert.Equal(t, wantPath, cfg.PathFile)
		assert.FileExists(t, wantPath)
		assert.Equal(t, "en", cfg.Language)
		assert.Equal(t, 100, cfg.BreaklineNumber)
		assert.Equal(t, "|", cfg.BreaklineChar)
		assert.Equal(t, []string{"feat", "fix"}, cfg.AllowBreakingChanges)
		assert.Equal(t, "docs: fix typos", cfg.Aliases["fd"])
	})

	t.Run("should load an explicit json path", func(t *testing.T) {
		// Arrange
		path := filepath.Join(t.TempDir(), "custom.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"language":"es","use_emoji":true,"breakline_number":80}`), 0644))

		// Act
		cfg, err := LoadConfig(path)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "es", cfg.Language)
		assert.True(t, cfg.UseEmoji)
		assert.Equal(t, 80, cfg.BreaklineNumber)
		assert.Equal(t, "|", cfg.BreaklineChar, "missing keys keep their defaults")
		assert.Equal(t, path, cfg.PathFile)
	})

	t.Run("should reject an invalid config", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"language":"en","breakline_number":-1}`), 0644))

		_, err := LoadConfig(path)

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainErrors.ErrInvalidConfig))
	})

	t.Run("should reject malformed JSON", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte("{malformed json"), 0644))

		_, err := LoadConfig(path)

		assert.Error(t, err)
	})
}

func TestSaveConfig(t *testing.T) {
	t.Run("should persist the config", func(t *testing.T) {
		// Arrange
		cfg, err := LoadConfig(t.TempDir())
		require.NoError(t, err)
		cfg.UseEmoji = true
		cfg.Language = "es"

		// Act
		err = SaveConfig(cfg)

		// Assert
		require.NoError(t, err)
		data, err := os.ReadFile(cfg.PathFile)
		require.NoError(t, err)
		var saved Config
		require.NoError(t, json.Unmarshal(data, &saved))
		assert.True(t, saved.UseEmoji)
		assert.Equal(t, "es", saved.Language)
	})

	t.Run("should validate before saving", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.PathFile = filepath.Join(t.TempDir(), "config.json")
		cfg.Language = ""

		err := SaveConfig(cfg)

		assert.Error(t, err)
		assert.NoFileExists(t, cfg.PathFile)
	})

	t.Run("should fail without a path", func(t *testing.T) {
		err := SaveConfig(DefaultConfig())

		assert.True(t, errors.Is(err, domainErrors.ErrConfigMissing))
	})
}

func TestCreateDefaultConfig(t *testing.T) {
	t.Run("should fail when the directory cannot be created", func(t *testing.T) {
		parent := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(parent, []byte("x"), 0644))

		_, err := CreateDefaultConfig(filepath.Join(parent, "config.json"))

		assert.Error(t, err)
	})
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "defaults are valid", mutate: func(c *Config) {}, wantErr: false},
		{name: "empty language", mutate: func(c *Config) { c.Language = "" }, wantErr: true},
		{name: "unsupported language", mutate: func(c *Config) { c.Language = "fr" }, wantErr: true},
		{name: "zero breakline number", mutate: func(c *Config) { c.BreaklineNumber = 0 }, wantErr: true},
		{name: "empty breakline char", mutate: func(c *Config) { c.BreaklineChar = "" }, wantErr: true},
		{name: "zero ai number", mutate: func(c *Config) { c.AINumber = 0 }, wantErr: true},
		{name: "invalid emoji align", mutate: func(c *Config) { c.EmojiAlign = "middle" }, wantErr: true},
		{name: "unknown breaking type", mutate: func(c *Config) { c.AllowBreakingChanges = []string{"feature"} }, wantErr: true},
		{name: "no breaking types", mutate: func(c *Config) { c.AllowBreakingChanges = nil }, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()

			assert.Equal(t, tt.wantErr, err != nil, "error = %v", err)
		})
	}
}
