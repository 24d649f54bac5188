package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thomas-vilte/commitscope/internal/config"
	"github.com/thomas-vilte/commitscope/internal/i18n"
	"github.com/urfave/cli/v3"
)

type mockCommandFactory struct {
	name string
}

func (m *mockCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{Name: m.name}
}

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	translations, err := i18n.NewTranslations("en")
	require.NoError(t, err)
	return NewRegistry(config.DefaultConfig(), translations)
}

func TestRegistry_Register(t *testing.T) {
	t.Run("should register new factory successfully", func(t *testing.T) {
		// Arrange
		registry := newTestRegistry(t)

		// Act
		err := registry.Register("scope", &mockCommandFactory{name: "scope"})

		// Assert
		assert.NoError(t, err)
		assert.Len(t, registry.factories, 1)
		assert.Contains(t, registry.factories, "scope")
	})

	t.Run("should return error when registering duplicate factory", func(t *testing.T) {
		// Arrange
		registry := newTestRegistry(t)
		factory := &mockCommandFactory{name: "scope"}

		// Act
		_ = registry.Register("scope", factory)
		err := registry.Register("scope", factory)

		// Assert
		require.Error(t, err)
		assert.Contains(t, err.Error(), "'scope' is already registered")
		assert.Len(t, registry.factories, 1)
	})
}

func TestRegistry_CreateCommands(t *testing.T) {
	t.Run("should create commands sorted by name", func(t *testing.T) {
		// Arrange
		registry := newTestRegistry(t)
		require.NoError(t, registry.Register("scope", &mockCommandFactory{name: "scope"}))
		require.NoError(t, registry.Register("config", &mockCommandFactory{name: "config"}))
		require.NoError(t, registry.Register("prompt", &mockCommandFactory{name: "prompt"}))

		// Act
		commands := registry.CreateCommands()

		// Assert
		require.Len(t, commands, 3)
		assert.Equal(t, "config", commands[0].Name)
		assert.Equal(t, "prompt", commands[1].Name)
		assert.Equal(t, "scope", commands[2].Name)
	})

	t.Run("should return empty slice when no factories registered", func(t *testing.T) {
		registry := newTestRegistry(t)

		commands := registry.CreateCommands()

		assert.Empty(t, commands)
	})
}
