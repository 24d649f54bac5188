package scope

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/thomas-vilte/commitscope/internal/config"
	"github.com/thomas-vilte/commitscope/internal/i18n"
	"github.com/urfave/cli/v3"
)

type mockDetector struct {
	mock.Mock
}

func (m *mockDetector) DetectDefaultScope(ctx context.Context) string {
	return m.Called(ctx).String(0)
}

func runScope(t *testing.T, detected string) string {
	t.Helper()
	translations, err := i18n.NewTranslations("en")
	require.NoError(t, err)

	detector := new(mockDetector)
	detector.On("DetectDefaultScope", mock.Anything).Return(detected).Once()

	var out bytes.Buffer
	app := &cli.Command{
		Writer: &out,
		Commands: []*cli.Command{
			NewScopeCommandFactory(detector).CreateCommand(translations, config.DefaultConfig()),
		},
	}

	require.NoError(t, app.Run(context.Background(), []string{"commitscope", "scope"}))
	detector.AssertExpectations(t)
	return out.String()
}

func TestScopeCommand(t *testing.T) {
	t.Run("should print the detected scope", func(t *testing.T) {
		assert.Equal(t, "src\n", runScope(t, "src"))
	})

	t.Run("should print an empty line without a scope", func(t *testing.T) {
		assert.Equal(t, "\n", runScope(t, ""))
	})
}
