package scope

import (
	"context"
	"fmt"

	"github.com/thomas-vilte/commitscope/internal/config"
	"github.com/thomas-vilte/commitscope/internal/i18n"
	"github.com/urfave/cli/v3"
)

// scopeDetector is a minimal interface for testing purposes
type scopeDetector interface {
	DetectDefaultScope(ctx context.Context) string
}

type ScopeCommandFactory struct {
	detector scopeDetector
}

func NewScopeCommandFactory(detector scopeDetector) *ScopeCommandFactory {
	return &ScopeCommandFactory{detector: detector}
}

func (f *ScopeCommandFactory) CreateCommand(t *i18n.Translations, _ *config.Config) *cli.Command {
	return &cli.Command{
		Name:        "scope",
		Usage:       t.GetMessage("scope_command_usage", 0, nil),
		Description: t.GetMessage("scope_command_description", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			_, err := fmt.Fprintln(command.Root().Writer, f.detector.DetectDefaultScope(ctx))
			return err
		},
	}
}
