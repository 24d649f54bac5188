package prompt

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/thomas-vilte/commitscope/internal/commands/completion"
	"github.com/thomas-vilte/commitscope/internal/config"
	"github.com/thomas-vilte/commitscope/internal/errors"
	"github.com/thomas-vilte/commitscope/internal/i18n"
	"github.com/thomas-vilte/commitscope/internal/logger"
	"github.com/thomas-vilte/commitscope/internal/prompt"
	"github.com/thomas-vilte/commitscope/internal/ui"
	"github.com/urfave/cli/v3"
)

// scopeDetector is a minimal interface for testing purposes
type scopeDetector interface {
	DetectDefaultScope(ctx context.Context) string
}

type PromptCommandFactory struct {
	detector scopeDetector
}

func NewPromptCommandFactory(detector scopeDetector) *PromptCommandFactory {
	return &PromptCommandFactory{detector: detector}
}

func (f *PromptCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	formats := make([]string, 0, len(prompt.SupportedFormats()))
	for _, format := range prompt.SupportedFormats() {
		formats = append(formats, string(format))
	}

	return &cli.Command{
		Name:        "prompt",
		Aliases:     []string{"p"},
		Usage:       t.GetMessage("prompt_command_usage", 0, nil),
		Description: t.GetMessage("prompt_command_description", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   string(prompt.FormatJSON),
				Usage:   t.GetMessage("prompt_format_flag_usage", 0, nil) + " (" + strings.Join(formats, ", ") + ")",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   t.GetMessage("prompt_output_flag_usage", 0, nil),
			},
			&cli.BoolFlag{
				Name:  "prompt-only",
				Usage: t.GetMessage("prompt_only_flag_usage", 0, nil),
			},
		},
		ShellComplete: completion.FlagComplete,
		Action:        f.createAction(cfg, t),
	}
}

func (f *PromptCommandFactory) createAction(cfg *config.Config, t *i18n.Translations) cli.ActionFunc {
	return func(ctx context.Context, command *cli.Command) error {
		format, err := prompt.ParseFormat(command.String("format"))
		if err != nil {
			return err
		}
		ctx = logger.With(ctx, "command", command.Name)
		output := command.String("output")
		promptOnly := command.Bool("prompt-only")

		logger.Info(ctx, "executing prompt command",
			"format", format,
			"output", output,
			"prompt_only", promptOnly)

		commitlintConfig := prompt.NewBuilder(f.detector, cfg, t).Build(ctx)

		if output == "" {
			return prompt.Render(command.Root().Writer, commitlintConfig, format, promptOnly)
		}

		if err := writeFile(output, func(w io.Writer) error {
			return prompt.Render(w, commitlintConfig, format, promptOnly)
		}); err != nil {
			return err
		}

		ui.PrintSuccess(command.Root().ErrWriter, t.GetMessage("prompt_written", 0, map[string]interface{}{"Path": output}))
		return nil
	}
}

func writeFile(path string, render func(w io.Writer) error) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return errors.ErrWriteOutput.WithError(err).WithContext("path", path)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = errors.ErrWriteOutput.WithError(closeErr).WithContext("path", path)
		}
	}()

	return render(file)
}
