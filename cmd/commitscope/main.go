package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/thomas-vilte/commitscope/internal/cli/registry"
	"github.com/thomas-vilte/commitscope/internal/commands/completion"
	configCmd "github.com/thomas-vilte/commitscope/internal/commands/config"
	promptCmd "github.com/thomas-vilte/commitscope/internal/commands/prompt"
	scopeCmd "github.com/thomas-vilte/commitscope/internal/commands/scope"
	cfg "github.com/thomas-vilte/commitscope/internal/config"
	domainErrors "github.com/thomas-vilte/commitscope/internal/errors"
	"github.com/thomas-vilte/commitscope/internal/git"
	"github.com/thomas-vilte/commitscope/internal/i18n"
	"github.com/thomas-vilte/commitscope/internal/logger"
	"github.com/thomas-vilte/commitscope/internal/scope"
	"github.com/thomas-vilte/commitscope/internal/ui"
	"github.com/thomas-vilte/commitscope/internal/version"
	"github.com/urfave/cli/v3"
)

func main() {
	app, translations, err := initializeApp(os.Args)
	if err != nil {
		ui.HandleAppError(err, translations)
		os.Exit(1)
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		ui.HandleAppError(err, translations)
		os.Exit(1)
	}
}

func initializeApp(args []string) (*cli.Command, *i18n.Translations, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, nil, fmt.Errorf("could not resolve the home directory: %w", err)
	}

	cfgApp, err := cfg.LoadConfig(homeDir)
	if errors.Is(err, domainErrors.ErrInvalidConfig) {
		// Keep running on defaults so `config init --force` can repair the file.
		ui.PrintWarning(os.Stderr, err.Error())
		cfgApp = cfg.DefaultConfig()
		cfgApp.PathFile = cfg.ConfigPath(homeDir)
	} else if err != nil {
		return nil, nil, err
	}

	lang := cfgApp.Language
	if override := langFromArgs(args); override != "" {
		lang = override
	}
	translations, err := i18n.NewTranslations(lang, filepath.Dir(cfgApp.PathFile))
	if err != nil {
		return nil, nil, fmt.Errorf("could not load translations: %w", err)
	}

	gitService := git.NewGitService()
	detector := scope.NewDetector(gitService)

	registerCommand := registry.NewRegistry(cfgApp, translations)
	factories := []struct {
		name    string
		factory registry.CommandFactory
	}{
		{"scope", scopeCmd.NewScopeCommandFactory(detector)},
		{"prompt", promptCmd.NewPromptCommandFactory(detector)},
		{"config", configCmd.NewConfigCommandFactory()},
		{"doctor", configCmd.NewDoctorCommand(gitService, detector)},
	}
	for _, f := range factories {
		if err := registerCommand.Register(f.name, f.factory); err != nil {
			return nil, translations, err
		}
	}

	commands := registerCommand.CreateCommands()
	commands = append(commands, completion.NewCompletionCommand(translations))

	helpCommand := &cli.Command{
		Name:    "help",
		Aliases: []string{"h"},
		Usage:   translations.GetMessage("help_command_usage", 0, nil),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
	}
	commands = append(commands, helpCommand)

	return &cli.Command{
		Name:                  "commitscope",
		Usage:                 translations.GetMessage("app_usage", 0, nil),
		Version:               version.FullVersion(),
		Description:           translations.GetMessage("app_description", 0, nil),
		Commands:              commands,
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: translations.GetMessage("flag_debug_usage", 0, nil),
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: translations.GetMessage("flag_verbose_usage", 0, nil),
			},
			&cli.StringFlag{
				Name:  "lang",
				Usage: translations.GetMessage("flag_lang_usage", 0, nil),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			log := logger.Initialize(cmd.Bool("debug"), cmd.Bool("verbose"))
			ctx = logger.WithLogger(ctx, log)

			if lang := cmd.String("lang"); lang != "" {
				if err := translations.SetLanguage(lang); err != nil {
					return ctx, err
				}
			}

			logger.Debug(ctx, "starting commitscope",
				"version", version.FullVersion(),
				"config", cfgApp.PathFile,
				"lang", translations.Language())
			return ctx, nil
		},
	}, translations, nil
}

// langFromArgs looks for --lang before the app is built so help text is
// rendered in the requested language.
func langFromArgs(args []string) string {
	for i, arg := range args {
		switch {
		case strings.HasPrefix(arg, "--lang="):
			return strings.TrimPrefix(arg, "--lang=")
		case arg == "--lang" && i+1 < len(args):
			return args[i+1]
		}
	}
	return ""
}
