package config

import (
	"context"
	"os"

	"github.com/thomas-vilte/commitscope/internal/config"
	"github.com/thomas-vilte/commitscope/internal/i18n"
	"github.com/thomas-vilte/commitscope/internal/ui"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newInitCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: t.GetMessage("config_init_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "force",
				Usage: t.GetMessage("config_init_force_flag", 0, nil),
			},
		},
		Action: initConfigAction(cfg, t),
	}
}

func initConfigAction(cfg *config.Config, t *i18n.Translations) cli.ActionFunc {
	return func(ctx context.Context, command *cli.Command) error {
		w := command.Root().Writer
		path := cfg.PathFile
		data := map[string]interface{}{"Path": path}

		if _, err := os.Stat(path); err == nil && !command.Bool("force") {
			ui.PrintWarning(w, t.GetMessage("config_init_exists", 0, data))
			return nil
		}

		defaults, err := config.CreateDefaultConfig(path)
		if err != nil {
			ui.PrintError(w, t.GetMessage("error_saving_config", 0, nil))
			return err
		}
		*cfg = *defaults

		ui.PrintSuccess(w, t.GetMessage("config_init_success", 0, data))
		return nil
	}
}
