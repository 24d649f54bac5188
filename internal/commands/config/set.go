package config

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/thomas-vilte/commitscope/internal/config"
	"github.com/thomas-vilte/commitscope/internal/errors"
	"github.com/thomas-vilte/commitscope/internal/i18n"
	"github.com/thomas-vilte/commitscope/internal/logger"
	"github.com/thomas-vilte/commitscope/internal/ui"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newSetCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "set",
		Usage:     t.GetMessage("config_set_usage", 0, nil),
		ArgsUsage: t.GetMessage("config_set_args_usage", 0, nil),
		ShellComplete: func(_ context.Context, command *cli.Command) {
			if command.NArg() > 0 {
				return
			}
			for _, key := range SettableKeys {
				_, _ = fmt.Fprintln(command.Root().Writer, key)
			}
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			w := command.Root().Writer
			if command.Args().Len() < 2 {
				ui.PrintError(w, t.GetMessage("config_set_error_args", 0, nil))
				return fmt.Errorf("missing arguments")
			}

			key := strings.ToLower(command.Args().Get(0))
			value := command.Args().Get(1)

			updated := *cfg
			if err := applySetting(&updated, key, value); err != nil {
				return err
			}

			if err := config.SaveConfig(&updated); err != nil {
				ui.PrintError(w, t.GetMessage("error_saving_config", 0, nil))
				return err
			}
			*cfg = updated

			logger.Info(ctx, "config updated", "key", key, "path", cfg.PathFile)
			ui.PrintSuccess(w, t.GetMessage("config_set_success", 0, struct {
				Key   string
				Value string
			}{Key: key, Value: value}))

			return nil
		},
	}
}

// SettableKeys are the canonical names accepted by config set.
var SettableKeys = []string{
	"alias",
	"ai",
	"ai_number",
	"breaking_types",
	"breakline_char",
	"breakline_number",
	"confirm_colorize",
	"emoji",
	"emoji_align",
	"lang",
	"mark_breaking",
	"theme_color",
	"upper_case_subject",
}

func applySetting(cfg *config.Config, key, value string) error {
	switch key {
	case "lang", "language":
		cfg.Language = value
	case "emoji", "use_emoji":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean value: %s", value)
		}
		cfg.UseEmoji = boolVal
	case "emoji_align", "emoji-align":
		cfg.EmojiAlign = value
	case "ai", "use_ai":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean value: %s", value)
		}
		cfg.UseAI = boolVal
	case "ai_number", "ai-number":
		intVal, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid number: %s", value)
		}
		cfg.AINumber = intVal
	case "theme_color", "theme_color_code":
		cfg.ThemeColorCode = value
	case "upper_case_subject":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean value: %s", value)
		}
		cfg.UpperCaseSubject = boolVal
	case "mark_breaking", "mark_breaking_change_mode":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean value: %s", value)
		}
		cfg.MarkBreakingChangeMode = boolVal
	case "breaking_types", "allow_breaking_changes":
		types := make([]string, 0)
		for _, v := range strings.Split(value, ",") {
			if v = strings.TrimSpace(v); v != "" {
				types = append(types, v)
			}
		}
		cfg.AllowBreakingChanges = types
	case "breakline_number":
		intVal, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid number: %s", value)
		}
		cfg.BreaklineNumber = intVal
	case "breakline_char":
		cfg.BreaklineChar = value
	case "confirm_colorize":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean value: %s", value)
		}
		cfg.ConfirmColorize = boolVal
	case "alias":
		name, expansion, ok := strings.Cut(value, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return fmt.Errorf("alias must look like name=expansion: %s", value)
		}
		aliases := make(map[string]string, len(cfg.Aliases)+1)
		for k, v := range cfg.Aliases {
			aliases[k] = v
		}
		if expansion == "" {
			delete(aliases, name)
		} else {
			aliases[name] = expansion
		}
		cfg.Aliases = aliases
	default:
		return errors.ErrUnknownConfigKey.WithContext("key", key)
	}
	return nil
}
