package config

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/thomas-vilte/commitscope/internal/config"
	"github.com/thomas-vilte/commitscope/internal/i18n"
	"github.com/thomas-vilte/commitscope/internal/ui"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newShowCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: t.GetMessage("config_show_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			w := command.Root().Writer
			label := func(id string) string {
				return t.GetMessage(id, 0, nil)
			}

			ui.PrintSectionBanner(w, label("current_config"))
			ui.PrintKeyValue(w, label("config_label_file"), cfg.PathFile)
			ui.PrintKeyValue(w, label("config_label_language"), cfg.Language)
			ui.PrintKeyValue(w, label("config_label_emoji"), strconv.FormatBool(cfg.UseEmoji))
			ui.PrintKeyValue(w, label("config_label_emoji_align"), cfg.EmojiAlign)
			ui.PrintKeyValue(w, label("config_label_ai"), strconv.FormatBool(cfg.UseAI))
			ui.PrintKeyValue(w, label("config_label_ai_number"), strconv.Itoa(cfg.AINumber))
			ui.PrintKeyValue(w, label("config_label_theme_color"), cfg.ThemeColorCode)
			ui.PrintKeyValue(w, label("config_label_upper_case_subject"), strconv.FormatBool(cfg.UpperCaseSubject))
			ui.PrintKeyValue(w, label("config_label_mark_breaking"), strconv.FormatBool(cfg.MarkBreakingChangeMode))
			ui.PrintKeyValue(w, label("config_label_breaking_types"), strings.Join(cfg.AllowBreakingChanges, ", "))
			ui.PrintKeyValue(w, label("config_label_breakline_number"), strconv.Itoa(cfg.BreaklineNumber))
			ui.PrintKeyValue(w, label("config_label_breakline_char"), cfg.BreaklineChar)
			ui.PrintKeyValue(w, label("config_label_confirm_colorize"), strconv.FormatBool(cfg.ConfirmColorize))

			if len(cfg.Aliases) > 0 {
				ui.PrintKeyValue(w, label("config_label_aliases"), "")
				keys := make([]string, 0, len(cfg.Aliases))
				for k := range cfg.Aliases {
					keys = append(keys, k)
				}
				sort.Strings(keys)
				for _, k := range keys {
					_, _ = fmt.Fprintf(w, "     - %s: %s\n", k, cfg.Aliases[k])
				}
			}

			return nil
		},
	}
}
