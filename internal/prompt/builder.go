// Package prompt assembles the configuration object consumed by the commit
// prompt and lint engine and renders it in the supported formats.
package prompt

import (
	"context"
	"maps"
	"slices"

	"github.com/thomas-vilte/commitscope/internal/config"
	"github.com/thomas-vilte/commitscope/internal/i18n"
	"github.com/thomas-vilte/commitscope/internal/logger"
	"github.com/thomas-vilte/commitscope/internal/models"
)

type scopeDetector interface {
	DetectDefaultScope(ctx context.Context) string
}

type Builder struct {
	detector scopeDetector
	cfg      *config.Config
	t        *i18n.Translations
}

// NewBuilder wires the detector and user settings. cfg and t may be nil, in
// which case defaults and English messages are used.
func NewBuilder(detector scopeDetector, cfg *config.Config, t *i18n.Translations) *Builder {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Builder{detector: detector, cfg: cfg, t: t}
}

// Build runs scope detection once and returns a fresh configuration value.
func (b *Builder) Build(ctx context.Context) models.CommitlintConfig {
	defaultScope := b.detector.DetectDefaultScope(ctx)
	logger.Info(ctx, "building prompt config", "scope", defaultScope)

	return models.CommitlintConfig{
		Rules:  models.DefaultRules(),
		Prompt: b.promptConfig(defaultScope),
	}
}

func (b *Builder) promptConfig(defaultScope string) models.PromptConfig {
	suggested := []string{}
	align := models.AlignTopBottom
	if defaultScope != "" {
		suggested = []string{defaultScope}
		align = models.AlignBottom
	}

	aliases := maps.Clone(b.cfg.Aliases)
	if aliases == nil {
		aliases = map[string]string{}
	}
	breaking := slices.Clone(b.cfg.AllowBreakingChanges)
	if breaking == nil {
		breaking = []string{}
	}

	return models.PromptConfig{
		DefaultScope:           defaultScope,
		CustomScopesAlign:      align,
		Alias:                  aliases,
		Messages:               b.messages(),
		Types:                  models.DefaultCommitTypes(),
		UseEmoji:               b.cfg.UseEmoji,
		EmojiAlign:             b.cfg.EmojiAlign,
		UseAI:                  b.cfg.UseAI,
		AINumber:               b.cfg.AINumber,
		ThemeColorCode:         b.cfg.ThemeColorCode,
		Scopes:                 slices.Clone(suggested),
		SuggestedScopes:        suggested,
		AllowCustomScopes:      true,
		AllowEmptyScopes:       true,
		CustomScopesAlias:      "custom",
		EmptyScopesAlias:       "empty",
		UpperCaseSubject:       b.cfg.UpperCaseSubject,
		MarkBreakingChangeMode: b.cfg.MarkBreakingChangeMode,
		AllowBreakingChanges:   breaking,
		BreaklineNumber:        b.cfg.BreaklineNumber,
		BreaklineChar:          b.cfg.BreaklineChar,
		SkipQuestions:          []string{},
		IssuePrefixes:          models.DefaultIssuePrefixes(),
		CustomIssuePrefixAlign: models.AlignTop,
		EmptyIssuePrefixAlias:  "skip",
		CustomIssuePrefixAlias: "custom",
		AllowCustomIssuePrefix: true,
		AllowEmptyIssuePrefix:  true,
		ConfirmColorize:        b.cfg.ConfirmColorize,
	}
}

func (b *Builder) messages() models.PromptMessages {
	if b.t == nil {
		return models.DefaultPromptMessages()
	}
	msg := func(id string) string {
		return b.t.GetMessage(id, 0, nil)
	}
	return models.PromptMessages{
		Type:                msg("prompt_message_type"),
		Scope:               msg("prompt_message_scope"),
		CustomScope:         msg("prompt_message_custom_scope"),
		Subject:             msg("prompt_message_subject"),
		Body:                msg("prompt_message_body"),
		Breaking:            msg("prompt_message_breaking"),
		FooterPrefixSelect:  msg("prompt_message_footer_prefix_select"),
		CustomFooterPrefix:  msg("prompt_message_custom_footer_prefix"),
		Footer:              msg("prompt_message_footer"),
		GeneratingByAI:      msg("prompt_message_generating_by_ai"),
		GeneratedSelectByAI: msg("prompt_message_generated_select_by_ai"),
		ConfirmCommit:       msg("prompt_message_confirm_commit"),
	}
}
