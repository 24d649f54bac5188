package models

type RuleLevel int

// RuleError is commitlint's level 2: a failing rule rejects the commit.
const RuleError RuleLevel = 2

// Rule builds a commitlint rule tuple such as [2, "never"].
func Rule(level RuleLevel, applicable string) []any {
	return []any{int(level), applicable}
}

type (
	CommitType struct {
		Value string `json:"value" yaml:"value" toml:"value"`
		Name  string `json:"name" yaml:"name" toml:"name"`
		Emoji string `json:"emoji" yaml:"emoji" toml:"emoji"`
	}

	IssuePrefix struct {
		Value string `json:"value" yaml:"value" toml:"value"`
		Name  string `json:"name" yaml:"name" toml:"name"`
	}

	PromptMessages struct {
		Type                string `json:"type" yaml:"type" toml:"type"`
		Scope               string `json:"scope" yaml:"scope" toml:"scope"`
		CustomScope         string `json:"customScope" yaml:"customScope" toml:"customScope"`
		Subject             string `json:"subject" yaml:"subject" toml:"subject"`
		Body                string `json:"body" yaml:"body" toml:"body"`
		Breaking            string `json:"breaking" yaml:"breaking" toml:"breaking"`
		FooterPrefixSelect  string `json:"footerPrefixSelect" yaml:"footerPrefixSelect" toml:"footerPrefixSelect"`
		CustomFooterPrefix  string `json:"customFooterPrefix" yaml:"customFooterPrefix" toml:"customFooterPrefix"`
		Footer              string `json:"footer" yaml:"footer" toml:"footer"`
		GeneratingByAI      string `json:"generatingByAI" yaml:"generatingByAI" toml:"generatingByAI"`
		GeneratedSelectByAI string `json:"generatedSelectByAI" yaml:"generatedSelectByAI" toml:"generatedSelectByAI"`
		ConfirmCommit       string `json:"confirmCommit" yaml:"confirmCommit" toml:"confirmCommit"`
	}

	// PromptConfig mirrors the `prompt` object of a cz-git configuration.
	// Keys keep cz-git's camelCase names so the rendered document can be
	// loaded by the prompt engine without translation.
	PromptConfig struct {
		DefaultScope           string            `json:"defaultScope" yaml:"defaultScope" toml:"defaultScope"`
		CustomScopesAlign      string            `json:"customScopesAlign" yaml:"customScopesAlign" toml:"customScopesAlign"`
		Alias                  map[string]string `json:"alias" yaml:"alias" toml:"alias"`
		Messages               PromptMessages    `json:"messages" yaml:"messages" toml:"messages"`
		Types                  []CommitType      `json:"types" yaml:"types" toml:"types"`
		UseEmoji               bool              `json:"useEmoji" yaml:"useEmoji" toml:"useEmoji"`
		EmojiAlign             string            `json:"emojiAlign" yaml:"emojiAlign" toml:"emojiAlign"`
		UseAI                  bool              `json:"useAI" yaml:"useAI" toml:"useAI"`
		AINumber               int               `json:"aiNumber" yaml:"aiNumber" toml:"aiNumber"`
		ThemeColorCode         string            `json:"themeColorCode" yaml:"themeColorCode" toml:"themeColorCode"`
		Scopes                 []string          `json:"scopes" yaml:"scopes" toml:"scopes"`
		SuggestedScopes        []string          `json:"suggestedScopes" yaml:"suggestedScopes" toml:"suggestedScopes"`
		AllowCustomScopes      bool              `json:"allowCustomScopes" yaml:"allowCustomScopes" toml:"allowCustomScopes"`
		AllowEmptyScopes       bool              `json:"allowEmptyScopes" yaml:"allowEmptyScopes" toml:"allowEmptyScopes"`
		CustomScopesAlias      string            `json:"customScopesAlias" yaml:"customScopesAlias" toml:"customScopesAlias"`
		EmptyScopesAlias       string            `json:"emptyScopesAlias" yaml:"emptyScopesAlias" toml:"emptyScopesAlias"`
		UpperCaseSubject       bool              `json:"upperCaseSubject" yaml:"upperCaseSubject" toml:"upperCaseSubject"`
		MarkBreakingChangeMode bool              `json:"markBreakingChangeMode" yaml:"markBreakingChangeMode" toml:"markBreakingChangeMode"`
		AllowBreakingChanges   []string          `json:"allowBreakingChanges" yaml:"allowBreakingChanges" toml:"allowBreakingChanges"`
		BreaklineNumber        int               `json:"breaklineNumber" yaml:"breaklineNumber" toml:"breaklineNumber"`
		BreaklineChar          string            `json:"breaklineChar" yaml:"breaklineChar" toml:"breaklineChar"`
		SkipQuestions          []string          `json:"skipQuestions" yaml:"skipQuestions" toml:"skipQuestions"`
		IssuePrefixes          []IssuePrefix     `json:"issuePrefixes" yaml:"issuePrefixes" toml:"issuePrefixes"`
		CustomIssuePrefixAlign string            `json:"customIssuePrefixAlign" yaml:"customIssuePrefixAlign" toml:"customIssuePrefixAlign"`
		EmptyIssuePrefixAlias  string            `json:"emptyIssuePrefixAlias" yaml:"emptyIssuePrefixAlias" toml:"emptyIssuePrefixAlias"`
		CustomIssuePrefixAlias string            `json:"customIssuePrefixAlias" yaml:"customIssuePrefixAlias" toml:"customIssuePrefixAlias"`
		AllowCustomIssuePrefix bool              `json:"allowCustomIssuePrefix" yaml:"allowCustomIssuePrefix" toml:"allowCustomIssuePrefix"`
		AllowEmptyIssuePrefix  bool              `json:"allowEmptyIssuePrefix" yaml:"allowEmptyIssuePrefix" toml:"allowEmptyIssuePrefix"`
		ConfirmColorize        bool              `json:"confirmColorize" yaml:"confirmColorize" toml:"confirmColorize"`
		DefaultBody            string            `json:"defaultBody" yaml:"defaultBody" toml:"defaultBody"`
		DefaultIssues          string            `json:"defaultIssues" yaml:"defaultIssues" toml:"defaultIssues"`
		DefaultSubject         string            `json:"defaultSubject" yaml:"defaultSubject" toml:"defaultSubject"`
	}

	// CommitlintConfig is the whole object handed to the lint/prompt engine.
	CommitlintConfig struct {
		Rules  map[string][]any `json:"rules" yaml:"rules" toml:"rules"`
		Prompt PromptConfig     `json:"prompt" yaml:"prompt" toml:"prompt"`
	}
)

const (
	AlignTopBottom = "top-bottom"
	AlignBottom    = "bottom"
	AlignTop       = "top"
)

// DefaultRules returns the commitlint rules shipped with the prompt config.
func DefaultRules() map[string][]any {
	return map[string][]any{
		"subject-empty": Rule(RuleError, "never"),
	}
}

// DefaultCommitTypes returns the conventional commit type catalog.
func DefaultCommitTypes() []CommitType {
	return []CommitType{
		{Value: "feat", Name: "feat:     A new feature", Emoji: ":sparkles:"},
		{Value: "fix", Name: "fix:      A bug fix", Emoji: ":bug:"},
		{Value: "docs", Name: "docs:     Documentation only changes", Emoji: ":memo:"},
		{Value: "style", Name: "style:    Changes that do not affect the meaning of the code", Emoji: ":lipstick:"},
		{Value: "refactor", Name: "refactor: A code change that neither fixes a bug nor adds a feature", Emoji: ":recycle:"},
		{Value: "perf", Name: "perf:     A code change that improves performance", Emoji: ":zap:"},
		{Value: "test", Name: "test:     Adding missing tests or correcting existing tests", Emoji: ":white_check_mark:"},
		{Value: "build", Name: "build:    Changes that affect the build system or external dependencies", Emoji: ":package:"},
		{Value: "ci", Name: "ci:       Changes to our CI configuration files and scripts", Emoji: ":ferris_wheel:"},
		{Value: "chore", Name: "chore:    Other changes that don't modify src or test files", Emoji: ":hammer:"},
		{Value: "revert", Name: "revert:   Reverts a previous commit", Emoji: ":rewind:"},
	}
}

// IsKnownCommitType reports whether value names a type in the default catalog.
func IsKnownCommitType(value string) bool {
	for _, ct := range DefaultCommitTypes() {
		if ct.Value == value {
			return true
		}
	}
	return false
}

func DefaultIssuePrefixes() []IssuePrefix {
	return []IssuePrefix{
		{Value: "closed", Name: "closed:   ISSUES has been processed"},
	}
}

// DefaultPromptMessages returns the English prompt text.
func DefaultPromptMessages() PromptMessages {
	return PromptMessages{
		Type:                "Select the type of change that you're committing:",
		Scope:               "Denote the SCOPE of this change (optional):",
		CustomScope:         "Denote the SCOPE of this change:",
		Subject:             "Write a SHORT, IMPERATIVE tense description of the change:\n",
		Body:                "Provide a LONGER description of the change (optional). Use \"|\" to break new line:\n",
		Breaking:            "List any BREAKING CHANGES (optional). Use \"|\" to break new line:\n",
		FooterPrefixSelect:  "Select the ISSUES type of changeList by this change (optional):",
		CustomFooterPrefix:  "Input ISSUES prefix:",
		Footer:              "List any ISSUES by this change. E.g.: #31, #34:\n",
		GeneratingByAI:      "Generating your AI commit subject...",
		GeneratedSelectByAI: "Select suitable subject by AI generated:",
		ConfirmCommit:       "Are you sure you want to proceed with the commit above?",
	}
}
