package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	domainErrors "github.com/thomas-vilte/commitscope/internal/errors"
	"github.com/thomas-vilte/commitscope/internal/models"
)

type Config struct {
	Language               string            `json:"language"`
	UseEmoji               bool              `json:"use_emoji"`
	EmojiAlign             string            `json:"emoji_align"`
	UseAI                  bool              `json:"use_ai"`
	AINumber               int               `json:"ai_number"`
	ThemeColorCode         string            `json:"theme_color_code"`
	UpperCaseSubject       bool              `json:"upper_case_subject"`
	MarkBreakingChangeMode bool              `json:"mark_breaking_change_mode"`
	AllowBreakingChanges   []string          `json:"allow_breaking_changes"`
	BreaklineNumber        int               `json:"breakline_number"`
	BreaklineChar          string            `json:"breakline_char"`
	ConfirmColorize        bool              `json:"confirm_colorize"`
	Aliases                map[string]string `json:"aliases"`
	PathFile               string            `json:"path_file"`
}

const (
	configDirName  = ".commitscope"
	configFileName = "config.json"

	defaultLang            = "en"
	defaultEmojiAlign      = "center"
	defaultAINumber        = 1
	defaultBreaklineNumber = 100
	defaultBreaklineChar   = "|"
)

var (
	SupportedLanguages = []string{"en", "es"}
	EmojiAlignments    = []string{"left", "center", "right"}
)

// DefaultConfig returns the settings used when no file exists yet.
func DefaultConfig() *Config {
	return &Config{
		Language:             defaultLang,
		EmojiAlign:           defaultEmojiAlign,
		AINumber:             defaultAINumber,
		AllowBreakingChanges: []string{"feat", "fix"},
		BreaklineNumber:      defaultBreaklineNumber,
		BreaklineChar:        defaultBreaklineChar,
		ConfirmColorize:      true,
		Aliases:              map[string]string{"fd": "docs: fix typos"},
	}
}

// ConfigPath resolves where the settings file for path lives. A .json path is
// used as is; anything else is treated as a home directory.
func ConfigPath(path string) string {
	if filepath.Ext(path) == ".json" {
		return path
	}
	return filepath.Join(path, configDirName, configFileName)
}

func LoadConfig(path string) (*Config, error) {
	configPath := ConfigPath(path)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return CreateDefaultConfig(configPath)
	} else if err != nil {
		return nil, fmt.Errorf("error checking config file: %w", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error decoding config JSON: %w", err)
	}
	config.PathFile = configPath

	if err := validateConfig(config); err != nil {
		return nil, domainErrors.ErrInvalidConfig.WithError(err).WithContext("path", configPath)
	}

	return config, nil
}

func CreateDefaultConfig(path string) (*Config, error) {
	config := DefaultConfig()
	config.PathFile = path

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("error creating config directory: %w", err)
	}

	if err := writeConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

func SaveConfig(config *Config) error {
	if err := validateConfig(config); err != nil {
		return domainErrors.ErrInvalidConfig.WithError(err)
	}

	if config.PathFile == "" {
		return domainErrors.ErrConfigMissing.WithContext("field", "path_file")
	}

	return writeConfig(config)
}

func writeConfig(config *Config) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	if err := os.WriteFile(config.PathFile, data, 0644); err != nil {
		return fmt.Errorf("error saving config: %w", err)
	}

	return nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	return validateConfig(c)
}

func validateConfig(config *Config) error {
	if config.Language == "" {
		return errors.New("language must not be empty")
	}
	if !slices.Contains(SupportedLanguages, config.Language) {
		return fmt.Errorf("unsupported language: %s", config.Language)
	}
	if config.BreaklineNumber <= 0 {
		return errors.New("breakline_number must be greater than 0")
	}
	if config.BreaklineChar == "" {
		return errors.New("breakline_char must not be empty")
	}
	if config.AINumber < 1 {
		return errors.New("ai_number must be at least 1")
	}
	if !slices.Contains(EmojiAlignments, config.EmojiAlign) {
		return fmt.Errorf("emoji_align must be one of %v", EmojiAlignments)
	}
	for _, t := range config.AllowBreakingChanges {
		if !models.IsKnownCommitType(t) {
			return fmt.Errorf("unknown commit type in allow_breaking_changes: %s", t)
		}
	}
	return nil
}
