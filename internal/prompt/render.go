package prompt

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/thomas-vilte/commitscope/internal/errors"
	"github.com/thomas-vilte/commitscope/internal/models"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

func SupportedFormats() []Format {
	return []Format{FormatJSON, FormatYAML, FormatTOML}
}

// ParseFormat accepts a format name case-insensitively; "yml" is an alias of yaml.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", errors.ErrUnsupportedFormat.WithContext("format", name)
	}
}

// Render writes cfg to w. With promptOnly only the prompt section is written,
// which is the shape of a standalone .czrc file.
func Render(w io.Writer, cfg models.CommitlintConfig, format Format, promptOnly bool) error {
	var doc any = cfg
	if promptOnly {
		doc = cfg.Prompt
	}

	var err error
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		err = enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(doc); err == nil {
			err = enc.Close()
		}
	case FormatTOML:
		err = toml.NewEncoder(w).Encode(doc)
	default:
		return errors.ErrUnsupportedFormat.WithContext("format", string(format))
	}

	if err != nil {
		return errors.ErrRenderConfig.WithError(err).WithContext("format", string(format))
	}
	return nil
}
