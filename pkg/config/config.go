package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/abstratium-informatique-sarl/mtypes/pkg/logging"
	"github.com/abstratium-informatique-sarl/mtypes/pkg/mtypes"
)

var ErrConfig = errors.New("MTYPES-2001 invalid configuration")

// FileFormat is the syntax of a configuration file.
type FileFormat int

const (
	FormatTOML FileFormat = iota
	FormatYAML
)

func (f FileFormat) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	}
	return "unknown"
}

// FormatConfig holds the formatter defaults. Unset fields leave the library defaults in place.
type FormatConfig struct {
	Aligned   *bool  `toml:"aligned" yaml:"aligned"`
	Notation  string `toml:"notation" yaml:"notation"`
	Precision *int   `toml:"precision" yaml:"precision"`
}

// Config is the whole file. Only the [format] section is read.
type Config struct {
	Format FormatConfig `toml:"format" yaml:"format"`
}

// DetectFormat picks the syntax from the file extension, TOML unless it is .yaml or .yml.
func DetectFormat(path string) FileFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatTOML
}

// Load reads and validates a configuration file.
func Load(path string) (*Config, error) {
	log := logging.GetLog("config")

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", ErrConfig, path, err)
	}
	format := DetectFormat(path)
	cfg, err := Parse(content, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Debug().Str("path", path).Str("format", format.String()).Msg("loaded configuration")
	return cfg, nil
}

// Parse decodes and validates configuration content.
func Parse(content []byte, format FileFormat) (*Config, error) {
	cfg := &Config{}
	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(content), cfg); err != nil {
			return nil, fmt.Errorf("%w: toml: %w", ErrConfig, err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, cfg); err != nil {
			return nil, fmt.Errorf("%w: yaml: %w", ErrConfig, err)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported format %s", ErrConfig, format)
	}
	if err := cfg.Format.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (f FormatConfig) Validate() error {
	if f.Notation != "" && utf8.RuneCountInString(f.Notation) != 1 {
		return fmt.Errorf("%w: notation %q must be a single character", ErrConfig, f.Notation)
	}
	if f.Precision != nil {
		if err := mtypes.ValidatePrecision(*f.Precision); err != nil {
			return fmt.Errorf("%w: %w", ErrConfig, err)
		}
	}
	return nil
}

// Options converts the set fields into formatter options.
func (f FormatConfig) Options() []mtypes.Option {
	var opts []mtypes.Option
	if f.Aligned != nil {
		opts = append(opts, mtypes.Aligned(*f.Aligned))
	}
	if f.Notation != "" {
		r, _ := utf8.DecodeRuneInString(f.Notation)
		opts = append(opts, mtypes.Notation(r))
	}
	if f.Precision != nil {
		opts = append(opts, mtypes.Precision(*f.Precision))
	}
	return opts
}
