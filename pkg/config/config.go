package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/sffjunkie/rich-ascii/pkg/errors"
	"github.com/sffjunkie/rich-ascii/pkg/logging"
	"github.com/sffjunkie/rich-ascii/pkg/style"
)

const (
	// AppName is the directory name used under the XDG config home
	AppName = "rich-ascii"
	// ConfigFileName is the user config file name
	ConfigFileName = "config.toml"
	// EnvPrefix prefixes environment overrides, RICH_ASCII_TABLE_THEME -> table.theme
	EnvPrefix = "RICH_ASCII_"
)

// Config is the effective configuration
type Config struct {
	Table   TableConfig   `koanf:"table" toml:"table"`
	Style   StyleConfig   `koanf:"style" toml:"style"`
	Output  OutputConfig  `koanf:"output" toml:"output"`
	Aliases AliasesConfig `koanf:"aliases" toml:"aliases"`
}

// TableConfig selects the layout and theme
type TableConfig struct {
	ShowAliases bool   `koanf:"show_aliases" toml:"show_aliases"`
	Theme       string `koanf:"theme" toml:"theme"`
}

// StyleConfig overrides individual theme styles
type StyleConfig struct {
	Body      string `koanf:"body" toml:"body"`
	Title     string `koanf:"title" toml:"title"`
	Header    string `koanf:"header" toml:"header"`
	Highlight string `koanf:"highlight" toml:"highlight"`
}

// OutputConfig controls terminal output
type OutputConfig struct {
	Color string `koanf:"color" toml:"color"`
}

// AliasesConfig points at an alternative alias file
type AliasesConfig struct {
	File string `koanf:"file" toml:"file"`
}

// Options controls where configuration is loaded from
type Options struct {
	// ConfigFile overrides the user config path. When empty DefaultConfigFile
	// is used and a missing file is not an error.
	ConfigFile string
	// Flags holds explicitly set command-line values keyed by config path,
	// e.g. "table.show_aliases".
	Flags map[string]interface{}
}

// DefaultConfigFile returns $XDG_CONFIG_HOME/rich-ascii/config.toml
func DefaultConfigFile() string {
	xdg.Reload()
	return filepath.Join(xdg.ConfigHome, AppName, ConfigFileName)
}

// Load builds the effective configuration
func Load(opts Options) (*Config, error) {
	logger := logging.GetLogger("config")

	// 1. Load defaults
	k, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	// 2. Load user config if it exists
	path := opts.ConfigFile
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile()
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
				WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded user config")
	} else if explicit {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not readable", path).
			WithDetail("path", path)
	}

	// 3. Environment overrides
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	// 4. Explicit flags
	if len(opts.Flags) > 0 {
		if err := k.Load(confmap.Provider(opts.Flags, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load flags")
		}
	}

	return decode(k)
}

func loadDefaults() (*koanf.Koanf, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}
	return k, nil
}

func decode(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode config")
	}
	return &cfg, nil
}

// envKey maps RICH_ASCII_STYLE_HIGHLIGHT to style.highlight. Only the first
// underscore separates the section from the key.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(s, "_", ".", 1)
}

// Default returns the configuration described by the embedded defaults
func Default() *Config {
	k, err := loadDefaults()
	if err == nil {
		var cfg *Config
		if cfg, err = decode(k); err == nil {
			return cfg
		}
	}
	// The defaults are embedded in the binary; failing to read them is a bug.
	panic(err)
}

// Theme returns the configured theme with any per-style overrides applied
func (c *Config) Theme() (style.Theme, error) {
	theme, err := style.GetTheme(c.Table.Theme)
	if err != nil {
		return style.Theme{}, err
	}
	return theme.Merge(style.Theme{
		Body:      c.Style.Body,
		Title:     c.Style.Title,
		Header:    c.Style.Header,
		Highlight: c.Style.Highlight,
	}), nil
}
