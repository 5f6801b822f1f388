package style

import (
	_ "embed"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/sffjunkie/rich-ascii/pkg/errors"
)

// DefaultTheme is the theme used when none is configured
const DefaultTheme = "default"

// Theme holds the display-attribute strings for each styled part of the table
type Theme struct {
	Body      string `yaml:"body"`
	Title     string `yaml:"title"`
	Header    string `yaml:"header"`
	Highlight string `yaml:"highlight"`
}

// Merge returns t with every non-empty field of override applied
func (t Theme) Merge(override Theme) Theme {
	if override.Body != "" {
		t.Body = override.Body
	}
	if override.Title != "" {
		t.Title = override.Title
	}
	if override.Header != "" {
		t.Header = override.Header
	}
	if override.Highlight != "" {
		t.Highlight = override.Highlight
	}
	return t
}

// themeFile is the layout of themes.yaml
type themeFile struct {
	Themes map[string]Theme `yaml:"themes"`
}

//go:embed themes.yaml
var embeddedThemes []byte

// LoadThemes parses a themes document
func LoadThemes(data []byte) (map[string]Theme, error) {
	var file themeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(err, errors.ErrThemeParse, "failed to parse themes")
	}
	if file.Themes == nil {
		file.Themes = make(map[string]Theme)
	}
	return file.Themes, nil
}

// Themes returns the built-in themes
func Themes() map[string]Theme {
	themes, err := LoadThemes(embeddedThemes)
	if err != nil {
		// The embedded file is part of the build; a parse failure is a bug.
		panic(err)
	}
	return themes
}

// ThemeNames returns the built-in theme names in sorted order
func ThemeNames() []string {
	themes := Themes()
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetTheme returns the built-in theme called name
func GetTheme(name string) (Theme, error) {
	if name == "" {
		name = DefaultTheme
	}
	theme, ok := Themes()[name]
	if !ok {
		return Theme{}, errors.Newf(errors.ErrThemeNotFound, "unknown theme %q", name).
			WithDetail("theme", name)
	}
	return theme, nil
}
