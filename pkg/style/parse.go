package style

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sffjunkie/rich-ascii/pkg/errors"
)

// namedColors maps the standard terminal color names to their ANSI index
var namedColors = map[string]string{
	"black":          "0",
	"red":            "1",
	"green":          "2",
	"yellow":         "3",
	"blue":           "4",
	"magenta":        "5",
	"cyan":           "6",
	"white":          "7",
	"bright_black":   "8",
	"grey":           "8",
	"gray":           "8",
	"bright_red":     "9",
	"bright_green":   "10",
	"bright_yellow":  "11",
	"bright_blue":    "12",
	"bright_magenta": "13",
	"bright_cyan":    "14",
	"bright_white":   "15",
}

var (
	hexColor     = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	indexedColor = regexp.MustCompile(`^color\((\d{1,3})\)$`)
)

type attribute func(s lipgloss.Style, on bool) lipgloss.Style

var attributes = map[string]attribute{
	"bold":      func(s lipgloss.Style, on bool) lipgloss.Style { return s.Bold(on) },
	"b":         func(s lipgloss.Style, on bool) lipgloss.Style { return s.Bold(on) },
	"dim":       func(s lipgloss.Style, on bool) lipgloss.Style { return s.Faint(on) },
	"d":         func(s lipgloss.Style, on bool) lipgloss.Style { return s.Faint(on) },
	"italic":    func(s lipgloss.Style, on bool) lipgloss.Style { return s.Italic(on) },
	"i":         func(s lipgloss.Style, on bool) lipgloss.Style { return s.Italic(on) },
	"underline": func(s lipgloss.Style, on bool) lipgloss.Style { return s.Underline(on) },
	"u":         func(s lipgloss.Style, on bool) lipgloss.Style { return s.Underline(on) },
	"blink":     func(s lipgloss.Style, on bool) lipgloss.Style { return s.Blink(on) },
	"reverse":   func(s lipgloss.Style, on bool) lipgloss.Style { return s.Reverse(on) },
	"r":         func(s lipgloss.Style, on bool) lipgloss.Style { return s.Reverse(on) },
	"strike":    func(s lipgloss.Style, on bool) lipgloss.Style { return s.Strikethrough(on) },
	"s":         func(s lipgloss.Style, on bool) lipgloss.Style { return s.Strikethrough(on) },
}

// Parser turns display-attribute strings such as "bold white on blue" into
// lipgloss styles bound to one renderer.
type Parser struct {
	renderer *lipgloss.Renderer
}

// NewParser creates a parser producing styles for re. A nil renderer uses
// the lipgloss default renderer.
func NewParser(re *lipgloss.Renderer) *Parser {
	if re == nil {
		re = lipgloss.DefaultRenderer()
	}
	return &Parser{renderer: re}
}

// Parse converts spec into a style. Tokens are separated by whitespace: an
// attribute name enables it, "not <attr>" disables it, a color sets the
// foreground and "on <color>" sets the background. Empty and "none" give
// the plain style.
func (p *Parser) Parse(spec string) (lipgloss.Style, error) {
	s := p.renderer.NewStyle()
	tokens := strings.Fields(strings.ToLower(spec))

	for i := 0; i < len(tokens); i++ {
		token := tokens[i]
		switch token {
		case "none":
			continue
		case "on", "not":
			if i+1 >= len(tokens) {
				return s, invalid(spec, token, "expected a word after "+token)
			}
			i++
			next := tokens[i]
			if token == "on" {
				c, ok := parseColor(next)
				if !ok {
					return s, invalid(spec, next, "unknown background color")
				}
				s = s.Background(c)
				continue
			}
			attr, ok := attributes[next]
			if !ok {
				return s, invalid(spec, next, "unknown attribute")
			}
			s = attr(s, false)
			continue
		}

		if attr, ok := attributes[token]; ok {
			s = attr(s, true)
			continue
		}
		if c, ok := parseColor(token); ok {
			s = s.Foreground(c)
			continue
		}
		return s, invalid(spec, token, "unknown color or attribute")
	}
	return s, nil
}

// Parse converts spec using the default renderer.
func Parse(spec string) (lipgloss.Style, error) {
	return NewParser(nil).Parse(spec)
}

func parseColor(token string) (lipgloss.TerminalColor, bool) {
	if token == "default" {
		return lipgloss.NoColor{}, true
	}
	if idx, ok := namedColors[token]; ok {
		return lipgloss.Color(idx), true
	}
	if hexColor.MatchString(token) {
		return lipgloss.Color(token), true
	}
	number := token
	if m := indexedColor.FindStringSubmatch(token); m != nil {
		number = m[1]
	}
	if n, err := strconv.Atoi(number); err == nil && n >= 0 && n <= 255 {
		return lipgloss.Color(strconv.Itoa(n)), true
	}
	return nil, false
}

func invalid(spec, token, reason string) error {
	return errors.Newf(errors.ErrStyleInvalid, "invalid style %q: %s %q", spec, reason, token).
		WithDetail("style", spec).
		WithDetail("token", token)
}
