package render

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NoHighlight is returned by ParseHighlight when nothing should be highlighted
const NoHighlight = -1

// ParseHighlight converts a code point selector into a byte value. It accepts
// "0x" followed by one or two hex digits, or a decimal number. Anything else,
// including values above 255, gives NoHighlight.
func ParseHighlight(text string) int {
	if text == "" {
		return NoHighlight
	}

	if strings.HasPrefix(text, "0x") && (len(text) == 3 || len(text) == 4) {
		v, err := strconv.ParseUint(text[2:], 16, 8)
		if err != nil {
			return NoHighlight
		}
		return int(v)
	}

	v, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || v < 0 || v > 255 {
		return NoHighlight
	}
	return v
}

// TitleCase capitalises the first letter of every word and lower-cases the
// rest.
func TitleCase(s string) string {
	return cases.Title(language.Und).String(s)
}

// FormatAlias title-cases an alternate name unless it is shorter than four
// characters, which keeps abbreviations such as "NUL" intact.
func FormatAlias(alias string) string {
	if utf8.RuneCountInString(alias) < 4 {
		return alias
	}
	return TitleCase(alias)
}

// FormatAliases formats each alias and joins them with ", "
func FormatAliases(aliases []string) string {
	formatted := make([]string, len(aliases))
	for i, a := range aliases {
		formatted[i] = FormatAlias(a)
	}
	return strings.Join(formatted, ", ")
}
