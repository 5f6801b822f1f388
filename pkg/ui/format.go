package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// ColorMode selects when styled output is produced
type ColorMode int

const (
	// ColorAuto styles output only when writing to a color-capable terminal
	ColorAuto ColorMode = iota
	// ColorAlways styles output regardless of the destination
	ColorAlways
	// ColorNever writes plain text
	ColorNever
)

// String returns the string representation of the mode
func (m ColorMode) String() string {
	switch m {
	case ColorAuto:
		return "auto"
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "unknown"
	}
}

// ParseColorMode parses a string into a ColorMode value
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return ColorAuto, nil
	case "always", "on", "force":
		return ColorAlways, nil
	case "never", "off", "none":
		return ColorNever, nil
	default:
		return ColorAuto, fmt.Errorf("unknown color mode: %s", s)
	}
}

type fileDescriptor interface {
	Fd() uintptr
}

// IsTerminal reports whether w is attached to a terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(fileDescriptor)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// DetectProfile determines the color profile to render with for output
func DetectProfile(output io.Writer, mode ColorMode) termenv.Profile {
	switch mode {
	case ColorNever:
		return termenv.Ascii
	case ColorAlways:
		return termenv.TrueColor
	}

	// Check if NO_COLOR is set
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}

	// Check if we're being piped or redirected
	if !IsTerminal(output) {
		return termenv.Ascii
	}

	return termenv.NewOutput(output).EnvColorProfile()
}

// NewRenderer returns a lipgloss renderer for output using the detected
// color profile
func NewRenderer(output io.Writer, mode ColorMode) *lipgloss.Renderer {
	re := lipgloss.NewRenderer(output)
	re.SetColorProfile(DetectProfile(output, mode))
	return re
}
