package commands

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sffjunkie/rich-ascii/internal/version"
	"github.com/sffjunkie/rich-ascii/pkg/config"
	"github.com/sffjunkie/rich-ascii/pkg/errors"
	"github.com/sffjunkie/rich-ascii/pkg/render"
)

// isolate points config and log lookups at temporary directories
func isolate(t *testing.T) string {
	t.Helper()
	cfgHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", cfgHome)
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	for _, name := range []string{
		"RICH_ASCII_TABLE_SHOW_ALIASES", "RICH_ASCII_TABLE_THEME",
		"RICH_ASCII_OUTPUT_COLOR", "RICH_ASCII_ALIASES_FILE",
	} {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
	return cfgHome
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func findCommand(root *cobra.Command, name string) *cobra.Command {
	for _, c := range root.Commands() {
		if c.Name() == name {
			return c
		}
	}
	return nil
}

func TestRootCommandStructure(t *testing.T) {
	cmd := NewRootCmd()

	assert.Equal(t, MsgRootShort, cmd.Short)
	for _, name := range []string{"gen-config", "topics", "completion", "version"} {
		assert.NotNil(t, findCommand(cmd, name), name)
	}
	for _, flag := range []string{"aliases", "no-aliases", "style", "title-style", "header-style", "highlight-style", "theme", "color"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), flag)
	}
	assert.NotNil(t, cmd.PersistentFlags().Lookup("verbose"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("config"))
}

func TestRootCompactTable(t *testing.T) {
	isolate(t)

	out, err := execute(t, "--color", "never")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, render.Title+"\n"))
	assert.NotContains(t, out, "\x1b[")
	assert.Contains(t, out, "Latin Capital Letter A")
	assert.Contains(t, out, "Escape")
	assert.Contains(t, out, "Latin Small Letter Y With Diaeresis")
	assert.NotContains(t, out, "Aliases")

	// title, top border, header, separator, 128 rows, bottom border
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 1+3+128+1)
}

func TestRootAliasesTable(t *testing.T) {
	isolate(t)

	out, err := execute(t, "--aliases", "--color", "never")
	require.NoError(t, err)

	assert.Contains(t, out, "Aliases")
	assert.Contains(t, out, "Start Of Heading")
	assert.Contains(t, out, "SOH")

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 1+3+256+1)
}

func TestRootAliasFlagsExclusive(t *testing.T) {
	isolate(t)

	_, err := execute(t, "--aliases", "--no-aliases")
	assert.Error(t, err)
}

func TestRootNoAliasesOverridesConfig(t *testing.T) {
	cfgHome := isolate(t)
	path := filepath.Join(cfgHome, "rich-ascii", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("[table]\nshow_aliases = true\n"), 0644))

	out, err := execute(t, "--color", "never")
	require.NoError(t, err)
	assert.Contains(t, out, "Aliases")

	out, err = execute(t, "--no-aliases", "--color", "never")
	require.NoError(t, err)
	assert.NotContains(t, out, "Aliases")
}

func TestRootHighlight(t *testing.T) {
	isolate(t)

	out, err := execute(t, "--aliases", "--color", "always", "--theme", "mono", "--highlight-style", "on red", "0x41")
	require.NoError(t, err)

	highlighted := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "\x1b[41m") {
			highlighted++
			assert.Contains(t, line, "Latin Capital Letter A")
		}
	}
	assert.Equal(t, 1, highlighted)
}

func TestRootInvalidStyleWritesNothing(t *testing.T) {
	isolate(t)

	out, err := execute(t, "--style", "bold purple-ish")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrStyleInvalid))
	assert.Empty(t, out)
}

func TestRootUnknownTheme(t *testing.T) {
	isolate(t)

	_, err := execute(t, "--theme", "nope")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrThemeNotFound))
}

func TestRootMissingConfigFile(t *testing.T) {
	isolate(t)

	_, err := execute(t, "--config", filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestRunMissingAliasFile(t *testing.T) {
	isolate(t)

	cfg := config.Default()
	cfg.Output.Color = "never"
	cfg.Aliases.File = "/nowhere/NameAliases.txt"

	var out bytes.Buffer
	err := Run(&out, afero.NewMemMapFs(), cfg, "")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrMissingAlias))
	assert.Contains(t, err.Error(), "0x00")
	assert.Empty(t, out.String())
}

func TestRunAlternateAliasFile(t *testing.T) {
	isolate(t)

	var content strings.Builder
	content.WriteString("# custom aliases\n")
	for v := 0; v < 256; v++ {
		if v <= 0x1F || (v >= 0x7F && v <= 0x9F) {
			fmt.Fprintf(&content, "%04X;CUSTOM CONTROL;control\n", v)
		}
	}
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/aliases.txt", []byte(content.String()), 0644))

	cfg := config.Default()
	cfg.Output.Color = "never"
	cfg.Aliases.File = "/aliases.txt"

	var out bytes.Buffer
	require.NoError(t, Run(&out, fs, cfg, ""))
	assert.Contains(t, out.String(), "Custom Control")
	assert.NotContains(t, out.String(), "Escape")
}

func TestRunInvalidColorMode(t *testing.T) {
	cfg := config.Default()
	cfg.Output.Color = "sometimes"

	err := Run(&bytes.Buffer{}, afero.NewMemMapFs(), cfg, "")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestVersionCommand(t *testing.T) {
	isolate(t)

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "rich-ascii version "+version.Version)
}

func TestTopicsCommand(t *testing.T) {
	isolate(t)

	t.Run("lists topics", func(t *testing.T) {
		out, err := execute(t, "topics")
		require.NoError(t, err)
		assert.Contains(t, out, "ranges")
		assert.Contains(t, out, "--aliases")
	})

	t.Run("shows topic", func(t *testing.T) {
		out, err := execute(t, "topics", "ranges")
		require.NoError(t, err)
		assert.Contains(t, out, "Code point ranges")
	})

	t.Run("help shows topic", func(t *testing.T) {
		out, err := execute(t, "help", "--", "--aliases")
		require.NoError(t, err)
		assert.Contains(t, out, "Dec, Hex")
	})

	t.Run("unknown topic", func(t *testing.T) {
		_, err := execute(t, "topics", "nope")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrTopicNotFound))
	})
}

func TestCompletionCommand(t *testing.T) {
	isolate(t)

	out, err := execute(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "rich-ascii")
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	PrintError(&buf, errors.MissingAlias(0x1B, "001B"))
	assert.Equal(t, "Error: [MISSING_ALIAS] no alias entry for code point 0x1B (key 001B)\n", buf.String())
}
