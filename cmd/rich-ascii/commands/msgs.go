package commands

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Display a table of the 256 single-byte code points"
	MsgCompletionShort = "Generate shell completion script"
	MsgVersionShort    = "Print version information"

	// Status messages
	MsgVersionFormat = "rich-ascii version %s\n  commit: %s\n  built:  %s\n"
	MsgErrorPrefix   = "Error: "

	// Error messages
	MsgErrColorMode = "invalid output.color %q: expected auto, always or never"

	// Flag descriptions
	MsgFlagVerbose        = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig         = "Config file (default is $XDG_CONFIG_HOME/rich-ascii/config.toml)"
	MsgFlagAliases        = "Show one row per code point with an aliases column"
	MsgFlagNoAliases      = "Show the compact two-column table"
	MsgFlagStyle          = "Style for the table body"
	MsgFlagTitleStyle     = "Style for the table title"
	MsgFlagHeaderStyle    = "Style for the header row"
	MsgFlagHighlightStyle = "Style for the highlighted code point"
	MsgFlagTheme          = "Table theme"
	MsgFlagColor          = "When to use color: auto, always or never"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
