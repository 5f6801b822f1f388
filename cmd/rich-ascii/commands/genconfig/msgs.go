package genconfig

// Message constants
const (
	MsgShort   = "Generate a default configuration file"
	MsgLong    = "Output the default configuration to stdout, with every value commented out.\n\nWith the -w flag, writes it to the user config file instead. An existing\nfile is never overwritten."
	MsgExample = `  rich-ascii gen-config               # Output to stdout
  rich-ascii gen-config -w            # Write to $XDG_CONFIG_HOME/rich-ascii/config.toml`
	MsgFlagWrite = "Write config to the user config file instead of stdout"
	MsgWritten   = "Wrote %s\n"
)
