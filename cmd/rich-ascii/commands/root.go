package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/sffjunkie/rich-ascii/cmd/rich-ascii/commands/genconfig"
	helptopics "github.com/sffjunkie/rich-ascii/cmd/rich-ascii/commands/topics"
	"github.com/sffjunkie/rich-ascii/internal/version"
	"github.com/sffjunkie/rich-ascii/pkg/aliases"
	"github.com/sffjunkie/rich-ascii/pkg/cobrax/topics"
	"github.com/sffjunkie/rich-ascii/pkg/codepoint"
	"github.com/sffjunkie/rich-ascii/pkg/config"
	"github.com/sffjunkie/rich-ascii/pkg/errors"
	"github.com/sffjunkie/rich-ascii/pkg/logging"
	"github.com/sffjunkie/rich-ascii/pkg/render"
	"github.com/sffjunkie/rich-ascii/pkg/style"
	"github.com/sffjunkie/rich-ascii/pkg/ui"
)

// flagKeys maps string flags to the config values they override
var flagKeys = map[string]string{
	"style":           "style.body",
	"title-style":     "style.title",
	"header-style":    "style.header",
	"highlight-style": "style.highlight",
	"theme":           "table.theme",
	"color":           "output.color",
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	var (
		verbosity  int
		configFile string
		showAlias  bool
		noAliases  bool
		strFlags   = make(map[string]*string, len(flagKeys))
	)

	rootCmd := &cobra.Command{
		Use:     "rich-ascii [code-point]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := make(map[string]interface{})
			for name, key := range flagKeys {
				if cmd.Flags().Changed(name) {
					overrides[key] = *strFlags[name]
				}
			}
			if cmd.Flags().Changed("aliases") {
				overrides["table.show_aliases"] = showAlias
			}
			if cmd.Flags().Changed("no-aliases") {
				overrides["table.show_aliases"] = !noAliases
			}

			cfg, err := config.Load(config.Options{ConfigFile: configFile, Flags: overrides})
			if err != nil {
				return err
			}

			highlight := ""
			if len(args) > 0 {
				highlight = args[0]
			}
			return Run(cmd.OutOrStdout(), afero.NewOsFs(), cfg, highlight)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", MsgFlagConfig)

	// Table flags
	flags := rootCmd.Flags()
	flags.BoolVar(&showAlias, "aliases", false, MsgFlagAliases)
	flags.BoolVar(&noAliases, "no-aliases", false, MsgFlagNoAliases)
	rootCmd.MarkFlagsMutuallyExclusive("aliases", "no-aliases")
	for name, usage := range map[string]string{
		"style":           MsgFlagStyle,
		"title-style":     MsgFlagTitleStyle,
		"header-style":    MsgFlagHeaderStyle,
		"highlight-style": MsgFlagHighlightStyle,
		"theme":           MsgFlagTheme,
		"color":           MsgFlagColor,
	} {
		strFlags[name] = flags.String(name, "", usage)
	}
	_ = rootCmd.RegisterFlagCompletionFunc("theme", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return style.ThemeNames(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("color", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "always", "never"}, cobra.ShellCompDirectiveNoFileComp
	})

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "config",
		Title: "CONFIGURATION:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	// Set custom help template
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(genconfig.NewCommand(afero.NewOsFs()))
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newVersionCmd())

	// Initialize topic-based help system
	var renderer topics.Renderer = &topics.PlainRenderer{}
	if ui.IsTerminal(os.Stdout) {
		renderer = topics.NewGlamourRenderer()
	}
	tm, err := topics.InitializeWithOptions(rootCmd, helptopics.FS, topics.Options{
		Extensions: []string{".md"},
		Renderer:   renderer,
	})
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
		tm = topics.New(nil)
	}
	rootCmd.AddCommand(helptopics.NewCommand(tm))

	return rootCmd
}

// Run resolves every code point and writes the table for cfg to out. The
// table is only written once all records resolve and all styles parse.
func Run(out io.Writer, fs afero.Fs, cfg *config.Config, highlight string) error {
	logger := logging.GetLogger("cmd.root")
	done := logging.LogOperationStart(logger, "render table")
	defer done()

	mode, err := ui.ParseColorMode(cfg.Output.Color)
	if err != nil {
		return errors.Wrapf(err, errors.ErrInvalidInput, MsgErrColorMode, cfg.Output.Color).
			WithDetail("color", cfg.Output.Color)
	}

	theme, err := cfg.Theme()
	if err != nil {
		return err
	}

	logger.Info().
		Bool("showAliases", cfg.Table.ShowAliases).
		Str("highlight", highlight).
		Str("theme", cfg.Table.Theme).
		Str("color", mode.String()).
		Str("aliasFile", cfg.Aliases.File).
		Msg("Rendering code point table")

	table, err := loadAliases(fs, cfg.Aliases.File)
	if err != nil {
		return err
	}

	records, err := codepoint.NewResolver(table).Resolve()
	if err != nil {
		return err
	}

	r := render.New(ui.NewRenderer(out, mode))
	return r.Render(out, &records, render.Options{
		ShowAliases: cfg.Table.ShowAliases,
		Highlight:   highlight,
		Styles:      theme,
	})
}

// loadAliases returns the bundled alias table unless path names another file
func loadAliases(fs afero.Fs, path string) (*aliases.Table, error) {
	if path == "" {
		return aliases.Bundled()
	}
	return aliases.Load(fs, path)
}

// PrintError writes err to w in the error style
func PrintError(w io.Writer, err error) {
	re := ui.NewRenderer(w, ui.ColorAuto)
	errStyle := re.NewStyle().Foreground(style.ErrorColor).Bold(true)
	fmt.Fprintln(w, errStyle.Render(MsgErrorPrefix+err.Error()))
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
