// Package linkmirror wires the command line interface.
package linkmirror

import (
	"embed"
	"fmt"
	"os"

	"github.com/arthur-debert/linkmirror/internal/version"
	"github.com/arthur-debert/linkmirror/pkg/cobrax/topics"
	"github.com/arthur-debert/linkmirror/pkg/config"
	"github.com/arthur-debert/linkmirror/pkg/errors"
	"github.com/arthur-debert/linkmirror/pkg/logging"
	"github.com/arthur-debert/linkmirror/pkg/mirror"
	"github.com/arthur-debert/linkmirror/pkg/paths"
	"github.com/arthur-debert/linkmirror/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

//go:embed topics
var topicsFS embed.FS

// rootOptions holds the global flags and what PersistentPreRunE resolved
// from them
type rootOptions struct {
	verbosity  int
	configFile string
	rulesFile  string
	platform   string
	format     string
	target     string

	paths paths.Paths
	cfg   *config.Config

	// prompt asks for a target root when --target is not given
	prompt mirror.FolderSelector
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	cmd, _ := newRootCmd()
	return cmd
}

func newRootCmd() (*cobra.Command, *rootOptions) {
	initTemplateFormatting()

	opts := &rootOptions{prompt: newPromptSelector()}

	rootCmd := &cobra.Command{
		Use:     "linkmirror",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.load(); err != nil {
				logging.SetupLogger(opts.verbosity)
				return err
			}
			logging.SetupLoggerWithOptions(opts.verbosity, opts.cfg.LogFileOptions(opts.paths.LogFilePath()))
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.StringVar(&opts.configFile, "config", "", MsgFlagConfig)
	flags.StringVar(&opts.rulesFile, "rules", "", MsgFlagRules)
	flags.StringVar(&opts.platform, "platform", "", MsgFlagPlatform)
	flags.StringVar(&opts.format, "format", "", MsgFlagFormat)
	flags.StringVar(&opts.target, "target", "", MsgFlagTarget)

	_ = rootCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "term", "text", "json"}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.MarkPersistentFlagDirname("target")

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newStatusCmd(opts))
	rootCmd.AddCommand(newApplyCmd(opts))
	rootCmd.AddCommand(newWatchCmd(opts))
	rootCmd.AddCommand(newInitCmd(opts))
	rootCmd.AddCommand(newRulesCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	if _, err := topics.Initialize(rootCmd, &afero.FromIOFS{FS: topicsFS}, "topics", topics.Options{
		Renderer: topics.NewGlamourRenderer(),
	}); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd, opts
}

// load resolves directories and configuration. Flags win over config.
func (o *rootOptions) load() error {
	p, err := paths.New()
	if err != nil {
		return err
	}
	o.paths = p

	configFile, err := paths.Resolve(o.configFile)
	if err != nil {
		return err
	}

	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: configFile,
		ConfigDir:  p.ConfigDir(),
	})
	if err != nil {
		return err
	}
	o.cfg = cfg
	return nil
}

// outputFormat is --format, then output.format
func (o *rootOptions) outputFormat() (ui.Format, error) {
	if o.format != "" {
		return ui.ParseFormat(o.format)
	}
	if o.cfg != nil {
		return ui.ParseFormat(o.cfg.Output.Format)
	}
	return ui.FormatAuto, nil
}

// Execute runs the command line and returns the process exit code. Errors
// are printed through the selected renderer on stderr.
func Execute() int {
	rootCmd, opts := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		format, ferr := opts.outputFormat()
		if ferr != nil {
			format = ui.FormatAuto
		}
		renderer, rerr := ui.NewRenderer(format, os.Stderr)
		if rerr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		_ = renderer.RenderError(err)
		return 1
	}
	return 0
}
