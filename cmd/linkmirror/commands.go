package linkmirror

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"

	"github.com/arthur-debert/linkmirror/internal/version"
	"github.com/arthur-debert/linkmirror/pkg/mirror"
	"github.com/arthur-debert/linkmirror/pkg/paths"
	"github.com/arthur-debert/linkmirror/pkg/rules"
	"github.com/arthur-debert/linkmirror/pkg/types"
	"github.com/arthur-debert/linkmirror/pkg/ui/display"
	"github.com/arthur-debert/linkmirror/pkg/watcher"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func newStatusCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		Short:   MsgStatusShort,
		Long:    MsgStatusLong,
		Example: MsgStatusExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.newSession(cmd)
			if err != nil {
				return err
			}

			d := s.newDriver(mirror.Options{})
			defer d.Close()

			pairs, err := s.prepare(cmd.Context(), d)
			if err != nil {
				return err
			}
			return s.renderer.RenderResult(statusResult(d, pairs))
		},
	}
}

func newApplyCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "apply",
		Short:   MsgApplyShort,
		Long:    MsgApplyLong,
		Example: MsgApplyExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.newSession(cmd)
			if err != nil {
				return err
			}

			d := s.newDriver(mirror.Options{})
			defer d.Close()

			if _, err := s.prepare(cmd.Context(), d); err != nil {
				return err
			}

			report, err := d.Apply(cmd.Context())
			if report == nil {
				return err
			}

			result := &display.ApplyResult{
				Status:  *statusResult(d, report.Pairs),
				Results: report.Results,
			}
			if rerr := s.renderer.RenderResult(result); rerr != nil {
				return rerr
			}
			return err
		},
	}
}

func newWatchCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "watch",
		Short:   MsgWatchShort,
		Long:    MsgWatchLong,
		Example: MsgWatchExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.newSession(cmd)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			var (
				d        *mirror.Driver
				renderMu sync.Mutex
			)
			d = s.newDriver(mirror.Options{
				Notifier: watcher.New(),
				OnRefresh: func(pairs []types.EvaluatedPair) {
					if d.TargetRoot() == "" {
						return
					}
					renderMu.Lock()
					defer renderMu.Unlock()
					if err := s.renderer.RenderResult(statusResult(d, pairs)); err != nil {
						log.Warn().Err(err).Msg("Failed to render status")
					}
				},
			})
			defer d.Close()

			if _, err := d.SelectPlatform(ctx, s.platform); err != nil {
				return err
			}
			if err := d.Browse(ctx, opts.selector()); err != nil {
				return err
			}
			if d.TargetRoot() == "" {
				return s.renderer.RenderMessage(MsgNoTargetSelected)
			}

			renderMu.Lock()
			err = s.renderer.RenderMessage(fmt.Sprintf(MsgWatching, d.TargetRoot()))
			renderMu.Unlock()
			if err != nil {
				return err
			}

			<-ctx.Done()
			log.Debug().Msg("Watch stopped")
			return nil
		},
	}
}

func newInitCmd(opts *rootOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "init [path]",
		Short:   MsgInitShort,
		Long:    MsgInitLong,
		Example: MsgInitExample,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, err := opts.newRenderer(cmd)
			if err != nil {
				return err
			}

			var path string
			if len(args) == 1 {
				path, err = paths.Resolve(args[0])
			} else {
				path, err = opts.rulesPath()
			}
			if err != nil {
				return err
			}

			if err := rules.WriteSample(afero.NewOsFs(), path, force); err != nil {
				return err
			}
			return renderer.RenderMessage(fmt.Sprintf(MsgSampleWritten, path))
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, MsgFlagForce)
	return cmd
}

func newRulesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "rules",
		Short:   MsgRulesShort,
		Long:    MsgRulesLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.newSession(cmd)
			if err != nil {
				return err
			}
			return s.renderer.RenderResult(&display.RulesResult{
				Path:       s.ruleSet.Path,
				SourceRoot: s.ruleSet.SourceRoot,
				Selected:   s.platform.Name,
				Platforms:  s.ruleSet.Platforms,
			})
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "linkmirror version %s\n", version.Version)
			fmt.Fprintf(out, "  commit: %s\n", version.Commit)
			fmt.Fprintf(out, "  built:  %s\n", version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "man [dir]",
		Short:   MsgManShort,
		Long:    MsgManLong,
		GroupID: "misc",
		Hidden:  true,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			dir, err := filepath.Abs(dir)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(dir, 0755); err != nil {
				return err
			}

			header := &doc.GenManHeader{
				Title:   "LINKMIRROR",
				Section: "1",
				Source:  "linkmirror " + version.Version,
				Manual:  "linkmirror manual",
			}
			if err := doc.GenManTree(cmd.Root(), header, dir); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgManWritten+"\n", dir)
			return nil
		},
	}
}
