package linkmirror

import (
	"context"

	"github.com/arthur-debert/linkmirror/pkg/errors"
	"github.com/arthur-debert/linkmirror/pkg/mirror"
	"github.com/arthur-debert/linkmirror/pkg/paths"
	"github.com/arthur-debert/linkmirror/pkg/rules"
	"github.com/arthur-debert/linkmirror/pkg/types"
	"github.com/arthur-debert/linkmirror/pkg/ui"
	"github.com/arthur-debert/linkmirror/pkg/ui/display"
	"github.com/spf13/cobra"
)

// session is what a mirror command needs: the rule set, the chosen
// platform and a renderer on the command's output
type session struct {
	opts     *rootOptions
	ruleSet  *rules.RuleSet
	platform *rules.Platform
	renderer ui.Renderer
}

func (o *rootOptions) newSession(cmd *cobra.Command) (*session, error) {
	renderer, err := o.newRenderer(cmd)
	if err != nil {
		return nil, err
	}

	rs, err := o.loadRules()
	if err != nil {
		return nil, err
	}

	name := o.platform
	if name == "" {
		name = o.cfg.Rules.Platform
	}
	platform, err := rs.SelectPlatform(name)
	if err != nil {
		return nil, err
	}

	return &session{
		opts:     o,
		ruleSet:  rs,
		platform: platform,
		renderer: renderer,
	}, nil
}

func (o *rootOptions) newRenderer(cmd *cobra.Command) (ui.Renderer, error) {
	format, err := o.outputFormat()
	if err != nil {
		return nil, err
	}
	return ui.NewRenderer(format, cmd.OutOrStdout())
}

// rulesPath is --rules, then rules.file, then the default location
func (o *rootOptions) rulesPath() (string, error) {
	path := o.rulesFile
	if path == "" {
		path = o.cfg.Rules.File
	}
	if path == "" {
		return o.paths.RulesFile(), nil
	}
	return paths.Resolve(path)
}

func (o *rootOptions) loadRules() (*rules.RuleSet, error) {
	path, err := o.rulesPath()
	if err != nil {
		return nil, err
	}
	rs, err := rules.Load(path)
	if err != nil {
		if errors.IsErrorCode(err, errors.ErrRulesLoad) {
			return nil, errors.Wrapf(err, errors.ErrRulesLoad, "no usable rule file, create one with 'linkmirror init'").
				WithDetail("path", path)
		}
		return nil, err
	}
	return rs, nil
}

// selector returns the folder selector for the target root
func (o *rootOptions) selector() mirror.FolderSelector {
	if o.target != "" {
		return &flagSelector{path: o.target}
	}
	return o.prompt
}

// newDriver builds a driver over the session's rule set
func (s *session) newDriver(opts mirror.Options) *mirror.Driver {
	opts.Debounce = s.opts.cfg.Watch.Debounce
	opts.Concurrency = s.opts.cfg.Apply.Concurrency
	return mirror.NewDriver(s.ruleSet.SourceRoot, opts)
}

// prepare selects the target root and the platform, which refreshes
func (s *session) prepare(ctx context.Context, d *mirror.Driver) ([]types.EvaluatedPair, error) {
	target, ok, err := s.opts.selector().SelectFolder(ctx)
	if err != nil {
		return nil, err
	}
	if ok {
		d.UseTargetRoot(target)
	}
	return d.SelectPlatform(ctx, s.platform)
}

// statusResult captures the driver state for rendering
func statusResult(d *mirror.Driver, pairs []types.EvaluatedPair) *display.StatusResult {
	result := &display.StatusResult{
		SourceRoot: d.SourceRoot(),
		TargetRoot: d.TargetRoot(),
		Pairs:      pairs,
	}
	if p := d.Platform(); p != nil {
		result.Platform = p.Name
	}
	if result.Pairs == nil {
		result.Pairs = []types.EvaluatedPair{}
	}
	if err := d.ValidateSetup(); err != nil {
		result.SetupProblem = errors.GetErrorMessage(err)
	}
	return result
}
