package mirror

import (
	"context"
	stderrors "errors"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/linkmirror/pkg/errors"
	"github.com/arthur-debert/linkmirror/pkg/logging"
	"github.com/arthur-debert/linkmirror/pkg/types"
	"golang.org/x/sync/errgroup"
)

// Outcome is what Apply did with one pair
type Outcome int

const (
	// OutcomeSkipped pairs needed no link: match, mismatch, occupied target
	// or missing source
	OutcomeSkipped Outcome = iota
	// OutcomeCreated pairs got a new link
	OutcomeCreated
	// OutcomeNotCreated pairs were declined by the interactor: the target
	// appeared in the meantime, or the platform cannot link this source
	OutcomeNotCreated
	// OutcomeFailed pairs hit a filesystem error
	OutcomeFailed
)

// String returns the string representation of the outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeCreated:
		return "created"
	case OutcomeNotCreated:
		return "not created"
	case OutcomeFailed:
		return "failed"
	default:
		return "skipped"
	}
}

// MarshalText renders the outcome by name
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// ApplyResult is the outcome for one rule
type ApplyResult struct {
	Rule    types.MappingRule `json:"rule"`
	Source  string            `json:"source"`
	Target  string            `json:"target"`
	Outcome Outcome           `json:"outcome"`
	Err     error             `json:"-"`
	Error   string            `json:"error,omitempty"`
}

// ApplyReport summarises an Apply run. Pairs holds the state after the
// closing refresh.
type ApplyReport struct {
	Results []ApplyResult         `json:"results"`
	Pairs   []types.EvaluatedPair `json:"pairs"`
}

// Count returns how many pairs ended with outcome
func (r *ApplyReport) Count(outcome Outcome) int {
	n := 0
	for _, res := range r.Results {
		if res.Outcome == outcome {
			n++
		}
	}
	return n
}

// Failures returns the failed results in rule order
func (r *ApplyReport) Failures() []ApplyResult {
	var failed []ApplyResult
	for _, res := range r.Results {
		if res.Outcome == OutcomeFailed {
			failed = append(failed, res)
		}
	}
	return failed
}

// Apply creates a link for every pair whose source is a file or folder and
// whose target is missing. Nothing is overwritten or repaired. Pairs are
// independent: a failure only aborts its own pair, and all failures are
// returned together alongside the report.
func (d *Driver) Apply(ctx context.Context) (*ApplyReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := d.ValidateSetup(); err != nil {
		return nil, err
	}

	d.run.Lock()
	report := d.applyLocked()
	d.run.Unlock()

	d.publish(report.Pairs)

	failures := report.Failures()
	if len(failures) == 0 {
		return report, nil
	}

	errs := make([]error, 0, len(failures))
	for _, f := range failures {
		errs = append(errs, f.Err)
	}
	return report, errors.Wrapf(stderrors.Join(errs...), errors.ErrApply,
		"%d of %d links could not be created", len(failures), len(report.Results)).
		WithDetail("failed", len(failures))
}

func (d *Driver) applyLocked() *ApplyReport {
	logger := d.logger.With().Str("operation", "apply").Logger()
	done := logging.LogOperationStart(logger, "apply")
	defer done()

	pairs := d.refreshLocked()
	results := make([]ApplyResult, len(pairs))

	var g errgroup.Group
	g.SetLimit(d.concurrency)

	for i, ep := range pairs {
		results[i] = ApplyResult{
			Rule:    ep.Rule,
			Source:  ep.Pair.Source.FullPath,
			Target:  ep.Pair.Target.FullPath,
			Outcome: OutcomeSkipped,
		}
		if !ep.Pair.NeedsLink() {
			continue
		}

		i, ep := i, ep
		g.Go(func() error {
			results[i].Outcome, results[i].Err = d.link(ep.Pair)
			if results[i].Err != nil {
				results[i].Error = results[i].Err.Error()
				logger.Error().Err(results[i].Err).Str("target", ep.Pair.Target.FullPath).Msg("Link failed")
			}
			return nil
		})
	}
	_ = g.Wait()

	report := &ApplyReport{
		Results: results,
		Pairs:   d.refreshLocked(),
	}

	logger.Info().
		Int("created", report.Count(OutcomeCreated)).
		Int("skipped", report.Count(OutcomeSkipped)).
		Int("not_created", report.Count(OutcomeNotCreated)).
		Int("failed", report.Count(OutcomeFailed)).
		Msg("Apply finished")

	return report
}

func (d *Driver) link(pair types.MirrorPair) (Outcome, error) {
	target := pair.Target.FullPath
	parent := filepath.Dir(strings.TrimRight(target, `/\`))

	if parent != "" && !d.dirExists(parent) {
		if err := d.fs.MkdirAll(parent, 0755); err != nil {
			return OutcomeFailed, errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", parent).
				WithDetail("path", parent).
				WithDetail("target", target)
		}
		d.logger.Debug().Str("path", parent).Msg("Created enclosing folder")
	}

	created, err := d.interactor.CreateLink(target, pair.Source.FullPath, pair.Source.Kind == types.EntryFolder)
	if err != nil {
		return OutcomeFailed, err
	}
	if !created {
		return OutcomeNotCreated, nil
	}
	return OutcomeCreated, nil
}
