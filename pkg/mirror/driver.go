// Package mirror owns the reconciliation state: the selected rule list, the
// target root and the change watch. It produces evaluated pairs on Refresh
// and creates missing links on Apply.
package mirror

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/arthur-debert/linkmirror/pkg/classify"
	"github.com/arthur-debert/linkmirror/pkg/evaluate"
	"github.com/arthur-debert/linkmirror/pkg/linker"
	"github.com/arthur-debert/linkmirror/pkg/logging"
	"github.com/arthur-debert/linkmirror/pkg/rules"
	"github.com/arthur-debert/linkmirror/pkg/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// ChangeNotifier delivers change events for one folder at a time
type ChangeNotifier interface {
	Start(root string, onChange func()) error
	Stop() error
}

// FolderSelector asks for a target folder. ok is false when the selection
// was cancelled.
type FolderSelector interface {
	SelectFolder(ctx context.Context) (path string, ok bool, err error)
}

// Options configures a Driver. Zero values pick the defaults.
type Options struct {
	Fs          afero.Fs
	Interactor  linker.Interactor
	Notifier    ChangeNotifier
	Debounce    time.Duration
	Concurrency int

	// OnRefresh receives every refresh result
	OnRefresh func([]types.EvaluatedPair)
}

// Driver reconciles one source root against one target root
type Driver struct {
	fs          afero.Fs
	interactor  linker.Interactor
	notifier    ChangeNotifier
	concurrency int
	onRefresh   func([]types.EvaluatedPair)

	// run serializes Refresh and Apply
	run sync.Mutex

	mu            sync.Mutex
	sourceRoot    string
	platform      *rules.Platform
	targetRoot    string
	lastMonitored string

	rootDebounce   *Debouncer
	changeDebounce *Debouncer

	logger zerolog.Logger
}

// NewDriver creates a driver for sourceRoot
func NewDriver(sourceRoot string, opts Options) *Driver {
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Interactor == nil {
		opts.Interactor = linker.New()
	}
	if opts.Debounce == 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}

	return &Driver{
		fs:             opts.Fs,
		interactor:     opts.Interactor,
		notifier:       opts.Notifier,
		concurrency:    opts.Concurrency,
		onRefresh:      opts.OnRefresh,
		sourceRoot:     absClean(sourceRoot),
		rootDebounce:   NewDebouncer(opts.Debounce),
		changeDebounce: NewDebouncer(opts.Debounce),
		logger:         logging.GetLogger("mirror"),
	}
}

// SourceRoot returns the absolute source root
func (d *Driver) SourceRoot() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.sourceRoot
}

// TargetRoot returns the current target root
func (d *Driver) TargetRoot() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.targetRoot
}

// Platform returns the selected platform, or nil
func (d *Driver) Platform() *rules.Platform {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.platform
}

// SelectPlatform switches the active rule list and refreshes
func (d *Driver) SelectPlatform(ctx context.Context, p *rules.Platform) ([]types.EvaluatedPair, error) {
	d.mu.Lock()
	d.platform = p
	d.mu.Unlock()

	if p != nil {
		d.logger.Info().Str("platform", p.Name).Int("rules", len(p.Rules)).Msg("Platform selected")
	}
	return d.Refresh(ctx)
}

// SetTargetRoot records a new target root. The change watch follows it
// once the root has been stable for the debounce delay.
func (d *Driver) SetTargetRoot(path string) {
	d.mu.Lock()
	d.targetRoot = path
	d.mu.Unlock()

	d.rootDebounce.Trigger(func() {
		d.FinalizeMonitoring(path)
	})
}

// UseTargetRoot records a target root without touching the change watch
func (d *Driver) UseTargetRoot(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.targetRoot = path
}

// FinalizeMonitoring points the change watch at path. An empty or missing
// path stops watching. Moving the watch triggers a refresh.
func (d *Driver) FinalizeMonitoring(path string) {
	d.mu.Lock()
	d.targetRoot = path

	if path == "" || !d.dirExists(path) {
		d.lastMonitored = ""
		d.mu.Unlock()
		d.changeDebounce.Stop()
		if d.notifier != nil {
			if err := d.notifier.Stop(); err != nil {
				d.logger.Warn().Err(err).Msg("Failed to stop change watch")
			}
		}
		return
	}

	if path == d.lastMonitored {
		d.mu.Unlock()
		return
	}
	d.lastMonitored = path
	d.mu.Unlock()

	if d.notifier != nil {
		if err := d.notifier.Start(path, d.onChange); err != nil {
			d.logger.Warn().Err(err).Str("path", path).Msg("Failed to watch target folder")
		}
	}

	if _, err := d.Refresh(context.Background()); err != nil {
		d.logger.Warn().Err(err).Msg("Refresh after target change failed")
	}
}

// Browse asks sel for a target root. A cancelled selection changes nothing.
func (d *Driver) Browse(ctx context.Context, sel FolderSelector) error {
	path, ok, err := sel.SelectFolder(ctx)
	if err != nil {
		return err
	}
	if !ok || path == "" {
		d.logger.Debug().Msg("Folder selection cancelled")
		return nil
	}
	d.SetTargetRoot(path)
	return nil
}

// SetupAllowed reports whether Apply may run
func (d *Driver) SetupAllowed() bool {
	return d.ValidateSetup() == nil
}

// ValidateSetup explains why Apply may not run, or returns nil
func (d *Driver) ValidateSetup() error {
	d.mu.Lock()
	selected := d.platform != nil
	source, target := d.sourceRoot, d.targetRoot
	d.mu.Unlock()

	return ValidateSetup(d.fs, selected, source, target)
}

// Close stops pending debounced work and the change watch
func (d *Driver) Close() error {
	d.rootDebounce.Stop()
	d.changeDebounce.Stop()

	d.mu.Lock()
	d.lastMonitored = ""
	d.mu.Unlock()

	if d.notifier != nil {
		return d.notifier.Stop()
	}
	return nil
}

// Refresh classifies and evaluates every rule of the selected platform
// against the current roots. It has no side effects on the filesystem.
// The result is empty when no platform is selected or the target root does
// not exist.
func (d *Driver) Refresh(ctx context.Context) ([]types.EvaluatedPair, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d.run.Lock()
	pairs := d.refreshLocked()
	d.run.Unlock()

	d.publish(pairs)
	return pairs, nil
}

func (d *Driver) refreshLocked() []types.EvaluatedPair {
	d.mu.Lock()
	platform := d.platform
	source, target := d.sourceRoot, d.targetRoot
	d.mu.Unlock()

	logger := d.logger.With().Str("pass", uuid.NewString()).Logger()

	if platform == nil {
		logger.Debug().Msg("No platform selected")
		return []types.EvaluatedPair{}
	}
	if target == "" || !d.dirExists(target) {
		logger.Debug().Str("target", target).Msg("Target folder missing")
		return []types.EvaluatedPair{}
	}

	done := logging.LogOperationStart(logger, "refresh")
	defer done()

	pairs := make([]types.EvaluatedPair, 0, len(platform.Rules))
	for _, rule := range platform.Rules {
		originPath := absClean(filepath.Join(source, rule.Origin))
		destinationPath := filepath.Join(target, rule.Destination)

		pair := types.MirrorPair{
			Source: classify.Classify(d.fs, d.interactor, originPath, rule.Origin),
			Target: classify.Classify(d.fs, d.interactor, destinationPath, rule.Destination),
		}
		state := evaluate.Evaluate(pair)

		logger.Trace().
			Str("origin", rule.Origin).
			Str("destination", rule.Destination).
			Stringer("source", pair.Source.Kind).
			Stringer("target", pair.Target.Kind).
			Str("indicator", state.Indicator).
			Msg("Evaluated pair")

		pairs = append(pairs, types.EvaluatedPair{Rule: rule, Pair: pair, State: state})
	}
	return pairs
}

func (d *Driver) onChange() {
	d.changeDebounce.Trigger(func() {
		if _, err := d.Refresh(context.Background()); err != nil {
			d.logger.Warn().Err(err).Msg("Refresh after change failed")
		}
	})
}

func (d *Driver) publish(pairs []types.EvaluatedPair) {
	if d.onRefresh != nil {
		d.onRefresh(pairs)
	}
}

func (d *Driver) dirExists(path string) bool {
	ok, err := afero.DirExists(d.fs, path)
	return err == nil && ok
}
