package mirror

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/arthur-debert/linkmirror/pkg/types"
	"github.com/spf13/afero"
)

// fakeLinker records links in memory and marks each one with a directory
// node on fs so classification sees something there.
type fakeLinker struct {
	fs    afero.Fs
	delay time.Duration

	mu    sync.Mutex
	links map[string]string
	fail  map[string]error

	active    atomic.Int32
	maxActive atomic.Int32
}

func newFakeLinker(fs afero.Fs) *fakeLinker {
	return &fakeLinker{fs: fs, links: map[string]string{}, fail: map[string]error{}}
}

func (f *fakeLinker) CreateLink(linkPath, targetPath string, isDirectory bool) (bool, error) {
	n := f.active.Add(1)
	defer f.active.Add(-1)
	for {
		m := f.maxActive.Load()
		if n <= m || f.maxActive.CompareAndSwap(m, n) {
			break
		}
	}
	if f.delay > 0 {
		time.Sleep(f.delay)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.fail[linkPath]; err != nil {
		return false, err
	}
	if _, err := f.fs.Stat(linkPath); err == nil {
		return false, nil
	}
	if err := f.fs.MkdirAll(linkPath, 0755); err != nil {
		return false, err
	}
	f.links[linkPath] = targetPath
	return true, nil
}

func (f *fakeLinker) IsLink(path string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.links[path]
	return ok
}

func (f *fakeLinker) ResolveLink(path string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	target, ok := f.links[path]
	return target, ok, nil
}

func (f *fakeLinker) addLink(linkPath, target string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_ = f.fs.MkdirAll(linkPath, 0755)
	f.links[linkPath] = target
}

// fakeNotifier records Start and Stop calls and lets tests fire changes
type fakeNotifier struct {
	mu       sync.Mutex
	started  []string
	stops    int
	onChange func()
}

func (n *fakeNotifier) Start(root string, onChange func()) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.started = append(n.started, root)
	n.onChange = onChange
	return nil
}

func (n *fakeNotifier) Stop() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.stops++
	n.onChange = nil
	return nil
}

func (n *fakeNotifier) fire() {
	n.mu.Lock()
	cb := n.onChange
	n.mu.Unlock()
	if cb != nil {
		cb()
	}
}

func (n *fakeNotifier) startedRoots() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.started...)
}

func (n *fakeNotifier) stopCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.stops
}

// refreshRecorder collects published refresh results
type refreshRecorder struct {
	mu    sync.Mutex
	calls [][]types.EvaluatedPair
}

func (r *refreshRecorder) record(pairs []types.EvaluatedPair) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, pairs)
}

func (r *refreshRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

type staticSelector struct {
	path string
	ok   bool
	err  error
}

func (s staticSelector) SelectFolder(ctx context.Context) (string, bool, error) {
	return s.path, s.ok, s.err
}

var errBoom = errors.New("boom")
