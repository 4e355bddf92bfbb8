// Package follow implements the tail state machine: it polls a single
// file for growth and emits newly appended, filter-passing lines,
// tolerating truncation, rotation, and temporary disappearance of the
// target.
package follow

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"logsift/pkg/filter"
	"logsift/pkg/logline"
)

// DefaultInterval is the poll interval used when none is configured.
const DefaultInterval = 500 * time.Millisecond

// Config describes one follow session.
type Config struct {
	// Path is the single file to follow.
	Path string

	// FromStart reads the file from offset 0 instead of seeking to the
	// current end of file.
	FromStart bool

	// Interval is the poll interval. Must be positive.
	Interval time.Duration

	// Filter is applied to every complete line; nil accepts everything.
	Filter *filter.Filter

	// Parser builds records from raw lines.
	Parser *logline.Parser
}

// VanishedError reports that the followed file disappeared. The engine
// keeps polling after reporting it, since the file may reappear after a
// rotation.
type VanishedError struct {
	Path string
	Err  error
}

func (e *VanishedError) Error() string {
	return fmt.Sprintf("follow target %s vanished: %v", e.Path, e.Err)
}

func (e *VanishedError) Unwrap() error {
	return e.Err
}

// cursor is the position and identity bookkeeping for the tracked file.
// It lives in memory only and is lost on process restart.
type cursor struct {
	offset int64
	info   os.FileInfo
}

// Follower is the tail engine. Create with New, drive with Run.
type Follower struct {
	cfg      Config
	sleep    func(ctx context.Context, d time.Duration) error
	report   func(error)
	cursor   cursor
	vanished bool
}

// Option configures a Follower.
type Option func(*Follower)

// WithSleep replaces the engine's idle wait, letting tests simulate time
// without a real clock. The function must honor context cancellation.
func WithSleep(fn func(ctx context.Context, d time.Duration) error) Option {
	return func(f *Follower) { f.sleep = fn }
}

// WithReporter sets the sink for non-fatal diagnostics, such as the
// follow target vanishing. The default discards them.
func WithReporter(fn func(error)) Option {
	return func(f *Follower) { f.report = fn }
}

// New validates the configuration and creates a Follower. A non-positive
// interval or missing path is a configuration error, surfaced before any
// input is read.
func New(cfg Config, opts ...Option) (*Follower, error) {
	if cfg.Path == "" {
		return nil, errors.New("follow: path is required")
	}
	if cfg.Interval <= 0 {
		return nil, fmt.Errorf("follow: poll interval must be positive, got %v", cfg.Interval)
	}
	if cfg.Parser == nil {
		return nil, errors.New("follow: parser is required")
	}

	f := &Follower{
		cfg:    cfg,
		sleep:  sleepContext,
		report: func(error) {},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// Run drives the state machine until ctx is cancelled: poll, idle wait,
// identity re-check, repeat. Each passing line is handed to emit; an emit
// error stops the engine. Run returns ctx.Err() on cancellation and
// guarantees no file handle outlives a poll cycle.
func (f *Follower) Run(ctx context.Context, emit func(logline.Record) error) error {
	if err := f.initialize(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := f.poll(ctx, emit); err != nil {
			return err
		}

		if err := f.sleep(ctx, f.cfg.Interval); err != nil {
			return err
		}

		f.checkIdentity()
	}
}

// initialize records the starting cursor: offset 0 when FromStart,
// otherwise the current end of file. A missing target at startup is
// fatal, unlike disappearance mid-follow.
func (f *Follower) initialize() error {
	info, err := os.Stat(f.cfg.Path)
	if err != nil {
		return fmt.Errorf("follow %s: %w", f.cfg.Path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("follow %s: is a directory", f.cfg.Path)
	}

	f.cursor.info = info
	if !f.cfg.FromStart {
		f.cursor.offset = info.Size()
	}
	return nil
}

// poll reads everything appended since the cursor and emits complete,
// filter-passing lines. A trailing unterminated fragment is not consumed;
// the cursor stays before it so the next poll re-reads it once its
// terminator arrives.
func (f *Follower) poll(ctx context.Context, emit func(logline.Record) error) error {
	file, err := os.Open(f.cfg.Path) // #nosec G304 -- user-provided path is expected
	if err != nil {
		f.reportVanished(err)
		return nil
	}
	defer file.Close()
	f.clearVanished()

	if _, err := file.Seek(f.cursor.offset, io.SeekStart); err != nil {
		f.report(&VanishedError{Path: f.cfg.Path, Err: err})
		return nil
	}

	data, err := io.ReadAll(file)
	if err != nil {
		f.report(&VanishedError{Path: f.cfg.Path, Err: err})
		return nil
	}

	consumed := bytes.LastIndexByte(data, '\n') + 1
	if consumed == 0 {
		return nil
	}

	for _, raw := range strings.Split(string(data[:consumed-1]), "\n") {
		raw = strings.TrimSuffix(raw, "\r")
		rec := f.cfg.Parser.Parse(raw, f.cfg.Path)
		if f.cfg.Filter != nil && !f.cfg.Filter.Keep(rec) {
			continue
		}
		if err := emit(rec); err != nil {
			return err
		}
	}

	f.cursor.offset += int64(consumed)
	return nil
}

// checkIdentity re-resolves the target after the idle wait. A changed
// file identity or a size smaller than the cursor means rotation or
// truncation: the cursor resets to 0 and the next poll reads the new
// content from its start. No attempt is made to recover rotated-away
// content.
func (f *Follower) checkIdentity() {
	info, err := os.Stat(f.cfg.Path)
	if err != nil {
		f.reportVanished(err)
		return
	}
	f.clearVanished()

	if !os.SameFile(f.cursor.info, info) || info.Size() < f.cursor.offset {
		f.cursor.offset = 0
	}
	f.cursor.info = info
}

// reportVanished reports a vanished target once per disappearance rather
// than every poll.
func (f *Follower) reportVanished(err error) {
	if f.vanished {
		return
	}
	f.vanished = true
	f.report(&VanishedError{Path: f.cfg.Path, Err: err})
}

func (f *Follower) clearVanished() {
	f.vanished = false
}

// sleepContext is the default idle wait: a cancellable timer, never a
// busy loop.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
