// Package reveal shows a file, selected when the platform allows it, in the
// native file manager.
package reveal

import (
	"log"
	"os"

	"github.com/lumipallolabs/reveal/internal/logging"
)

// Revealer validates a path and launches the file manager for it.
// It holds no per-call state, so one Revealer can serve concurrent callers.
type Revealer struct {
	strategy Strategy
	launcher Launcher
	logger   *log.Logger
}

// Option configures a Revealer
type Option func(*Revealer)

// WithStrategy overrides the build-selected platform strategy
func WithStrategy(s Strategy) Option {
	return func(r *Revealer) { r.strategy = s }
}

// WithLauncher overrides how processes are started
func WithLauncher(l Launcher) Option {
	return func(r *Revealer) { r.launcher = l }
}

// WithLogger sets the logger; logging.Debug is used otherwise
func WithLogger(l *log.Logger) Option {
	return func(r *Revealer) { r.logger = l }
}

// New creates a Revealer for the current platform
func New(opts ...Option) *Revealer {
	r := &Revealer{
		strategy: Native(),
		launcher: ExecLauncher{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Strategy returns the strategy in use
func (r *Revealer) Strategy() Strategy {
	return r.strategy
}

// Reveal opens the file manager on path. It fails with ErrNotFound when path
// does not exist, ErrNoParentDirectory when the strategy needs a parent and
// there is none, and ErrSpawnFailed when the helper could not be started.
// Exactly one process is started on success and none on failure.
func (r *Revealer) Reveal(path string) error {
	logger := r.log()

	if path == "" {
		return &Error{Path: path, Kind: ErrNotFound}
	}
	if _, err := os.Stat(path); err != nil {
		logger.Printf("[Reveal] stat %s: %v", path, err)
		return &Error{Path: path, Kind: ErrNotFound, Err: err}
	}

	cmd, err := r.strategy.Command(path)
	if err != nil {
		logger.Printf("[Reveal] %s: %v", r.strategy.Name(), err)
		return err
	}

	logger.Printf("[Reveal] starting %s", cmd)
	if err := r.launcher.Start(cmd); err != nil {
		logger.Printf("[Reveal] start %s failed: %v", cmd.Name, err)
		return &Error{Path: path, Kind: ErrSpawnFailed, Err: err}
	}
	return nil
}

func (r *Revealer) log() *log.Logger {
	if r.logger != nil {
		return r.logger
	}
	return logging.Debug
}

// Reveal opens the native file manager on path using the default Revealer
func Reveal(path string) error {
	return New().Reveal(path)
}
