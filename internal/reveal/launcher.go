package reveal

import (
	"golang.org/x/sys/execabs"
)

// Launcher starts a helper process without waiting for it
type Launcher interface {
	Start(cmd Command) error
}

// ExecLauncher starts real OS processes
type ExecLauncher struct{}

// Start launches cmd and returns as soon as the OS has accepted it.
// The child's output goes to the null device and its exit status is never read.
func (ExecLauncher) Start(c Command) error {
	cmd := execabs.Command(c.Name, c.Args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	// Reap in the background so the child doesn't stay a zombie
	go func() { _ = cmd.Wait() }()
	return nil
}

// LauncherFunc adapts a plain function to Launcher
type LauncherFunc func(cmd Command) error

func (f LauncherFunc) Start(cmd Command) error { return f(cmd) }

var (
	_ Launcher = ExecLauncher{}
	_ Launcher = LauncherFunc(nil)
)
