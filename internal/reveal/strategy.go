package reveal

import (
	"path/filepath"
	"strings"
)

// Command is a single helper process invocation
type Command struct {
	Name string
	Args []string
}

// String renders the command the way it would be typed in a shell (unquoted)
func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Strategy builds the file-manager command for one platform
type Strategy interface {
	// Name identifies the file manager, e.g. "explorer"
	Name() string

	// Command returns the process to start for revealing path.
	// path has already been checked for existence.
	Command(path string) (Command, error)
}

// Explorer reveals with Windows Explorer, the target pre-selected
type Explorer struct{}

func (Explorer) Name() string { return "explorer" }

// Command returns explorer /select, <path>
func (Explorer) Command(path string) (Command, error) {
	// The switch stays a separate argument so a quoted path with spaces
	// still follows "/select," on the command line
	return Command{Name: "explorer", Args: []string{"/select,", path}}, nil
}

// Finder reveals with the macOS Finder, the target pre-selected
type Finder struct{}

func (Finder) Name() string { return "finder" }

// Command returns open -R <path>
func (Finder) Command(path string) (Command, error) {
	return Command{Name: "open", Args: []string{"-R", path}}, nil
}

// XDGOpen opens the containing directory with the desktop's default file
// manager. xdg-open has no way to select an entry, so only the folder is shown.
type XDGOpen struct{}

func (XDGOpen) Name() string { return "xdg-open" }

// Command returns xdg-open <parent-of-path>. Relative paths are resolved
// against the working directory first, so "." and ".." have real parents.
func (XDGOpen) Command(path string) (Command, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return Command{}, &Error{Path: path, Kind: ErrNoParentDirectory, Err: err}
	}
	parent := filepath.Dir(abs)
	if parent == abs {
		// "/" or a bare volume like C:\
		return Command{}, &Error{Path: path, Kind: ErrNoParentDirectory}
	}
	return Command{Name: "xdg-open", Args: []string{parent}}, nil
}

// Ensure strategies implement Strategy
var (
	_ Strategy = Explorer{}
	_ Strategy = Finder{}
	_ Strategy = XDGOpen{}
)
