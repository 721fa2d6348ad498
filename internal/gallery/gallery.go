// Package gallery collects the reference images under a directory.
package gallery

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultExtensions are the image types the practice timer can show
var DefaultExtensions = []string{"jpg", "jpeg", "png", "gif"}

var (
	ErrRootNotFound = errors.New("directory does not exist")
	ErrNotDirectory = errors.New("not a directory")
)

// Entry is one image found under the root
type Entry struct {
	Pathname string `json:"pathname"` // containing directory
	Name     string `json:"name"`
	MIME     string `json:"mime"`
}

// Path returns the full path of the image
func (e Entry) Path() string {
	return filepath.Join(e.Pathname, e.Name)
}

// Progress reports collection progress
type Progress struct {
	FilesSeen   int64
	ImagesFound int64
}

// Collector defines the interface for image collection
type Collector interface {
	// Collect walks root recursively and returns the images under it
	Collect(ctx context.Context, root string) ([]Entry, error)
}

// checkRoot verifies root is an existing directory and returns its absolute path
func checkRoot(root string) (string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%s: %w", root, ErrRootNotFound)
		}
		return "", err
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s: %w", root, ErrNotDirectory)
	}
	return abs, nil
}

// extensionSet normalizes extensions to lower case without the leading dot
func extensionSet(exts []string) map[string]bool {
	set := make(map[string]bool, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
		if ext != "" {
			set[ext] = true
		}
	}
	return set
}
