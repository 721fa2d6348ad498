package gallery

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/charlievieth/fastwalk"
	"github.com/gabriel-vasile/mimetype"

	"github.com/lumipallolabs/reveal/internal/logging"
)

// Walker implements parallel image collection
type Walker struct {
	workers    int
	extensions map[string]bool
	progress   Progress
}

// NewWalker creates a walker using the given number of workers. With no
// extensions, DefaultExtensions are used.
func NewWalker(workers int, extensions ...string) *Walker {
	if workers < 1 {
		workers = 8
	}
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	return &Walker{
		workers:    workers,
		extensions: extensionSet(extensions),
	}
}

// Progress returns a snapshot of the counters of the current or last walk
func (w *Walker) Progress() Progress {
	return Progress{
		FilesSeen:   atomic.LoadInt64(&w.progress.FilesSeen),
		ImagesFound: atomic.LoadInt64(&w.progress.ImagesFound),
	}
}

// Collect walks root with fastwalk and returns its images sorted by path.
// Entries that can't be read are skipped.
func (w *Walker) Collect(ctx context.Context, root string) ([]Entry, error) {
	absRoot, err := checkRoot(root)
	if err != nil {
		return nil, err
	}

	atomic.StoreInt64(&w.progress.FilesSeen, 0)
	atomic.StoreInt64(&w.progress.ImagesFound, 0)

	var (
		mu      sync.Mutex
		entries []Entry
	)

	conf := &fastwalk.Config{
		Follow:     false,
		NumWorkers: w.workers,
	}

	walkErr := fastwalk.Walk(conf, absRoot, func(path string, d fs.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil {
			logging.Debug.Printf("[Gallery] skipping %s: %v", path, err)
			return nil
		}
		if d.IsDir() || !w.isFile(path, d) {
			return nil
		}

		atomic.AddInt64(&w.progress.FilesSeen, 1)

		if !w.matches(d.Name()) {
			return nil
		}

		mtype, err := mimetype.DetectFile(path)
		if err != nil {
			logging.Debug.Printf("[Gallery] detect %s: %v", path, err)
			return nil
		}
		if !strings.HasPrefix(mtype.String(), "image/") {
			logging.Debug.Printf("[Gallery] %s looks like %s, skipping", path, mtype)
			return nil
		}

		atomic.AddInt64(&w.progress.ImagesFound, 1)

		mu.Lock()
		entries = append(entries, Entry{
			Pathname: filepath.Dir(path),
			Name:     d.Name(),
			MIME:     mtype.String(),
		})
		mu.Unlock()
		return nil
	})

	if walkErr != nil {
		return nil, walkErr
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Path() < entries[j].Path()
	})

	logging.Debug.Printf("[Gallery] %s: %d images in %d files", absRoot, len(entries), w.Progress().FilesSeen)
	return entries, nil
}

// isFile reports whether d is a regular file or a symlink to one.
// Symlinked directories are never descended into.
func (w *Walker) isFile(path string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		logging.Debug.Printf("[Gallery] broken link %s: %v", path, err)
		return false
	}
	return info.Mode().IsRegular()
}

func (w *Walker) matches(name string) bool {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	return w.extensions[strings.ToLower(ext)]
}

// Ensure Walker implements Collector
var _ Collector = (*Walker)(nil)
