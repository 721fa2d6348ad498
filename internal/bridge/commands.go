package bridge

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/lumipallolabs/reveal/internal/gallery"
	"github.com/lumipallolabs/reveal/internal/reveal"
	"github.com/lumipallolabs/reveal/internal/settings"
)

// Command names understood by the backend
const (
	CmdOpenFileInExplorer = "open_file_in_explorer"
	CmdListImages         = "list_images"
	CmdGetSettings        = "get_settings"
	CmdSetSetting         = "set_setting"
)

// Backend holds the services the commands delegate to
type Backend struct {
	revealer  *reveal.Revealer
	collector gallery.Collector
	settings  *settings.Manager
}

// NewBackend creates a backend. A nil collector or settings manager leaves
// the matching commands unregistered.
func NewBackend(r *reveal.Revealer, c gallery.Collector, s *settings.Manager) *Backend {
	if r == nil {
		r = reveal.New()
	}
	return &Backend{
		revealer:  r,
		collector: c,
		settings:  s,
	}
}

// Register installs the backend's commands on d
func (b *Backend) Register(d *Dispatcher) {
	d.Register(CmdOpenFileInExplorer, b.handleOpenFileInExplorer)
	if b.collector != nil {
		d.Register(CmdListImages, b.handleListImages)
	}
	if b.settings != nil {
		d.Register(CmdGetSettings, b.handleGetSettings)
		d.Register(CmdSetSetting, b.handleSetSetting)
	}
}

// OpenFileInExplorer reveals path in the native file manager and reports
// whether the file manager could be started.
func (b *Backend) OpenFileInExplorer(path string) error {
	return b.revealer.Reveal(path)
}

type pathArgs struct {
	Path string `json:"path"`
}

func (b *Backend) handleOpenFileInExplorer(_ context.Context, raw json.RawMessage) (any, error) {
	var args pathArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	return nil, b.OpenFileInExplorer(args.Path)
}

func (b *Backend) handleListImages(ctx context.Context, raw json.RawMessage) (any, error) {
	var args pathArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	if args.Path == "" {
		return nil, badRequest("path is required")
	}
	entries, err := b.collector.Collect(ctx, args.Path)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []gallery.Entry{}
	}
	return entries, nil
}

func (b *Backend) handleGetSettings(context.Context, json.RawMessage) (any, error) {
	return b.settings.Get(), nil
}

type setSettingArgs struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

func (b *Backend) handleSetSetting(_ context.Context, raw json.RawMessage) (any, error) {
	var args setSettingArgs
	if err := decodeArgs(raw, &args); err != nil {
		return nil, err
	}
	if err := b.settings.Set(args.Key, args.Value); err != nil {
		return nil, badRequest("%v", err)
	}
	return b.settings.Get(), nil
}

// errorCode maps backend errors to wire codes
func errorCode(err error) string {
	switch {
	case errors.Is(err, gallery.ErrRootNotFound):
		return reveal.CodeNotFound
	case errors.Is(err, gallery.ErrNotDirectory):
		return CodeNotDirectory
	case errors.Is(err, settings.ErrUnknownKey):
		return CodeBadRequest
	default:
		return reveal.Code(err)
	}
}
