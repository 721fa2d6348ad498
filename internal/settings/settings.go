package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Setting keys, as the front-end names them
const (
	KeyLastOpenedDirectory = "lastOpenedDirectory"
	KeyTime                = "time"
	KeyMuted               = "muted"
)

// ErrUnknownKey is returned by Set for a key that isn't a setting
var ErrUnknownKey = errors.New("unknown setting")

// Settings holds the persisted front-end settings
type Settings struct {
	LastOpenedDirectory *string `json:"lastOpenedDirectory"`
	Time                int     `json:"time"` // seconds per image
	Muted               bool    `json:"muted"`
}

// Defaults returns the settings used when nothing is saved yet
func Defaults() Settings {
	return Settings{Time: 120}
}

// Manager handles loading and saving settings
type Manager struct {
	path         string
	settings     Settings
	mu           sync.RWMutex
	dirty        bool
	saveTimer    *time.Timer
	saveDuration time.Duration
}

// NewManager creates a settings manager backed by path.
// An empty path means DefaultPath().
func NewManager(path string) *Manager {
	if path == "" {
		path = DefaultPath()
	}
	return &Manager{
		path:         path,
		settings:     Defaults(),
		saveDuration: 2 * time.Second, // Debounce saves
	}
}

// DefaultPath returns the default settings file path
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".reveal-settings.json"
	}
	return filepath.Join(dir, "reveal", "settings.json")
}

// Path returns the backing file
func (m *Manager) Path() string {
	return m.path
}

// Load reads settings from disk, layered over the defaults.
// A missing or unparseable file leaves the defaults in place.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.settings = Defaults()

	data, err := os.ReadFile(m.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	loaded := Defaults()
	if err := json.Unmarshal(data, &loaded); err != nil {
		return nil
	}
	if loaded.Time <= 0 {
		loaded.Time = Defaults().Time
	}
	m.settings = loaded
	return nil
}

// Get returns a copy of the current settings
func (m *Manager) Get() Settings {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s := m.settings
	if s.LastOpenedDirectory != nil {
		dir := *s.LastOpenedDirectory
		s.LastOpenedDirectory = &dir
	}
	return s
}

// Set updates one setting and schedules a debounced save.
// value comes from decoded JSON, so numbers arrive as float64.
func (m *Manager) Set(key string, value any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch key {
	case KeyLastOpenedDirectory:
		switch v := value.(type) {
		case nil:
			m.settings.LastOpenedDirectory = nil
		case string:
			m.settings.LastOpenedDirectory = &v
		default:
			return fmt.Errorf("%s: expected string or null, got %T", key, value)
		}
	case KeyTime:
		secs, err := toSeconds(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		m.settings.Time = secs
	case KeyMuted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("%s: expected bool, got %T", key, value)
		}
		m.settings.Muted = v
	default:
		return fmt.Errorf("%q: %w", key, ErrUnknownKey)
	}

	m.scheduleSaveLocked()
	return nil
}

func toSeconds(value any) (int, error) {
	var secs int
	switch v := value.(type) {
	case int:
		secs = v
	case int64:
		secs = int(v)
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("expected whole seconds, got %v", v)
		}
		secs = int(v)
	default:
		return 0, fmt.Errorf("expected number, got %T", value)
	}
	if secs <= 0 {
		return 0, fmt.Errorf("must be positive, got %d", secs)
	}
	return secs, nil
}

// scheduleSaveLocked marks settings dirty and (re)arms the save timer
func (m *Manager) scheduleSaveLocked() {
	m.dirty = true

	// Cancel any pending save timer
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}

	m.saveTimer = time.AfterFunc(m.saveDuration, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		if m.dirty {
			_ = m.saveLocked() // Ignore errors for background save
		}
	})
}

// Save saves settings to disk immediately
func (m *Manager) Save() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.saveLocked()
}

// saveLocked saves settings without acquiring the lock (caller must hold lock)
func (m *Manager) saveLocked() error {
	dir := filepath.Dir(m.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(m.settings, "", "  ")
	if err != nil {
		return err
	}

	m.dirty = false
	return os.WriteFile(m.path, data, 0644)
}

// Close ensures any pending saves are written
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.saveTimer != nil {
		m.saveTimer.Stop()
		m.saveTimer = nil
	}

	if m.dirty {
		return m.saveLocked()
	}
	return nil
}
