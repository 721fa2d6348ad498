package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumipallolabs/reveal/internal/config"
	"github.com/lumipallolabs/reveal/internal/logging"
	"github.com/lumipallolabs/reveal/internal/reveal"
	"github.com/lumipallolabs/reveal/internal/settings"
)

type harness struct {
	started []reveal.Command
	stdout  bytes.Buffer
	stderr  bytes.Buffer
	cfgFile string
	setFile string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	dir := t.TempDir()
	h := &harness{
		cfgFile: filepath.Join(dir, "reveal.yaml"),
		setFile: filepath.Join(dir, "settings.json"),
	}
	require.NoError(t, os.WriteFile(h.cfgFile, []byte("workers: 2\n"), 0644))
	return h
}

func (h *harness) run(stdin string, args ...string) int {
	a := &app{
		v: config.New(),
		newRevealer: func() *reveal.Revealer {
			return reveal.New(
				reveal.WithStrategy(reveal.Finder{}),
				reveal.WithLauncher(reveal.LauncherFunc(func(c reveal.Command) error {
					h.started = append(h.started, c)
					return nil
				})),
				reveal.WithLogger(log.New(io.Discard, "", 0)),
			)
		},
	}
	cmd := newRootCommand(a)
	cmd.SetArgs(append([]string{"--config", h.cfgFile, "--settings-file", h.setFile}, args...))
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&h.stdout)
	cmd.SetErr(&h.stderr)
	return run(context.Background(), cmd, &h.stderr)
}

func TestOpenCommand(t *testing.T) {
	h := newHarness(t)
	file := filepath.Join(t.TempDir(), "ref.png")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	code := h.run("", "open", file)

	assert.Equal(t, 0, code, h.stderr.String())
	assert.Equal(t, []reveal.Command{{Name: "open", Args: []string{"-R", file}}}, h.started)
	assert.Contains(t, h.stdout.String(), file)
}

func TestOpenCommandMissingFile(t *testing.T) {
	h := newHarness(t)

	code := h.run("", "open", "/nonexistent/file.txt")

	assert.Equal(t, 1, code)
	assert.Empty(t, h.started)
	assert.Contains(t, h.stderr.String(), reveal.CodeNotFound)
}

func TestImagesCommandJSON(t *testing.T) {
	h := newHarness(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.gif"), []byte("GIF89a\x01\x00\x01\x00\x00\x00\x00;"), 0644))

	code := h.run("", "images", "--json", dir)
	require.Equal(t, 0, code, h.stderr.String())

	var entries []map[string]string
	require.NoError(t, json.Unmarshal(h.stdout.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "a.gif", entries[0]["name"])
	assert.Equal(t, dir, entries[0]["pathname"])
	assert.Equal(t, "image/gif", entries[0]["mime"])
}

func TestImagesCommandEmpty(t *testing.T) {
	h := newHarness(t)

	code := h.run("", "images", "--json", t.TempDir())
	require.Equal(t, 0, code, h.stderr.String())
	assert.Equal(t, "[]\n", h.stdout.String())
}

func TestSettingsCommand(t *testing.T) {
	h := newHarness(t)

	require.Equal(t, 0, h.run("", "settings", "time", "45"), h.stderr.String())
	require.Equal(t, 0, h.run("", "settings", "lastOpenedDirectory", "/home/user/refs"), h.stderr.String())

	m := settings.NewManager(h.setFile)
	require.NoError(t, m.Load())
	s := m.Get()
	assert.Equal(t, 45, s.Time)
	require.NotNil(t, s.LastOpenedDirectory)
	assert.Equal(t, "/home/user/refs", *s.LastOpenedDirectory)

	assert.Equal(t, 1, h.run("", "settings", "time"))
	assert.Equal(t, 1, h.run("", "settings", "time", "0"))
}

func TestServeCommand(t *testing.T) {
	h := newHarness(t)
	file := filepath.Join(t.TempDir(), "ref.png")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))
	fileJSON, _ := json.Marshal(file)

	stdin := `{"id": 1, "cmd": "open_file_in_explorer", "args": {"path": ` + string(fileJSON) + `}}` + "\n"
	code := h.run(stdin, "serve")

	require.Equal(t, 0, code, h.stderr.String())
	assert.JSONEq(t, `{"id": 1, "ok": true}`, strings.TrimSpace(h.stdout.String()))
	assert.Len(t, h.started, 1)
}

func TestVersionCommand(t *testing.T) {
	h := newHarness(t)
	require.Equal(t, 0, h.run("", "version"))
	out := h.stdout.String()
	assert.True(t, strings.HasPrefix(out, "reveal "+Version), out)
	assert.Contains(t, out, runtime.GOOS)
}

func TestFailedCommandClosesDebugLog(t *testing.T) {
	h := newHarness(t)
	logFile := filepath.Join(t.TempDir(), "debug.log")

	code := h.run("", "--debug", "--log-file", logFile, "open", "/nonexistent/file.txt")

	assert.Equal(t, 1, code)
	assert.False(t, logging.Enabled, "logging should be closed after a failed command")

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "path does not exist")
}

func TestParseValue(t *testing.T) {
	assert.Equal(t, float64(60), parseValue("60"))
	assert.Equal(t, true, parseValue("true"))
	assert.Nil(t, parseValue("null"))
	assert.Equal(t, "/home/user", parseValue("/home/user"))
}
