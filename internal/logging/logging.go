package logging

import (
	"io"
	"log"
	"os"
	"sync"
)

// EnvDebug enables debug logging when set to any non-empty value
const EnvDebug = "REVEAL_DEBUG"

// DefaultFile is where debug output goes unless configured otherwise
const DefaultFile = "debug.log"

var (
	Debug   *log.Logger
	Bridge  *log.Logger
	Enabled bool

	mu      sync.Mutex
	logFile *os.File
)

func init() {
	// Only enable logging if REVEAL_DEBUG environment variable is set
	if os.Getenv(EnvDebug) == "" {
		disable()
		return
	}
	open(DefaultFile)
}

// Setup switches debug logging on or off. An empty path means DefaultFile.
// If the file can't be opened, output falls back to stderr.
func Setup(enabled bool, path string) {
	mu.Lock()
	defer mu.Unlock()

	closeFile()
	if !enabled {
		disable()
		return
	}
	if path == "" {
		path = DefaultFile
	}
	open(path)
}

// Close releases the log file, if any
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	err := closeFile()
	disable()
	return err
}

func disable() {
	Debug = log.New(io.Discard, "", 0)
	Bridge = log.New(io.Discard, "", 0)
	Enabled = false
}

func open(path string) {
	Enabled = true

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		Debug = log.New(os.Stderr, "[DEBUG] ", log.Ldate|log.Ltime)
		Bridge = log.New(os.Stderr, "[BRIDGE] ", log.Ldate|log.Ltime)
		return
	}

	// Loggers share the same file
	logFile = f
	Debug = log.New(f, "", log.Lmicroseconds)
	Bridge = log.New(f, "[bridge] ", log.Lmicroseconds)
}

func closeFile() error {
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}
