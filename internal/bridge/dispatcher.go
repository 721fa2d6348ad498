package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/lumipallolabs/reveal/internal/logging"
	"github.com/lumipallolabs/reveal/internal/reveal"
)

// Handler runs one command. args is the raw "args" object of the request.
type Handler func(ctx context.Context, args json.RawMessage) (any, error)

// Dispatcher routes commands to handlers by name
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[string]Handler
	codeOf   func(error) string
}

// NewDispatcher creates an empty dispatcher
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		handlers: make(map[string]Handler),
		codeOf:   errorCode,
	}
}

// Register adds or replaces the handler for name
func (d *Dispatcher) Register(name string, h Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[name] = h
}

// Commands returns the registered command names, sorted
func (d *Dispatcher) Commands() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	names := make([]string, 0, len(d.handlers))
	for name := range d.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Invoke runs the handler for req and always returns a Response for it
func (d *Dispatcher) Invoke(ctx context.Context, req Request) (resp Response) {
	resp.ID = req.ID

	d.mu.RLock()
	h, ok := d.handlers[req.Cmd]
	d.mu.RUnlock()

	if !ok {
		resp.Error = &Error{Code: CodeUnknownCommand, Message: fmt.Sprintf("unknown command %q", req.Cmd)}
		return resp
	}

	defer func() {
		if r := recover(); r != nil {
			logging.Bridge.Printf("%s panicked: %v", req.Cmd, r)
			resp = Response{ID: req.ID, Error: &Error{Code: reveal.CodeInternal, Message: fmt.Sprint(r)}}
		}
	}()

	result, err := h(ctx, req.Args)
	if err != nil {
		logging.Bridge.Printf("%s failed: %v", req.Cmd, err)
		resp.Error = asError(err, d.codeOf)
		return resp
	}

	resp.OK = true
	resp.Result = result
	return resp
}
