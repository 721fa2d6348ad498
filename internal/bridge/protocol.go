// Package bridge is the command boundary between the GUI front-end and the
// backend. Requests and responses are JSON objects, one per line.
package bridge

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Error codes that don't come from the reveal package
const (
	CodeBadRequest     = "bad_request"
	CodeUnknownCommand = "unknown_command"
	CodeNotDirectory   = "not_a_directory"
)

// Request is one command invocation from the front-end
type Request struct {
	ID   json.RawMessage `json:"id"`
	Cmd  string          `json:"cmd"`
	Args json.RawMessage `json:"args,omitempty"`
}

// Response answers exactly one Request, echoing its ID
type Response struct {
	ID     json.RawMessage `json:"id"`
	OK     bool            `json:"ok"`
	Result any             `json:"result,omitempty"`
	Error  *Error          `json:"error,omitempty"`
}

// Error is the failure half of a Response
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// badRequest returns an Error carrying CodeBadRequest
func badRequest(format string, args ...any) error {
	return &Error{Code: CodeBadRequest, Message: fmt.Sprintf(format, args...)}
}

// decodeArgs unmarshals command arguments, rejecting a missing object
func decodeArgs(raw json.RawMessage, v any) error {
	if len(raw) == 0 || string(raw) == "null" {
		return badRequest("missing args")
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return badRequest("invalid args: %v", err)
	}
	return nil
}

// asError converts a handler error into the wire form
func asError(err error, code func(error) string) *Error {
	var bridgeErr *Error
	if errors.As(err, &bridgeErr) {
		return bridgeErr
	}
	return &Error{Code: code(err), Message: err.Error()}
}
