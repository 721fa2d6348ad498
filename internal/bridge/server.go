package bridge

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/lumipallolabs/reveal/internal/logging"
	"github.com/lumipallolabs/reveal/internal/reveal"
)

// MaxLineSize bounds a single request line
const MaxLineSize = 1 << 20

// Server reads requests line by line and answers each one on its own goroutine
type Server struct {
	dispatcher *Dispatcher
	workers    int
	maxLine    int

	writeMu sync.Mutex
}

// NewServer creates a server running at most workers requests at once
func NewServer(d *Dispatcher, workers int) *Server {
	if workers < 1 {
		workers = 8
	}
	return &Server{
		dispatcher: d,
		workers:    workers,
		maxLine:    MaxLineSize,
	}
}

// inputLine is one request line, or a marker for a line over the size limit
type inputLine struct {
	data    []byte
	tooLong bool
}

// Serve answers requests from r on w until r hits EOF or ctx is cancelled,
// then waits for in-flight requests. Responses are written in completion order.
// A line longer than MaxLineSize is answered with bad_request and skipped.
func (s *Server) Serve(ctx context.Context, r io.Reader, w io.Writer) error {
	lines := make(chan inputLine)
	readErr := make(chan error, 1)

	// Reader runs separately so a blocked read doesn't hold up cancellation
	go func() {
		defer close(lines)
		br := bufio.NewReaderSize(r, 64*1024)
		for {
			line, tooLong, err := readLine(br, s.maxLine)
			line = bytes.TrimSpace(line)
			if len(line) > 0 || tooLong {
				select {
				case lines <- inputLine{data: line, tooLong: tooLong}:
				case <-ctx.Done():
					return
				}
			}
			if err != nil {
				if err == io.EOF {
					err = nil
				}
				readErr <- err
				return
			}
		}
	}()

	var g errgroup.Group
	slots := make(chan struct{}, s.workers)

	logging.Bridge.Printf("serving (%d workers)", s.workers)

	var err error
loop:
	for {
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break loop
		case line, ok := <-lines:
			if !ok {
				err = <-readErr
				break loop
			}

			if line.tooLong {
				s.write(w, Response{Error: &Error{Code: CodeBadRequest, Message: fmt.Sprintf("request longer than %d bytes", s.maxLine)}})
				continue
			}

			var req Request
			if jsonErr := json.Unmarshal(line.data, &req); jsonErr != nil {
				s.write(w, Response{Error: &Error{Code: CodeBadRequest, Message: fmt.Sprintf("invalid request: %v", jsonErr)}})
				continue
			}

			// Wait for a free worker, but stay responsive to cancellation
			select {
			case slots <- struct{}{}:
			case <-ctx.Done():
				err = ctx.Err()
				break loop
			}

			logging.Bridge.Printf("-> %s %s", req.Cmd, req.ID)
			g.Go(func() error {
				defer func() { <-slots }()
				resp := s.dispatcher.Invoke(ctx, req)
				logging.Bridge.Printf("<- %s %s ok=%t", req.Cmd, req.ID, resp.OK)
				s.write(w, resp)
				return nil
			})
		}
	}

	_ = g.Wait()
	logging.Bridge.Printf("stopped: %v", err)
	return err
}

// readLine reads one newline-terminated line. When the line exceeds limit
// bytes the rest of it is consumed and tooLong is set instead.
func readLine(br *bufio.Reader, limit int) (line []byte, tooLong bool, err error) {
	for {
		chunk, isPrefix, err := br.ReadLine()
		if err != nil {
			return line, tooLong, err
		}
		if !tooLong {
			if len(line)+len(chunk) > limit {
				tooLong = true
				line = nil
			} else {
				line = append(line, chunk...)
			}
		}
		if !isPrefix {
			return line, tooLong, nil
		}
	}
}

// write encodes resp as one line. Lines from concurrent requests never interleave.
func (s *Server) write(w io.Writer, resp Response) {
	data, err := json.Marshal(resp)
	if err != nil {
		data, _ = json.Marshal(Response{
			ID:    resp.ID,
			Error: &Error{Code: reveal.CodeInternal, Message: fmt.Sprintf("encode response: %v", err)},
		})
	}
	data = append(data, '\n')

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if _, err := w.Write(data); err != nil {
		logging.Bridge.Printf("write response: %v", err)
	}
}
