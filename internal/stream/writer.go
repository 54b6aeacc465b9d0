// Package stream implements the line-delimited progress protocol used by
// long-running bulk operations: zero or more progress events followed by
// exactly one terminal done or error event, one JSON object per line.
package stream

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sync"
)

// ContentType distinguishes streaming responses from plain JSON bodies.
const ContentType = "application/x-ndjson"

type EventType string

const (
	EventProgress EventType = "progress"
	EventDone     EventType = "done"
	EventError    EventType = "error"
)

// Event is the consumer-side decoding of one stream line. Producers write
// type-specific shapes; every field here is optional on the wire.
type Event struct {
	Type      EventType       `json:"type"`
	Completed int             `json:"completed"`
	Total     int             `json:"total"`
	Phase     string          `json:"phase,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
	Error     string          `json:"error,omitempty"`
}

// ErrTerminalSent rejects writes after the terminal event.
var ErrTerminalSent = errors.New("terminal event already sent")

// Writer produces the event stream. Safe for concurrent use; each event is
// flushed as soon as it is written when the destination supports it.
type Writer struct {
	mu       sync.Mutex
	w        io.Writer
	flusher  http.Flusher
	terminal bool
}

func NewWriter(w io.Writer) *Writer {
	sw := &Writer{w: w}
	if f, ok := w.(http.Flusher); ok {
		sw.flusher = f
	}
	return sw
}

func (w *Writer) Progress(completed, total int, phase string) error {
	return w.write(map[string]any{
		"type":      EventProgress,
		"completed": completed,
		"total":     total,
		"phase":     phase,
	}, false)
}

// Done emits the terminal success event carrying data.
func (w *Writer) Done(data any) error {
	return w.write(map[string]any{
		"type": EventDone,
		"data": data,
	}, true)
}

// Fail emits the terminal error event.
func (w *Writer) Fail(err error) error {
	return w.write(map[string]any{
		"type":  EventError,
		"error": err.Error(),
	}, true)
}

func (w *Writer) write(event map[string]any, terminal bool) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.terminal {
		return ErrTerminalSent
	}

	line, err := json.Marshal(event)
	if err != nil {
		return err
	}
	if _, err := w.w.Write(append(line, '\n')); err != nil {
		return err
	}
	if w.flusher != nil {
		w.flusher.Flush()
	}
	if terminal {
		w.terminal = true
	}
	return nil
}
