package stream

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// ErrStreamEnded means the stream closed without ever emitting a terminal
// event. The transport itself broke; no fallback can repair that.
var ErrStreamEnded = errors.New("stream ended unexpectedly")

// OperationError carries a terminal error event's message: the operation
// itself failed, not the transport.
type OperationError struct {
	Message string
}

func (e *OperationError) Error() string {
	return e.Message
}

// Consume reads NDJSON events from r until the first terminal event,
// invoking onProgress for each progress event. Partial lines are buffered
// across arbitrary chunk boundaries; anything after the terminal event is
// ignored. A done event resolves with its data payload; an error event
// fails with an OperationError; a stream that closes with no terminal
// fails with ErrStreamEnded. Once ctx is cancelled no further callbacks
// fire.
func Consume(ctx context.Context, r io.Reader, onProgress func(completed, total int, phase string)) (json.RawMessage, error) {
	br := bufio.NewReader(r)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		line, readErr := br.ReadString('\n')
		line = strings.TrimSpace(line)

		if line != "" {
			var ev Event
			if err := json.Unmarshal([]byte(line), &ev); err != nil {
				return nil, fmt.Errorf("malformed stream event: %w", err)
			}
			switch ev.Type {
			case EventProgress:
				if onProgress != nil {
					onProgress(ev.Completed, ev.Total, ev.Phase)
				}
			case EventDone:
				return ev.Data, nil
			case EventError:
				return nil, &OperationError{Message: ev.Error}
			default:
				return nil, fmt.Errorf("malformed stream event: unknown type %q", ev.Type)
			}
		}

		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				return nil, ErrStreamEnded
			}
			return nil, fmt.Errorf("read stream: %w", readErr)
		}
	}
}

// ConsumeResponse handles both response styles: an NDJSON body goes through
// Consume, anything else is an ordinary JSON body with standard status-code
// semantics (non-2xx means error, the body may carry {"error": ...}).
func ConsumeResponse(ctx context.Context, resp *http.Response, onProgress func(completed, total int, phase string)) (json.RawMessage, error) {
	defer resp.Body.Close()

	if strings.Contains(resp.Header.Get("Content-Type"), "ndjson") {
		return Consume(ctx, resp.Body, onProgress)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var payload struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(body, &payload) == nil && payload.Error != "" {
			return nil, &OperationError{Message: payload.Error}
		}
		return nil, fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	return body, nil
}
