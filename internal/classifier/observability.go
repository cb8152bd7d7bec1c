package classifier

import (
	"errors"
	"fmt"
	"io"
	"time"
)

// CallEvent records metadata about a single classification call.
type CallEvent struct {
	Backend   Backend
	Model     string
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer receives events about classifier calls for logging.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// LogObserver writes classifier call events to an io.Writer.
type LogObserver struct {
	w io.Writer
}

// NewLogObserver creates an Observer that logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	ts := time.Now().UTC().Format(time.RFC3339)
	status := "ok"
	if !event.Success {
		status = "err:" + event.ErrorCode
	}
	fmt.Fprintf(o.w, "[%s] classify backend=%s model=%s latency_ms=%d status=%s\n",
		ts, event.Backend, event.Model, event.LatencyMs, status)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrInvalidOutput):
		return "INVALID_OUTPUT"
	default:
		return "UNKNOWN"
	}
}
