// Package progress emits line-delimited JSON progress events on a writer,
// conventionally stderr, so the Electron host can separate machine-readable
// progress from the final result on stdout.
package progress

import (
	"encoding/json"
	"io"
	"sync"
)

// Event is a single progress message.
type Event struct {
	Type string `json:"type"`
	Data Data   `json:"data"`
}

// Data carries the coarse-grained progress payload.
type Data struct {
	Stage   string `json:"stage"`
	Percent int    `json:"percent"`
	Message string `json:"message"`
}

// Reporter writes progress events as one JSON object per line.
// A nil Reporter is valid and discards all events.
type Reporter struct {
	mu sync.Mutex
	w  io.Writer
}

// NewReporter creates a reporter writing to w.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Report emits a single progress event. Write failures are ignored;
// progress is best-effort and must never abort a generation.
func (r *Reporter) Report(stage string, percent int, message string) {
	if r == nil || r.w == nil {
		return
	}

	b, err := json.Marshal(Event{
		Type: "progress",
		Data: Data{Stage: stage, Percent: percent, Message: message},
	})
	if err != nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.w.Write(append(b, '\n'))
}
