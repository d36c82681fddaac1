// [FILE] internal/util/sse/sse.go
// Helper util untuk menulis SSE (dipakai stream sweep skin).

package sse

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

type Flusher interface {
	Flush()
}

type noFlush struct{}

func (noFlush) Flush() {}

// Prepare memasang header SSE + no-cache. Writer tanpa http.Flusher
// mendapat Flusher no-op.
func Prepare(w http.ResponseWriter) Flusher {
	h := w.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no") // Nginx: disable buffering
	if f, ok := w.(http.Flusher); ok {
		return f
	}
	return noFlush{}
}

// WriteEvent menulis satu event; string dikirim apa adanya, selain itu JSON.
func WriteEvent(w io.Writer, flusher Flusher, event string, v any) error {
	var payload string
	switch data := v.(type) {
	case string:
		payload = data
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return err
		}
		payload = string(b)
	}
	if event != "" {
		if _, err := fmt.Fprintf(w, "event: %s\n", event); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "data: %s\n\n", payload); err != nil {
		return err
	}
	if flusher != nil {
		flusher.Flush()
	}
	return nil
}
