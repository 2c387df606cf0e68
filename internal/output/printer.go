package output

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/tidwall/gjson"

	"github.com/avolkov/postvolley/internal/httpclient"
)

const maxPrintedBodyBytes = 1024

// Printer serializes result lines from concurrent calls onto a single
// writer, one complete line per call.
type Printer struct {
	mu sync.Mutex
	w  io.Writer
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Print writes the result line for one completed call. The line shape
// depends on the outcome:
//
//	LABEL {payload} → {body}            server accepted the call
//	LABEL {payload} → HTTP 400: {body}  server rejected the call
//	LABEL {payload} → Error: {message}  the call never completed
func (p *Printer) Print(label, payload, body string, err error) {
	var outcome string
	if err == nil {
		outcome = flatten(body)
	} else {
		var httpErr *httpclient.HTTPError
		if errors.As(err, &httpErr) {
			outcome = fmt.Sprintf("HTTP %d: %s", httpErr.StatusCode, flatten(httpErr.Body))
		} else {
			outcome = fmt.Sprintf("Error: %v", err)
		}
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.w, "%s %s → %s\n", label, payload, outcome)
}

// flatten renders a response body on a single line. JSON bodies are
// compacted, anything else has line breaks replaced with spaces, and
// long bodies are cut at maxPrintedBodyBytes.
func flatten(body string) string {
	body = strings.TrimSpace(body)
	if body == "" {
		return body
	}
	if gjson.Valid(body) {
		body = gjson.Get(body, "@ugly").Raw
	} else {
		body = strings.ReplaceAll(body, "\r\n", " ")
		body = strings.ReplaceAll(body, "\n", " ")
		body = strings.ReplaceAll(body, "\r", " ")
	}
	if len(body) > maxPrintedBodyBytes {
		body = body[:maxPrintedBodyBytes]
	}
	return body
}
