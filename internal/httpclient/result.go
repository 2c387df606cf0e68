package httpclient

import (
	"fmt"
	"io"
	"net/http"
	"strings"
)

// maxBodyReadBytes caps how much of a response body is read into memory.
const maxBodyReadBytes = 1 << 20

// HTTPError describes a non-2xx response from the target.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Body)
}

// ReadResult drains and closes the response body and classifies the
// response. A 2xx status returns the body text; anything else returns an
// *HTTPError carrying the status code and body.
func ReadResult(resp *http.Response) (string, error) {
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyReadBytes))
	if err != nil {
		return "", fmt.Errorf("read response body: %w", err)
	}
	_, _ = io.Copy(io.Discard, resp.Body)

	body := strings.TrimSpace(string(data))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &HTTPError{StatusCode: resp.StatusCode, Body: body}
	}
	return body, nil
}
