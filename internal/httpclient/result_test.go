package httpclient

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
)

func respWith(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestReadResultSuccess(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"created", 201, `{"id": 1, "author": "Alice"}`, `{"id": 1, "author": "Alice"}`},
		{"ok with trailing newline", 200, "{\"liked\": true}\n", `{"liked": true}`},
		{"empty body", 204, "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ReadResult(respWith(tc.status, tc.body))
			if err != nil {
				t.Fatalf("ReadResult() error = %v", err)
			}
			if got != tc.want {
				t.Errorf("ReadResult() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestReadResultHTTPError(t *testing.T) {
	_, err := ReadResult(respWith(400, `{"error": "author is required"}`+"\n"))
	if err == nil {
		t.Fatalf("ReadResult() error = nil, want *HTTPError")
	}

	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("ReadResult() error = %T, want *HTTPError", err)
	}
	if httpErr.StatusCode != 400 {
		t.Errorf("StatusCode = %d, want 400", httpErr.StatusCode)
	}
	if httpErr.Body != `{"error": "author is required"}` {
		t.Errorf("Body = %q, want trimmed error body", httpErr.Body)
	}
	if got, want := httpErr.Error(), `HTTP 400: {"error": "author is required"}`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestReadResultNonSuccessStatuses(t *testing.T) {
	for _, status := range []int{100, 301, 404, 500} {
		_, err := ReadResult(respWith(status, "nope"))
		var httpErr *HTTPError
		if !errors.As(err, &httpErr) {
			t.Fatalf("status %d: error = %v, want *HTTPError", status, err)
		}
		if httpErr.StatusCode != status {
			t.Errorf("status %d: StatusCode = %d", status, httpErr.StatusCode)
		}
	}
}

func TestReadResultCapsLargeBodies(t *testing.T) {
	huge := strings.Repeat("a", maxBodyReadBytes+4096)
	got, err := ReadResult(respWith(200, huge))
	if err != nil {
		t.Fatalf("ReadResult() error = %v", err)
	}
	if len(got) != maxBodyReadBytes {
		t.Errorf("body length = %d, want cap %d", len(got), maxBodyReadBytes)
	}
}
