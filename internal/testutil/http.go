package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// Serve runs one request through the handler and returns the recorder.
func Serve(h http.Handler, method, path string, body io.Reader) *httptest.ResponseRecorder {
	return ServeRequest(h, httptest.NewRequest(method, path, body))
}

// ServeRequest runs a prebuilt request through the handler; use it when a
// test needs to control headers or the remote address.
func ServeRequest(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

// AssertStatus fails the test when the recorded status differs, quoting the
// body since handlers explain failures in JSON.
func AssertStatus(t *testing.T, rr *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rr.Code != want {
		t.Fatalf("expected status %d, got %d (body %s)", want, rr.Code, bodySnippet(rr))
	}
}

// DecodeJSON decodes the recorded body into dest, failing the test on error.
// The body is left intact for later assertions.
func DecodeJSON(t *testing.T, rr *httptest.ResponseRecorder, dest any) {
	t.Helper()
	if err := json.Unmarshal(rr.Body.Bytes(), dest); err != nil {
		t.Fatalf("decode response %s: %v", bodySnippet(rr), err)
	}
}

func bodySnippet(rr *httptest.ResponseRecorder) string {
	body := strings.TrimSpace(rr.Body.String())
	if body == "" {
		return "<empty body>"
	}
	if len(body) > 200 {
		body = body[:200] + "..."
	}
	return body
}
