package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Request describes one call against an http.Handler.
type Request struct {
	Method  string
	Path    string
	Body    any // marshalled to JSON unless it is a string
	Token   string
	Headers map[string]string
}

// Do serves req against h and returns the recorder.
func Do(t *testing.T, h http.Handler, req Request) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	switch b := req.Body.(type) {
	case nil:
	case string:
		body = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err, "Failed to marshal request body")
		body = bytes.NewReader(data)
	}

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}
	r := httptest.NewRequest(method, req.Path, body)
	if body != nil {
		r.Header.Set("Content-Type", "application/json")
	}
	if req.Token != "" {
		r.Header.Set("Authorization", "Bearer "+req.Token)
	}
	for k, v := range req.Headers {
		r.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

// JSONBody parses the response body as a JSON object.
func JSONBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	return DecodeAs[map[string]any](t, w)
}

// DecodeAs parses the response body into T.
func DecodeAs[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var result T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result), "Failed to parse JSON response: %s", w.Body.String())
	return result
}

// AssertError checks status, code and message of an API error body.
func AssertError(t *testing.T, w *httptest.ResponseRecorder, status int, code, message string) {
	t.Helper()

	assert.Equal(t, status, w.Code, "Unexpected status code: %s", w.Body.String())
	body := JSONBody(t, w)
	assert.Equal(t, code, body["code"], "Unexpected error code")
	if message != "" {
		assert.Equal(t, message, body["message"], "Unexpected error message")
	}
}
