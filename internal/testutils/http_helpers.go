package testutils

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/phrazzld/task-api/internal/api/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// CreateTestServer starts an httptest server for handler and closes it when
// the test completes.
func CreateTestServer(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

// RequestOption configures an outgoing test request.
type RequestOption func(*http.Request)

// WithHeader sets a request header.
func WithHeader(key, value string) RequestOption {
	return func(req *http.Request) {
		req.Header.Set(key, value)
	}
}

// ExecuteRequest sends method path with an optional raw body to server.
// JSON content type is set whenever a body is given. The response body is
// closed when the test completes.
func ExecuteRequest(
	t *testing.T,
	server *httptest.Server,
	method, path, body string,
	opts ...RequestOption,
) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req, err := http.NewRequest(method, server.URL+path, reader)
	require.NoError(t, err, "failed to build request")
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, opt := range opts {
		opt(req)
	}

	resp, err := server.Client().Do(req)
	require.NoError(t, err, "request %s %s failed", method, path)
	t.Cleanup(func() {
		if err := resp.Body.Close(); err != nil {
			t.Logf("failed to close response body: %v", err)
		}
	})
	return resp
}

// DecodeJSONResponse asserts the status code and decodes the JSON body into v.
func DecodeJSONResponse(t *testing.T, resp *http.Response, expectedStatus int, v interface{}) {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")
	require.Equal(t, expectedStatus, resp.StatusCode, "unexpected status, body: %s", string(body))
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	require.NoError(t, json.Unmarshal(body, v), "failed to decode body: %s", string(body))
}

// AssertErrorResponse asserts the status code and the exact error message of
// an error envelope.
func AssertErrorResponse(t *testing.T, resp *http.Response, expectedStatus int, expectedMessage string) {
	t.Helper()

	var errResp shared.ErrorResponse
	DecodeJSONResponse(t, resp, expectedStatus, &errResp)
	assert.Equal(t, expectedMessage, errResp.Error)
}
