package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"strings"
	"testing"

	cerrdefs "github.com/containerd/errdefs"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

// TestSetHostHeader verifies that a dummy host-name is used for local
// connections, and the actual host-name for TCP connections.
func TestSetHostHeader(t *testing.T) {
	const testEndpoint = "/test"
	tests := []struct {
		host            string
		expectedHost    string
		expectedURLHost string
	}{
		{
			host:            "unix:///var/run/docker.sock",
			expectedHost:    DummyHost,
			expectedURLHost: "/var/run/docker.sock",
		},
		{
			host:            "npipe:////./pipe/docker_engine",
			expectedHost:    DummyHost,
			expectedURLHost: "//./pipe/docker_engine",
		},
		{
			host:            "tcp://0.0.0.0:4243",
			expectedHost:    "",
			expectedURLHost: "0.0.0.0:4243",
		},
		{
			host:            "tcp://localhost:4243",
			expectedHost:    "",
			expectedURLHost: "localhost:4243",
		},
	}

	for _, tc := range tests {
		t.Run(tc.host, func(t *testing.T) {
			// Built by hand so that the npipe case does not need a
			// Windows transport.
			hostURL, err := ParseHostURL(tc.host)
			assert.NilError(t, err)

			client := &Client{
				client: &http.Client{
					Transport: transportFunc(func(req *http.Request) (*http.Response, error) {
						if !strings.HasPrefix(req.URL.Path, testEndpoint) {
							return nil, fmt.Errorf("expected URL %q, got %q", testEndpoint, req.URL)
						}
						if req.Host != tc.expectedHost {
							return nil, fmt.Errorf("expected host %q, got %q", tc.expectedHost, req.Host)
						}
						if req.URL.Host != tc.expectedURLHost {
							return nil, fmt.Errorf("expected URL host %q, got %q", tc.expectedURLHost, req.URL.Host)
						}
						return &http.Response{
							StatusCode: http.StatusOK,
							Body:       io.NopCloser(bytes.NewReader(nil)),
						}, nil
					}),
				},
				proto:    hostURL.Scheme,
				addr:     hostURL.Host,
				basePath: hostURL.Path,
			}

			resp, err := client.sendRequest(context.Background(), http.MethodGet, testEndpoint, nil, nil, nil)
			ensureReaderClosed(resp)
			assert.NilError(t, err)
		})
	}
}

// TestPlainTextError covers daemons and proxies that report errors in
// plain text instead of the JSON error envelope.
func TestPlainTextError(t *testing.T) {
	client, err := New(WithMockClient(plainTextErrorMock(http.StatusInternalServerError, "Server error")))
	assert.NilError(t, err)

	_, err = client.Containers().List(context.Background(), ContainerListOptions{})
	assert.Check(t, is.ErrorType(err, cerrdefs.IsInternal))
	assert.Check(t, is.ErrorContains(err, "Server error"))
}

// TestInfiniteError verifies that an error body of unbounded size does
// not make the client buffer without limit.
func TestInfiniteError(t *testing.T) {
	infinitR := rand.New(rand.NewSource(42))
	client, err := New(WithMockClient(func(req *http.Request) (*http.Response, error) {
		resp := &http.Response{StatusCode: http.StatusInternalServerError}
		resp.Header = http.Header{}
		resp.Body = io.NopCloser(infinitR)
		return resp, nil
	}))
	assert.NilError(t, err)

	_, err = client.Ping(context.Background())
	assert.Check(t, is.ErrorContains(err, "request returned Internal Server Error"))
}

func TestResponseErrStatuses(t *testing.T) {
	tests := []struct {
		status    int
		errorType func(error) bool
	}{
		{http.StatusBadRequest, cerrdefs.IsInvalidArgument},
		{http.StatusUnauthorized, cerrdefs.IsUnauthorized},
		{http.StatusForbidden, cerrdefs.IsPermissionDenied},
		{http.StatusNotFound, cerrdefs.IsNotFound},
		{http.StatusConflict, cerrdefs.IsConflict},
		{http.StatusInternalServerError, cerrdefs.IsInternal},
		{http.StatusServiceUnavailable, cerrdefs.IsUnavailable},
	}

	for _, tc := range tests {
		t.Run(http.StatusText(tc.status), func(t *testing.T) {
			client, err := New(WithMockClient(errorMock(tc.status, "some error")))
			assert.NilError(t, err)

			_, err = client.Containers().Get("container_id").Inspect(context.Background(), ContainerInspectOptions{})
			assert.Check(t, is.ErrorType(err, tc.errorType))
			assert.Check(t, is.ErrorContains(err, "some error"))
		})
	}
}
