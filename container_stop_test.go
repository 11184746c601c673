package client

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"testing"

	cerrdefs "github.com/containerd/errdefs"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestContainerStopError(t *testing.T) {
	client, err := New(WithMockClient(errorMock(http.StatusInternalServerError, "Server error")))
	assert.NilError(t, err)

	err = client.Containers().Get("nothing").Stop(context.Background(), ContainerStopOptions{})
	assert.Check(t, is.ErrorType(err, cerrdefs.IsInternal))

	err = client.Containers().Get("").Stop(context.Background(), ContainerStopOptions{})
	assert.Check(t, is.ErrorType(err, cerrdefs.IsInvalidArgument))
}

func TestContainerStop(t *testing.T) {
	const expectedURL = "/containers/container_id/stop"
	client, err := New(
		WithVersion("1.42"),
		WithMockClient(func(req *http.Request) (*http.Response, error) {
			if err := assertRequest(req, http.MethodPost, expectedURL); err != nil {
				return nil, err
			}
			query := req.URL.Query()
			if timeout := query.Get("t"); timeout != "100" {
				t.Errorf(`timeout not set in URL query, expected "100", got %q`, timeout)
			}
			if signal := query.Get("signal"); signal != "SIGINT" {
				t.Errorf(`signal not set in URL query, expected "SIGINT", got %q`, signal)
			}
			return &http.Response{
				StatusCode: http.StatusNoContent,
				Body:       io.NopCloser(bytes.NewReader(nil)),
			}, nil
		}),
	)
	assert.NilError(t, err)

	timeout := 100
	err = client.Containers().Get("container_id").Stop(context.Background(), ContainerStopOptions{
		Signal:  "SIGINT",
		Timeout: &timeout,
	})
	assert.NilError(t, err)
}

// TestContainerStopSignalOldDaemon verifies that the stop-signal override
// is not sent to daemons that predate it.
func TestContainerStopSignalOldDaemon(t *testing.T) {
	client, err := New(
		WithVersion("1.41"),
		WithMockClient(func(req *http.Request) (*http.Response, error) {
			if signal := req.URL.Query().Get("signal"); signal != "" {
				t.Errorf("signal must not be set on API < 1.42, got %q", signal)
			}
			return &http.Response{
				StatusCode: http.StatusNoContent,
				Body:       io.NopCloser(bytes.NewReader(nil)),
			}, nil
		}),
	)
	assert.NilError(t, err)

	err = client.Containers().Get("container_id").Stop(context.Background(), ContainerStopOptions{Signal: "SIGINT"})
	assert.NilError(t, err)
}

// TestContainerStopAlreadyStopped verifies that stopping a stopped
// container is not an error: the daemon answers 304.
func TestContainerStopAlreadyStopped(t *testing.T) {
	client, err := New(WithMockClient(func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusNotModified,
			Body:       io.NopCloser(bytes.NewReader(nil)),
		}, nil
	}))
	assert.NilError(t, err)

	err = client.Containers().Get("container_id").Stop(context.Background(), ContainerStopOptions{})
	assert.NilError(t, err)
}

func TestContainerRestart(t *testing.T) {
	const expectedURL = "/containers/container_id/restart"
	client, err := New(WithMockClient(func(req *http.Request) (*http.Response, error) {
		if err := assertRequest(req, http.MethodPost, expectedURL); err != nil {
			return nil, err
		}
		if timeout := req.URL.Query().Get("t"); timeout != "5" {
			t.Errorf(`timeout not set in URL query, expected "5", got %q`, timeout)
		}
		return &http.Response{
			StatusCode: http.StatusNoContent,
			Body:       io.NopCloser(bytes.NewReader(nil)),
		}, nil
	}))
	assert.NilError(t, err)

	timeout := 5
	err = client.Containers().Get("container_id").Restart(context.Background(), ContainerRestartOptions{Timeout: &timeout})
	assert.NilError(t, err)
}
