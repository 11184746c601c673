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

func TestContainerStartError(t *testing.T) {
	client, err := New(WithMockClient(errorMock(http.StatusInternalServerError, "Server error")))
	assert.NilError(t, err)

	err = client.Containers().Get("nothing").Start(context.Background(), ContainerStartOptions{})
	assert.Check(t, is.ErrorType(err, cerrdefs.IsInternal))

	err = client.Containers().Get("").Start(context.Background(), ContainerStartOptions{})
	assert.Check(t, is.ErrorType(err, cerrdefs.IsInvalidArgument))
}

func TestContainerStart(t *testing.T) {
	const expectedURL = "/containers/container_id/start"
	client, err := New(WithMockClient(func(req *http.Request) (*http.Response, error) {
		if err := assertRequest(req, http.MethodPost, expectedURL); err != nil {
			return nil, err
		}
		return &http.Response{
			StatusCode: http.StatusNoContent,
			Body:       io.NopCloser(bytes.NewReader(nil)),
		}, nil
	}))
	assert.NilError(t, err)

	err = client.Containers().Get("container_id").Start(context.Background(), ContainerStartOptions{})
	assert.NilError(t, err)
}

// TestContainerStartAlreadyStarted verifies that starting a running
// container is not an error: the daemon answers 304.
func TestContainerStartAlreadyStarted(t *testing.T) {
	client, err := New(WithMockClient(func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusNotModified,
			Body:       io.NopCloser(bytes.NewReader(nil)),
		}, nil
	}))
	assert.NilError(t, err)

	err = client.Containers().Get("container_id").Start(context.Background(), ContainerStartOptions{})
	assert.NilError(t, err)
}
