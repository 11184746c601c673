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

func TestContainerRemoveError(t *testing.T) {
	client, err := New(WithMockClient(errorMock(http.StatusInternalServerError, "Server error")))
	assert.NilError(t, err)

	err = client.Containers().Get("nothing").Remove(context.Background(), ContainerRemoveOptions{})
	assert.Check(t, is.ErrorType(err, cerrdefs.IsInternal))

	err = client.Containers().Get("").Remove(context.Background(), ContainerRemoveOptions{})
	assert.Check(t, is.ErrorType(err, cerrdefs.IsInvalidArgument))
}

func TestContainerRemoveNotFound(t *testing.T) {
	client, err := New(WithMockClient(errorMock(http.StatusNotFound, "No such container: no_such_container")))
	assert.NilError(t, err)

	err = client.Containers().Get("no_such_container").Remove(context.Background(), ContainerRemoveOptions{})
	assert.Check(t, is.ErrorType(err, cerrdefs.IsNotFound))
	assert.Check(t, is.ErrorContains(err, "No such container"))
}

func TestContainerRemove(t *testing.T) {
	const expectedURL = "/containers/container_id"
	client, err := New(WithMockClient(func(req *http.Request) (*http.Response, error) {
		if err := assertRequest(req, http.MethodDelete, expectedURL); err != nil {
			return nil, err
		}
		query := req.URL.Query()
		if v := query.Get("v"); v != "1" {
			t.Errorf(`v (anonymous volumes) not set in URL query, expected "1", got %q`, v)
		}
		if force := query.Get("force"); force != "1" {
			t.Errorf(`force not set in URL query, expected "1", got %q`, force)
		}
		if link := query.Get("link"); link != "" {
			t.Errorf(`link must not be set in URL query, got %q`, link)
		}
		return &http.Response{
			StatusCode: http.StatusNoContent,
			Body:       io.NopCloser(bytes.NewReader(nil)),
		}, nil
	}))
	assert.NilError(t, err)

	ctr := client.Containers().Get("container_id")
	err = ctr.Remove(context.Background(), ContainerRemoveOptions{
		RemoveVolumes: true,
		Force:         true,
	})
	assert.NilError(t, err)

	// The handle survives removal; it just goes stale.
	assert.Check(t, is.Equal(ctr.ID(), "container_id"))
}
