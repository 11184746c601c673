package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	cerrdefs "github.com/containerd/errdefs"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestIsErrConnectionFailed(t *testing.T) {
	err := connectionFailed("unix:///var/run/docker.sock")
	assert.Check(t, IsErrConnectionFailed(err))
	assert.Check(t, IsErrConnectionFailed(fmt.Errorf("wrapped: %w", err)))
	assert.Check(t, !IsErrConnectionFailed(errors.New("something else")))
}

func TestConnectionFailedHost(t *testing.T) {
	assert.Check(t, is.ErrorContains(
		connectionFailed("tcp://foo.example.com:2376"),
		"cannot connect to the Docker daemon at tcp://foo.example.com:2376",
	))
	assert.Check(t, is.ErrorContains(
		connectionFailed(""),
		"cannot connect to the Docker daemon",
	))
}

func TestObjectNotFoundError(t *testing.T) {
	err := objectNotFoundError{object: "container", id: "some_id"}
	assert.Check(t, is.Error(err, "Error: No such container: some_id"))
	assert.Check(t, is.ErrorType(err, cerrdefs.IsNotFound))
}

func TestHTTPErrorFromStatusCodePreservesClassified(t *testing.T) {
	// Errors that already carry a class must not be reclassified by the
	// status code.
	underlying := fmt.Errorf("%w: oh no", cerrdefs.ErrNotFound)
	err := httpErrorFromStatusCode(underlying, http.StatusInternalServerError)
	assert.Check(t, is.ErrorType(err, cerrdefs.IsNotFound))
}

func TestHTTPErrorFromStatusCodeUnmapped(t *testing.T) {
	err := httpErrorFromStatusCode(errors.New("teapot"), http.StatusTeapot)
	assert.Check(t, is.ErrorType(err, cerrdefs.IsInvalidArgument))

	err = httpErrorFromStatusCode(errors.New("bad gateway-ish"), 599)
	assert.Check(t, is.ErrorType(err, cerrdefs.IsInternal))
}

func TestNewVersionError(t *testing.T) {
	client, err := New(WithVersion("1.42"))
	assert.NilError(t, err)

	assert.NilError(t, client.NewVersionError(context.Background(), "1.42", "some feature"))
	assert.NilError(t, client.NewVersionError(context.Background(), "1.30", "some feature"))

	err = client.NewVersionError(context.Background(), "1.43", "some feature")
	assert.Check(t, is.ErrorType(err, cerrdefs.IsInvalidArgument))
	assert.Check(t, is.ErrorContains(err, `"some feature" requires API version 1.43`))
}
