package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

// TestPingFail tests that when a server sends a non-successful response that we
// can still grab API details, when set.
// Some of this is just exercising the code paths to make sure there are no
// panics.
func TestPingFail(t *testing.T) {
	var withHeader bool
	client, err := New(WithMockClient(func(req *http.Request) (*http.Response, error) {
		resp := &http.Response{StatusCode: http.StatusInternalServerError}
		if withHeader {
			resp.Header = http.Header{}
			resp.Header.Set("Api-Version", "awesome")
			resp.Header.Set("Docker-Experimental", "true")
		}
		resp.Body = io.NopCloser(strings.NewReader("some error with the server"))
		return resp, nil
	}))
	assert.NilError(t, err)

	ping, err := client.Ping(context.Background())
	assert.Check(t, is.ErrorContains(err, "some error with the server"))
	assert.Check(t, is.Equal(ping.APIVersion, ""))
	assert.Check(t, is.Equal(ping.Experimental, false))

	withHeader = true
	ping2, err := client.Ping(context.Background())
	assert.Check(t, is.ErrorContains(err, "some error with the server"))
	assert.Check(t, is.Equal(ping2.APIVersion, "awesome"))
	assert.Check(t, is.Equal(ping2.Experimental, true))
}

// TestPingWithError tests the case where there is a protocol error in the
// ping; the client should not try a GET fallback against a broken
// connection.
func TestPingWithError(t *testing.T) {
	var requests int
	client, err := New(WithMockClient(func(req *http.Request) (*http.Response, error) {
		requests++
		return nil, errors.New("some connection error")
	}))
	assert.NilError(t, err)

	ping, err := client.Ping(context.Background())
	assert.Check(t, is.ErrorContains(err, "some connection error"))
	assert.Check(t, is.Equal(ping.APIVersion, ""))
	assert.Check(t, is.Equal(requests, 1))
}

func TestPingSuccess(t *testing.T) {
	client, err := New(WithMockClient(func(req *http.Request) (*http.Response, error) {
		resp := &http.Response{StatusCode: http.StatusOK}
		resp.Header = http.Header{}
		resp.Header.Set("Api-Version", "1.42")
		resp.Header.Set("Ostype", "linux")
		resp.Body = io.NopCloser(strings.NewReader("OK"))
		return resp, nil
	}))
	assert.NilError(t, err)

	ping, err := client.Ping(context.Background())
	assert.NilError(t, err)
	assert.Check(t, is.Equal(ping.APIVersion, "1.42"))
	assert.Check(t, is.Equal(ping.OSType, "linux"))
}
