package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/moorage/client/api/types/common"
)

// errorMock returns a request handler that responds with the given status
// code and a JSON-encoded error message, the way the daemon reports
// errors.
func errorMock(statusCode int, message string) func(req *http.Request) (*http.Response, error) {
	return func(req *http.Request) (*http.Response, error) {
		header := http.Header{}
		header.Set("Content-Type", "application/json")

		body, err := json.Marshal(&common.ErrorResponse{
			Message: message,
		})
		if err != nil {
			return nil, err
		}

		return &http.Response{
			StatusCode: statusCode,
			Body:       io.NopCloser(bytes.NewReader(body)),
			Header:     header,
		}, nil
	}
}

// plainTextErrorMock returns a request handler that responds with the
// given status code and a plain-text body, as returned by proxies or
// misbehaving daemons.
func plainTextErrorMock(statusCode int, message string) func(req *http.Request) (*http.Response, error) {
	return func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: statusCode,
			Body:       io.NopCloser(strings.NewReader(message)),
		}, nil
	}
}

// assertRequest checks that the request uses the given method and that
// its path starts with the given endpoint path. The endpoint is given
// unversioned; the API-version segment the client prepends ("/v1.xx") is
// stripped before comparing.
func assertRequest(req *http.Request, method string, endpoint string) error {
	if req.Method != method {
		return fmt.Errorf("expected %s method, got %s", method, req.Method)
	}
	reqPath := req.URL.Path
	if rest, ok := strings.CutPrefix(reqPath, "/v"); ok {
		if _, p, ok := strings.Cut(rest, "/"); ok {
			reqPath = "/" + p
		}
	}
	if !strings.HasPrefix(reqPath, endpoint) {
		return fmt.Errorf("expected URL %q, got %q", endpoint, reqPath)
	}
	return nil
}

// jsonResponse marshals out and returns it as a 200 response body.
func jsonResponse(out any) (*http.Response, error) {
	body, err := json.Marshal(out)
	if err != nil {
		return nil, err
	}
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(bytes.NewReader(body)),
	}, nil
}
