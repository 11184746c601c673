package client

import (
	"context"
	"net/http"
	"path"
)

// PingResult holds the daemon information reported by the ping endpoint
// ("HEAD or GET /_ping").
type PingResult struct {
	// APIVersion is the highest API version supported by the daemon.
	APIVersion string

	// OSType is the daemon's operating system ("linux" or "windows").
	OSType string

	// Experimental indicates that the daemon runs with experimental
	// features enabled.
	Experimental bool
}

// Ping pings the daemon and reports the version information found in the
// response headers.
//
// Ping does not use the versioned request path; it is also the probe used
// for API-version negotiation, which must work against daemons of any
// version.
func (cli *Client) Ping(ctx context.Context) (PingResult, error) {
	// Using cli.buildRequest instead of cli.sendRequest: sendRequest would
	// trigger version negotiation, which itself pings.
	req, err := cli.buildRequest(ctx, http.MethodHead, path.Join(cli.basePath, "/_ping"), nil, nil)
	if err != nil {
		return PingResult{}, err
	}
	resp, err := cli.doRequest(req)
	if err == nil {
		defer ensureReaderClosed(resp)
		switch resp.StatusCode {
		case http.StatusOK, http.StatusInternalServerError:
			// Server handled the request, so parse the response
			return parsePingResponse(resp)
		}
	} else if IsErrConnectionFailed(err) {
		return PingResult{}, err
	}

	// HEAD failed or returned an unexpected status; fall back to GET.
	req, err = cli.buildRequest(ctx, http.MethodGet, path.Join(cli.basePath, "/_ping"), nil, nil)
	if err != nil {
		return PingResult{}, err
	}
	resp, err = cli.doRequest(req)
	defer ensureReaderClosed(resp)
	if err != nil {
		return PingResult{}, err
	}
	return parsePingResponse(resp)
}

func parsePingResponse(resp *http.Response) (PingResult, error) {
	if resp.Header == nil {
		return PingResult{}, checkResponseErr(resp)
	}
	ping := PingResult{
		APIVersion:   resp.Header.Get("Api-Version"),
		OSType:       resp.Header.Get("Ostype"),
		Experimental: resp.Header.Get("Docker-Experimental") == "true",
	}
	return ping, checkResponseErr(resp)
}
