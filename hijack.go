package client

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// HijackedResponse holds the connection of a hijacked request: a raw
// bidirectional stream after an HTTP/1.1 connection upgrade, as used for
// attach and interactive exec.
//
// The caller owns the connection: output must be consumed from Reader, and
// Close must be called to release it. The client never closes or times out
// a hijacked connection on its own.
type HijackedResponse struct {
	mediaType string
	Conn      net.Conn
	Reader    *bufio.Reader
}

// NewHijackedResponse initializes a [HijackedResponse] type.
func NewHijackedResponse(conn net.Conn, mediaType string) HijackedResponse {
	return HijackedResponse{Conn: conn, Reader: bufio.NewReader(conn), mediaType: mediaType}
}

// MediaType returns the Content-Type header of the response, and whether it
// was set. Daemons that multiplex stdout and stderr onto the stream
// advertise "application/vnd.docker.multiplexed-stream"; a raw stream (TTY
// mode) is "application/vnd.docker.raw-stream".
func (h *HijackedResponse) MediaType() (string, bool) {
	if h.mediaType == "" {
		return "", false
	}
	return h.mediaType, true
}

// Close closes the hijacked connection, terminating the stream in both
// directions.
func (h *HijackedResponse) Close() {
	_ = h.Conn.Close()
}

// CloseWriter is an interface that implements structs that close input
// streams to prevent from writing.
type CloseWriter interface {
	CloseWrite() error
}

// CloseWrite closes the write side of the hijacked connection, signaling
// end of input to the remote process while keeping the read side open.
func (h *HijackedResponse) CloseWrite() error {
	if conn, ok := h.Conn.(CloseWriter); ok {
		return conn.CloseWrite()
	}
	return nil
}

// postHijacked sends a POST request and performs a connection upgrade,
// returning the raw connection for bidirectional I/O.
func (cli *Client) postHijacked(ctx context.Context, path string, query url.Values, body any, headers http.Header) (HijackedResponse, error) {
	jsonBody, headers, err := prepareJSONRequest(body, headers)
	if err != nil {
		return HijackedResponse{}, err
	}
	req, err := cli.buildRequest(ctx, http.MethodPost, cli.getAPIPath(ctx, path, query), jsonBody, headers)
	if err != nil {
		return HijackedResponse{}, err
	}
	conn, mediaType, err := setupHijackConn(ctx, cli, req, "tcp")
	if err != nil {
		return HijackedResponse{}, err
	}
	return NewHijackedResponse(conn, mediaType), nil
}

func setupHijackConn(ctx context.Context, cli *Client, req *http.Request, proto string) (_ net.Conn, _ string, retErr error) {
	req.Header.Set("Connection", "Upgrade")
	req.Header.Set("Upgrade", proto)

	conn, err := cli.dialer()(ctx)
	if err != nil {
		return nil, "", errors.Wrap(err, "cannot connect to the Docker daemon. Is 'docker daemon' running on this host?")
	}
	defer func() {
		if retErr != nil {
			_ = conn.Close()
		}
	}()

	// A hijacked connection can see long periods of inactivity (a long
	// running command with no output), which in certain network setups
	// kills idle connections, leaving the client in an unknown state.
	// TCP keep-alive on the socket prevents that unless the connection
	// truly is broken.
	if tcpConn, ok := conn.(*net.TCPConn); ok {
		_ = tcpConn.SetKeepAlive(true)
		_ = tcpConn.SetKeepAlivePeriod(30 * time.Second)
	}

	hc := &hijackedConn{conn, bufio.NewReader(conn)}

	// The daemon hijacks the connection out of the HTTP server after
	// responding, so a "connection closed" on the response body is
	// expected from here on.
	resp, err := otelhttp.NewTransport(hc, cli.traceOpts...).RoundTrip(req)
	if err != nil {
		return nil, "", err
	}
	if resp.StatusCode != http.StatusSwitchingProtocols {
		// Read the daemon's reason before closing the body, or it is lost.
		err := checkResponseErr(resp)
		_ = resp.Body.Close()
		if err != nil {
			return nil, "", err
		}
		return nil, "", fmt.Errorf("unable to upgrade to %s, received %d", proto, resp.StatusCode)
	}

	var retConn net.Conn
	if hc.r.Buffered() > 0 {
		// If there is buffered content, the reader must stay in front of
		// the connection. Preserve CloseWrite when the underlying
		// connection implements it.
		if _, ok := hc.Conn.(CloseWriter); ok {
			retConn = &hijackedConnCloseWriter{hc}
		} else {
			retConn = hc
		}
	} else {
		hc.r.Reset(nil)
		retConn = hc.Conn
	}

	return retConn, resp.Header.Get("Content-Type"), nil
}

// hijackedConn wraps a net.Conn and is returned by setupHijackConn in the
// case that a) there was already buffered data in the http layer when
// Hijack() was called, and b) the underlying net.Conn does *not* implement
// CloseWrite(). hijackedConn does not implement CloseWrite() either.
type hijackedConn struct {
	net.Conn
	r *bufio.Reader
}

func (c *hijackedConn) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := req.Write(c.Conn); err != nil {
		return nil, err
	}
	return http.ReadResponse(c.r, req)
}

func (c *hijackedConn) Read(b []byte) (int, error) {
	return c.r.Read(b)
}

// hijackedConnCloseWriter is a hijackedConn which additionally implements
// CloseWrite(). It is returned by setupHijackConn in the case that a) there
// was already buffered data in the http layer when Hijack() was called, and
// b) the underlying net.Conn *does* implement CloseWrite().
type hijackedConnCloseWriter struct {
	*hijackedConn
}

var _ CloseWriter = &hijackedConnCloseWriter{}

func (c *hijackedConnCloseWriter) CloseWrite() error {
	conn := c.Conn.(CloseWriter)
	return conn.CloseWrite()
}
