// Package client is a client library for the Docker Engine API.
//
// A [Client] is cheap to construct and safe for concurrent use. It talks to
// a single daemon endpoint (unix socket, named pipe, or tcp with optional
// TLS) and exposes the remote objects as handles: [ContainerService] and
// [Container], [Exec], [ImageService] and [Image], [ServiceService] and
// [Service], and [ContainerFS]. A handle wraps the remote identifier and
// performs one HTTP round-trip per operation; it holds no connection state
// of its own.
//
// Construct a client with [New]:
//
//	cli, err := client.New(client.FromEnv, client.WithAPIVersionNegotiation())
//	if err != nil {
//		// ...
//	}
//	defer cli.Close()
//
//	ctr, err := cli.Containers().Create(ctx, client.ContainerCreateOptions{
//		Config: &container.Config{Image: "alpine"},
//	})
package client

import (
	"context"
	"crypto/tls"
	"net"
	"net/http"
	"net/url"
	"path"
	"strings"
	"sync"
	"sync/atomic"

	cerrdefs "github.com/containerd/errdefs"
	"github.com/docker/go-connections/sockets"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// DummyHost is a hostname used for local communication.
//
// It acts as a valid formatted hostname for local connections (such as
// "unix://" or "npipe://") which do not require a hostname. It should never
// be resolved, but uses the special-purpose ".localhost" TLD (as defined
// in [RFC 2606, Section 2] and [RFC 6761, Section 6.3]).
//
// [RFC 2606, Section 2]: https://www.rfc-editor.org/rfc/rfc2606.html#section-2
// [RFC 6761, Section 6.3]: https://www.rfc-editor.org/rfc/rfc6761#section-6.3
const DummyHost = "api.moby.localhost"

const (
	// MaxAPIVersion is the highest REST API version this client supports.
	// It is used when API-version negotiation is not enabled, or as the
	// upper bound when negotiating.
	MaxAPIVersion = "1.49"

	// fallbackAPIVersion is the version the client falls back to when
	// negotiating with a daemon that does not report an API version.
	fallbackAPIVersion = "1.24"
)

// Client is the API client that performs all operations against a Docker
// daemon. It is safe for concurrent use by multiple goroutines.
type Client struct {
	// scheme sets the scheme for the client ("http" or "https").
	scheme string
	// host holds the server address to connect to, as given by the caller.
	host string
	// proto holds the client protocol: "tcp", "unix", or "npipe".
	proto string
	// addr holds the client address (socket path for unix/npipe).
	addr string
	// basePath holds the path to prepend to the requests.
	basePath string
	// client used to send and receive http requests.
	client *http.Client
	// version of the server to talk to.
	version string
	// userAgent is the User-Agent header to use for requests. It is a
	// pointer to distinguish between "not set" and "empty value" (which
	// removes the header entirely).
	userAgent *string
	// custom HTTP headers configured by users.
	customHTTPHeaders map[string]string
	// manualOverride is set to true when the api version is set by users.
	manualOverride bool
	// negotiateVersion indicates if the client should automatically
	// negotiate the API version to use when making requests. Negotiation
	// is performed lazily, on the first request that needs the version.
	negotiateVersion bool
	// negotiated indicates that API version negotiation took place.
	negotiated atomic.Bool
	// negotiateLock single-flights the version negotiation process.
	negotiateLock sync.Mutex

	// baseTransport is a snapshot of the http transport before otel
	// instrumentation is layered on top. The hijack path dials through it
	// directly, bypassing the http client.
	baseTransport *http.Transport

	traceOpts []otelhttp.Option
}

// New returns a client configured by the given options. By default it
// connects to the daemon at [DefaultDockerHost] using [MaxAPIVersion].
//
// Most callers want at least [FromEnv] to honor the conventional DOCKER_HOST
// and related environment variables, and [WithAPIVersionNegotiation] to
// interoperate with older daemons.
func New(ops ...Opt) (*Client, error) {
	hostURL, err := ParseHostURL(DefaultDockerHost)
	if err != nil {
		return nil, err
	}

	transport := &http.Transport{}
	if err := sockets.ConfigureTransport(transport, hostURL.Scheme, hostURL.Host); err != nil {
		return nil, err
	}

	c := &Client{
		host:     DefaultDockerHost,
		proto:    hostURL.Scheme,
		addr:     hostURL.Host,
		basePath: hostURL.Path,
		version:  MaxAPIVersion,
		client: &http.Client{
			Transport:     transport,
			CheckRedirect: checkRedirect,
		},
		traceOpts: []otelhttp.Option{
			otelhttp.WithSpanNameFormatter(func(_ string, req *http.Request) string {
				return req.Method + " " + req.URL.Path
			}),
		},
	}

	for _, op := range ops {
		if err := op(c); err != nil {
			return nil, err
		}
	}

	if tr, ok := c.client.Transport.(*http.Transport); ok {
		// Keep the base transport around before wrapping it in tracing
		// middleware; the hijack path needs its dialer and TLS config.
		c.baseTransport = tr.Clone()
	}

	if c.scheme == "" {
		if c.tlsConfig() != nil {
			c.scheme = "https"
		} else {
			c.scheme = "http"
		}
	}

	c.client.Transport = otelhttp.NewTransport(c.client.Transport, c.traceOpts...)

	return c, nil
}

func (cli *Client) tlsConfig() *tls.Config {
	if cli.baseTransport == nil {
		return nil
	}
	return cli.baseTransport.TLSClientConfig
}

// checkRedirect specifies the policy for dealing with redirect responses.
// The default handling would turn a redirected POST into a GET, silently
// changing the semantics of state-changing endpoints, so anything other
// than a GET is refused.
func checkRedirect(_ *http.Request, via []*http.Request) error {
	if via[0].Method == http.MethodGet {
		return http.ErrUseLastResponse
	}
	return errRedirect
}

// Close the transport used by the client.
func (cli *Client) Close() error {
	if t, ok := cli.client.Transport.(interface{ CloseIdleConnections() }); ok {
		t.CloseIdleConnections()
	}
	return nil
}

// DaemonHost returns the host address used by the client.
func (cli *Client) DaemonHost() string {
	return cli.host
}

// HTTPClient returns a copy of the HTTP client bound to the server.
func (cli *Client) HTTPClient() *http.Client {
	c := *cli.client
	return &c
}

// ClientVersion returns the API version used by this client.
func (cli *Client) ClientVersion() string {
	return cli.version
}

// getAPIPath returns the versioned request path to call the API. It appends
// the query parameters to the path if they are not empty.
func (cli *Client) getAPIPath(ctx context.Context, p string, query url.Values) string {
	var apiPath string
	_ = cli.checkVersion(ctx)
	if v := strings.TrimPrefix(cli.version, "v"); v != "" {
		apiPath = path.Join(cli.basePath, "/v"+v, p)
	} else {
		apiPath = path.Join(cli.basePath, p)
	}
	return (&url.URL{Path: apiPath, RawQuery: query.Encode()}).String()
}

// ParseHostURL parses a url string, validates the string is a host url, and
// returns the parsed URL.
func ParseHostURL(host string) (*url.URL, error) {
	proto, addr, ok := strings.Cut(host, "://")
	if !ok || addr == "" {
		return nil, cerrdefs.ErrInvalidArgument.WithMessage("unable to parse docker host `" + host + "`")
	}

	var basePath string
	if proto == "tcp" {
		parsed, err := url.Parse("tcp://" + addr)
		if err != nil {
			return nil, err
		}
		addr = parsed.Host
		basePath = parsed.Path
	}
	return &url.URL{
		Scheme: proto,
		Host:   addr,
		Path:   basePath,
	}, nil
}

// dialerFromTransport returns the DialContext of the base transport,
// wrapping it in a TLS handshake when the transport is TLS-configured.
func (cli *Client) dialerFromTransport() func(context.Context, string, string) (net.Conn, error) {
	if cli.baseTransport == nil || cli.baseTransport.DialContext == nil {
		return nil
	}

	if cli.baseTransport.TLSClientConfig != nil {
		tlsConfig := cli.baseTransport.TLSClientConfig
		return func(ctx context.Context, network, addr string) (net.Conn, error) {
			conn, err := cli.baseTransport.DialContext(ctx, network, addr)
			if err != nil {
				return nil, err
			}
			return tls.Client(conn, tlsConfig), nil
		}
	}

	return cli.baseTransport.DialContext
}

// dialer returns a dialer for a raw stream connection, with an HTTP/1.1
// connection upgrade in mind (for attach and interactive exec).
func (cli *Client) dialer() func(context.Context) (net.Conn, error) {
	return func(ctx context.Context) (net.Conn, error) {
		if dialFn := cli.dialerFromTransport(); dialFn != nil {
			return dialFn(ctx, cli.proto, cli.addr)
		}
		switch cli.proto {
		case "unix":
			return net.Dial("unix", cli.addr)
		case "npipe":
			return dialPipeContext(ctx, cli.addr)
		default:
			if tlsConfig := cli.tlsConfig(); tlsConfig != nil {
				return tls.Dial("tcp", cli.addr, tlsConfig)
			}
			return net.Dial("tcp", cli.addr)
		}
	}
}

// Containers returns the manager for container resources.
func (cli *Client) Containers() *ContainerService {
	return &ContainerService{cli: cli}
}

// Images returns the manager for image resources.
func (cli *Client) Images() *ImageService {
	return &ImageService{cli: cli}
}

// Services returns the manager for swarm service resources.
func (cli *Client) Services() *ServiceService {
	return &ServiceService{cli: cli}
}
