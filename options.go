package client

import (
	"context"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	cerrdefs "github.com/containerd/errdefs"
	"github.com/docker/go-connections/sockets"
	"github.com/docker/go-connections/tlsconfig"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/trace"
)

// Opt is a configuration option for [New].
type Opt func(*Client) error

// Environment variables honored by [FromEnv] and the individual
// With...FromEnv options.
const (
	// EnvOverrideHost is the name of the environment variable that can be
	// used to override the default host to connect to (DefaultDockerHost).
	EnvOverrideHost = "DOCKER_HOST"

	// EnvOverrideAPIVersion is the name of the environment variable that
	// can be used to override the API version to use.
	EnvOverrideAPIVersion = "DOCKER_API_VERSION"

	// EnvOverrideCertPath is the name of the environment variable that can
	// be used to specify the directory from which to load the TLS
	// certificates ("ca.pem", "cert.pem", "key.pem").
	EnvOverrideCertPath = "DOCKER_CERT_PATH"

	// EnvTLSVerify is the name of the environment variable that can be
	// used to enable or disable TLS certificate verification. Any
	// non-empty value enables TLS verification.
	EnvTLSVerify = "DOCKER_TLS_VERIFY"
)

// FromEnv configures the client with values from environment variables. It
// is the equivalent of using the [WithTLSClientConfigFromEnv],
// [WithHostFromEnv], and [WithVersionFromEnv] options.
func FromEnv(c *Client) error {
	ops := []Opt{
		WithTLSClientConfigFromEnv(),
		WithHostFromEnv(),
		WithVersionFromEnv(),
	}
	for _, op := range ops {
		if err := op(c); err != nil {
			return err
		}
	}
	return nil
}

// WithDialContext applies the dialer to the client transport. This can be
// used to set the Timeout and KeepAlive settings of the client, or to use a
// custom dialer (for example to reach the daemon through an SSH tunnel).
func WithDialContext(dialContext func(ctx context.Context, network, addr string) (net.Conn, error)) Opt {
	return func(c *Client) error {
		if transport, ok := c.client.Transport.(*http.Transport); ok {
			transport.DialContext = dialContext
			return nil
		}
		return cerrdefs.ErrInvalidArgument.WithMessage("cannot apply dialer to transport")
	}
}

// WithHost overrides the client host with the specified one.
func WithHost(host string) Opt {
	return func(c *Client) error {
		hostURL, err := ParseHostURL(host)
		if err != nil {
			return err
		}
		c.host = host
		c.proto = hostURL.Scheme
		c.addr = hostURL.Host
		c.basePath = hostURL.Path
		if transport, ok := c.client.Transport.(*http.Transport); ok {
			return sockets.ConfigureTransport(transport, c.proto, c.addr)
		}
		return cerrdefs.ErrInvalidArgument.WithMessage("cannot apply host to transport")
	}
}

// WithHostFromEnv overrides the client host with the host specified in the
// DOCKER_HOST ([EnvOverrideHost]) environment variable. If the environment
// variable is not set, or set to an empty value, the host is not modified.
func WithHostFromEnv() Opt {
	return func(c *Client) error {
		if host := os.Getenv(EnvOverrideHost); host != "" {
			return WithHost(host)(c)
		}
		return nil
	}
}

// WithHTTPClient overrides the client's HTTP client with the specified one.
func WithHTTPClient(client *http.Client) Opt {
	return func(c *Client) error {
		if client != nil {
			c.client = client
		}
		return nil
	}
}

// WithMockClient configures the client to use the given function to handle
// HTTP requests instead of a real transport. It is intended for testing.
func WithMockClient(doer func(*http.Request) (*http.Response, error)) Opt {
	return func(c *Client) error {
		c.client = &http.Client{
			Transport:     transportFunc(doer),
			CheckRedirect: checkRedirect,
		}
		return nil
	}
}

// transportFunc allows us to inject a mock transport for testing. We define
// it here so we can detect the tlsconfig and return nil for only this type.
type transportFunc func(*http.Request) (*http.Response, error)

func (tf transportFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return tf(req)
}

// WithTimeout configures the time limit for requests made by the HTTP
// client. Streaming operations (logs, stats, attach) are subject to the
// same limit, so a timeout is usually not what callers of those want.
func WithTimeout(timeout time.Duration) Opt {
	return func(c *Client) error {
		c.client.Timeout = timeout
		return nil
	}
}

// WithUserAgent configures the User-Agent header to use for HTTP requests.
// It overrides any User-Agent set in headers. When set to an empty string,
// the User-Agent header is removed, and no header is sent.
func WithUserAgent(ua string) Opt {
	return func(c *Client) error {
		c.userAgent = &ua
		return nil
	}
}

// WithHTTPHeaders appends custom HTTP headers to the client's default
// headers. It does not allow for built-in headers (such as "User-Agent", if
// set) to be overridden; use [WithUserAgent] for that.
func WithHTTPHeaders(headers map[string]string) Opt {
	return func(c *Client) error {
		if c.customHTTPHeaders == nil {
			c.customHTTPHeaders = make(map[string]string, len(headers))
		}
		for k, v := range headers {
			c.customHTTPHeaders[k] = v
		}
		return nil
	}
}

// WithScheme overrides the client scheme with the specified one.
func WithScheme(scheme string) Opt {
	return func(c *Client) error {
		c.scheme = scheme
		return nil
	}
}

// WithTLSClientConfig applies a TLS config to the client transport,
// loading the CA certificate, certificate and key from the given files.
func WithTLSClientConfig(cacertPath, certPath, keyPath string) Opt {
	return func(c *Client) error {
		transport, ok := c.client.Transport.(*http.Transport)
		if !ok {
			return cerrdefs.ErrInvalidArgument.WithMessage("cannot apply tls config to transport")
		}
		config, err := tlsconfig.Client(tlsconfig.Options{
			CAFile:             cacertPath,
			CertFile:           certPath,
			KeyFile:            keyPath,
			ExclusiveRootPools: true,
		})
		if err != nil {
			return err
		}
		transport.TLSClientConfig = config
		return nil
	}
}

// WithTLSClientConfigFromEnv configures the client's TLS settings with the
// settings in the DOCKER_CERT_PATH ([EnvOverrideCertPath]) and
// DOCKER_TLS_VERIFY ([EnvTLSVerify]) environment variables. If
// DOCKER_CERT_PATH is not set or empty, TLS configuration is not modified.
func WithTLSClientConfigFromEnv() Opt {
	return func(c *Client) error {
		dockerCertPath := os.Getenv(EnvOverrideCertPath)
		if dockerCertPath == "" {
			return nil
		}
		tlsc, err := tlsconfig.Client(tlsconfig.Options{
			CAFile:             filepath.Join(dockerCertPath, "ca.pem"),
			CertFile:           filepath.Join(dockerCertPath, "cert.pem"),
			KeyFile:            filepath.Join(dockerCertPath, "key.pem"),
			InsecureSkipVerify: os.Getenv(EnvTLSVerify) == "",
		})
		if err != nil {
			return err
		}

		c.client = &http.Client{
			Transport:     &http.Transport{TLSClientConfig: tlsc},
			CheckRedirect: checkRedirect,
		}
		return nil
	}
}

// WithVersion overrides the client version with the specified one. If an
// empty version is provided, the value is ignored to allow version negotiation
// ([WithAPIVersionNegotiation]).
func WithVersion(version string) Opt {
	return func(c *Client) error {
		if v := strings.TrimPrefix(version, "v"); v != "" {
			c.version = v
			c.manualOverride = true
		}
		return nil
	}
}

// WithVersionFromEnv overrides the client version with the version specified
// in the DOCKER_API_VERSION ([EnvOverrideAPIVersion]) environment variable.
// If DOCKER_API_VERSION is not set, or set to an empty value, the version
// is not modified.
func WithVersionFromEnv() Opt {
	return func(c *Client) error {
		return WithVersion(os.Getenv(EnvOverrideAPIVersion))(c)
	}
}

// WithAPIVersionNegotiation enables automatic API version negotiation for
// the client. With this option enabled, the client automatically negotiates
// the API version to use when making requests. API version negotiation is
// performed on the first request; subsequent requests do not re-negotiate.
func WithAPIVersionNegotiation() Opt {
	return func(c *Client) error {
		c.negotiateVersion = true
		return nil
	}
}

// WithTraceProvider sets the trace provider for the client. If this is not
// set, the global otel provider is used.
func WithTraceProvider(provider trace.TracerProvider) Opt {
	return func(c *Client) error {
		c.traceOpts = append(c.traceOpts, otelhttp.WithTracerProvider(provider))
		return nil
	}
}

// WithTraceOptions sets tracing span options for the client.
func WithTraceOptions(opts ...otelhttp.Option) Opt {
	return func(c *Client) error {
		c.traceOpts = append(c.traceOpts, opts...)
		return nil
	}
}
