package client

import (
	"context"
	"errors"
	"fmt"

	cerrdefs "github.com/containerd/errdefs"
	"github.com/containerd/errdefs/pkg/errhttp"

	"github.com/moorage/client/api/types/versions"
)

// errRedirect is returned by [checkRedirect] when a non-GET request would
// be redirected; redirecting such a request would change its semantics.
var errRedirect = errors.New("unexpected redirect in response")

// errConnectionFailed is the non-exported error type returned when
// connecting to the daemon fails at the transport level (socket, TLS, DNS).
// Use [IsErrConnectionFailed] to detect it.
type errConnectionFailed struct {
	error
}

func (e errConnectionFailed) Error() string {
	return e.error.Error()
}

func (e errConnectionFailed) Unwrap() error {
	return e.error
}

// connectionFailed returns an error with host in the error message when
// connection to docker daemon failed.
func connectionFailed(host string) error {
	var err error
	if host == "" {
		err = errors.New("cannot connect to the Docker daemon; is the docker daemon running?")
	} else {
		err = fmt.Errorf("cannot connect to the Docker daemon at %s; is the docker daemon running?", host)
	}
	return errConnectionFailed{error: err}
}

// IsErrConnectionFailed returns true if the error is caused by a failure
// to connect to the daemon, rather than by an error response from it.
func IsErrConnectionFailed(err error) bool {
	var connErr errConnectionFailed
	return errors.As(err, &connErr)
}

// objectNotFoundError is returned when the client did not even attempt a
// request because the object identifier was known to reference nothing
// (empty / missing value).
type objectNotFoundError struct {
	object string
	id     string
}

func (e objectNotFoundError) NotFound() {}

func (e objectNotFoundError) Error() string {
	return fmt.Sprintf("Error: No such %s: %s", e.object, e.id)
}

// NewVersionError returns an error if the APIVersion required is less than
// the current supported version. It performs API-version negotiation if the
// client is configured to do so, which makes it a blocking call.
func (cli *Client) NewVersionError(ctx context.Context, apiRequired, feature string) error {
	if err := cli.checkVersion(ctx); err != nil {
		return err
	}
	if cli.version != "" && versions.LessThan(cli.version, apiRequired) {
		return fmt.Errorf("%w: %q requires API version %s, but the Docker daemon API version is %s", cerrdefs.ErrInvalidArgument, feature, apiRequired, cli.version)
	}
	return nil
}

// httpErrorFromStatusCode maps an error produced from a daemon response to
// a typed error class based on the HTTP status code of that response.
//
// This is the single, shared "status-code table": every endpoint funnels
// through it, so the interpretation of a given status can never drift
// between call sites. Status codes without a known class are deliberately
// kept as unclassified errors rather than coerced into a success.
func httpErrorFromStatusCode(err error, statusCode int) error {
	if err == nil {
		return nil
	}
	// The error may already carry a class, for example when produced
	// client-side (objectNotFoundError, invalid-parameter errors). Don't
	// re-wrap those.
	switch {
	case cerrdefs.IsNotFound(err),
		cerrdefs.IsInvalidArgument(err),
		cerrdefs.IsConflict(err),
		cerrdefs.IsCanceled(err),
		cerrdefs.IsDeadlineExceeded(err),
		cerrdefs.IsDataLoss(err),
		cerrdefs.IsUnauthorized(err),
		cerrdefs.IsPermissionDenied(err),
		cerrdefs.IsInternal(err),
		cerrdefs.IsUnavailable(err),
		cerrdefs.IsNotImplemented(err):
		return err
	}

	// errhttp reports unmapped statuses as an unknown-class error, not as
	// the ErrUnknown sentinel.
	if class := errhttp.ToNative(statusCode); !cerrdefs.IsUnknown(class) {
		return fmt.Errorf("%w: %w", class, err)
	}

	// errhttp has no mapping for this status code. Keep the 4xx/5xx split
	// so that callers can at least tell a client-side mistake from a
	// server-side failure.
	switch {
	case statusCode >= 400 && statusCode < 500:
		return fmt.Errorf("%w: %w", cerrdefs.ErrInvalidArgument, err)
	case statusCode >= 500:
		return fmt.Errorf("%w: %w", cerrdefs.ErrInternal, err)
	default:
		return fmt.Errorf("%w: %w", cerrdefs.ErrUnknown, err)
	}
}
