package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/moorage/client/api/types/versions"
)

// ContainerStopOptions holds parameters to stop a container.
type ContainerStopOptions struct {
	// Signal (optional) is the signal to send to the container to
	// (gracefully) stop it before forcibly terminating the container with
	// SIGKILL after the timeout expires. If not set, the container's
	// default stop-signal is used.
	Signal string

	// Timeout (optional) is the timeout (in seconds) to wait for the
	// container to stop gracefully before forcibly terminating it with
	// SIGKILL.
	//
	//   - Use nil to use the default timeout (10 seconds).
	//   - Use '-1' to wait indefinitely.
	//   - Use '0' to not wait for the container to exit gracefully, and
	//     immediately proceed to forcibly terminating it.
	//   - Other positive values are used as timeout (in seconds).
	Timeout *int
}

// Stop stops the container without removing it. In case the container
// fails to stop gracefully within the time frame specified by the timeout
// option, it is forcefully terminated (killed). Stopping an
// already-stopped container is not an error: the daemon answers with a
// benign "not modified" response that is accepted.
func (c *Container) Stop(ctx context.Context, options ContainerStopOptions) error {
	containerID, err := trimID("container", c.id)
	if err != nil {
		return err
	}

	query := url.Values{}
	if options.Timeout != nil {
		query.Set("t", strconv.Itoa(*options.Timeout))
	}
	if options.Signal != "" && versions.GreaterThanOrEqualTo(c.cli.version, "1.42") {
		// The "signal" query parameter was added in API v1.42; older
		// daemons ignore the stop-signal override.
		query.Set("signal", options.Signal)
	}

	resp, err := c.cli.post(ctx, "/containers/"+containerID+"/stop", query, nil, nil)
	ensureReaderClosed(resp)
	return err
}
