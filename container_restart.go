package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/moorage/client/api/types/versions"
)

// ContainerRestartOptions holds parameters to restart a container.
type ContainerRestartOptions struct {
	// Signal (optional) is the signal to send to the container to
	// (gracefully) stop it before restarting.
	Signal string

	// Timeout (optional) is the timeout (in seconds) to wait for the
	// container to stop gracefully before forcibly terminating it with
	// SIGKILL. See [ContainerStopOptions.Timeout] for the accepted values.
	Timeout *int
}

// Restart stops, then starts the container. It makes the daemon wait for
// the container to be up again for a specific amount of time, given the
// timeout.
func (c *Container) Restart(ctx context.Context, options ContainerRestartOptions) error {
	containerID, err := trimID("container", c.id)
	if err != nil {
		return err
	}

	query := url.Values{}
	if options.Timeout != nil {
		query.Set("t", strconv.Itoa(*options.Timeout))
	}
	if options.Signal != "" && versions.GreaterThanOrEqualTo(c.cli.version, "1.42") {
		query.Set("signal", options.Signal)
	}

	resp, err := c.cli.post(ctx, "/containers/"+containerID+"/restart", query, nil, nil)
	ensureReaderClosed(resp)
	return err
}
