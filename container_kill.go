package client

import (
	"context"
	"net/url"
)

// ContainerKillOptions holds parameters to kill a container.
type ContainerKillOptions struct {
	// Signal is the signal to send to the container ("SIGKILL" when
	// empty). It can be specified by name or number.
	Signal string
}

// Kill terminates the container's main process, without a graceful
// shutdown period.
func (c *Container) Kill(ctx context.Context, options ContainerKillOptions) error {
	containerID, err := trimID("container", c.id)
	if err != nil {
		return err
	}

	query := url.Values{}
	if options.Signal != "" {
		query.Set("signal", options.Signal)
	}

	resp, err := c.cli.post(ctx, "/containers/"+containerID+"/kill", query, nil, nil)
	ensureReaderClosed(resp)
	return err
}
