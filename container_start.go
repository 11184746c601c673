package client

import (
	"context"
)

// ContainerStartOptions holds parameters to start a container.
type ContainerStartOptions struct {
	// Currently no options are supported.
}

// Start starts the container's main process. Starting an already-running
// container is not an error: the daemon answers with a benign "not
// modified" response that is accepted.
func (c *Container) Start(ctx context.Context, _ ContainerStartOptions) error {
	containerID, err := trimID("container", c.id)
	if err != nil {
		return err
	}

	resp, err := c.cli.post(ctx, "/containers/"+containerID+"/start", nil, nil, nil)
	ensureReaderClosed(resp)
	return err
}
