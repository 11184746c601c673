package client

import (
	"context"
)

// Pause suspends all processes in the container with the freezer cgroup.
// Pausing a container that is already paused is a conflict the daemon
// reports as an error; the client does not mask it.
func (c *Container) Pause(ctx context.Context) error {
	containerID, err := trimID("container", c.id)
	if err != nil {
		return err
	}

	resp, err := c.cli.post(ctx, "/containers/"+containerID+"/pause", nil, nil, nil)
	ensureReaderClosed(resp)
	return err
}

// Unpause resumes all processes in the container.
func (c *Container) Unpause(ctx context.Context) error {
	containerID, err := trimID("container", c.id)
	if err != nil {
		return err
	}

	resp, err := c.cli.post(ctx, "/containers/"+containerID+"/unpause", nil, nil, nil)
	ensureReaderClosed(resp)
	return err
}
