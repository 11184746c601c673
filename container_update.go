package client

import (
	"context"
	"encoding/json"

	"github.com/moorage/client/api/types/container"
)

// ContainerUpdateOptions holds resource configuration to update a running
// container with.
type ContainerUpdateOptions struct {
	container.UpdateConfig
}

// ContainerUpdateResult holds the result of [Container.Update]: warnings
// the daemon produced while applying the new configuration.
type ContainerUpdateResult struct {
	// Warnings encountered while updating the container.
	Warnings []string
}

// Update updates the resource limits of the (running) container.
func (c *Container) Update(ctx context.Context, options ContainerUpdateOptions) (ContainerUpdateResult, error) {
	containerID, err := trimID("container", c.id)
	if err != nil {
		return ContainerUpdateResult{}, err
	}

	resp, err := c.cli.post(ctx, "/containers/"+containerID+"/update", nil, options.UpdateConfig, nil)
	defer ensureReaderClosed(resp)
	if err != nil {
		return ContainerUpdateResult{}, err
	}

	var response container.UpdateResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return ContainerUpdateResult{}, err
	}
	return ContainerUpdateResult{Warnings: response.Warnings}, nil
}
