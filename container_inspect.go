package client

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/moorage/client/api/types/container"
)

// ContainerInspectOptions holds parameters to inspect a container.
type ContainerInspectOptions struct {
	// Size requests the daemon to compute the disk usage of the container
	// ("SizeRw" and "SizeRootFs" in the response).
	Size bool
}

// Inspect fetches the current representation of the container from the
// daemon. On success the handle's cached state (see [Container.State]) is
// replaced with the response.
func (c *Container) Inspect(ctx context.Context, options ContainerInspectOptions) (container.InspectResponse, error) {
	containerID, err := trimID("container", c.id)
	if err != nil {
		return container.InspectResponse{}, err
	}

	query := url.Values{}
	if options.Size {
		query.Set("size", "1")
	}

	resp, err := c.cli.get(ctx, "/containers/"+containerID+"/json", query, nil)
	defer ensureReaderClosed(resp)
	if err != nil {
		return container.InspectResponse{}, err
	}

	var response container.InspectResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return container.InspectResponse{}, err
	}
	c.state.Store(&response)
	return response, nil
}
