package client

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"

	"github.com/moorage/client/api/types/container"
)

// ContainerTopOptions holds parameters to list processes inside a
// container.
type ContainerTopOptions struct {
	// Arguments are the ps arguments to use (for example "aux").
	Arguments []string
}

// Top lists the processes running inside the container.
func (c *Container) Top(ctx context.Context, options ContainerTopOptions) (container.TopResponse, error) {
	containerID, err := trimID("container", c.id)
	if err != nil {
		return container.TopResponse{}, err
	}

	query := url.Values{}
	if len(options.Arguments) > 0 {
		query.Set("ps_args", strings.Join(options.Arguments, " "))
	}

	resp, err := c.cli.get(ctx, "/containers/"+containerID+"/top", query, nil)
	defer ensureReaderClosed(resp)
	if err != nil {
		return container.TopResponse{}, err
	}

	var response container.TopResponse
	err = json.NewDecoder(resp.Body).Decode(&response)
	return response, err
}
