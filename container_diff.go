package client

import (
	"context"
	"encoding/json"

	"github.com/moorage/client/api/types/container"
)

// Diff lists the changes made to the container's filesystem since it was
// started, relative to its image.
func (c *Container) Diff(ctx context.Context) ([]container.FilesystemChange, error) {
	containerID, err := trimID("container", c.id)
	if err != nil {
		return nil, err
	}

	resp, err := c.cli.get(ctx, "/containers/"+containerID+"/changes", nil, nil)
	defer ensureReaderClosed(resp)
	if err != nil {
		return nil, err
	}

	var changes []container.FilesystemChange
	err = json.NewDecoder(resp.Body).Decode(&changes)
	return changes, err
}
