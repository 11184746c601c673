package client

import (
	"context"
	"io"
)

// Export returns the contents of the container's filesystem as a tar
// archive stream. The stream is never buffered by the client, regardless
// of size; the caller must consume and close it.
func (c *Container) Export(ctx context.Context) (io.ReadCloser, error) {
	containerID, err := trimID("container", c.id)
	if err != nil {
		return nil, err
	}

	resp, err := c.cli.get(ctx, "/containers/"+containerID+"/export", nil, nil)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}
