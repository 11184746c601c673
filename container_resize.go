package client

import (
	"context"
	"net/url"
	"strconv"
)

// ResizeOptions holds the dimensions to resize a pseudo-terminal to.
type ResizeOptions struct {
	// Height is the new height of the TTY, in characters.
	Height uint

	// Width is the new width of the TTY, in characters.
	Width uint
}

// Resize changes the size of the TTY of the container's main process. The
// container must be started with a TTY for this to have any effect.
func (c *Container) Resize(ctx context.Context, options ResizeOptions) error {
	containerID, err := trimID("container", c.id)
	if err != nil {
		return err
	}
	return c.cli.resize(ctx, "/containers/"+containerID, options.Height, options.Width)
}

func (cli *Client) resize(ctx context.Context, basePath string, height, width uint) error {
	query := url.Values{}
	query.Set("h", strconv.FormatUint(uint64(height), 10))
	query.Set("w", strconv.FormatUint(uint64(width), 10))

	resp, err := cli.post(ctx, basePath+"/resize", query, nil, nil)
	ensureReaderClosed(resp)
	return err
}
