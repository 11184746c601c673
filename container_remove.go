package client

import (
	"context"
	"net/url"
)

// ContainerRemoveOptions holds parameters to remove a container.
type ContainerRemoveOptions struct {
	// RemoveVolumes removes the anonymous volumes associated with the
	// container.
	RemoveVolumes bool

	// RemoveLinks removes the specified link, not the underlying
	// container.
	RemoveLinks bool

	// Force kills the container if it is running before removing it.
	Force bool
}

// Remove removes the container from the daemon. The handle itself stays
// valid but stale: subsequent operations on it fail with a "no such
// container" error. Dropping or reusing the handle is the caller's
// responsibility.
func (c *Container) Remove(ctx context.Context, options ContainerRemoveOptions) error {
	containerID, err := trimID("container", c.id)
	if err != nil {
		return err
	}

	query := url.Values{}
	if options.RemoveVolumes {
		query.Set("v", "1")
	}
	if options.RemoveLinks {
		query.Set("link", "1")
	}
	if options.Force {
		query.Set("force", "1")
	}

	resp, err := c.cli.delete(ctx, "/containers/"+containerID, query, nil)
	ensureReaderClosed(resp)
	return err
}
