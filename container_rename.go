package client

import (
	"context"
	"net/url"
	"strings"

	cerrdefs "github.com/containerd/errdefs"
)

// ContainerRenameOptions holds parameters to rename a container.
type ContainerRenameOptions struct {
	// NewName is the name to assign to the container.
	NewName string
}

// Rename changes the name of the container. The handle's identifier is not
// affected: renaming never changes the container ID, and a handle that was
// constructed from the old name keeps referring to that name.
func (c *Container) Rename(ctx context.Context, options ContainerRenameOptions) error {
	containerID, err := trimID("container", c.id)
	if err != nil {
		return err
	}

	options.NewName = strings.TrimSpace(options.NewName)
	if options.NewName == "" || strings.TrimPrefix(options.NewName, "/") == "" {
		// daemons before v29.0 did not handle the canonical name ("/")
		// well; be nice and validate it here before sending.
		return cerrdefs.ErrInvalidArgument.WithMessage("new name cannot be blank")
	}

	query := url.Values{}
	query.Set("name", options.NewName)
	resp, err := c.cli.post(ctx, "/containers/"+containerID+"/rename", query, nil, nil)
	ensureReaderClosed(resp)
	return err
}
