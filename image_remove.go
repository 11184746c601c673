package client

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/moorage/client/api/types/image"
)

// ImageRemoveOptions holds parameters to remove an image.
type ImageRemoveOptions struct {
	// Force removes the image even if it is tagged in multiple
	// repositories or in use by stopped containers.
	Force bool

	// PruneChildren removes untagged parent layers that become dangling.
	PruneChildren bool
}

// Remove removes the image (or, for a tagged reference, the tag) from the
// daemon, along with any untagged parents when
// [ImageRemoveOptions.PruneChildren] is set. It returns the deleted and
// untagged items in the order reported by the daemon.
//
// Removing an image that is in use by a running container fails with a
// conflict error unless forced.
func (img *Image) Remove(ctx context.Context, options ImageRemoveOptions) ([]image.DeleteResponse, error) {
	imageRef, err := trimID("image", img.ref)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	if options.Force {
		query.Set("force", "1")
	}
	if !options.PruneChildren {
		query.Set("noprune", "1")
	}

	resp, err := img.cli.delete(ctx, "/images/"+imageRef, query, nil)
	defer ensureReaderClosed(resp)
	if err != nil {
		return nil, err
	}

	var dels []image.DeleteResponse
	if err := json.NewDecoder(resp.Body).Decode(&dels); err != nil {
		return nil, err
	}
	return dels, nil
}
