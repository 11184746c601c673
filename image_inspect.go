package client

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/moorage/client/api/types/image"
	"github.com/moorage/client/api/types/versions"
)

// ImageInspectOptions holds parameters to inspect an image.
type ImageInspectOptions struct {
	// Manifests includes the image manifests in the response. Requires
	// API v1.48 or up; ignored on older daemons.
	Manifests bool
}

// Inspect fetches the current representation of the image from the
// daemon. On success the handle's cached state (see [Image.State]) is
// replaced with the response.
func (img *Image) Inspect(ctx context.Context, options ImageInspectOptions) (image.InspectResponse, error) {
	imageRef, err := trimID("image", img.ref)
	if err != nil {
		return image.InspectResponse{}, err
	}

	query := url.Values{}
	if options.Manifests {
		if err := img.cli.checkVersion(ctx); err != nil {
			return image.InspectResponse{}, err
		}
		if versions.GreaterThanOrEqualTo(img.cli.ClientVersion(), "1.48") {
			query.Set("manifests", "1")
		}
	}

	resp, err := img.cli.get(ctx, "/images/"+imageRef+"/json", query, nil)
	defer ensureReaderClosed(resp)
	if err != nil {
		return image.InspectResponse{}, err
	}

	var response image.InspectResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return image.InspectResponse{}, err
	}
	img.state.Store(&response)
	return response, nil
}
