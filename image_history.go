package client

import (
	"context"
	"encoding/json"
	"net/url"

	ocispec "github.com/opencontainers/image-spec/specs-go/v1"

	"github.com/moorage/client/api/types/image"
)

// ImageHistoryOptions holds parameters to query an image's history.
type ImageHistoryOptions struct {
	// Platform selects which platform of a multi-platform image to show
	// the history of. Requires API v1.48 or up; an error is returned when
	// set against an older daemon.
	Platform *ocispec.Platform
}

// History returns the layer history of the image, most recent layer
// first.
func (img *Image) History(ctx context.Context, options ImageHistoryOptions) ([]image.HistoryResponseItem, error) {
	imageRef, err := trimID("image", img.ref)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	if options.Platform != nil {
		if err := img.cli.NewVersionError(ctx, "1.48", "platform"); err != nil {
			return nil, err
		}
		p, err := encodePlatform(options.Platform)
		if err != nil {
			return nil, err
		}
		query.Set("platform", p)
	}

	resp, err := img.cli.get(ctx, "/images/"+imageRef+"/history", query, nil)
	defer ensureReaderClosed(resp)
	if err != nil {
		return nil, err
	}

	var history []image.HistoryResponseItem
	if err := json.NewDecoder(resp.Body).Decode(&history); err != nil {
		return nil, err
	}
	return history, nil
}
