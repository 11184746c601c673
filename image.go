package client

import (
	"context"
	"encoding/json"
	"net/url"
	"sync/atomic"

	"github.com/moorage/client/api/types/image"
	"github.com/moorage/client/api/types/versions"
)

// ImageService is the entry point for image operations. Obtain one from
// [Client.Images].
type ImageService struct {
	cli *Client
}

// Image is a handle for one image on the daemon, addressed by name,
// reference or ID. All operations on it are remote calls.
//
// A handle is never invalidated locally: after the remote image is
// removed, the handle remains usable and further operations fail with a
// "no such image" error from the daemon.
type Image struct {
	cli *Client
	ref string

	// summary is the list representation this handle was built from, if
	// the handle was produced by [ImageService.List].
	summary *image.Summary

	// state is the last representation fetched by Inspect. It is replaced
	// wholesale on every successful fetch; concurrent calls race and the
	// last response to arrive wins.
	state atomic.Pointer[image.InspectResponse]
}

// Get returns a handle for the image with the given name, reference or
// ID. It is a purely local construction: no request is made to the
// daemon, and the existence of the image is not verified.
func (s *ImageService) Get(ref string) *Image {
	return &Image{cli: s.cli, ref: ref}
}

// Ref returns the reference the handle addresses the image by: the name,
// tagged or digested reference, or ID it was looked up by, or an ID if it
// was produced by [ImageService.List].
func (img *Image) Ref() string {
	return img.ref
}

// Summary returns the list representation the handle was created from, or
// nil if the handle was not produced by [ImageService.List].
func (img *Image) Summary() *image.Summary {
	return img.summary
}

// State returns the most recent representation fetched by [Image.Inspect],
// or nil if the image was never inspected through this handle. The
// returned value is a snapshot; it is not updated in place.
func (img *Image) State() *image.InspectResponse {
	return img.state.Load()
}

// ImageListOptions holds parameters to list images with.
type ImageListOptions struct {
	// All includes intermediate images in the list.
	All bool

	// Filters restricts the list to images matching all given predicates.
	Filters Filters

	// SharedSize requests the daemon to compute the shared size of each
	// image. Requires API v1.42 or up; ignored on older daemons.
	SharedSize bool

	// Manifests includes the image manifests in the summaries. Requires
	// API v1.47 or up; ignored on older daemons.
	Manifests bool
}

// List returns handles for the images known to the daemon, in the order
// the daemon reports them. Each handle carries the summary it was listed
// with and addresses the image by its ID.
func (s *ImageService) List(ctx context.Context, options ImageListOptions) ([]*Image, error) {
	// SharedSize and Manifests are API-version specific, which requires
	// the negotiated version to be known before building the request.
	if err := s.cli.checkVersion(ctx); err != nil {
		return nil, err
	}

	query := url.Values{}
	if options.All {
		query.Set("all", "1")
	}
	options.Filters.updateURLValues(query)
	if options.SharedSize && versions.GreaterThanOrEqualTo(s.cli.ClientVersion(), "1.42") {
		query.Set("shared-size", "1")
	}
	if options.Manifests && versions.GreaterThanOrEqualTo(s.cli.ClientVersion(), "1.47") {
		query.Set("manifests", "1")
	}

	resp, err := s.cli.get(ctx, "/images/json", query, nil)
	defer ensureReaderClosed(resp)
	if err != nil {
		return nil, err
	}

	var summaries []image.Summary
	if err := json.NewDecoder(resp.Body).Decode(&summaries); err != nil {
		return nil, err
	}

	out := make([]*Image, 0, len(summaries))
	for i := range summaries {
		out = append(out, &Image{
			cli:     s.cli,
			ref:     summaries[i].ID,
			summary: &summaries[i],
		})
	}
	return out, nil
}

// ImagePruneResult holds the result of [ImageService.Prune].
type ImagePruneResult struct {
	Report image.PruneReport
}

// Prune requests the daemon to delete unused images matching the given
// filters. Without a "dangling=false" filter, only dangling (untagged)
// images are deleted.
func (s *ImageService) Prune(ctx context.Context, filters Filters) (ImagePruneResult, error) {
	query := url.Values{}
	filters.updateURLValues(query)

	resp, err := s.cli.post(ctx, "/images/prune", query, nil, nil)
	defer ensureReaderClosed(resp)
	if err != nil {
		return ImagePruneResult{}, err
	}

	var report image.PruneReport
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		return ImagePruneResult{}, err
	}
	return ImagePruneResult{Report: report}, nil
}
