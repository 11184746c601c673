// Package image defines the wire types exchanged with the daemon's image
// endpoints.
package image

import (
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
)

// Summary describes an image returned by the list endpoint
// ("GET /images/json").
type Summary struct {
	// ID is the content-addressable ID of an image.
	ID string `json:"Id"`

	// ParentID is the ID of the parent image.
	ParentID string `json:"ParentId"`

	// RepoTags is a list of image names/tags in the local image cache that
	// reference this image.
	RepoTags []string

	// RepoDigests is a list of content-addressable digests of locally
	// available image manifests that the image is referenced from.
	RepoDigests []string

	// Created is the date and time at which the image was created as a
	// Unix timestamp (number of seconds since EPOCH).
	Created int64

	// Size is the size of the image in bytes.
	Size int64

	// SharedSize is the total size of image layers that are shared between
	// this image and other images. This size is not calculated by default.
	// -1 indicates that the value has not been set / calculated.
	SharedSize int64

	// Labels of this image.
	Labels map[string]string

	// Containers is the number of containers using this image. Includes
	// both stopped and running containers. -1 indicates that the value
	// has not been set / calculated.
	Containers int64
}

// RootFS describes the image's root filesystem, including the layer IDs.
type RootFS struct {
	Type   string   `json:"Type"`
	Layers []string `json:"Layers,omitempty"`
}

// InspectResponse is the response for the image inspect endpoint
// ("GET /images/{name}/json").
type InspectResponse struct {
	// ID is the content-addressable ID of an image.
	ID string `json:"Id"`

	// RepoTags is a list of image names/tags in the local image cache that
	// reference this image.
	RepoTags []string

	// RepoDigests is a list of content-addressable digests of locally
	// available image manifests that the image is referenced from.
	RepoDigests []string

	// Comment is an optional message that was set when committing or
	// importing the image.
	Comment string

	// Created is the date and time at which the image was created,
	// formatted in RFC 3339 nano-seconds (time.RFC3339Nano). This field
	// is empty if the field is omitted in the image's metadata.
	Created string `json:",omitempty"`

	// Author is the name of the author that was specified when committing
	// the image, or as specified through MAINTAINER (deprecated) in the
	// Dockerfile.
	Author string

	// Architecture is the hardware CPU architecture that the image runs on.
	Architecture string

	// Variant is the CPU architecture variant (presently ARM-only).
	Variant string `json:",omitempty"`

	// Os is the Operating System the image is built to run on.
	Os string

	// OsVersion is the version of the Operating System the image is built
	// to run on (especially for Windows).
	OsVersion string `json:",omitempty"`

	// Size is the total size of the image including all layers it is
	// composed of.
	Size int64

	// RootFS contains information about the image's RootFS, including the
	// layer IDs.
	RootFS RootFS

	// Descriptor is the OCI descriptor of the image target. Only set when
	// the daemon provides a multi-platform image store.
	Descriptor *ocispec.Descriptor `json:"Descriptor,omitempty"`
}

// HistoryResponseItem is one layer in the history of an image, as reported
// by the history endpoint ("GET /images/{name}/history").
type HistoryResponseItem struct {
	// Comment is the commit message for the layer.
	Comment string `json:"Comment"`

	// Created is the date and time at which the layer was created, as a
	// Unix timestamp.
	Created int64 `json:"Created"`

	// CreatedBy is the command that was executed to create the layer.
	CreatedBy string `json:"CreatedBy"`

	// ID is the identifier of the layer ("<none>" when untagged).
	ID string `json:"Id"`

	// Size is the size of the layer in bytes.
	Size int64 `json:"Size"`

	// Tags assigned to the layer.
	Tags []string `json:"Tags"`
}

// DeleteResponse is one entry of the response for the image delete
// endpoint ("DELETE /images/{name}") and the image prune endpoint.
type DeleteResponse struct {
	// Deleted is the image ID of an image that was deleted.
	Deleted string `json:",omitempty"`

	// Untagged is the image reference that was untagged.
	Untagged string `json:",omitempty"`
}

// PruneReport is the response for the image prune endpoint
// ("POST /images/prune").
type PruneReport struct {
	ImagesDeleted  []DeleteResponse
	SpaceReclaimed uint64
}
