package client

import (
	"context"
	"encoding/json"
	"net/url"

	cerrdefs "github.com/containerd/errdefs"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"

	"github.com/moorage/client/api/types/container"
)

// ContainerCreateOptions holds parameters to create a container.
type ContainerCreateOptions struct {
	// Name is the name to give to the new container. When empty, the
	// daemon generates a name.
	Name string

	// Config holds the portable configuration of the container.
	Config *container.Config

	// HostConfig holds the host-dependent configuration of the container.
	HostConfig *container.HostConfig

	// NetworkingConfig holds the per-network endpoint configuration.
	NetworkingConfig *container.NetworkingConfig

	// Platform selects the platform of the image to create the container
	// from, when the image is available for multiple platforms.
	Platform *ocispec.Platform
}

// ContainerCreateResult holds the result of [ContainerService.Create]: the
// handle for the new container and any warnings the daemon produced while
// creating it.
type ContainerCreateResult struct {
	// Container is the handle for the created container.
	Container *Container

	// Warnings encountered while creating the container.
	Warnings []string
}

// Create creates a new container based on the given configuration and
// returns a handle for it. The container is created in the "created"
// state; it is not started.
func (s *ContainerService) Create(ctx context.Context, options ContainerCreateOptions) (ContainerCreateResult, error) {
	if options.Config == nil {
		return ContainerCreateResult{}, cerrdefs.ErrInvalidArgument.WithMessage("config is required when creating a container")
	}

	query := url.Values{}
	if options.Platform != nil {
		p, err := encodePlatform(options.Platform)
		if err != nil {
			return ContainerCreateResult{}, err
		}
		query.Set("platform", p)
	}
	if options.Name != "" {
		query.Set("name", options.Name)
	}

	body := container.CreateRequest{
		Config:           options.Config,
		HostConfig:       options.HostConfig,
		NetworkingConfig: options.NetworkingConfig,
	}

	resp, err := s.cli.post(ctx, "/containers/create", query, body, nil)
	defer ensureReaderClosed(resp)
	if err != nil {
		return ContainerCreateResult{}, err
	}

	var response container.CreateResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return ContainerCreateResult{}, err
	}

	return ContainerCreateResult{
		Container: &Container{cli: s.cli, id: response.ID},
		Warnings:  response.Warnings,
	}, nil
}
