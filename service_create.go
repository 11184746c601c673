package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	cerrdefs "github.com/containerd/errdefs"
	"github.com/distribution/reference"

	"github.com/moorage/client/api/types/registry"
	"github.com/moorage/client/api/types/swarm"
)

// ServiceCreateOptions holds parameters to create a swarm service.
type ServiceCreateOptions struct {
	// Spec describes the service to create.
	Spec swarm.ServiceSpec

	// EncodedRegistryAuth is the base64url-encoded credentials to pull
	// the service's image with, as produced by
	// [registry.EncodeAuthConfig]. Forwarded in the X-Registry-Auth
	// header.
	EncodedRegistryAuth string
}

// ServiceCreateResult holds the result of [ServiceService.Create].
type ServiceCreateResult struct {
	// Service is a handle for the created service.
	Service *Service

	// Warnings the daemon produced while creating the service.
	Warnings []string
}

// Create creates a new service from the given spec and returns a handle
// bound to the daemon-assigned service ID. A container-runtime spec
// without a container spec gets an empty one filled in, matching the
// daemon's expectations.
func (s *ServiceService) Create(ctx context.Context, options ServiceCreateOptions) (ServiceCreateResult, error) {
	spec := options.Spec
	if spec.TaskTemplate.ContainerSpec == nil && (spec.TaskTemplate.Runtime == "" || spec.TaskTemplate.Runtime == swarm.RuntimeContainer) {
		spec.TaskTemplate.ContainerSpec = &swarm.ContainerSpec{}
	}
	if err := validateServiceSpec(spec); err != nil {
		return ServiceCreateResult{}, err
	}
	if spec.TaskTemplate.ContainerSpec != nil {
		if img := imageWithTagString(spec.TaskTemplate.ContainerSpec.Image); img != "" {
			spec.TaskTemplate.ContainerSpec.Image = img
		}
	}

	var headers http.Header
	if options.EncodedRegistryAuth != "" {
		headers = http.Header{registry.AuthHeader: {options.EncodedRegistryAuth}}
	}

	resp, err := s.cli.post(ctx, "/services/create", nil, spec, headers)
	defer ensureReaderClosed(resp)
	if err != nil {
		return ServiceCreateResult{}, err
	}

	var response swarm.ServiceCreateResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return ServiceCreateResult{}, err
	}
	return ServiceCreateResult{
		Service:  &Service{cli: s.cli, id: response.ID},
		Warnings: response.Warnings,
	}, nil
}

func validateServiceSpec(s swarm.ServiceSpec) error {
	if s.TaskTemplate.ContainerSpec != nil && s.TaskTemplate.PluginSpec != nil {
		return fmt.Errorf("%w: must not specify both a container spec and a plugin spec in the task template", cerrdefs.ErrInvalidArgument)
	}
	if s.TaskTemplate.PluginSpec != nil && s.TaskTemplate.Runtime != swarm.RuntimePlugin {
		return fmt.Errorf("%w: plugin spec is only supported with the plugin runtime", cerrdefs.ErrInvalidArgument)
	}
	if s.TaskTemplate.ContainerSpec != nil && s.TaskTemplate.Runtime == swarm.RuntimePlugin {
		return fmt.Errorf("%w: container spec is not supported with the plugin runtime", cerrdefs.ErrInvalidArgument)
	}
	return nil
}

// imageWithTagString normalizes the given image reference to one that
// carries an explicit tag, so that the daemon does not have to guess.
// It returns an empty string if the reference cannot be parsed or already
// pins a digest.
func imageWithTagString(image string) string {
	ref, err := reference.ParseNormalizedNamed(image)
	if err != nil {
		return ""
	}
	if _, ok := ref.(reference.Canonical); ok {
		return ""
	}
	return reference.FamiliarString(reference.TagNameOnly(ref))
}
