package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/moorage/client/api/types/registry"
	"github.com/moorage/client/api/types/swarm"
)

// ServiceUpdateOptions holds parameters to update a service with.
type ServiceUpdateOptions struct {
	// Version is the version of the service spec the update is based on,
	// as obtained from a preceding inspect. The daemon rejects the update
	// with a conflict error when the service changed in the meantime.
	Version swarm.Version

	// Spec is the new service spec, replacing the current one wholesale.
	Spec swarm.ServiceSpec

	// EncodedRegistryAuth is the base64url-encoded credentials to pull
	// the service's image with, as produced by
	// [registry.EncodeAuthConfig]. Forwarded in the X-Registry-Auth
	// header.
	EncodedRegistryAuth string

	// RegistryAuthFrom selects where the daemon takes registry
	// credentials from when EncodedRegistryAuth is not set:
	// "spec" (the current service spec) or "previous-spec".
	RegistryAuthFrom string

	// Rollback requests the daemon to roll the service back to the
	// previous spec instead of applying Spec ("previous").
	Rollback string
}

// ServiceUpdateResult holds the result of [Service.Update]: warnings the
// daemon produced while applying the new spec.
type ServiceUpdateResult struct {
	// Warnings encountered while updating the service.
	Warnings []string
}

// Update replaces the service's spec. The update is optimistic: the
// version index in the options must match the service's current version,
// otherwise the daemon rejects it with a conflict error and the caller is
// expected to re-inspect and retry.
func (s *Service) Update(ctx context.Context, options ServiceUpdateOptions) (ServiceUpdateResult, error) {
	serviceID, err := trimID("service", s.id)
	if err != nil {
		return ServiceUpdateResult{}, err
	}

	spec := options.Spec
	if err := validateServiceSpec(spec); err != nil {
		return ServiceUpdateResult{}, err
	}
	if spec.TaskTemplate.ContainerSpec != nil {
		if img := imageWithTagString(spec.TaskTemplate.ContainerSpec.Image); img != "" {
			spec.TaskTemplate.ContainerSpec.Image = img
		}
	}

	query := url.Values{}
	query.Set("version", strconv.FormatUint(options.Version.Index, 10))
	if options.RegistryAuthFrom != "" {
		query.Set("registryAuthFrom", options.RegistryAuthFrom)
	}
	if options.Rollback != "" {
		query.Set("rollback", options.Rollback)
	}

	var headers http.Header
	if options.EncodedRegistryAuth != "" {
		headers = http.Header{registry.AuthHeader: {options.EncodedRegistryAuth}}
	}

	resp, err := s.cli.post(ctx, "/services/"+serviceID+"/update", query, spec, headers)
	defer ensureReaderClosed(resp)
	if err != nil {
		return ServiceUpdateResult{}, err
	}

	var response swarm.ServiceUpdateResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return ServiceUpdateResult{}, err
	}
	return ServiceUpdateResult{Warnings: response.Warnings}, nil
}
