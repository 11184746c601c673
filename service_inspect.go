package client

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/moorage/client/api/types/swarm"
)

// ServiceInspectOptions holds parameters to inspect a service.
type ServiceInspectOptions struct {
	// InsertDefaults requests the daemon to fill in default values for
	// fields left empty in the service spec.
	InsertDefaults bool
}

// Inspect fetches the current representation of the service from the
// daemon. On success the handle's cached state (see [Service.State]) is
// replaced with the response.
func (s *Service) Inspect(ctx context.Context, options ServiceInspectOptions) (swarm.Service, error) {
	serviceID, err := trimID("service", s.id)
	if err != nil {
		return swarm.Service{}, err
	}

	query := url.Values{}
	if options.InsertDefaults {
		query.Set("insertDefaults", "true")
	}

	resp, err := s.cli.get(ctx, "/services/"+serviceID, query, nil)
	defer ensureReaderClosed(resp)
	if err != nil {
		return swarm.Service{}, err
	}

	var response swarm.Service
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return swarm.Service{}, err
	}
	s.state.Store(&response)
	return response, nil
}
