package client

import (
	"context"
	"encoding/json"
	"net/url"
	"sync/atomic"

	"github.com/moorage/client/api/types/swarm"
	"github.com/moorage/client/api/types/versions"
)

// ServiceService is the entry point for swarm service operations. Obtain
// one from [Client.Services]. The daemon must be a swarm manager for any
// of these to succeed.
type ServiceService struct {
	cli *Client
}

// Service is a handle for one swarm service, addressed by ID or name.
// All operations on it are remote calls.
//
// A handle is never invalidated locally: after the remote service is
// removed, the handle remains usable and further operations fail with a
// "not found" error from the daemon.
type Service struct {
	cli *Client
	id  string

	// state is the last representation fetched by Inspect. It is replaced
	// wholesale on every successful fetch; concurrent calls race and the
	// last response to arrive wins.
	state atomic.Pointer[swarm.Service]
}

// Get returns a handle for the service with the given ID or name. It is a
// purely local construction: no request is made to the daemon, and the
// existence of the service is not verified.
func (s *ServiceService) Get(id string) *Service {
	return &Service{cli: s.cli, id: id}
}

// ID returns the service's identifier as known to this handle: the ID
// returned by the daemon on create, or the ID or name it was looked up by.
func (s *Service) ID() string {
	return s.id
}

// State returns the most recent representation fetched by
// [Service.Inspect], or nil if the service was never inspected through
// this handle. The returned value is a snapshot; it is not updated in
// place.
func (s *Service) State() *swarm.Service {
	return s.state.Load()
}

// ServiceListOptions holds parameters to list services with.
type ServiceListOptions struct {
	// Filters restricts the list to services matching all given
	// predicates.
	Filters Filters

	// Status requests the daemon to include the service's task status
	// (running and desired task counts). Requires API v1.41 or up;
	// ignored on older daemons.
	Status bool
}

// List returns handles for the services known to the daemon, in the order
// the daemon reports them. Each handle carries the full service
// description it was listed with as its state snapshot.
func (s *ServiceService) List(ctx context.Context, options ServiceListOptions) ([]*Service, error) {
	query := url.Values{}
	options.Filters.updateURLValues(query)

	if options.Status {
		// Status is API-version specific, which requires the negotiated
		// version to be known before building the request.
		if err := s.cli.checkVersion(ctx); err != nil {
			return nil, err
		}
		if versions.GreaterThanOrEqualTo(s.cli.ClientVersion(), "1.41") {
			query.Set("status", "true")
		}
	}

	resp, err := s.cli.get(ctx, "/services", query, nil)
	defer ensureReaderClosed(resp)
	if err != nil {
		return nil, err
	}

	var services []swarm.Service
	if err := json.NewDecoder(resp.Body).Decode(&services); err != nil {
		return nil, err
	}

	out := make([]*Service, 0, len(services))
	for i := range services {
		handle := &Service{cli: s.cli, id: services[i].ID}
		handle.state.Store(&services[i])
		out = append(out, handle)
	}
	return out, nil
}
