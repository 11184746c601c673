package client

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"sync/atomic"

	"github.com/moorage/client/api/types/container"
)

// ContainerService is the entry point for container operations. Obtain one
// from [Client.Containers].
type ContainerService struct {
	cli *Client
}

// Container is a handle for one container on the daemon. It wraps the
// container's immutable identifier; all operations on it are remote calls.
//
// A handle is never invalidated locally: after the remote container is
// removed, the handle remains usable and further operations fail with a
// "no such container" error from the daemon.
type Container struct {
	cli *Client
	id  string

	// summary is the list representation this handle was built from, if
	// the handle was produced by [ContainerService.List].
	summary *container.Summary

	// state is the last representation fetched by Inspect. It is replaced
	// wholesale on every successful fetch; concurrent calls race and the
	// last response to arrive wins.
	state atomic.Pointer[container.InspectResponse]
}

// Get returns a handle for the container with the given ID or name. It is
// a purely local construction: no request is made to the daemon, and the
// existence of the container is not verified.
func (s *ContainerService) Get(id string) *Container {
	return &Container{cli: s.cli, id: id}
}

// ID returns the container's identifier as known to this handle: the ID
// returned by the daemon on create, or the ID or name it was looked up by.
func (c *Container) ID() string {
	return c.id
}

// Summary returns the list representation the handle was created from, or
// nil if the handle was not produced by [ContainerService.List].
func (c *Container) Summary() *container.Summary {
	return c.summary
}

// State returns the most recent representation fetched by [Container.Inspect],
// or nil if the container was never inspected through this handle. The
// returned value is a snapshot; it is not updated in place.
func (c *Container) State() *container.InspectResponse {
	return c.state.Load()
}

// ContainerListOptions holds parameters to list containers with.
type ContainerListOptions struct {
	// Size requests the daemon to compute the disk usage of each
	// container ("SizeRw" and "SizeRootFs" in the summary).
	Size bool

	// All requests all containers to be listed, not only the running ones.
	All bool

	// Latest requests only the most recently created container, including
	// non-running ones.
	Latest bool

	// Since restricts the list to containers created after the named
	// container, including non-running ones.
	Since string

	// Before restricts the list to containers created before the named
	// container, including non-running ones.
	Before string

	// Limit caps the number of results; zero means no limit.
	Limit int

	// Filters restricts the list to containers matching all given
	// predicates.
	Filters Filters
}

// List returns handles for the containers known to the daemon, in the
// order the daemon reports them. Each handle carries the summary it was
// listed with.
func (s *ContainerService) List(ctx context.Context, options ContainerListOptions) ([]*Container, error) {
	query := url.Values{}

	if options.All {
		query.Set("all", "1")
	}
	if options.Limit > 0 {
		query.Set("limit", strconv.Itoa(options.Limit))
	}
	if options.Since != "" {
		query.Set("since", options.Since)
	}
	if options.Before != "" {
		query.Set("before", options.Before)
	}
	if options.Size {
		query.Set("size", "1")
	}
	options.Filters.updateURLValues(query)

	resp, err := s.cli.get(ctx, "/containers/json", query, nil)
	defer ensureReaderClosed(resp)
	if err != nil {
		return nil, err
	}

	var summaries []container.Summary
	if err := json.NewDecoder(resp.Body).Decode(&summaries); err != nil {
		return nil, err
	}

	out := make([]*Container, 0, len(summaries))
	for i := range summaries {
		out = append(out, &Container{
			cli:     s.cli,
			id:      summaries[i].ID,
			summary: &summaries[i],
		})
	}
	return out, nil
}

// ContainerPruneResult holds the result of [ContainerService.Prune].
type ContainerPruneResult struct {
	Report container.PruneReport
}

// Prune requests the daemon to delete stopped containers matching the
// given filters.
func (s *ContainerService) Prune(ctx context.Context, filters Filters) (ContainerPruneResult, error) {
	query := url.Values{}
	filters.updateURLValues(query)

	resp, err := s.cli.post(ctx, "/containers/prune", query, nil, nil)
	defer ensureReaderClosed(resp)
	if err != nil {
		return ContainerPruneResult{}, err
	}

	var report container.PruneReport
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		return ContainerPruneResult{}, err
	}
	return ContainerPruneResult{Report: report}, nil
}
