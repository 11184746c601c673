package client

import "context"

// Remove removes the service from the swarm. The service's tasks are shut
// down and removed by the daemon asynchronously.
func (s *Service) Remove(ctx context.Context) error {
	serviceID, err := trimID("service", s.id)
	if err != nil {
		return err
	}

	resp, err := s.cli.delete(ctx, "/services/"+serviceID, nil, nil)
	ensureReaderClosed(resp)
	return err
}
