package client

import (
	"context"
	"io"
	"net/url"
	"time"

	"github.com/pkg/errors"

	"github.com/moorage/client/internal/timestamp"
)

// ServiceLogsOptions holds parameters to filter service logs with. The
// fields mirror [ContainerLogsOptions]; the stream aggregates the logs of
// all the service's tasks.
type ServiceLogsOptions struct {
	// ShowStdout includes the tasks' stdout in the log stream.
	ShowStdout bool

	// ShowStderr includes the tasks' stderr in the log stream.
	ShowStderr bool

	// Since filters logs to entries emitted after this timestamp. It
	// accepts an RFC 3339 timestamp, a Unix timestamp, or a Go duration
	// string relative to the client machine's time (for example "10m").
	Since string

	// Timestamps prefixes every log line with its timestamp.
	Timestamps bool

	// Follow keeps the stream open and follows the log output.
	Follow bool

	// Tail limits the output to this number of lines from the end of the
	// logs. An empty value or "all" returns all lines.
	Tail string

	// Details includes extra attributes provided to the logging driver.
	Details bool
}

// Logs returns the log stream of the service's tasks. The caller must
// close the returned stream. Frames are multiplexed per stdout/stderr the
// same way container log streams are.
func (s *Service) Logs(ctx context.Context, options ServiceLogsOptions) (io.ReadCloser, error) {
	serviceID, err := trimID("service", s.id)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	if options.ShowStdout {
		query.Set("stdout", "1")
	}
	if options.ShowStderr {
		query.Set("stderr", "1")
	}
	if options.Since != "" {
		ts, err := timestamp.GetTimestamp(options.Since, time.Now())
		if err != nil {
			return nil, errors.Wrap(err, `invalid value for "since"`)
		}
		query.Set("since", ts)
	}
	if options.Timestamps {
		query.Set("timestamps", "1")
	}
	if options.Details {
		query.Set("details", "1")
	}
	if options.Follow {
		query.Set("follow", "1")
	}
	if options.Tail != "" {
		query.Set("tail", options.Tail)
	}

	resp, err := s.cli.get(ctx, "/services/"+serviceID+"/logs", query, nil)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}
