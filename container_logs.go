package client

import (
	"context"
	"io"
	"net/url"
	"time"

	"github.com/pkg/errors"

	"github.com/moorage/client/internal/timestamp"
)

// ContainerLogsOptions holds parameters to filter logs with.
type ContainerLogsOptions struct {
	// ShowStdout includes the container's stdout in the log stream.
	ShowStdout bool

	// ShowStderr includes the container's stderr in the log stream.
	ShowStderr bool

	// Since filters logs to entries emitted after this timestamp. It
	// accepts an RFC 3339 timestamp, a Unix timestamp, or a Go duration
	// string relative to the client machine's time (for example "10m").
	Since string

	// Until filters logs to entries emitted before this timestamp. It
	// accepts the same formats as Since.
	Until string

	// Timestamps prefixes every log line with its timestamp.
	Timestamps bool

	// Follow keeps the stream open and follows the log output until the
	// container stops or the stream is closed.
	Follow bool

	// Tail limits the output to this number of lines from the end of the
	// logs. An empty value or "all" returns all lines.
	Tail string

	// Details includes extra attributes provided to the logging driver.
	Details bool
}

// Logs returns the log stream of the container. The caller must close the
// returned stream; it stays open as long as the daemon keeps producing
// (with Follow) or until the remote side ends it.
//
// The stream format depends on the container's TTY setting: with a TTY the
// bytes are the raw output, without one stdout and stderr are multiplexed
// into frames that need to be demultiplexed (see the
// "application/vnd.docker.multiplexed-stream" media type). The bytes are
// delivered in the order the daemon wrote them.
func (c *Container) Logs(ctx context.Context, options ContainerLogsOptions) (io.ReadCloser, error) {
	containerID, err := trimID("container", c.id)
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
	if options.Until != "" {
		ts, err := timestamp.GetTimestamp(options.Until, time.Now())
		if err != nil {
			return nil, errors.Wrap(err, `invalid value for "until"`)
		}
		query.Set("until", ts)
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

	resp, err := c.cli.get(ctx, "/containers/"+containerID+"/logs", query, nil)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}
