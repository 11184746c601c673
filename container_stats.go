package client

import (
	"context"
	"io"
	"net/url"
)

// ContainerStatsOptions holds parameters to retrieve container statistics.
type ContainerStatsOptions struct {
	// Stream enables streaming [container.StatsResponse] records instead
	// of collecting a single sample. If enabled, the client remains
	// attached until the returned stream is closed or the context is
	// cancelled.
	Stream bool

	// IncludePreviousSample asks the daemon to collect a prior sample to
	// populate the "PreRead" and "PreCPUStats" fields, allowing delta
	// calculations for CPU usage. The daemon then collects two samples at
	// a one-second interval before returning.
	//
	// This option has no effect if Stream is enabled.
	IncludePreviousSample bool
}

// Stats returns live resource usage statistics of the container as a
// stream of JSON-encoded [container.StatsResponse] records. If streaming
// is disabled, the stream contains a single record. The caller must close
// the returned stream.
func (c *Container) Stats(ctx context.Context, options ContainerStatsOptions) (io.ReadCloser, error) {
	containerID, err := trimID("container", c.id)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	if options.Stream {
		query.Set("stream", "true")
	} else {
		query.Set("stream", "false")
		if !options.IncludePreviousSample {
			query.Set("one-shot", "true")
		}
	}

	resp, err := c.cli.get(ctx, "/containers/"+containerID+"/stats", query, nil)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}
