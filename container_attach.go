package client

import (
	"context"
	"net/url"
)

// ContainerAttachOptions holds parameters to attach to a container.
type ContainerAttachOptions struct {
	// Stream attaches to the live streams of the container, rather than
	// only replaying (with Logs) what was already produced.
	Stream bool

	// Stdin attaches to the container's standard input, allowing input to
	// be written to the returned connection.
	Stdin bool

	// Stdout attaches to the container's standard output.
	Stdout bool

	// Stderr attaches to the container's standard error.
	Stderr bool

	// DetachKeys overrides the key sequence for detaching from the
	// container.
	DetachKeys string

	// Logs replays the output that was produced before attaching.
	Logs bool
}

// Attach attaches to the container's standard streams over a hijacked
// connection, for bidirectional interaction with its main process.
//
// The bytes read from the connection are exactly the bytes the remote side
// writes, in order; end of stream is signaled once, by the connection
// reaching EOF. The caller must close the returned response to release the
// connection.
//
// Whether the output is a raw stream or a stdout/stderr multiplex depends
// on the container's TTY setting; branch on
// [HijackedResponse.MediaType] to know which demultiplexer, if any, to
// apply.
func (c *Container) Attach(ctx context.Context, options ContainerAttachOptions) (HijackedResponse, error) {
	containerID, err := trimID("container", c.id)
	if err != nil {
		return HijackedResponse{}, err
	}

	query := url.Values{}
	if options.Stream {
		query.Set("stream", "1")
	}
	if options.Stdin {
		query.Set("stdin", "1")
	}
	if options.Stdout {
		query.Set("stdout", "1")
	}
	if options.Stderr {
		query.Set("stderr", "1")
	}
	if options.DetachKeys != "" {
		query.Set("detachKeys", options.DetachKeys)
	}
	if options.Logs {
		query.Set("logs", "1")
	}

	return c.cli.postHijacked(ctx, "/containers/"+containerID+"/attach", query, nil, nil)
}
