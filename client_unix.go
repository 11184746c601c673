//go:build !windows

package client

import (
	"context"
	"net"

	cerrdefs "github.com/containerd/errdefs"
)

// DefaultDockerHost defines the default host string used by the client.
const DefaultDockerHost = "unix:///var/run/docker.sock"

// dialPipeContext connects to a Windows named pipe. It is not supported on
// non-Windows platforms.
func dialPipeContext(_ context.Context, _ string) (net.Conn, error) {
	return nil, cerrdefs.ErrNotImplemented.WithMessage("named pipe connections are only supported on Windows")
}
