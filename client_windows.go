//go:build windows

package client

import (
	"context"
	"net"

	"github.com/Microsoft/go-winio"
)

// DefaultDockerHost defines the default host string used by the client.
const DefaultDockerHost = "npipe:////./pipe/docker_engine"

// dialPipeContext connects to a Windows named pipe. The overall connection
// deadline is taken from ctx.
func dialPipeContext(ctx context.Context, addr string) (net.Conn, error) {
	return winio.DialPipeContext(ctx, addr)
}
