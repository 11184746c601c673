package client

import (
	"context"
	"encoding/json"

	"github.com/moorage/client/api/types/system"
	"github.com/moorage/client/api/types/versions"
)

// ServerVersionResult contains version information about the daemon and the
// components making it up.
type ServerVersionResult struct {
	// Platform is the platform (product name) the daemon is running on.
	Platform struct{ Name string }

	// Version is the version of the daemon.
	Version string

	// APIVersion is the highest API version supported by the daemon.
	APIVersion string

	// MinAPIVersion is the minimum API version the daemon supports.
	MinAPIVersion string

	// Os is the operating system the daemon runs on.
	Os string

	// Arch is the hardware architecture the daemon runs on.
	Arch string

	// KernelVersion is the kernel version of the host the daemon runs on.
	KernelVersion string

	// Experimental indicates that the daemon runs with experimental
	// features enabled.
	Experimental bool

	// Components contains version information for the components making
	// up the daemon. Information in this field is for informational
	// purposes, and not part of the API contract.
	Components []system.ComponentVersion
}

// ServerVersion returns information about the daemon host.
func (cli *Client) ServerVersion(ctx context.Context) (ServerVersionResult, error) {
	resp, err := cli.get(ctx, "/version", nil, nil)
	defer ensureReaderClosed(resp)
	if err != nil {
		return ServerVersionResult{}, err
	}

	var v system.VersionResponse
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		return ServerVersionResult{}, err
	}

	return ServerVersionResult{
		Platform:      v.Platform,
		Version:       v.Version,
		APIVersion:    v.APIVersion,
		MinAPIVersion: v.MinAPIVersion,
		Os:            v.Os,
		Arch:          v.Arch,
		KernelVersion: v.KernelVersion,
		Experimental:  v.Experimental,
		Components:    v.Components,
	}, nil
}

// checkVersion lazily performs API-version negotiation when enabled. It is
// invoked on the first request that builds a versioned path; subsequent
// calls are no-ops.
func (cli *Client) checkVersion(ctx context.Context) error {
	if !cli.negotiateVersion || cli.negotiated.Load() {
		return nil
	}
	cli.negotiateLock.Lock()
	defer cli.negotiateLock.Unlock()
	// Lost the race with a concurrent negotiation; nothing left to do.
	if cli.negotiated.Load() {
		return nil
	}
	ping, err := cli.Ping(ctx)
	if err != nil {
		return err
	}
	cli.negotiateAPIVersionPing(ping)
	return nil
}

// NegotiateAPIVersion queries the daemon for its API version and updates
// the client to use a version both sides support. If the negotiated version
// can not be obtained, the client falls back to [fallbackAPIVersion],
// the lowest version all daemons with version negotiation understand.
//
// NegotiateAPIVersion is a no-op if the client's API version was set
// manually ([WithVersion], [WithVersionFromEnv], or the
// DOCKER_API_VERSION environment variable through [FromEnv]).
func (cli *Client) NegotiateAPIVersion(ctx context.Context) {
	if cli.manualOverride {
		return
	}
	ping, err := cli.Ping(ctx)
	if err != nil {
		// The ping failed; the empty result makes negotiation fall back
		// to the lowest common version.
		ping = PingResult{}
	}
	cli.negotiateLock.Lock()
	defer cli.negotiateLock.Unlock()
	cli.negotiateAPIVersionPing(ping)
}

// negotiateAPIVersionPing downgrades the client's API version to the
// version reported in the ping response, when that is lower than the
// client's own. Callers must hold negotiateLock.
func (cli *Client) negotiateAPIVersionPing(p PingResult) {
	if cli.manualOverride {
		return
	}
	if p.APIVersion == "" {
		p.APIVersion = fallbackAPIVersion
	}
	if cli.version == "" {
		cli.version = MaxAPIVersion
	}
	if versions.LessThan(p.APIVersion, cli.version) {
		cli.version = p.APIVersion
	}
	cli.negotiated.Store(true)
}
