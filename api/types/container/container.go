// Package container defines the wire types exchanged with the daemon's
// container endpoints.
package container

import (
	"github.com/docker/go-connections/nat"
)

// Port describes a port mapping in a container [Summary].
type Port struct {
	// IP on which the host port is exposed to (host IP).
	IP string `json:",omitempty"`

	// PrivatePort is the port on the container.
	PrivatePort uint16

	// PublicPort is the port exposed on the host.
	PublicPort uint16 `json:",omitempty"`

	// Type of the port: "tcp", "udp" or "sctp".
	Type string
}

// Summary describes a container returned by the list endpoint
// ("GET /containers/json").
type Summary struct {
	ID         string `json:"Id"`
	Names      []string
	Image      string
	ImageID    string
	Command    string
	Created    int64
	Ports      []Port
	SizeRw     int64 `json:",omitempty"`
	SizeRootFs int64 `json:",omitempty"`
	Labels     map[string]string
	State      ContainerState
	Status     string
	HostConfig struct {
		NetworkMode string `json:",omitempty"`
	}
	Mounts []MountPoint
}

// MountPoint represents a mount point configuration inside a container.
// It is used by the inspect and list endpoints to describe the attached
// volumes and bind mounts.
type MountPoint struct {
	Type        string `json:",omitempty"`
	Name        string `json:",omitempty"`
	Source      string
	Destination string
	Driver      string `json:",omitempty"`
	Mode        string
	RW          bool
	Propagation string
}

// EndpointSettings stores the network endpoint details of a container
// attached to a network.
type EndpointSettings struct {
	NetworkID   string
	EndpointID  string
	Gateway     string
	IPAddress   string
	IPPrefixLen int
	MacAddress  string
	Aliases     []string `json:",omitempty"`
}

// NetworkSettings exposes the network settings in the inspect response.
type NetworkSettings struct {
	Ports    nat.PortMap // Ports is a collection of PortBinding indexed by Port
	Networks map[string]*EndpointSettings
}

// NetworkingConfig represents the container's networking configuration for
// each of its interfaces. It is used for the networking configs specified
// in the "POST /containers/create" request.
type NetworkingConfig struct {
	EndpointsConfig map[string]*EndpointSettings
}

// InspectResponse is the response for the container inspect endpoint
// ("GET /containers/{id}/json").
type InspectResponse struct {
	ID              string `json:"Id"`
	Created         string
	Path            string
	Args            []string
	State           *State
	Image           string
	ResolvConfPath  string
	HostnamePath    string
	HostsPath       string
	LogPath         string
	Name            string
	RestartCount    int
	Driver          string
	Platform        string
	AppArmorProfile string
	ExecIDs         []string
	HostConfig      *HostConfig
	SizeRw          *int64 `json:",omitempty"`
	SizeRootFs      *int64 `json:",omitempty"`
	Mounts          []MountPoint
	Config          *Config
	NetworkSettings *NetworkSettings
}

// CreateRequest is the request payload for the container create endpoint
// ("POST /containers/create").
type CreateRequest struct {
	*Config
	HostConfig       *HostConfig       `json:"HostConfig,omitempty"`
	NetworkingConfig *NetworkingConfig `json:"NetworkingConfig,omitempty"`
}

// CreateResponse is the response for the container create endpoint.
type CreateResponse struct {
	// ID is the ID of the created container.
	ID string `json:"Id"`

	// Warnings encountered when creating the container.
	Warnings []string
}

// CommitResponse is the response for the commit endpoint ("POST /commit").
type CommitResponse struct {
	// ID is the ID of the image created by the commit.
	ID string `json:"Id"`
}

// UpdateResponse is the response for the container update endpoint
// ("POST /containers/{id}/update").
type UpdateResponse struct {
	// Warnings encountered when updating the container.
	Warnings []string
}

// UpdateConfig holds the mutable attributes of a container. Those
// attributes can be updated at runtime.
type UpdateConfig struct {
	Resources
	RestartPolicy RestartPolicy
}

// TopResponse is the response for the top endpoint
// ("GET /containers/{id}/top").
type TopResponse struct {
	// Titles are the ps column titles.
	Titles []string

	// Processes is one row per process, with each field corresponding to
	// the title with the same index.
	Processes [][]string
}

// PruneReport is the response for the prune endpoint
// ("POST /containers/prune").
type PruneReport struct {
	ContainersDeleted []string
	SpaceReclaimed    uint64
}
