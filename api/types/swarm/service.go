// Package swarm defines the wire types exchanged with the daemon's swarm
// service endpoints.
package swarm

import "time"

// Version represents the internal object version.
type Version struct {
	Index uint64 `json:",omitempty"`
}

// Meta is a base object inherited by most of the other swarm objects.
type Meta struct {
	Version   Version   `json:",omitempty"`
	CreatedAt time.Time `json:",omitempty"`
	UpdatedAt time.Time `json:",omitempty"`
}

// Annotations represents how to describe an object.
type Annotations struct {
	Name   string            `json:",omitempty"`
	Labels map[string]string `json:"Labels"`
}

// RuntimeType is the type of runtime used for the TaskSpec.
type RuntimeType string

const (
	// RuntimeContainer is the container based runtime.
	RuntimeContainer RuntimeType = "container"
	// RuntimePlugin is the plugin based runtime.
	RuntimePlugin RuntimeType = "plugin"
)

// ContainerSpec represents the spec of a container in a task.
type ContainerSpec struct {
	Image     string            `json:",omitempty"`
	Labels    map[string]string `json:",omitempty"`
	Command   []string          `json:",omitempty"`
	Args      []string          `json:",omitempty"`
	Hostname  string            `json:",omitempty"`
	Env       []string          `json:",omitempty"`
	Dir       string            `json:",omitempty"`
	User      string            `json:",omitempty"`
	Groups    []string          `json:",omitempty"`
	TTY       bool              `json:",omitempty"`
	OpenStdin bool              `json:",omitempty"`
	ReadOnly  bool              `json:",omitempty"`

	// StopSignal is the signal used to stop the task's containers.
	StopSignal string `json:",omitempty"`

	// StopGracePeriod is the amount of time to wait for the container to
	// terminate before forcefully killing it.
	StopGracePeriod *time.Duration `json:",omitempty"`
}

// RestartPolicyCondition represents when to restart tasks.
type RestartPolicyCondition string

const (
	// RestartPolicyConditionNone restarts tasks never.
	RestartPolicyConditionNone RestartPolicyCondition = "none"
	// RestartPolicyConditionOnFailure restarts tasks on failure.
	RestartPolicyConditionOnFailure RestartPolicyCondition = "on-failure"
	// RestartPolicyConditionAny restarts tasks on any condition.
	RestartPolicyConditionAny RestartPolicyCondition = "any"
)

// RestartPolicy represents the restart policy of a task.
type RestartPolicy struct {
	Condition   RestartPolicyCondition `json:",omitempty"`
	Delay       *time.Duration         `json:",omitempty"`
	MaxAttempts *uint64                `json:",omitempty"`
	Window      *time.Duration         `json:",omitempty"`
}

// Placement represents simple placement constraints for a task.
type Placement struct {
	Constraints []string `json:",omitempty"`
}

// TaskSpec represents the spec of a task.
type TaskSpec struct {
	// ContainerSpec is exclusive with PluginSpec; one of the two must be
	// set when the corresponding runtime is used.
	ContainerSpec *ContainerSpec `json:",omitempty"`
	PluginSpec    *PluginSpec    `json:",omitempty"`

	RestartPolicy *RestartPolicy `json:",omitempty"`
	Placement     *Placement     `json:",omitempty"`

	// Runtime is the type of runtime specified for the task executor.
	Runtime RuntimeType `json:",omitempty"`

	// ForceUpdate is a counter that triggers an update even if no relevant
	// parameters have been changed.
	ForceUpdate uint64
}

// PluginSpec represents the spec of a plugin-based task runtime.
type PluginSpec struct {
	Name     string `json:",omitempty"`
	Remote   string `json:",omitempty"`
	Disabled bool   `json:",omitempty"`
}

// ReplicatedService is a kind of ServiceMode.
type ReplicatedService struct {
	Replicas *uint64 `json:",omitempty"`
}

// GlobalService is a kind of ServiceMode.
type GlobalService struct{}

// ServiceMode represents the mode of a service.
type ServiceMode struct {
	Replicated *ReplicatedService `json:",omitempty"`
	Global     *GlobalService     `json:",omitempty"`
}

// PortConfigProtocol represents the protocol of a port.
type PortConfigProtocol string

const (
	// PortConfigProtocolTCP is the TCP protocol.
	PortConfigProtocolTCP PortConfigProtocol = "tcp"
	// PortConfigProtocolUDP is the UDP protocol.
	PortConfigProtocolUDP PortConfigProtocol = "udp"
	// PortConfigProtocolSCTP is the SCTP protocol.
	PortConfigProtocolSCTP PortConfigProtocol = "sctp"
)

// PortConfigPublishMode represents the mode in which the port is to be
// published.
type PortConfigPublishMode string

const (
	// PortConfigPublishModeIngress publishes the port through the swarm
	// routing mesh.
	PortConfigPublishModeIngress PortConfigPublishMode = "ingress"
	// PortConfigPublishModeHost publishes the port on the swarm node's
	// host directly.
	PortConfigPublishModeHost PortConfigPublishMode = "host"
)

// PortConfig represents the config of a port.
type PortConfig struct {
	Name          string                `json:",omitempty"`
	Protocol      PortConfigProtocol    `json:",omitempty"`
	TargetPort    uint32                `json:",omitempty"`
	PublishedPort uint32                `json:",omitempty"`
	PublishMode   PortConfigPublishMode `json:",omitempty"`
}

// ResolutionMode represents a resolution mode.
type ResolutionMode string

const (
	// ResolutionModeVIP provides a virtual IP for the service.
	ResolutionModeVIP ResolutionMode = "vip"
	// ResolutionModeDNSRR uses DNS round-robin.
	ResolutionModeDNSRR ResolutionMode = "dnsrr"
)

// EndpointSpec represents the spec of an endpoint.
type EndpointSpec struct {
	Mode  ResolutionMode `json:",omitempty"`
	Ports []PortConfig   `json:",omitempty"`
}

// EndpointVirtualIP represents the virtual ip of a port.
type EndpointVirtualIP struct {
	NetworkID string `json:",omitempty"`
	Addr      string `json:",omitempty"`
}

// Endpoint represents an endpoint.
type Endpoint struct {
	Spec       EndpointSpec        `json:",omitempty"`
	Ports      []PortConfig        `json:",omitempty"`
	VirtualIPs []EndpointVirtualIP `json:",omitempty"`
}

// ServiceSpec represents the spec of a service.
type ServiceSpec struct {
	Annotations

	// TaskTemplate defines how the service should construct new tasks when
	// orchestrating this service.
	TaskTemplate TaskSpec    `json:",omitempty"`
	Mode         ServiceMode `json:",omitempty"`

	// EndpointSpec defines the properties that can be configured to access
	// and load balance the service.
	EndpointSpec *EndpointSpec `json:",omitempty"`
}

// UpdateState is the state of a service update.
type UpdateState string

const (
	// UpdateStateUpdating is the updating state.
	UpdateStateUpdating UpdateState = "updating"
	// UpdateStatePaused is the paused state.
	UpdateStatePaused UpdateState = "paused"
	// UpdateStateCompleted is the completed state.
	UpdateStateCompleted UpdateState = "completed"
	// UpdateStateRollbackStarted is the state with a rollback in progress.
	UpdateStateRollbackStarted UpdateState = "rollback_started"
	// UpdateStateRollbackPaused is the state with a rollback in progress.
	UpdateStateRollbackPaused UpdateState = "rollback_paused"
	// UpdateStateRollbackCompleted is the state with a rollback in progress.
	UpdateStateRollbackCompleted UpdateState = "rollback_completed"
)

// UpdateStatus reports the status of a service update.
type UpdateStatus struct {
	State       UpdateState `json:",omitempty"`
	StartedAt   *time.Time  `json:",omitempty"`
	CompletedAt *time.Time  `json:",omitempty"`
	Message     string      `json:",omitempty"`
}

// Service represents a swarm service.
type Service struct {
	ID string
	Meta
	Spec         ServiceSpec   `json:",omitempty"`
	Endpoint     Endpoint      `json:",omitempty"`
	UpdateStatus *UpdateStatus `json:",omitempty"`
}

// ServiceCreateResponse is the response for the service create endpoint
// ("POST /services/create").
type ServiceCreateResponse struct {
	// ID is the ID of the created service.
	ID string `json:",omitempty"`

	// Warnings is a set of non-fatal warning messages to pass on to the
	// user.
	Warnings []string `json:",omitempty"`
}

// ServiceUpdateResponse is the response for the service update endpoint
// ("POST /services/{id}/update").
type ServiceUpdateResponse struct {
	// Warnings is a set of non-fatal warning messages to pass on to the
	// user.
	Warnings []string `json:",omitempty"`
}
