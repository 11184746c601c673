package container

// ContainerState is a string representation of the container's current state.
type ContainerState = string

const (
	StateCreated    ContainerState = "created"    // StateCreated indicates the container is created, but not (yet) started.
	StateRunning    ContainerState = "running"    // StateRunning indicates that the container is running.
	StatePaused     ContainerState = "paused"     // StatePaused indicates that the container's current state is paused.
	StateRestarting ContainerState = "restarting" // StateRestarting indicates that the container is currently restarting.
	StateRemoving   ContainerState = "removing"   // StateRemoving indicates that the container is being removed.
	StateExited     ContainerState = "exited"     // StateExited indicates that the container exited.
	StateDead       ContainerState = "dead"       // StateDead indicates that the container failed to be deleted.
)

// HealthStatus is a string representation of the container's health.
type HealthStatus = string

// Health states.
const (
	NoHealthcheck HealthStatus = "none"      // Indicates there is no healthcheck
	Starting      HealthStatus = "starting"  // Starting indicates that the container is not yet ready
	Healthy       HealthStatus = "healthy"   // Healthy indicates that the container is running correctly
	Unhealthy     HealthStatus = "unhealthy" // Unhealthy indicates that the container has a problem
)

// Health stores information about the container's healthcheck results.
type Health struct {
	Status        HealthStatus         // Status is one of [NoHealthcheck], [Starting], [Healthy] or [Unhealthy].
	FailingStreak int                  // FailingStreak is the number of consecutive failures
	Log           []*HealthcheckResult // Log contains the last few results (oldest first)
}

// HealthcheckResult stores information about a single run of a healthcheck
// probe.
type HealthcheckResult struct {
	Start    string // Start is the time this check started
	End      string // End is the time this check ended
	ExitCode int    // ExitCode meanings: 0=healthy, 1=unhealthy, 2=reserved (considered unhealthy), else=error running probe
	Output   string // Output from last check
}

// State stores container's running state as reported by the daemon.
type State struct {
	Status     ContainerState // Status is one of the [ContainerState] values.
	Running    bool
	Paused     bool
	Restarting bool
	OOMKilled  bool
	Dead       bool
	Pid        int
	ExitCode   int
	Error      string
	StartedAt  string
	FinishedAt string
	Health     *Health `json:",omitempty"`
}
