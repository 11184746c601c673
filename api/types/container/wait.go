package container

// WaitCondition is a type used to specify a container state for which to
// wait.
type WaitCondition string

// Possible WaitCondition Values.
//
// WaitConditionNotRunning (default) is used to wait for any of the non-running
// states: "created", "exited", "dead", "removing", or "removed".
//
// WaitConditionNextExit is used to wait for the next time the state changes
// to a non-running state. If the state is currently "created" or "exited",
// this would cause Wait() to block until either the container runs and exits
// or is removed.
//
// WaitConditionRemoved is used to wait for the container to be removed.
const (
	WaitConditionNotRunning WaitCondition = "not-running"
	WaitConditionNextExit   WaitCondition = "next-exit"
	WaitConditionRemoved    WaitCondition = "removed"
)

// WaitExitError is the error reported by the daemon when a wait operation
// itself failed inside the daemon.
type WaitExitError struct {
	// Message is the details of the error.
	Message string
}

// WaitResponse is the response for the wait endpoint
// ("POST /containers/{id}/wait").
type WaitResponse struct {
	// Error, if any, that occurred while waiting.
	Error *WaitExitError `json:",omitempty"`

	// StatusCode is the exit code of the container's main process.
	StatusCode int64
}
