package container

// ExecCreateRequest is the request body for the exec create endpoint
// ("POST /containers/{id}/exec").
type ExecCreateRequest struct {
	User         string   `json:",omitempty"` // User that will run the command
	Privileged   bool     `json:",omitempty"` // Is the container in privileged mode
	Tty          bool     `json:",omitempty"` // Attach standard streams to a tty
	ConsoleSize  *[2]uint `json:",omitempty"` // Initial console size [height, width]
	AttachStdin  bool     `json:",omitempty"` // Attach the standard input, makes possible user interaction
	AttachStderr bool     `json:",omitempty"` // Attach the standard error
	AttachStdout bool     `json:",omitempty"` // Attach the standard output
	DetachKeys   string   `json:",omitempty"` // Escape keys for detach
	Env          []string `json:",omitempty"` // Environment variables
	WorkingDir   string   `json:",omitempty"` // Working directory
	Cmd          []string // Execution commands and args
}

// ExecStartRequest is the request body for the exec start endpoint
// ("POST /exec/{id}/start").
type ExecStartRequest struct {
	// Detach runs the exec process without attaching to it.
	Detach bool `json:",omitempty"`
	// Tty attaches standard streams to a tty.
	Tty bool `json:",omitempty"`
	// ConsoleSize is the initial console size [height, width].
	ConsoleSize *[2]uint `json:",omitempty"`
}

// ExecCreateResponse is the response for the exec create endpoint
// ("POST /containers/{id}/exec").
type ExecCreateResponse struct {
	// ID is the ID of the created exec instance.
	ID string `json:"Id"`
}

// ExecInspectResponse is the response for the exec inspect endpoint
// ("GET /exec/{id}/json").
type ExecInspectResponse struct {
	ID          string `json:"ID"`
	ContainerID string
	Running     bool
	ExitCode    int
	Pid         int
	OpenStdin   bool
	OpenStderr  bool
	OpenStdout  bool
	CanRemove   bool
	DetachKeys  string
}
