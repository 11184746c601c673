package client

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"

	"github.com/moorage/client/api/types/container"
	"github.com/moorage/client/api/types/versions"
)

// Exec is a handle to an exec process created in a container through
// [Container.ExecCreate]. The handle is valid for the lifetime of the exec
// instance on the daemon; using it after the daemon discards the instance
// yields "not found" errors.
type Exec struct {
	cli         *Client
	id          string
	containerID string

	state atomic.Pointer[container.ExecInspectResponse]
}

// ID returns the exec instance's ID as assigned by the daemon.
func (e *Exec) ID() string {
	return e.id
}

// State returns the most recent state snapshot fetched by [Exec.Inspect],
// or nil if the exec process was never inspected through this handle. The
// snapshot is not updated by [Exec.Start]; it reflects the daemon's state
// at inspection time only.
func (e *Exec) State() *container.ExecInspectResponse {
	return e.state.Load()
}

// ExecCreateOptions holds the configuration for a new exec process, set
// up through [Container.ExecCreate].
type ExecCreateOptions struct {
	// User that will run the command, in "user[:group]" notation.
	User string

	// Privileged runs the exec process with extended privileges.
	Privileged bool

	// Tty allocates a pseudo-TTY for the exec process.
	Tty bool

	// ConsoleSize sets the initial console size as [height, width] when
	// Tty is enabled. Requires API v1.42 or up; it is dropped from the
	// request when connected to an older daemon.
	ConsoleSize *[2]uint

	// AttachStdin keeps stdin open so that input can be written to the
	// exec process when attaching.
	AttachStdin bool

	// AttachStderr attaches to the exec process's standard error.
	AttachStderr bool

	// AttachStdout attaches to the exec process's standard output.
	AttachStdout bool

	// DetachKeys overrides the key sequence for detaching from the exec
	// process.
	DetachKeys string

	// Env holds additional environment variables ("VAR=value") for the
	// exec process.
	Env []string

	// WorkingDir sets the working directory for the exec process.
	WorkingDir string

	// Cmd is the command to run, with arguments.
	Cmd []string
}

// ExecCreate sets up a new exec process inside the container. The process
// is not started until [Exec.Start] or [Exec.Attach] is called on the
// returned handle.
//
// The container must be running; a stopped or paused container produces a
// conflict error.
func (c *Container) ExecCreate(ctx context.Context, options ExecCreateOptions) (*Exec, error) {
	containerID, err := trimID("container", c.id)
	if err != nil {
		return nil, err
	}

	// ConsoleSize is API-version specific, which requires the negotiated
	// version to be known before building the request.
	if err := c.cli.checkVersion(ctx); err != nil {
		return nil, err
	}
	consoleSize := options.ConsoleSize
	if versions.LessThan(c.cli.ClientVersion(), "1.42") {
		consoleSize = nil
	}

	body := container.ExecCreateRequest{
		User:         options.User,
		Privileged:   options.Privileged,
		Tty:          options.Tty,
		ConsoleSize:  consoleSize,
		AttachStdin:  options.AttachStdin,
		AttachStderr: options.AttachStderr,
		AttachStdout: options.AttachStdout,
		DetachKeys:   options.DetachKeys,
		Env:          options.Env,
		WorkingDir:   options.WorkingDir,
		Cmd:          options.Cmd,
	}

	resp, err := c.cli.post(ctx, "/containers/"+containerID+"/exec", nil, body, nil)
	defer ensureReaderClosed(resp)
	if err != nil {
		return nil, err
	}

	var response container.ExecCreateResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, err
	}
	return &Exec{cli: c.cli, id: response.ID, containerID: containerID}, nil
}

// ExecStartOptions holds parameters to start an exec process without
// attaching to it.
type ExecStartOptions struct {
	// Tty starts the exec process with a pseudo-TTY.
	Tty bool

	// ConsoleSize sets the initial console size as [height, width] when
	// Tty is enabled. Requires API v1.42 or up; it is dropped from the
	// request when connected to an older daemon.
	ConsoleSize *[2]uint
}

// Start starts the exec process in detached mode; output is discarded.
// Use [Exec.Attach] instead to start the process and interact with its
// streams.
//
// Starting an exec process a second time fails with a conflict error.
func (e *Exec) Start(ctx context.Context, options ExecStartOptions) error {
	execID, err := trimID("exec", e.id)
	if err != nil {
		return err
	}

	consoleSize := options.ConsoleSize
	if versions.LessThan(e.cli.ClientVersion(), "1.42") {
		consoleSize = nil
	}
	body := container.ExecStartRequest{
		Detach:      true,
		Tty:         options.Tty,
		ConsoleSize: consoleSize,
	}

	resp, err := e.cli.post(ctx, "/exec/"+execID+"/start", nil, body, nil)
	ensureReaderClosed(resp)
	return err
}

// ExecAttachOptions holds parameters to start an exec process attached to
// the calling connection.
type ExecAttachOptions struct {
	// Tty starts the exec process with a pseudo-TTY.
	Tty bool

	// ConsoleSize sets the initial console size as [height, width] when
	// Tty is enabled. Requires API v1.42 or up; it is dropped from the
	// request when connected to an older daemon.
	ConsoleSize *[2]uint
}

// Attach starts the exec process and attaches to its standard streams
// over a hijacked connection. The caller must close the returned response
// to release the connection.
//
// Whether the output is a raw stream or a stdout/stderr multiplex depends
// on the exec process's TTY setting; branch on
// [HijackedResponse.MediaType] to know which demultiplexer, if any, to
// apply.
func (e *Exec) Attach(ctx context.Context, options ExecAttachOptions) (HijackedResponse, error) {
	execID, err := trimID("exec", e.id)
	if err != nil {
		return HijackedResponse{}, err
	}

	consoleSize := options.ConsoleSize
	if versions.LessThan(e.cli.ClientVersion(), "1.42") {
		consoleSize = nil
	}
	body := container.ExecStartRequest{
		Tty:         options.Tty,
		ConsoleSize: consoleSize,
	}

	return e.cli.postHijacked(ctx, "/exec/"+execID+"/start", nil, body, http.Header{
		"Content-Type": {"application/json"},
	})
}

// ExecResizeOptions holds parameters to resize an exec process's TTY.
type ExecResizeOptions struct {
	// Height of the TTY, in characters.
	Height uint

	// Width of the TTY, in characters.
	Width uint
}

// Resize changes the size of the TTY of the (started) exec process.
func (e *Exec) Resize(ctx context.Context, options ExecResizeOptions) error {
	execID, err := trimID("exec", e.id)
	if err != nil {
		return err
	}
	return e.cli.resize(ctx, "/exec/"+execID, options.Height, options.Width)
}

// Inspect fetches the current state of the exec process from the daemon.
// On success the handle's cached state (see [Exec.State]) is replaced with
// the response.
func (e *Exec) Inspect(ctx context.Context) (container.ExecInspectResponse, error) {
	execID, err := trimID("exec", e.id)
	if err != nil {
		return container.ExecInspectResponse{}, err
	}

	resp, err := e.cli.get(ctx, "/exec/"+execID+"/json", nil, nil)
	defer ensureReaderClosed(resp)
	if err != nil {
		return container.ExecInspectResponse{}, err
	}

	var response container.ExecInspectResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return container.ExecInspectResponse{}, err
	}
	e.state.Store(&response)
	return response, nil
}
