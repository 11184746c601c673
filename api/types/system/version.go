// Package system defines the wire types for the daemon's system endpoints.
package system

// ComponentVersion describes the version information for a specific
// component making up the server.
type ComponentVersion struct {
	Name    string
	Version string
	Details map[string]string `json:",omitempty"`
}

// VersionResponse is the response for the version endpoint
// ("GET /version").
type VersionResponse struct {
	Platform struct{ Name string } `json:",omitempty"`

	// Components contains version information for the components making
	// up the server.
	Components []ComponentVersion `json:",omitempty"`

	Version       string
	APIVersion    string `json:"ApiVersion"`
	MinAPIVersion string `json:"MinAPIVersion,omitempty"`
	GitCommit     string
	GoVersion     string
	Os            string
	Arch          string
	KernelVersion string `json:",omitempty"`
	Experimental  bool   `json:",omitempty"`
	BuildTime     string `json:",omitempty"`
}
