// Package registry defines the types used for registry authentication
// forwarded to the daemon.
package registry

import (
	"encoding/base64"
	"encoding/json"
	"strings"

	cerrdefs "github.com/containerd/errdefs"
)

// AuthHeader is the name of the header used to send encoded registry
// authorization credentials for registry operations (push/pull).
const AuthHeader = "X-Registry-Auth"

// AuthConfig contains authorization information for connecting to a
// registry.
type AuthConfig struct {
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
	Auth     string `json:"auth,omitempty"`

	// Email is an optional value associated with the username.
	//
	// Deprecated: will be removed in a future version, as it is not used
	// for authentication.
	Email string `json:"email,omitempty"`

	ServerAddress string `json:"serveraddress,omitempty"`

	// IdentityToken is used to authenticate the user and get an access
	// token for the registry.
	IdentityToken string `json:"identitytoken,omitempty"`

	// RegistryToken is a bearer token to be sent to a registry.
	RegistryToken string `json:"registrytoken,omitempty"`
}

// EncodeAuthConfig serializes the auth configuration as a base64url encoded
// ([RFC 4648, section 5]) JSON string, suitable for the [AuthHeader] header.
//
// [RFC 4648, section 5]: https://tools.ietf.org/html/rfc4648#section-5
func EncodeAuthConfig(authConfig AuthConfig) (string, error) {
	buf, err := json.Marshal(authConfig)
	if err != nil {
		return "", cerrdefs.ErrInvalidArgument.WithMessage("invalid auth configuration: " + err.Error())
	}
	return base64.URLEncoding.EncodeToString(buf), nil
}

// DecodeAuthConfig decodes a base64url encoded ([RFC 4648, section 5]) JSON
// string, as produced by [EncodeAuthConfig].
//
// [RFC 4648, section 5]: https://tools.ietf.org/html/rfc4648#section-5
func DecodeAuthConfig(authEncoded string) (*AuthConfig, error) {
	if authEncoded == "" {
		return &AuthConfig{}, nil
	}

	authJSON := base64.NewDecoder(base64.URLEncoding, strings.NewReader(authEncoded))
	authConfig := &AuthConfig{}
	if err := json.NewDecoder(authJSON).Decode(authConfig); err != nil {
		return &AuthConfig{}, cerrdefs.ErrInvalidArgument.WithMessage("invalid auth configuration: " + err.Error())
	}
	return authConfig, nil
}
