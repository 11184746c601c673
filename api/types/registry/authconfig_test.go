package registry

import (
	"encoding/base64"
	"testing"

	cerrdefs "github.com/containerd/errdefs"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestEncodeAuthConfig(t *testing.T) {
	authConfig := AuthConfig{
		Username:      "user",
		Password:      "pass",
		ServerAddress: "https://index.docker.io/v1/",
	}

	encoded, err := EncodeAuthConfig(authConfig)
	assert.NilError(t, err)

	// The encoding must be base64url, not standard base64.
	_, err = base64.URLEncoding.DecodeString(encoded)
	assert.NilError(t, err)

	decoded, err := DecodeAuthConfig(encoded)
	assert.NilError(t, err)
	assert.Check(t, is.DeepEqual(*decoded, authConfig))
}

func TestDecodeAuthConfigEmpty(t *testing.T) {
	decoded, err := DecodeAuthConfig("")
	assert.NilError(t, err)
	assert.Check(t, is.DeepEqual(*decoded, AuthConfig{}))
}

func TestDecodeAuthConfigInvalid(t *testing.T) {
	tests := []struct {
		doc     string
		encoded string
	}{
		{doc: "not base64", encoded: "not-base64!"},
		{doc: "not JSON", encoded: base64.URLEncoding.EncodeToString([]byte("not JSON"))},
	}
	for _, tc := range tests {
		t.Run(tc.doc, func(t *testing.T) {
			_, err := DecodeAuthConfig(tc.encoded)
			assert.Check(t, is.ErrorType(err, cerrdefs.IsInvalidArgument))
			assert.Check(t, is.ErrorContains(err, "invalid auth configuration"))
		})
	}
}
