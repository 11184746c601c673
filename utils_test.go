package client

import (
	"testing"

	cerrdefs "github.com/containerd/errdefs"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestTrimID(t *testing.T) {
	tests := []struct {
		doc         string
		id          string
		expected    string
		expectedErr string
	}{
		{
			doc:         "empty",
			expectedErr: "invalid container name or ID: value is empty",
		},
		{
			doc:         "whitespace only",
			id:          "   \t ",
			expectedErr: "invalid container name or ID: value is empty",
		},
		{
			doc:      "valid",
			id:       "container_id",
			expected: "container_id",
		},
		{
			doc:      "surrounding whitespace",
			id:       "  container_id  ",
			expected: "container_id",
		},
	}
	for _, tc := range tests {
		t.Run(tc.doc, func(t *testing.T) {
			id, err := trimID("container", tc.id)
			if tc.expectedErr != "" {
				assert.Check(t, is.ErrorType(err, cerrdefs.IsInvalidArgument))
				assert.Check(t, is.Error(err, tc.expectedErr))
				return
			}
			assert.NilError(t, err)
			assert.Check(t, is.Equal(id, tc.expected))
		})
	}
}

func TestEncodePlatform(t *testing.T) {
	p, err := encodePlatform(&ocispec.Platform{
		Architecture: "arm64",
		OS:           "linux",
		Variant:      "v8",
	})
	assert.NilError(t, err)
	assert.Check(t, is.Equal(p, `{"architecture":"arm64","os":"linux","variant":"v8"}`))
}
