package client

import (
	"context"
	"net/http"
	"testing"

	cerrdefs "github.com/containerd/errdefs"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/moorage/client/api/types/image"
)

func TestImageRemoveError(t *testing.T) {
	client, err := New(WithMockClient(errorMock(http.StatusInternalServerError, "Server error")))
	assert.NilError(t, err)

	_, err = client.Images().Get("image_id").Remove(context.Background(), ImageRemoveOptions{})
	assert.Check(t, is.ErrorType(err, cerrdefs.IsInternal))
}

func TestImageRemoveImageNotFound(t *testing.T) {
	client, err := New(WithMockClient(errorMock(http.StatusNotFound, "No such image: missing")))
	assert.NilError(t, err)

	_, err = client.Images().Get("missing").Remove(context.Background(), ImageRemoveOptions{})
	assert.Check(t, is.ErrorType(err, cerrdefs.IsNotFound))
	assert.Check(t, is.ErrorContains(err, "No such image"))
}

func TestImageRemoveConflict(t *testing.T) {
	client, err := New(WithMockClient(errorMock(http.StatusConflict, "image is being used by running container c123")))
	assert.NilError(t, err)

	_, err = client.Images().Get("image_id").Remove(context.Background(), ImageRemoveOptions{})
	assert.Check(t, is.ErrorType(err, cerrdefs.IsConflict))
}

func TestImageRemove(t *testing.T) {
	const expectedURL = "/images/image_id"
	tests := []struct {
		doc                 string
		options             ImageRemoveOptions
		expectedQueryParams map[string]string
	}{
		{
			doc: "defaults",
			expectedQueryParams: map[string]string{
				"force":   "",
				"noprune": "1",
			},
		},
		{
			doc:     "force, prune children",
			options: ImageRemoveOptions{Force: true, PruneChildren: true},
			expectedQueryParams: map[string]string{
				"force":   "1",
				"noprune": "",
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.doc, func(t *testing.T) {
			client, err := New(WithMockClient(func(req *http.Request) (*http.Response, error) {
				if err := assertRequest(req, http.MethodDelete, expectedURL); err != nil {
					return nil, err
				}
				query := req.URL.Query()
				for key, expected := range tc.expectedQueryParams {
					if actual := query.Get(key); actual != expected {
						t.Errorf("%s not set in URL query properly. Expected %q, got %q", key, expected, actual)
					}
				}
				return jsonResponse([]image.DeleteResponse{
					{Untagged: "image_id1"},
					{Deleted: "image_id"},
				})
			}))
			assert.NilError(t, err)

			dels, err := client.Images().Get("image_id").Remove(context.Background(), tc.options)
			assert.NilError(t, err)
			assert.Check(t, is.Len(dels, 2))
		})
	}
}
