package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	cerrdefs "github.com/containerd/errdefs"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/moorage/client/api/types/registry"
	"github.com/moorage/client/api/types/swarm"
)

func TestServiceCreateError(t *testing.T) {
	client, err := New(WithMockClient(errorMock(http.StatusInternalServerError, "Server error")))
	assert.NilError(t, err)

	_, err = client.Services().Create(context.Background(), ServiceCreateOptions{})
	assert.Check(t, is.ErrorType(err, cerrdefs.IsInternal))
}

func TestServiceCreateConflictingSpecs(t *testing.T) {
	client, err := New(WithMockClient(func(req *http.Request) (*http.Response, error) {
		t.Fatal("unexpected request")
		return nil, nil
	}))
	assert.NilError(t, err)

	tests := []struct {
		doc  string
		spec swarm.ServiceSpec
	}{
		{
			doc: "container and plugin spec",
			spec: swarm.ServiceSpec{
				TaskTemplate: swarm.TaskSpec{
					ContainerSpec: &swarm.ContainerSpec{},
					PluginSpec:    &swarm.PluginSpec{},
					Runtime:       swarm.RuntimePlugin,
				},
			},
		},
		{
			doc: "plugin spec with default runtime",
			spec: swarm.ServiceSpec{
				TaskTemplate: swarm.TaskSpec{
					PluginSpec: &swarm.PluginSpec{},
				},
			},
		},
		{
			doc: "container spec with plugin runtime",
			spec: swarm.ServiceSpec{
				TaskTemplate: swarm.TaskSpec{
					ContainerSpec: &swarm.ContainerSpec{},
					Runtime:       swarm.RuntimePlugin,
				},
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.doc, func(t *testing.T) {
			_, err := client.Services().Create(context.Background(), ServiceCreateOptions{Spec: tc.spec})
			assert.Check(t, is.ErrorType(err, cerrdefs.IsInvalidArgument))
		})
	}
}

func TestServiceCreate(t *testing.T) {
	const expectedURL = "/services/create"
	client, err := New(WithMockClient(func(req *http.Request) (*http.Response, error) {
		if err := assertRequest(req, http.MethodPost, expectedURL); err != nil {
			return nil, err
		}
		var spec swarm.ServiceSpec
		if err := json.NewDecoder(req.Body).Decode(&spec); err != nil {
			return nil, err
		}
		// An empty container-runtime spec gets a container spec filled in,
		// with the image normalized to carry an explicit tag.
		if spec.TaskTemplate.ContainerSpec == nil {
			return nil, fmt.Errorf("expected a container spec to be filled in")
		}
		if image := spec.TaskTemplate.ContainerSpec.Image; image != "myimage:latest" {
			return nil, fmt.Errorf("expected image %q, got %q", "myimage:latest", image)
		}
		return jsonResponse(swarm.ServiceCreateResponse{
			ID:       "service_id",
			Warnings: []string{"unable to pin image"},
		})
	}))
	assert.NilError(t, err)

	result, err := client.Services().Create(context.Background(), ServiceCreateOptions{
		Spec: swarm.ServiceSpec{
			TaskTemplate: swarm.TaskSpec{
				ContainerSpec: &swarm.ContainerSpec{Image: "myimage"},
			},
		},
	})
	assert.NilError(t, err)
	assert.Check(t, is.Equal(result.Service.ID(), "service_id"))
	assert.Check(t, is.DeepEqual(result.Warnings, []string{"unable to pin image"}))
}

func TestServiceCreateDigestedImage(t *testing.T) {
	const image = "myimage@sha256:ff254bdf9dd8a8fb95c41e89cd48b48a592d9b9ac61b2bbf4f88cd52a4b055b6"
	client, err := New(WithMockClient(func(req *http.Request) (*http.Response, error) {
		var spec swarm.ServiceSpec
		if err := json.NewDecoder(req.Body).Decode(&spec); err != nil {
			return nil, err
		}
		// A digested reference is sent as-is; no tag is appended.
		if actual := spec.TaskTemplate.ContainerSpec.Image; actual != image {
			return nil, fmt.Errorf("expected image %q, got %q", image, actual)
		}
		return jsonResponse(swarm.ServiceCreateResponse{ID: "service_id"})
	}))
	assert.NilError(t, err)

	_, err = client.Services().Create(context.Background(), ServiceCreateOptions{
		Spec: swarm.ServiceSpec{
			TaskTemplate: swarm.TaskSpec{
				ContainerSpec: &swarm.ContainerSpec{Image: image},
			},
		},
	})
	assert.NilError(t, err)
}

func TestServiceCreateWithRegistryAuth(t *testing.T) {
	encodedAuth, err := registry.EncodeAuthConfig(registry.AuthConfig{
		Username: "user",
		Password: "pass",
	})
	assert.NilError(t, err)

	client, err := New(WithMockClient(func(req *http.Request) (*http.Response, error) {
		if auth := req.Header.Get(registry.AuthHeader); auth != encodedAuth {
			return nil, fmt.Errorf("%s header not set properly, got %q", registry.AuthHeader, auth)
		}
		return jsonResponse(swarm.ServiceCreateResponse{ID: "service_id"})
	}))
	assert.NilError(t, err)

	_, err = client.Services().Create(context.Background(), ServiceCreateOptions{
		EncodedRegistryAuth: encodedAuth,
	})
	assert.NilError(t, err)
}
