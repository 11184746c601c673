package client

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	cerrdefs "github.com/containerd/errdefs"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/moorage/client/api/types/swarm"
)

func TestServiceGetIsLocal(t *testing.T) {
	client, err := New(WithMockClient(func(req *http.Request) (*http.Response, error) {
		t.Fatal("unexpected request")
		return nil, nil
	}))
	assert.NilError(t, err)

	svc := client.Services().Get("service_id")
	assert.Check(t, is.Equal(svc.ID(), "service_id"))
	assert.Check(t, is.Nil(svc.State()))
}

func TestServiceListError(t *testing.T) {
	client, err := New(WithMockClient(errorMock(http.StatusInternalServerError, "Server error")))
	assert.NilError(t, err)

	_, err = client.Services().List(context.Background(), ServiceListOptions{})
	assert.Check(t, is.ErrorType(err, cerrdefs.IsInternal))
}

func TestServiceList(t *testing.T) {
	const expectedURL = "/services"

	tests := []struct {
		doc           string
		options       ServiceListOptions
		expectedQuery map[string]string
	}{
		{
			doc:           "no options",
			expectedQuery: map[string]string{"filters": "", "status": ""},
		},
		{
			doc: "filters",
			options: ServiceListOptions{
				Filters: make(Filters).Add("label", "label1", "label2"),
			},
			expectedQuery: map[string]string{
				"filters": `{"label":{"label1":true,"label2":true}}`,
				"status":  "",
			},
		},
		{
			doc:           "with status",
			options:       ServiceListOptions{Status: true},
			expectedQuery: map[string]string{"status": "true"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.doc, func(t *testing.T) {
			client, err := New(WithMockClient(func(req *http.Request) (*http.Response, error) {
				if err := assertRequest(req, http.MethodGet, expectedURL); err != nil {
					return nil, err
				}
				query := req.URL.Query()
				for key, expected := range tc.expectedQuery {
					if actual := query.Get(key); actual != expected {
						return nil, fmt.Errorf("%s not set in URL query properly. Expected %q, got %q", key, expected, actual)
					}
				}
				return jsonResponse([]swarm.Service{
					{ID: "service_id1"},
					{ID: "service_id2"},
				})
			}))
			assert.NilError(t, err)

			services, err := client.Services().List(context.Background(), tc.options)
			assert.NilError(t, err)
			assert.Check(t, is.Len(services, 2))
			assert.Check(t, is.Equal(services[0].ID(), "service_id1"))
			assert.Check(t, is.Equal(services[1].ID(), "service_id2"))

			// Each handle carries the listed service as its snapshot.
			assert.Assert(t, services[0].State() != nil)
			assert.Check(t, is.Equal(services[0].State().ID, "service_id1"))
		})
	}
}

func TestServiceListStatusOnOldDaemon(t *testing.T) {
	client, err := New(
		WithVersion("1.40"),
		WithMockClient(func(req *http.Request) (*http.Response, error) {
			if status := req.URL.Query().Get("status"); status != "" {
				return nil, fmt.Errorf("status should not be set in URL query, got %q", status)
			}
			return jsonResponse([]swarm.Service{})
		}),
	)
	assert.NilError(t, err)

	_, err = client.Services().List(context.Background(), ServiceListOptions{Status: true})
	assert.NilError(t, err)
}
