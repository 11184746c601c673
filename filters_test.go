package client

import (
	"net/url"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestFiltersAdd(t *testing.T) {
	f := make(Filters).Add("status", "running", "paused").Add("status", "exited").Add("label", "foo=bar")
	assert.Check(t, is.DeepEqual(f, Filters{
		"status": {"running": true, "paused": true, "exited": true},
		"label":  {"foo=bar": true},
	}))
}

func TestFiltersClone(t *testing.T) {
	f := make(Filters).Add("name", "foo")
	clone := f.Clone()
	clone.Add("name", "bar")

	assert.Check(t, is.DeepEqual(f, Filters{"name": {"foo": true}}))
	assert.Check(t, is.DeepEqual(clone, Filters{"name": {"foo": true, "bar": true}}))
}

func TestFiltersUpdateURLValues(t *testing.T) {
	query := url.Values{}
	make(Filters).Add("dangling", "true").updateURLValues(query)
	assert.Check(t, is.Equal(query.Get("filters"), `{"dangling":{"true":true}}`))

	// An empty filter must remove a previously-set value instead of
	// sending an empty predicate.
	Filters(nil).updateURLValues(query)
	assert.Check(t, !query.Has("filters"))
}
