package client

import (
	"encoding/json"
	"net/url"
)

// Filters restricts a list or prune request to items matching a set of
// predicates, evaluated daemon-side.
//
// Each map entry is one filter term with a set of acceptable values: a term
// matches when any of its values match, and an item is selected when every
// term matches. The zero value is empty and, like any nil map, read-only.
type Filters map[string]map[string]bool

// Add appends values to the value-set of term, returning f for chaining:
//
//	f := make(Filters).Add("name", "foo", "bar").Add("status", "exited")
func (f Filters) Add(term string, values ...string) Filters {
	if _, ok := f[term]; !ok {
		f[term] = make(map[string]bool)
	}
	for _, v := range values {
		f[term][v] = true
	}
	return f
}

// Clone returns a deep copy of f; mutating the copy leaves f untouched.
func (f Filters) Clone() Filters {
	out := make(Filters, len(f))
	for term, values := range f {
		inner := make(map[string]bool, len(values))
		for v, ok := range values {
			inner[v] = ok
		}
		out[term] = inner
	}
	return out
}

// updateURLValues writes f into the "filters" query parameter as a JSON
// document, replacing whatever was there. An empty f removes the parameter
// instead of sending an empty document.
func (f Filters) updateURLValues(values url.Values) {
	if len(f) > 0 {
		b, err := json.Marshal(f)
		if err != nil {
			panic(err) // Marshaling builtin types should never fail
		}
		values.Set("filters", string(b))
	} else {
		values.Del("filters")
	}
}
