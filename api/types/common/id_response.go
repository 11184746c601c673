package common

// IDResponse is the response for API endpoints that return a single
// identifier, such as "POST /containers/create" sub-resources.
type IDResponse struct {
	// ID is the id of the newly created object.
	ID string `json:"Id"`
}
