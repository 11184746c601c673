package common

// ErrorResponse is the JSON document the daemon produces for all error
// responses.
type ErrorResponse struct {
	// Message is the error message.
	Message string `json:"message"`
}

func (e ErrorResponse) Error() string {
	return e.Message
}
