// Package api defines the shared HTTP response envelopes used by all
// transport handlers.
package api

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the JSON body returned for acknowledgement-only
// successes such as login and delete.
type MessageResponse struct {
	Message string `json:"message"`
}
