package models

// ErrorsResponse is the body of a 400 response caused by failed field
// validation. Errors holds one message per failed rule, in rule order.
type ErrorsResponse struct {
	Errors []string `json:"errors"`
}

// ErrorResponse is the body of every single-message failure
// (duplicate email, 403, 404, 500).
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the body of an authentication failure.
type MessageResponse struct {
	Message string `json:"message"`
}
