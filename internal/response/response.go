package response

// MessageResponse is the body of mutations that return no resource.
type MessageResponse struct {
	Message string `json:"message" example:"Cycled"`
}

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	// Machine-readable error code
	// example: VALIDATION_ERROR
	Code string `json:"code"`

	// Human-readable message
	// example: players: duo entry needs 2 player name(s), got 1
	Message string `json:"message"`

	// Optional details, e.g. the failing field
	// example: players
	Details string `json:"details,omitempty"`
}

// HealthResponse reports whether the store answered.
type HealthResponse struct {
	Status  string `json:"status" example:"ok"`
	Message string `json:"message,omitempty"`
}
