package api

// Response represents a generic API response for success or error messages.
type Response struct {
	Success   bool   `json:"success" example:"true"`                           // Indicates if the operation was successful.
	Message   string `json:"message,omitempty" example:"Operation successful"` // Optional success message.
	Error     string `json:"error,omitempty" example:"Resource not found"`     // Optional error message.
	RequestID string `json:"request_id,omitempty" example:"host/abc-000001"`   // Request ID assigned by the router.
}

// InterestsResponse lists the interest tags the planner accepts.
type InterestsResponse struct {
	Interests []string `json:"interests" example:"History,Food"`
}
