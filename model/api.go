// Package model - API types shared across the REST modules
package model

// ErrorResponse is the uniform error body for all failed operations.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// NewErrorResponse wraps an error message in the uniform error body.
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Success: false, Error: message}
}

// NeedListResponse is the body for the volunteer and donor listings.
type NeedListResponse struct {
	Success    bool       `json:"success"`
	Needs      []NeedView `json:"needs"`
	TotalCount int        `json:"total_count"`
}

// VolunteerContact is the need owner's contact block returned to a donor
// after a pledge so delivery can be coordinated.
type VolunteerContact struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Location string `json:"location"`
}
