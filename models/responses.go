package models

// ErrorResponse is the JSON body of every failed API request.
type ErrorResponse struct {
	StatusCode    int    `json:"statusCode"`
	StatusMessage string `json:"statusMessage"`
}

// MessageResponse is a plain acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}

// AuthResponse is returned by the register and login endpoints. The session
// credential itself travels in the auth_token cookie.
type AuthResponse struct {
	Message string      `json:"message"`
	User    UserProfile `json:"user"`
}
