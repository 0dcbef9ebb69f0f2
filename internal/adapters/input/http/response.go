package http

type (
	// SessionResponse struct - HTTP response DTO for the session query
	SessionResponse struct {
		LoggedIn bool          `json:"loggedIn"`
		User     *UserResponse `json:"user,omitempty"`
	}

	// UserResponse struct - HTTP response DTO for the session identity
	UserResponse struct {
		ID            string `json:"id"`
		Username      string `json:"username"`
		Discriminator string `json:"discriminator"`
		Avatar        string `json:"avatar"`
		Email         string `json:"email,omitempty"`
	}

	// OrderResponse struct - HTTP response DTO for an accepted order
	OrderResponse struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}

	// ErrorResponse struct - HTTP response DTO for rejected requests
	ErrorResponse struct {
		Error string `json:"error"`
	}

	// HealthResponse struct - HTTP response DTO for the health endpoint
	HealthResponse struct {
		Status string `json:"status"`
	}
)

// Client-facing error messages
const (
	MsgNotLoggedIn = "Not logged in"
	MsgMailFailure = "Failed to send order"
	MsgInvalidBody = "Invalid request body"
)
