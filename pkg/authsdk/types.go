package authsdk

import "time"

// MessageResponse is the body of plain status responses, including errors.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports per-dependency readiness.
type HealthChecks struct {
	Database string `json:"database"`
}

// EmailMessageResponse acknowledges an account operation.
type EmailMessageResponse struct {
	Email   string `json:"email"`
	Message string `json:"message"`
}

// EmailResponse identifies the session's owner.
type EmailResponse struct {
	Email string `json:"email"`
}

// ResetTokenResponse carries a freshly issued reset token.
type ResetTokenResponse struct {
	Email      string `json:"email"`
	ResetToken string `json:"reset_token"`
}

// StatusResponse is the public API status.
type StatusResponse struct {
	Status string `json:"status"`
}

// UserResponse is the public view of a user. Hashes and tokens are never
// returned.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
