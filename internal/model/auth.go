package model

// LoginRequest is the credential payload for POST /login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse reports the outcome of a login or logout attempt.
type LoginResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	Authenticated bool   `json:"authenticated"`
}

// AuthStatus is returned by GET /auth/status. Username is null when the
// request carries no valid session.
type AuthStatus struct {
	Authenticated bool    `json:"authenticated"`
	Username      *string `json:"username"`
}

// DebugInfo is returned by GET /debug.
type DebugInfo struct {
	DebugMode bool `json:"debug_mode"`
}
