package models

// LoginRequest carries credentials to the login endpoint.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest carries account data to the registration endpoint.
// Registration does not grant a session; the caller must log in afterwards.
type RegisterRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse is the body returned by a successful login.
type AuthResponse struct {
	AccessToken string `json:"accessToken"`
}

// SuccessResponse is the generic acknowledgement body returned by the server
// for operations that produce no entity (e.g. registration).
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse mirrors the error body produced by the server. Only Message
// is required; the remaining fields are present on structured errors.
type ErrorResponse struct {
	Status  int    `json:"status,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message"`
	Path    string `json:"path,omitempty"`
}

// CreateTaskRequest is the payload for creating a task. The core performs no
// validation on it; input checking belongs to the form layer, the server
// enforces the actual constraints.
type CreateTaskRequest struct {
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
}

// UpdateTaskRequest is a partial update: nil fields are omitted from the
// payload and left untouched by the server.
type UpdateTaskRequest struct {
	Title       *string       `json:"title,omitempty"`
	Description *string       `json:"description,omitempty"`
	Status      *TaskStatus   `json:"status,omitempty"`
	Priority    *TaskPriority `json:"priority,omitempty"`
}
