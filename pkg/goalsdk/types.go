package goalsdk

// Task is the wire representation of a task. Field names follow the
// persisted document layout; dates travel as RFC 3339 strings (a bare
// YYYY-MM-DD date is also accepted on input).
type Task struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	Completed        bool   `json:"completed"`
	Date             string `json:"date"`
	DepartmentalGoal string `json:"departmentalGoal,omitempty"`
	User             string `json:"user"`
}

// Objective is the wire representation of a departmental objective.
type Objective struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type ChangePasswordRequest struct {
	Username        string `json:"username"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// CreateTaskRequest carries the fields accepted when creating a task. The
// completion flag always starts false server-side.
type CreateTaskRequest struct {
	Title            string `json:"title"`
	Description      string `json:"description"`
	Date             string `json:"date"`
	DepartmentalGoal string `json:"departmentalGoal,omitempty"`
}

// UpdateTaskRequest carries the full replacement of a task's mutable fields.
type UpdateTaskRequest struct {
	Title            string `json:"title"`
	Description      string `json:"description"`
	Date             string `json:"date"`
	Completed        bool   `json:"completed"`
	DepartmentalGoal string `json:"departmentalGoal,omitempty"`
}

type ToggleTaskRequest struct {
	Completed bool `json:"completed"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// HealthChecks reports the status of critical dependencies for /readyz.
type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}

type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// ErrorResponse is the error envelope every non-2xx response carries.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}
