package request

import "time"

// InitializeRequest is the request body for initializing the registry
type InitializeRequest struct {
	Admin  string `json:"admin"`
	Server string `json:"server"`
}

// SetServerRequest is the request body for reassigning the server role
type SetServerRequest struct {
	Server string `json:"server"`
}

// SetAdminRequest is the request body for reassigning the admin role
type SetAdminRequest struct {
	Admin string `json:"admin"`
}

// RecordGameRequest is the request body for committing a game result.
// An empty winner means the game was a draw.
type RecordGameRequest struct {
	Winner    string    `json:"winner"`
	White     string    `json:"white"`
	Black     string    `json:"black"`
	Timestamp time.Time `json:"timestamp"`
}
