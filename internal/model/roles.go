package model

// RoleState holds the two singleton role slots. Both slots are unset until
// initialization succeeds exactly once; after that both are always set,
// possibly reassigned later but never cleared.
type RoleState struct {
	// Admin may reassign either role slot.
	Admin Identity `json:"admin"`

	// Server is the single identity allowed to commit game results.
	Server Identity `json:"server"`
}
