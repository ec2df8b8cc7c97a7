package registry

import "github.com/soomtochukwu/XLMate/internal/model"

// Authorized is the access predicate for mutating operations: it reports
// whether caller matches the identity currently holding the required role
// slot. It is checked before any record access, so an unauthorized caller
// cannot probe whether a game id exists.
func Authorized(caller, holder model.Identity) bool {
	return caller != "" && caller == holder
}
