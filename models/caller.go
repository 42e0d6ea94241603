package models

// Caller is the resolved identity of the requesting user, taken from the
// validated token claims.
type Caller struct {
	UserID string
	Role   UserRole
}
