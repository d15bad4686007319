package models

// Identity is the authenticated caller resolved from a bearer token.
type Identity struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
