package domain

// User is the authenticated identity resolved from a bearer token.
// The full profile lives in the external identity provider; only the
// fields the API layer needs are carried here.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email,omitempty"`
}
