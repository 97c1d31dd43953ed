package models

// User holds the identity attributes of the logged-in account.
//
// On the client the user is reconstructed from the bearer token's subject
// claim without signature verification, so Username is a display hint only
// and must never be used for authorization decisions.
type User struct {
	// Username is the unique login identifier, taken from the token subject.
	Username string `json:"username"`

	// Name is the optional display name provided at registration.
	Name string `json:"name,omitempty"`
}
