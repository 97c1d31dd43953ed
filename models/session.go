package models

// SessionState is the discrete state of the authentication state machine.
type SessionState int

const (
	// SessionInitializing is the state before the persisted token (if any)
	// has been resolved at process start.
	SessionInitializing SessionState = iota

	// SessionAuthenticated means both a token and a derived user are present.
	SessionAuthenticated

	// SessionUnauthenticated means no usable token is held. The only way out
	// of this state is a fresh successful login.
	SessionUnauthenticated
)

func (s SessionState) String() string {
	switch s {
	case SessionInitializing:
		return "INITIALIZING"
	case SessionAuthenticated:
		return "AUTHENTICATED"
	case SessionUnauthenticated:
		return "UNAUTHENTICATED"
	}
	return "UNKNOWN"
}

// Session is a snapshot of "who is logged in".
//
// Invariant: Authenticated is true iff both Token and User are present.
type Session struct {
	// Token is the raw bearer token, empty when logged out.
	Token string

	// User is the identity derived from the token, nil when logged out.
	User *User

	// State is the current position in the session state machine.
	State SessionState
}

// Authenticated reports whether the session holds a resolved identity.
func (s Session) Authenticated() bool {
	return s.State == SessionAuthenticated && s.Token != "" && s.User != nil
}
