package model

// SessionStatus is the authentication state of a browser session.
type SessionStatus string

const (
	SessionUnauthenticated SessionStatus = "unauthenticated"
	SessionAuthenticated   SessionStatus = "authenticated"
)

// Session is the client-side authentication state. It is owned exclusively by
// the session store; everything else gets read-only copies. The constructors
// below are the only way to build one, which keeps the invariant
// "authenticated iff user is non-nil" out of reach of callers.
type Session struct {
	Status SessionStatus `json:"status"`
	User   *UserRecord   `json:"user"`
}

func NewAuthenticatedSession(user *UserRecord) Session {
	if user == nil {
		return NewUnauthenticatedSession()
	}
	return Session{Status: SessionAuthenticated, User: user}
}

func NewUnauthenticatedSession() Session {
	return Session{Status: SessionUnauthenticated, User: nil}
}

// Authenticated reports whether the session carries a logged-in user.
func (s Session) Authenticated() bool {
	return s.Status == SessionAuthenticated && s.User != nil
}

// Valid checks the status/user invariant.
func (s Session) Valid() bool {
	if s.Status == SessionAuthenticated {
		return s.User != nil
	}
	return s.User == nil
}
