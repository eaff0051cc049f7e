package models

// Session is the process-wide authenticated-user context. It is a snapshot
// of the stored credential taken at login time: later admin edits to the
// user's points or status do not show up here until the next login. It is
// never persisted.
type Session struct {
	Username string
	IsAdmin  bool
	Points   int
	Status   Status
}

// Anonymous returns the cleared session used before login and after logout.
func Anonymous() *Session {
	return &Session{Status: StatusBronze}
}

// LoggedIn reports whether the session carries an authenticated user.
func (s *Session) LoggedIn() bool {
	return s != nil && s.Username != ""
}
