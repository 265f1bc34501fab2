package domain

// Session is the local record of an authenticated identity: the upstream
// bearer token plus the cached user profile. Token and user are always
// persisted together and cleared together; a session with only one half is
// treated as corrupt and purged.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// SessionState is the tri-state lifecycle of the dashboard's authentication
// context.
type SessionState int

const (
	// StateLoading is the transient initial state while the session is being
	// restored from durable storage.
	StateLoading SessionState = iota
	// StateAnonymous means no session: nothing stored, or stored data failed
	// to parse and was purged.
	StateAnonymous
	// StateAuthenticated means a token and user profile were restored.
	StateAuthenticated
)

func (s SessionState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Notification levels. Success and error notifications travel on independent
// channels; both coexist until explicitly dismissed.
const (
	NoticeSuccess = "success"
	NoticeError   = "error"
)

// Notification is a transient, dismissible message surfaced to the dashboard
// after an action completes or fails.
type Notification struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}
