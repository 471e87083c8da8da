package session

// SessionError is a custom error type for session hosting errors
type SessionError string

// Error implements the error interface
func (e SessionError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrSessionNotFound  SessionError = "session not found"
	ErrSessionEnded     SessionError = "session has ended"
	ErrNotHost          SessionError = "only the host may perform this action"
	ErrMissingTitle     SessionError = "session title cannot be empty"
	ErrMissingHost      SessionError = "host ID cannot be empty"
	ErrMissingSessionID SessionError = "session ID cannot be empty"
	ErrEmptyMessage     SessionError = "message body cannot be empty"
	ErrNilConfig        SessionError = "config cannot be nil"
	ErrNilSessionRepo   SessionError = "session repository cannot be nil"
	ErrNilMessageRepo   SessionError = "message repository cannot be nil"
	ErrNilMembership    SessionError = "membership service cannot be nil"
	ErrNilClock         SessionError = "clock cannot be nil"
	ErrNilUUIDGenerator SessionError = "UUID generator cannot be nil"
)
