package membership

// MembershipError is a custom error type for membership errors
type MembershipError string

// Error implements the error interface
func (e MembershipError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrSessionNotFound    MembershipError = "session not found"
	ErrSessionEnded       MembershipError = "session has ended"
	ErrSessionFull        MembershipError = "session is at maximum capacity"
	ErrAlreadyMember      MembershipError = "user is already in the session"
	ErrNotMember          MembershipError = "user is not in the session"
	ErrNilConfig          MembershipError = "config cannot be nil"
	ErrNilSessionRepo     MembershipError = "session repository cannot be nil"
	ErrNilParticipantRepo MembershipError = "participant repository cannot be nil"
	ErrNilClock           MembershipError = "clock cannot be nil"
	ErrNilUUIDGenerator   MembershipError = "UUID generator cannot be nil"
)
