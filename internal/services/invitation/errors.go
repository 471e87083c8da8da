package invitation

// InvitationError is a custom error type for invitation lifecycle errors
type InvitationError string

// Error implements the error interface
func (e InvitationError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvitationNotFound  InvitationError = "invitation not found"
	ErrInvitationExpired   InvitationError = "invitation has expired"
	ErrInvitationResponded InvitationError = "invitation was already responded to"
	ErrSessionNotFound     InvitationError = "session not found"
	ErrSessionEnded        InvitationError = "session has ended"
	ErrSessionFull         InvitationError = "session is at maximum capacity"
	ErrAlreadyMember       InvitationError = "user is already in the session"
	ErrCodeGeneration      InvitationError = "could not mint a unique invite code"
	ErrNilConfig           InvitationError = "config cannot be nil"
	ErrNilInvitationRepo   InvitationError = "invitation repository cannot be nil"
	ErrNilSessionRepo      InvitationError = "session repository cannot be nil"
	ErrNilMembership       InvitationError = "membership service cannot be nil"
	ErrNilCodeGenerator    InvitationError = "code generator cannot be nil"
	ErrNilClock            InvitationError = "clock cannot be nil"
	ErrNilUUIDGenerator    InvitationError = "UUID generator cannot be nil"
)
