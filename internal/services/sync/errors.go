package sync

// SyncError is a custom error type for reconciliation errors
type SyncError string

// Error implements the error interface
func (e SyncError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig            SyncError = "config cannot be nil"
	ErrNilSessionRepo       SyncError = "session repository cannot be nil"
	ErrNilSessionRemote     SyncError = "session remote cannot be nil"
	ErrNilParticipantRepo   SyncError = "participant repository cannot be nil"
	ErrNilParticipantRemote SyncError = "participant remote cannot be nil"
	ErrNilInvitationRepo    SyncError = "invitation repository cannot be nil"
	ErrNilInvitationRemote  SyncError = "invitation remote cannot be nil"
	ErrNilMessageRepo       SyncError = "message repository cannot be nil"
	ErrNilMessageRemote     SyncError = "message remote cannot be nil"
	ErrNilClock             SyncError = "clock cannot be nil"
	ErrMissingSessionID     SyncError = "session ID cannot be empty"
)
