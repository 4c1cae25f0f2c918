package session

import "context"

// Service defines the interface for session lifecycle and attendance
// operations
type Service interface {
	// CreateSession validates the date/time input and inserts a new session.
	// The row exists before any group is attached; a wizard that never
	// confirms leaves it group-less.
	CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error)

	// CancelSession rolls back a provisional session and its group links
	CancelSession(ctx context.Context, input *CancelSessionInput) (*CancelSessionOutput, error)

	// AttachGroups persists the wizard's confirmed group selection
	AttachGroups(ctx context.Context, input *AttachGroupsInput) (*AttachGroupsOutput, error)

	// CloseSession deactivates a session so it no longer accepts responses
	CloseSession(ctx context.Context, input *CloseSessionInput) (*CloseSessionOutput, error)

	// SetSessionMessage records the published status message ID
	SetSessionMessage(ctx context.Context, input *SetSessionMessageInput) (*SetSessionMessageOutput, error)

	// GetSessionStatus loads everything the status renderer needs
	GetSessionStatus(ctx context.Context, input *GetSessionStatusInput) (*GetSessionStatusOutput, error)

	// RecordAttendance applies one user's response to a session
	RecordAttendance(ctx context.Context, input *RecordAttendanceInput) (*RecordAttendanceOutput, error)
}
