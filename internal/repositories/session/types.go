package session

import "github.com/guildops/sessionbot/internal/models"

// CreateSessionInput contains parameters for creating a session
type CreateSessionInput struct {
	Session *models.Session
}

// GetSessionInput contains parameters for retrieving a session
type GetSessionInput struct {
	SessionID int64
}

// DeleteSessionInput contains parameters for deleting a session
type DeleteSessionInput struct {
	SessionID int64
}

// SetSessionMessageInput contains parameters for recording the status message ID
type SetSessionMessageInput struct {
	SessionID int64
	MessageID string
}

// SetSessionActiveInput contains parameters for flipping the active flag
type SetSessionActiveInput struct {
	SessionID int64
	Active    bool
}

// AddSessionGroupInput contains parameters for attaching a group to a session
type AddSessionGroupInput struct {
	SessionID int64
	GroupID   int64
}

// GetSessionGroupsInput contains parameters for listing a session's groups
type GetSessionGroupsInput struct {
	SessionID int64
}

// GetSessionGroupsOutput contains the groups attached to a session
type GetSessionGroupsOutput struct {
	Groups []*models.Group
}

// GetParticipantInput contains parameters for retrieving a participation row
type GetParticipantInput struct {
	SessionID int64
	UserID    string
}

// UpsertParticipantInput contains parameters for the atomic participation upsert
type UpsertParticipantInput struct {
	Participant *models.SessionParticipant
}

// GetAttendanceInput contains parameters for aggregating attendance
type GetAttendanceInput struct {
	SessionID int64
}

// GetAttendanceOutput contains the attendance aggregates for a session.
// GroupCounts maps group ID to the number of members who declared presence
// in it; rows with no declared group do not appear.
type GetAttendanceOutput struct {
	Absent      int64
	Late        int64
	GroupCounts map[int64]int64
}
