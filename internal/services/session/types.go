package session

import "github.com/guildops/sessionbot/internal/models"

// Action is one of the recognized attendance responses
type Action string

const (
	// ActionGroupSelection declares presence in a single group
	ActionGroupSelection Action = "group-selection"

	// ActionAbsent declares absence, clearing any group and late flag
	ActionAbsent Action = "absent"

	// ActionLate flags a previously declared presence as possibly late
	ActionLate Action = "late"
)

// CreateSessionInput contains parameters for creating a session
type CreateSessionInput struct {
	// Date in strict DD/MM/YYYY form
	Date string

	// Time in strict 24h HH:MM form
	Time string

	// Details is optional free text
	Details string

	// CreatedBy is the Discord user creating the session
	CreatedBy string
}

// CreateSessionOutput contains the created session
type CreateSessionOutput struct {
	Session *models.Session
}

// CancelSessionInput contains parameters for rolling back a session
type CancelSessionInput struct {
	SessionID int64
}

// CancelSessionOutput contains the result of the rollback
type CancelSessionOutput struct {
	Deleted bool
}

// AttachGroupsInput contains the confirmed group selection for a session
type AttachGroupsInput struct {
	SessionID int64
	GroupIDs  []int64
}

// AttachGroupsOutput reports which groups were attached. A group missing
// from Attached failed to insert and was skipped.
type AttachGroupsOutput struct {
	Attached []int64
}

// CloseSessionInput contains parameters for deactivating a session
type CloseSessionInput struct {
	SessionID int64
}

// CloseSessionOutput contains the result of deactivating a session
type CloseSessionOutput struct {
	Closed bool
}

// SetSessionMessageInput contains parameters for recording the status message ID
type SetSessionMessageInput struct {
	SessionID int64
	MessageID string
}

// SetSessionMessageOutput contains the result of recording the message ID
type SetSessionMessageOutput struct{}

// GetSessionStatusInput contains parameters for loading render state
type GetSessionStatusInput struct {
	SessionID int64
}

// GetSessionStatusOutput carries everything the status renderer needs.
// GroupCounts only contains groups attached to the session; participation
// rows referencing any other group are excluded from the tally.
type GetSessionStatusOutput struct {
	Session     *models.Session
	Groups      []*models.Group
	Absent      int64
	Late        int64
	GroupCounts map[int64]int64
}

// RecordAttendanceInput contains one user's response to a session
type RecordAttendanceInput struct {
	SessionID int64
	UserID    string
	Action    Action

	// GroupID is the selected group, only meaningful for ActionGroupSelection
	GroupID int64
}

// RecordAttendanceOutput contains the applied participation row and, for a
// group selection, the chosen group for the confirmation reply
type RecordAttendanceOutput struct {
	Participant *models.SessionParticipant
	Group       *models.Group
}
