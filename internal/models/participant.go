package models

import (
	"time"
)

// SessionParticipant is the durable attendance record for one user on one
// session. Exactly one row exists per (session, user) pair; the row is
// created on the user's first response and only updated afterwards.
//
// Absent and a non-nil GroupID are mutually exclusive: selecting a group
// clears the absent flag, and marking absent clears the group and the late
// flag. Late may only be set once a group has been recorded.
type SessionParticipant struct {
	SessionID int64  `gorm:"column:session;primaryKey;autoIncrement:false"`
	UserID    string `gorm:"column:user;primaryKey;size:32"`

	Absent bool `gorm:"not null;default:false"`
	Late   bool `gorm:"not null;default:false"`

	// GroupID is the group the user declared presence in, nil when absent
	// or not yet declared
	GroupID *int64 `gorm:"column:group"`

	UpdatedAt time.Time
}

// TableName keeps the historical table name
func (SessionParticipant) TableName() string {
	return "session_participants"
}
