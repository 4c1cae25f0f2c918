package models

import (
	"time"
)

// Session represents a scheduled group event
type Session struct {
	// ID is the store-generated identifier for the session
	ID int64 `gorm:"primaryKey;autoIncrement"`

	// Timestamp is the absolute instant the session starts
	Timestamp time.Time `gorm:"not null"`

	// Details is optional free text shown on the status message
	Details *string `gorm:"size:1024"`

	// CreatedBy is the Discord user ID of the session creator
	CreatedBy string `gorm:"size:32;not null"`

	// Active indicates whether the session still accepts responses
	Active bool `gorm:"not null;default:true"`

	// MessageID references the published status message, nil until first publish
	MessageID *string `gorm:"size:32"`
}

// SessionGroup associates a group with a session it may participate in.
// One row per group selected during the creation wizard.
type SessionGroup struct {
	SessionID int64 `gorm:"column:session;primaryKey;autoIncrement:false"`
	GroupID   int64 `gorm:"column:group;primaryKey;autoIncrement:false"`
}

// TableName keeps the historical table name
func (SessionGroup) TableName() string {
	return "session_groups"
}
