package models

import (
	"time"
)

// Group represents a named player sub-group participants can affiliate with
type Group struct {
	// ID is the store-generated identifier for the group
	ID int64 `gorm:"primaryKey;autoIncrement"`

	// Name is the display name of the group
	Name string `gorm:"size:255;not null"`

	// Acronym is the short uppercase tag shown in tallies, at most 6 characters
	Acronym string `gorm:"size:6;not null"`

	// Emoji is a single glyph or custom-emoji reference used for display
	Emoji string `gorm:"size:64;not null"`

	// Description is optional free text, nil when none was provided
	Description *string `gorm:"size:255"`

	// AddedBy is the Discord user ID of the creator
	AddedBy string `gorm:"size:32;not null"`

	// AddedAt is when the group was registered
	AddedAt time.Time
}

// TableName keeps the historical table name
func (Group) TableName() string {
	return "player_groups"
}
