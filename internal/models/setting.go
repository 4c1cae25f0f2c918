package models

// SettingType declares how a setting's raw value is parsed and displayed
type SettingType string

const (
	// SettingTypeText is free-form text
	SettingTypeText SettingType = "text"

	// SettingTypeInteger is a base-10 integer
	SettingTypeInteger SettingType = "integer"

	// SettingTypeStructured is a JSON document
	SettingTypeStructured SettingType = "structured"

	// SettingTypeChannel is a Discord channel ID or channel mention
	SettingTypeChannel SettingType = "channel"

	// SettingTypeRole is a Discord role ID or role mention
	SettingTypeRole SettingType = "role"
)

// Setting is one persisted configuration entry
type Setting struct {
	// Name is the setting key
	Name string `gorm:"primaryKey;size:64"`

	// Type declares the parse/display rules for Value
	Type SettingType `gorm:"column:data_type;size:16;not null"`

	// Value is the raw stored representation
	Value string `gorm:"size:1024;not null"`
}

// TableName keeps the historical table name
func (Setting) TableName() string {
	return "settings"
}
