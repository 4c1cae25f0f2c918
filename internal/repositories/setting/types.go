package setting

import "github.com/guildops/sessionbot/internal/models"

// ListSettingsInput contains parameters for listing settings
type ListSettingsInput struct{}

// ListSettingsOutput contains the result of listing settings
type ListSettingsOutput struct {
	Settings []*models.Setting
}

// GetSettingInput contains parameters for retrieving a setting
type GetSettingInput struct {
	Name string
}

// SaveSettingInput contains parameters for saving a setting
type SaveSettingInput struct {
	Setting *models.Setting
}
