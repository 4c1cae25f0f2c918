package setting

import (
	"context"

	"github.com/guildops/sessionbot/internal/models"
)

// Repository defines the interface for settings persistence
type Repository interface {
	// ListSettings retrieves all persisted settings
	ListSettings(ctx context.Context, input *ListSettingsInput) (*ListSettingsOutput, error)

	// GetSetting retrieves a setting by name, ErrSettingNotFound when absent
	GetSetting(ctx context.Context, input *GetSettingInput) (*models.Setting, error)

	// SaveSetting inserts or replaces a setting keyed on its name
	SaveSetting(ctx context.Context, input *SaveSettingInput) error
}
