package setting

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/guildops/sessionbot/internal/models"
)

// ErrSettingNotFound is returned when a setting is not found
var ErrSettingNotFound = errors.New("setting not found")

// Config holds configuration for the gorm setting repository
type Config struct {
	// DB is the shared gorm handle
	DB *gorm.DB
}

// gormRepository implements the Repository interface on the relational store
type gormRepository struct {
	db *gorm.DB
}

// NewGorm creates a new gorm-backed setting repository
func NewGorm(cfg *Config) (*gormRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.DB == nil {
		return nil, errors.New("db cannot be nil")
	}

	return &gormRepository{
		db: cfg.DB,
	}, nil
}

// ListSettings retrieves all persisted settings
func (r *gormRepository) ListSettings(ctx context.Context, input *ListSettingsInput) (*ListSettingsOutput, error) {
	var settings []*models.Setting
	if err := r.db.WithContext(ctx).Order("name").Find(&settings).Error; err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}

	return &ListSettingsOutput{
		Settings: settings,
	}, nil
}

// GetSetting retrieves a setting by name
func (r *gormRepository) GetSetting(ctx context.Context, input *GetSettingInput) (*models.Setting, error) {
	if input == nil || input.Name == "" {
		return nil, errors.New("input and name cannot be empty")
	}

	var setting models.Setting
	err := r.db.WithContext(ctx).Where("name = ?", input.Name).First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSettingNotFound
		}
		return nil, fmt.Errorf("failed to get setting %q: %w", input.Name, err)
	}

	return &setting, nil
}

// SaveSetting inserts or replaces a setting keyed on its name
func (r *gormRepository) SaveSetting(ctx context.Context, input *SaveSettingInput) error {
	if input == nil || input.Setting == nil {
		return errors.New("input and setting cannot be nil")
	}

	if input.Setting.Name == "" {
		return errors.New("setting name cannot be empty")
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"data_type", "value"}),
		}).
		Create(input.Setting).Error
	if err != nil {
		return fmt.Errorf("failed to save setting %q: %w", input.Setting.Name, err)
	}

	return nil
}
