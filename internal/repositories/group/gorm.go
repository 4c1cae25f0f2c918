package group

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/guildops/sessionbot/internal/models"
)

// ErrGroupNotFound is returned when a group is not found
var ErrGroupNotFound = errors.New("group not found")

// Config holds configuration for the gorm group repository
type Config struct {
	// DB is the shared gorm handle
	DB *gorm.DB
}

// gormRepository implements the Repository interface on the relational store
type gormRepository struct {
	db *gorm.DB
}

// NewGorm creates a new gorm-backed group repository
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

// ListGroups retrieves all registered groups ordered by ID
func (r *gormRepository) ListGroups(ctx context.Context, input *ListGroupsInput) (*ListGroupsOutput, error) {
	var groups []*models.Group
	if err := r.db.WithContext(ctx).Order("id").Find(&groups).Error; err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}

	return &ListGroupsOutput{
		Groups: groups,
	}, nil
}

// GetGroup retrieves a group by ID
func (r *gormRepository) GetGroup(ctx context.Context, input *GetGroupInput) (*models.Group, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var group models.Group
	err := r.db.WithContext(ctx).First(&group, input.GroupID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to get group %d: %w", input.GroupID, err)
	}

	return &group, nil
}

// CreateGroup persists a new group and returns it with its generated ID
func (r *gormRepository) CreateGroup(ctx context.Context, input *CreateGroupInput) (*models.Group, error) {
	if input == nil || input.Group == nil {
		return nil, errors.New("input and group cannot be nil")
	}

	result := r.db.WithContext(ctx).Create(input.Group)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to create group %q: %w", input.Group.Name, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("group %q insert affected no rows", input.Group.Name)
	}

	return input.Group, nil
}

// UpdateGroup replaces the mutable fields of an existing group
func (r *gormRepository) UpdateGroup(ctx context.Context, input *UpdateGroupInput) error {
	if input == nil || input.Group == nil {
		return errors.New("input and group cannot be nil")
	}

	result := r.db.WithContext(ctx).
		Model(&models.Group{}).
		Where("id = ?", input.Group.ID).
		Updates(map[string]interface{}{
			"name":        input.Group.Name,
			"acronym":     input.Group.Acronym,
			"emoji":       input.Group.Emoji,
			"description": input.Group.Description,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update group %d: %w", input.Group.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrGroupNotFound
	}

	return nil
}

// DeleteGroup removes a group by ID
func (r *gormRepository) DeleteGroup(ctx context.Context, input *DeleteGroupInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	result := r.db.WithContext(ctx).Delete(&models.Group{}, input.GroupID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete group %d: %w", input.GroupID, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrGroupNotFound
	}

	return nil
}
