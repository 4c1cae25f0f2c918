package group

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/guildops/sessionbot/internal/repositories/group Repository

import (
	"context"

	"github.com/guildops/sessionbot/internal/models"
)

// Repository defines the interface for group data persistence
type Repository interface {
	// ListGroups retrieves all registered groups
	ListGroups(ctx context.Context, input *ListGroupsInput) (*ListGroupsOutput, error)

	// GetGroup retrieves a group by ID
	GetGroup(ctx context.Context, input *GetGroupInput) (*models.Group, error)

	// CreateGroup persists a new group and returns it with its generated ID
	CreateGroup(ctx context.Context, input *CreateGroupInput) (*models.Group, error)

	// UpdateGroup replaces the mutable fields of an existing group
	UpdateGroup(ctx context.Context, input *UpdateGroupInput) error

	// DeleteGroup removes a group by ID
	DeleteGroup(ctx context.Context, input *DeleteGroupInput) error
}
