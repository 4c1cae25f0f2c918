package group

import "github.com/guildops/sessionbot/internal/models"

// ListGroupsInput contains parameters for listing groups
type ListGroupsInput struct{}

// ListGroupsOutput contains the result of listing groups
type ListGroupsOutput struct {
	Groups []*models.Group
}

// GetGroupInput contains parameters for retrieving a group
type GetGroupInput struct {
	GroupID int64
}

// CreateGroupInput contains parameters for creating a group
type CreateGroupInput struct {
	Group *models.Group
}

// UpdateGroupInput contains parameters for updating a group
type UpdateGroupInput struct {
	Group *models.Group
}

// DeleteGroupInput contains parameters for deleting a group
type DeleteGroupInput struct {
	GroupID int64
}
