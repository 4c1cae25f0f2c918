package group

import "context"

// Service defines the interface for group registry operations
type Service interface {
	// ListGroups returns all registered groups
	ListGroups(ctx context.Context, input *ListGroupsInput) (*ListGroupsOutput, error)

	// AddGroup registers a new group
	AddGroup(ctx context.Context, input *AddGroupInput) (*AddGroupOutput, error)

	// EditGroup applies a partial update to an existing group
	EditGroup(ctx context.Context, input *EditGroupInput) (*EditGroupOutput, error)

	// DeleteGroup removes a group
	DeleteGroup(ctx context.Context, input *DeleteGroupInput) (*DeleteGroupOutput, error)

	// SearchGroups returns groups whose name or acronym starts with a prefix
	SearchGroups(ctx context.Context, input *SearchGroupsInput) (*SearchGroupsOutput, error)
}
