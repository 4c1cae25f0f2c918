package group

import "github.com/guildops/sessionbot/internal/models"

// ListGroupsInput contains parameters for listing groups
type ListGroupsInput struct{}

// ListGroupsOutput contains the registered groups
type ListGroupsOutput struct {
	Groups []*models.Group
}

// AddGroupInput contains parameters for registering a group
type AddGroupInput struct {
	Name    string
	Acronym string
	Emoji   string

	// Description is optional; values shorter than 3 characters are stored
	// as no description
	Description string

	// ActorID is the Discord user registering the group
	ActorID string
}

// AddGroupOutput contains the result of registering a group
type AddGroupOutput struct {
	Group *models.Group
}

// EditGroupInput contains the partial update for a group. Nil fields were
// not provided and never change the stored value; provided fields below
// their per-field minimum length keep the prior value, except Description,
// which is coerced to no description instead.
type EditGroupInput struct {
	GroupID     int64
	Name        *string
	Acronym     *string
	Emoji       *string
	Description *string
}

// EditGroupOutput contains the updated group
type EditGroupOutput struct {
	Group *models.Group
}

// DeleteGroupInput contains parameters for deleting a group
type DeleteGroupInput struct {
	GroupID int64

	// ActorID is the Discord user requesting the deletion
	ActorID string
}

// DeleteGroupOutput contains the result of deleting a group
type DeleteGroupOutput struct {
	Deleted bool
}

// SearchGroupsInput contains parameters for prefix-searching groups
type SearchGroupsInput struct {
	Prefix string

	// Limit caps the number of results, defaulting to 25 (the Discord
	// autocomplete maximum)
	Limit int
}

// SearchGroupsOutput contains the matching groups
type SearchGroupsOutput struct {
	Groups []*models.Group
}
