package group

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/guildops/sessionbot/internal/common/clock"
	"github.com/guildops/sessionbot/internal/models"
	groupRepo "github.com/guildops/sessionbot/internal/repositories/group"
)

// Validation thresholds for group fields. An edit field below its minimum
// keeps the prior value; a too-short description is nulled instead.
const (
	maxAcronymLen     = 6
	minAcronymLen     = 2
	minNameLen        = 3
	maxNameLen        = 255
	minDescriptionLen = 3
)

// Define errors
var (
	ErrGroupNotFound   = errors.New("group not found")
	ErrAcronymTooLong  = errors.New("acronym exceeds 6 characters")
	ErrNameLength      = errors.New("name must be 3 to 255 characters")
	ErrNothingToUpdate = errors.New("no field carries a new value")
)

// service implements the Service interface
type service struct {
	repo  groupRepo.Repository
	clock clock.Clock
}

// Config holds the dependencies for the group service
type Config struct {
	// Repo is the group repository, possibly cache-decorated
	Repo groupRepo.Repository

	// Clock stamps newly registered groups
	Clock clock.Clock
}

// New creates a new group service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Repo == nil {
		return nil, errors.New("group repository cannot be nil")
	}

	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	return &service{
		repo:  cfg.Repo,
		clock: cfg.Clock,
	}, nil
}

// ListGroups returns all registered groups
func (s *service) ListGroups(ctx context.Context, input *ListGroupsInput) (*ListGroupsOutput, error) {
	output, err := s.repo.ListGroups(ctx, &groupRepo.ListGroupsInput{})
	if err != nil {
		return nil, err
	}

	return &ListGroupsOutput{
		Groups: output.Groups,
	}, nil
}

// AddGroup registers a new group. The name must be 3 to 255 characters, the
// acronym may never exceed 6 characters, and a description shorter than
// 3 characters is stored as no description.
func (s *service) AddGroup(ctx context.Context, input *AddGroupInput) (*AddGroupOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.Name == "" || input.Acronym == "" || input.Emoji == "" {
		return nil, errors.New("name, acronym and emoji are required")
	}

	if len(input.Name) < minNameLen || len(input.Name) > maxNameLen {
		return nil, ErrNameLength
	}

	if len(input.Acronym) > maxAcronymLen {
		return nil, ErrAcronymTooLong
	}

	var description *string
	if len(input.Description) >= minDescriptionLen {
		description = &input.Description
	}

	created, err := s.repo.CreateGroup(ctx, &groupRepo.CreateGroupInput{
		Group: &models.Group{
			Name:        input.Name,
			Acronym:     input.Acronym,
			Emoji:       input.Emoji,
			Description: description,
			AddedBy:     input.ActorID,
			AddedAt:     s.clock.Now(),
		},
	})
	if err != nil {
		zap.L().Error("failed to create group",
			zap.String("name", input.Name),
			zap.String("actor", input.ActorID),
			zap.Error(err))
		return nil, err
	}

	zap.L().Info("group created",
		zap.Int64("group_id", created.ID),
		zap.String("name", created.Name),
		zap.String("actor", input.ActorID))

	return &AddGroupOutput{
		Group: created,
	}, nil
}

// EditGroup applies a partial update to an existing group. Each provided
// field is applied only when it meets its minimum length; a too-short
// description is coerced to no description. The edit fails when the group
// does not exist, when the new acronym exceeds 6 characters, or when no
// field ends up changing anything.
func (s *service) EditGroup(ctx context.Context, input *EditGroupInput) (*EditGroupOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	current, err := s.repo.GetGroup(ctx, &groupRepo.GetGroupInput{
		GroupID: input.GroupID,
	})
	if err != nil {
		if errors.Is(err, groupRepo.ErrGroupNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, err
	}

	if input.Acronym != nil && len(*input.Acronym) > maxAcronymLen {
		return nil, ErrAcronymTooLong
	}

	updated := *current
	changed := false

	if input.Name != nil && len(*input.Name) >= minNameLen && len(*input.Name) <= maxNameLen && *input.Name != current.Name {
		updated.Name = *input.Name
		changed = true
	}
	if input.Acronym != nil && len(*input.Acronym) >= minAcronymLen && *input.Acronym != current.Acronym {
		updated.Acronym = *input.Acronym
		changed = true
	}
	if input.Emoji != nil && *input.Emoji != "" && *input.Emoji != current.Emoji {
		updated.Emoji = *input.Emoji
		changed = true
	}
	if input.Description != nil {
		if len(*input.Description) >= minDescriptionLen {
			if current.Description == nil || *current.Description != *input.Description {
				updated.Description = input.Description
				changed = true
			}
		} else if current.Description != nil {
			updated.Description = nil
			changed = true
		}
	}

	if !changed {
		return nil, ErrNothingToUpdate
	}

	err = s.repo.UpdateGroup(ctx, &groupRepo.UpdateGroupInput{
		Group: &updated,
	})
	if err != nil {
		if errors.Is(err, groupRepo.ErrGroupNotFound) {
			return nil, ErrGroupNotFound
		}
		zap.L().Error("failed to update group",
			zap.Int64("group_id", input.GroupID),
			zap.Error(err))
		return nil, err
	}

	zap.L().Info("group updated", zap.Int64("group_id", input.GroupID))

	return &EditGroupOutput{
		Group: &updated,
	}, nil
}

// DeleteGroup removes a group by ID
func (s *service) DeleteGroup(ctx context.Context, input *DeleteGroupInput) (*DeleteGroupOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	err := s.repo.DeleteGroup(ctx, &groupRepo.DeleteGroupInput{
		GroupID: input.GroupID,
	})
	if err != nil {
		if errors.Is(err, groupRepo.ErrGroupNotFound) {
			return nil, ErrGroupNotFound
		}
		zap.L().Error("failed to delete group",
			zap.Int64("group_id", input.GroupID),
			zap.String("actor", input.ActorID),
			zap.Error(err))
		return nil, err
	}

	zap.L().Info("group deleted",
		zap.Int64("group_id", input.GroupID),
		zap.String("actor", input.ActorID))

	return &DeleteGroupOutput{
		Deleted: true,
	}, nil
}

// SearchGroups returns groups whose name or acronym starts with the prefix,
// matched case-insensitively. An empty prefix matches everything.
func (s *service) SearchGroups(ctx context.Context, input *SearchGroupsInput) (*SearchGroupsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	limit := input.Limit
	if limit <= 0 {
		limit = 25
	}

	listed, err := s.repo.ListGroups(ctx, &groupRepo.ListGroupsInput{})
	if err != nil {
		return nil, err
	}

	prefix := strings.ToLower(input.Prefix)
	var matches []*models.Group
	for _, g := range listed.Groups {
		if prefix == "" ||
			strings.HasPrefix(strings.ToLower(g.Name), prefix) ||
			strings.HasPrefix(strings.ToLower(g.Acronym), prefix) {
			matches = append(matches, g)
			if len(matches) == limit {
				break
			}
		}
	}

	return &SearchGroupsOutput{
		Groups: matches,
	}, nil
}
