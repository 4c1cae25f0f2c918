package session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/guildops/sessionbot/internal/repositories/session Repository

import (
	"context"

	"github.com/guildops/sessionbot/internal/models"
)

// Repository defines the interface for session, session-group and
// participation persistence
type Repository interface {
	// CreateSession persists a new session and returns it with its generated ID
	CreateSession(ctx context.Context, input *CreateSessionInput) (*models.Session, error)

	// GetSession retrieves a session by ID
	GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error)

	// DeleteSession removes a session and its group associations
	DeleteSession(ctx context.Context, input *DeleteSessionInput) error

	// SetSessionMessage records the published status message ID on a session
	SetSessionMessage(ctx context.Context, input *SetSessionMessageInput) error

	// SetSessionActive flips a session's active flag
	SetSessionActive(ctx context.Context, input *SetSessionActiveInput) error

	// AddSessionGroup associates one group with a session
	AddSessionGroup(ctx context.Context, input *AddSessionGroupInput) error

	// GetSessionGroups retrieves the groups attached to a session
	GetSessionGroups(ctx context.Context, input *GetSessionGroupsInput) (*GetSessionGroupsOutput, error)

	// GetParticipant retrieves one user's participation row, ErrParticipantNotFound when absent
	GetParticipant(ctx context.Context, input *GetParticipantInput) (*models.SessionParticipant, error)

	// UpsertParticipant atomically inserts or replaces a participation row,
	// keyed on the unique (session, user) pair
	UpsertParticipant(ctx context.Context, input *UpsertParticipantInput) error

	// GetAttendance aggregates absent/late counts and per-group tallies
	GetAttendance(ctx context.Context, input *GetAttendanceInput) (*GetAttendanceOutput, error)
}
