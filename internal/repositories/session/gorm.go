package session

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/guildops/sessionbot/internal/models"
)

// Errors returned by the session repository
var (
	ErrSessionNotFound     = errors.New("session not found")
	ErrParticipantNotFound = errors.New("participant not found")
)

// Config holds configuration for the gorm session repository
type Config struct {
	// DB is the shared gorm handle
	DB *gorm.DB
}

// gormRepository implements the Repository interface on the relational store
type gormRepository struct {
	db *gorm.DB
}

// NewGorm creates a new gorm-backed session repository
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

// CreateSession persists a new session and returns it with its generated ID
func (r *gormRepository) CreateSession(ctx context.Context, input *CreateSessionInput) (*models.Session, error) {
	if input == nil || input.Session == nil {
		return nil, errors.New("input and session cannot be nil")
	}

	result := r.db.WithContext(ctx).Create(input.Session)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to create session: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, errors.New("session insert affected no rows")
	}

	return input.Session, nil
}

// GetSession retrieves a session by ID
func (r *gormRepository) GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var session models.Session
	err := r.db.WithContext(ctx).First(&session, input.SessionID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session %d: %w", input.SessionID, err)
	}

	return &session, nil
}

// DeleteSession removes a session together with any group associations that
// were inserted before the deletion. Participation rows cannot exist yet at
// the only call site (wizard cancellation) but are swept for consistency.
func (r *gormRepository) DeleteSession(ctx context.Context, input *DeleteSessionInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("session = ?", input.SessionID).Delete(&models.SessionGroup{}).Error; err != nil {
			return fmt.Errorf("failed to delete session %d group links: %w", input.SessionID, err)
		}
		if err := tx.Where("session = ?", input.SessionID).Delete(&models.SessionParticipant{}).Error; err != nil {
			return fmt.Errorf("failed to delete session %d participants: %w", input.SessionID, err)
		}

		result := tx.Delete(&models.Session{}, input.SessionID)
		if result.Error != nil {
			return fmt.Errorf("failed to delete session %d: %w", input.SessionID, result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrSessionNotFound
		}
		return nil
	})
}

// SetSessionMessage records the published status message ID on a session
func (r *gormRepository) SetSessionMessage(ctx context.Context, input *SetSessionMessageInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	result := r.db.WithContext(ctx).
		Model(&models.Session{}).
		Where("id = ?", input.SessionID).
		Update("message_id", input.MessageID)
	if result.Error != nil {
		return fmt.Errorf("failed to set message id on session %d: %w", input.SessionID, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// SetSessionActive flips a session's active flag
func (r *gormRepository) SetSessionActive(ctx context.Context, input *SetSessionActiveInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	result := r.db.WithContext(ctx).
		Model(&models.Session{}).
		Where("id = ?", input.SessionID).
		Update("active", input.Active)
	if result.Error != nil {
		return fmt.Errorf("failed to set active flag on session %d: %w", input.SessionID, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// AddSessionGroup associates one group with a session. The composite primary
// key rejects duplicate pairs at the store level.
func (r *gormRepository) AddSessionGroup(ctx context.Context, input *AddSessionGroupInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	link := &models.SessionGroup{
		SessionID: input.SessionID,
		GroupID:   input.GroupID,
	}
	if err := r.db.WithContext(ctx).Create(link).Error; err != nil {
		return fmt.Errorf("failed to link group %d to session %d: %w", input.GroupID, input.SessionID, err)
	}

	return nil
}

// GetSessionGroups retrieves the groups attached to a session
func (r *gormRepository) GetSessionGroups(ctx context.Context, input *GetSessionGroupsInput) (*GetSessionGroupsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var groups []*models.Group
	err := r.db.WithContext(ctx).
		Model(&models.Group{}).
		Joins("JOIN session_groups ON session_groups.\"group\" = player_groups.id").
		Where("session_groups.session = ?", input.SessionID).
		Order("player_groups.id").
		Find(&groups).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list groups for session %d: %w", input.SessionID, err)
	}

	return &GetSessionGroupsOutput{
		Groups: groups,
	}, nil
}

// GetParticipant retrieves one user's participation row
func (r *gormRepository) GetParticipant(ctx context.Context, input *GetParticipantInput) (*models.SessionParticipant, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var participant models.SessionParticipant
	err := r.db.WithContext(ctx).
		Where("session = ? AND user = ?", input.SessionID, input.UserID).
		First(&participant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrParticipantNotFound
		}
		return nil, fmt.Errorf("failed to get participant %s for session %d: %w", input.UserID, input.SessionID, err)
	}

	return &participant, nil
}

// UpsertParticipant atomically inserts or replaces a participation row. A
// single statement keyed on the (session, user) primary key closes the race
// a read-then-insert sequence would leave open under rapid duplicate events
// from the same user.
func (r *gormRepository) UpsertParticipant(ctx context.Context, input *UpsertParticipantInput) error {
	if input == nil || input.Participant == nil {
		return errors.New("input and participant cannot be nil")
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "session"}, {Name: "user"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"absent", "late", "group", "updated_at",
			}),
		}).
		Create(input.Participant).Error
	if err != nil {
		return fmt.Errorf("failed to upsert participant %s for session %d: %w",
			input.Participant.UserID, input.Participant.SessionID, err)
	}

	return nil
}

type groupCountRow struct {
	GroupID int64 `gorm:"column:group"`
	Count   int64 `gorm:"column:count"`
}

// GetAttendance aggregates absent/late counts and per-group tallies for a
// session. Rows whose group was detached from the session since are still
// counted here; the renderer drops tallies for unknown groups.
func (r *gormRepository) GetAttendance(ctx context.Context, input *GetAttendanceInput) (*GetAttendanceOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	output := &GetAttendanceOutput{
		GroupCounts: make(map[int64]int64),
	}

	err := r.db.WithContext(ctx).
		Model(&models.SessionParticipant{}).
		Where("session = ? AND absent = ?", input.SessionID, true).
		Count(&output.Absent).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count absentees for session %d: %w", input.SessionID, err)
	}

	err = r.db.WithContext(ctx).
		Model(&models.SessionParticipant{}).
		Where("session = ? AND late = ?", input.SessionID, true).
		Count(&output.Late).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count latecomers for session %d: %w", input.SessionID, err)
	}

	var rows []groupCountRow
	err = r.db.WithContext(ctx).
		Model(&models.SessionParticipant{}).
		Select("\"group\", COUNT(*) AS count").
		Where("session = ? AND \"group\" IS NOT NULL", input.SessionID).
		Group("group").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to tally groups for session %d: %w", input.SessionID, err)
	}

	for _, row := range rows {
		output.GroupCounts[row.GroupID] = row.Count
	}

	return output, nil
}
