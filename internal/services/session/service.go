package session

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/guildops/sessionbot/internal/common/clock"
	"github.com/guildops/sessionbot/internal/models"
	groupRepo "github.com/guildops/sessionbot/internal/repositories/group"
	sessionRepo "github.com/guildops/sessionbot/internal/repositories/session"
)

// Define errors
var (
	ErrInvalidDate      = errors.New("date must match DD/MM/YYYY")
	ErrInvalidTime      = errors.New("time must match HH:MM")
	ErrInvalidInstant   = errors.New("date and time do not form a valid calendar instant")
	ErrSessionNotFound  = errors.New("session not found")
	ErrSessionDisabled  = errors.New("session is disabled")
	ErrSessionEnded     = errors.New("session has already started")
	ErrLateWithoutGroup = errors.New("presence must be declared before lateness")
	ErrUnknownAction    = errors.New("unknown attendance action")
	ErrNoGroupSelected  = errors.New("no group selected")
)

// Strict input patterns for session scheduling. The day and month ranges are
// enforced here, the calendar itself (30-day months, leap years) by the
// round-trip check in parseInstant.
var (
	dateRe = regexp.MustCompile(`^(0[1-9]|[12][0-9]|3[01])/(0[1-9]|1[0-2])/[0-9]{4}$`)
	timeRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
)

// service implements the Service interface
type service struct {
	sessionRepo sessionRepo.Repository
	groupRepo   groupRepo.Repository
	clock       clock.Clock
}

// Config holds the dependencies for the session service
type Config struct {
	// SessionRepo persists sessions, group links and participation rows
	SessionRepo sessionRepo.Repository

	// GroupRepo resolves group details for attendance confirmations
	GroupRepo groupRepo.Repository

	// Clock decides whether a session already started
	Clock clock.Clock
}

// New creates a new session service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.SessionRepo == nil {
		return nil, errors.New("session repository cannot be nil")
	}

	if cfg.GroupRepo == nil {
		return nil, errors.New("group repository cannot be nil")
	}

	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	return &service{
		sessionRepo: cfg.SessionRepo,
		groupRepo:   cfg.GroupRepo,
		clock:       cfg.Clock,
	}, nil
}

// parseInstant combines the validated date and time strings into a single
// instant. time.Date normalizes out-of-range components (31/02 becomes
// 02/03), so the round-trip comparison rejects impossible calendar dates.
func parseInstant(date, timeOfDay string) (time.Time, error) {
	if !dateRe.MatchString(date) {
		return time.Time{}, ErrInvalidDate
	}
	if !timeRe.MatchString(timeOfDay) {
		return time.Time{}, ErrInvalidTime
	}

	day, _ := strconv.Atoi(date[0:2])
	month, _ := strconv.Atoi(date[3:5])
	year, _ := strconv.Atoi(date[6:10])
	hour, _ := strconv.Atoi(timeOfDay[0:2])
	minute, _ := strconv.Atoi(timeOfDay[3:5])

	instant := time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.Local)
	if instant.Day() != day || instant.Month() != time.Month(month) || instant.Year() != year {
		return time.Time{}, ErrInvalidInstant
	}

	return instant, nil
}

// CreateSession validates the scheduling input and inserts the session row.
// The row is created before the group selection is confirmed; see
// CancelSession for the rollback path.
func (s *service) CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	instant, err := parseInstant(input.Date, input.Time)
	if err != nil {
		return nil, err
	}

	var details *string
	if input.Details != "" {
		details = &input.Details
	}

	created, err := s.sessionRepo.CreateSession(ctx, &sessionRepo.CreateSessionInput{
		Session: &models.Session{
			Timestamp: instant,
			Details:   details,
			CreatedBy: input.CreatedBy,
			Active:    true,
		},
	})
	if err != nil {
		zap.L().Error("failed to create session",
			zap.String("creator", input.CreatedBy),
			zap.Error(err))
		return nil, err
	}

	zap.L().Info("session created",
		zap.Int64("session_id", created.ID),
		zap.Time("starts_at", created.Timestamp),
		zap.String("creator", created.CreatedBy))

	return &CreateSessionOutput{
		Session: created,
	}, nil
}

// CancelSession deletes a provisional session together with any group links
// that were already inserted
func (s *service) CancelSession(ctx context.Context, input *CancelSessionInput) (*CancelSessionOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	err := s.sessionRepo.DeleteSession(ctx, &sessionRepo.DeleteSessionInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		zap.L().Error("failed to cancel session",
			zap.Int64("session_id", input.SessionID),
			zap.Error(err))
		return nil, err
	}

	zap.L().Info("session cancelled", zap.Int64("session_id", input.SessionID))

	return &CancelSessionOutput{
		Deleted: true,
	}, nil
}

// AttachGroups persists one link row per confirmed group. An individual
// insert failure is logged and skipped so the remaining groups still attach.
func (s *service) AttachGroups(ctx context.Context, input *AttachGroupsInput) (*AttachGroupsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	output := &AttachGroupsOutput{}
	for _, groupID := range input.GroupIDs {
		err := s.sessionRepo.AddSessionGroup(ctx, &sessionRepo.AddSessionGroupInput{
			SessionID: input.SessionID,
			GroupID:   groupID,
		})
		if err != nil {
			zap.L().Error("unable to attach group to session",
				zap.Int64("session_id", input.SessionID),
				zap.Int64("group_id", groupID),
				zap.Error(err))
			continue
		}
		output.Attached = append(output.Attached, groupID)
	}

	return output, nil
}

// CloseSession marks a session inactive
func (s *service) CloseSession(ctx context.Context, input *CloseSessionInput) (*CloseSessionOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	err := s.sessionRepo.SetSessionActive(ctx, &sessionRepo.SetSessionActiveInput{
		SessionID: input.SessionID,
		Active:    false,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	zap.L().Info("session closed", zap.Int64("session_id", input.SessionID))

	return &CloseSessionOutput{
		Closed: true,
	}, nil
}

// SetSessionMessage records the published status message ID
func (s *service) SetSessionMessage(ctx context.Context, input *SetSessionMessageInput) (*SetSessionMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	err := s.sessionRepo.SetSessionMessage(ctx, &sessionRepo.SetSessionMessageInput{
		SessionID: input.SessionID,
		MessageID: input.MessageID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	return &SetSessionMessageOutput{}, nil
}

// GetSessionStatus loads the session, its attached groups and the attendance
// aggregates. Tallies for groups not attached to the session are dropped.
func (s *service) GetSessionStatus(ctx context.Context, input *GetSessionStatusInput) (*GetSessionStatusOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	sess, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	groups, err := s.sessionRepo.GetSessionGroups(ctx, &sessionRepo.GetSessionGroupsInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		return nil, err
	}

	attendance, err := s.sessionRepo.GetAttendance(ctx, &sessionRepo.GetAttendanceInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		return nil, err
	}

	counts := make(map[int64]int64, len(groups.Groups))
	for _, g := range groups.Groups {
		if n, ok := attendance.GroupCounts[g.ID]; ok {
			counts[g.ID] = n
		}
	}

	return &GetSessionStatusOutput{
		Session:     sess,
		Groups:      groups.Groups,
		Absent:      attendance.Absent,
		Late:        attendance.Late,
		GroupCounts: counts,
	}, nil
}

// RecordAttendance validates the session state, then applies one user's
// response as a single atomic upsert of their participation row.
//
// Absent always applies and clears both the group and the late flag. Late
// requires a previously declared group and leaves it untouched. A group
// selection clears the absent flag but keeps any prior late flag.
func (s *service) RecordAttendance(ctx context.Context, input *RecordAttendanceInput) (*RecordAttendanceOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	sess, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	if !sess.Active {
		return nil, ErrSessionDisabled
	}

	if sess.Timestamp.Before(s.clock.Now()) {
		return nil, ErrSessionEnded
	}

	existing, err := s.sessionRepo.GetParticipant(ctx, &sessionRepo.GetParticipantInput{
		SessionID: input.SessionID,
		UserID:    input.UserID,
	})
	if err != nil && !errors.Is(err, sessionRepo.ErrParticipantNotFound) {
		return nil, err
	}

	participant := &models.SessionParticipant{
		SessionID: input.SessionID,
		UserID:    input.UserID,
		UpdatedAt: s.clock.Now(),
	}
	if existing != nil {
		participant.Absent = existing.Absent
		participant.Late = existing.Late
		participant.GroupID = existing.GroupID
	}

	output := &RecordAttendanceOutput{}

	switch input.Action {
	case ActionAbsent:
		participant.Absent = true
		participant.Late = false
		participant.GroupID = nil

	case ActionLate:
		if participant.GroupID == nil {
			return nil, ErrLateWithoutGroup
		}
		participant.Late = true
		participant.Absent = false

	case ActionGroupSelection:
		if input.GroupID == 0 {
			return nil, ErrNoGroupSelected
		}
		groupID := input.GroupID
		participant.Absent = false
		participant.GroupID = &groupID

		// Resolve the group for the confirmation reply; a lookup failure
		// only degrades the reply text.
		selected, err := s.groupRepo.GetGroup(ctx, &groupRepo.GetGroupInput{
			GroupID: groupID,
		})
		if err != nil {
			zap.L().Warn("selected group could not be resolved",
				zap.Int64("group_id", groupID),
				zap.Error(err))
		} else {
			output.Group = selected
		}

	default:
		return nil, ErrUnknownAction
	}

	err = s.sessionRepo.UpsertParticipant(ctx, &sessionRepo.UpsertParticipantInput{
		Participant: participant,
	})
	if err != nil {
		zap.L().Error("failed to record attendance",
			zap.Int64("session_id", input.SessionID),
			zap.String("user", input.UserID),
			zap.String("action", string(input.Action)),
			zap.Error(err))
		return nil, err
	}

	zap.L().Info("attendance recorded",
		zap.Int64("session_id", input.SessionID),
		zap.String("user", input.UserID),
		zap.String("action", string(input.Action)))

	output.Participant = participant
	return output, nil
}
