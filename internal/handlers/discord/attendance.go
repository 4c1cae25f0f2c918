package discord

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/guildops/sessionbot/internal/services/session"
)

// handleAttendance processes one attendance control from a session status
// message: the group select or the absent/late buttons. Every outcome is a
// private reply to the responder; a successful write also re-renders the
// public status message.
func (b *Bot) handleAttendance(s *discordgo.Session, i *discordgo.InteractionCreate, ctl attendanceControl, eventID string) error {
	ctx := context.Background()
	user := interactionUser(i)

	input := &session.RecordAttendanceInput{
		SessionID: ctl.SessionID,
		UserID:    user.ID,
		Action:    ctl.Action,
	}

	if ctl.Action == session.ActionGroupSelection {
		values := i.MessageComponentData().Values
		if len(values) == 0 {
			return RespondWithEphemeralMessage(s, i, "Impossible.")
		}
		groupID, err := strconv.ParseInt(values[0], 10, 64)
		if err != nil {
			zap.L().Warn("malformed group selection value",
				zap.String("event_id", eventID),
				zap.String("value", values[0]))
			return RespondWithEphemeralMessage(s, i, "Impossible.")
		}
		input.GroupID = groupID
	}

	result, err := b.sessionService.RecordAttendance(ctx, input)
	if err != nil {
		zap.L().Warn("attendance rejected",
			zap.String("event_id", eventID),
			zap.Int64("session_id", ctl.SessionID),
			zap.String("user_id", user.ID),
			zap.String("action", string(ctl.Action)),
			zap.Error(err))
		return RespondWithEphemeralMessage(s, i, attendanceErrorMessage(err))
	}

	zap.L().Info("attendance recorded",
		zap.String("event_id", eventID),
		zap.Int64("session_id", ctl.SessionID),
		zap.String("user_id", user.ID),
		zap.String("action", string(ctl.Action)))

	if err := RespondWithEphemeralMessage(s, i, attendanceConfirmation(ctl.Action, result)); err != nil {
		zap.L().Error("failed to confirm attendance",
			zap.String("event_id", eventID),
			zap.Error(err))
	}

	if err := b.publishSessionStatus(ctx, ctl.SessionID); err != nil {
		zap.L().Error("failed to refresh session status",
			zap.String("event_id", eventID),
			zap.Int64("session_id", ctl.SessionID),
			zap.Error(err))
	}
	return nil
}

// attendanceErrorMessage maps service rejections to the private reply text
func attendanceErrorMessage(err error) string {
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		return "This session no longer exists."
	case errors.Is(err, session.ErrSessionDisabled):
		return "This session is closed."
	case errors.Is(err, session.ErrSessionEnded):
		return "This session has already started."
	case errors.Is(err, session.ErrLateWithoutGroup):
		return "Please pick your group first, then flag yourself as late."
	default:
		return "Impossible."
	}
}

// attendanceConfirmation builds the private acknowledgement for an applied
// response
func attendanceConfirmation(action session.Action, result *session.RecordAttendanceOutput) string {
	switch action {
	case session.ActionAbsent:
		return "You are marked as absent for this session."
	case session.ActionLate:
		return "You are marked as possibly late for this session."
	case session.ActionGroupSelection:
		if result.Group != nil {
			return fmt.Sprintf("You are registered with **%s** for this session.", result.Group.Name)
		}
		return "Your group registration has been recorded."
	default:
		return "Your response has been recorded."
	}
}
