package discord

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/guildops/sessionbot/internal/models"
	"github.com/guildops/sessionbot/internal/services/session"
	"github.com/guildops/sessionbot/internal/services/settings"
)

const statusEmbedColor = 0x5865f2

// statusDelivery decides how a render reaches the channel: a fresh publish
// only while no message is tracked, otherwise an in-place edit of the stored
// message. Once a message ID is recorded a render never creates a second
// message.
type statusDelivery struct {
	publish   bool
	messageID string
}

func statusDeliveryFor(sess *models.Session) statusDelivery {
	if sess.MessageID == nil {
		return statusDelivery{publish: true}
	}
	return statusDelivery{messageID: *sess.MessageID}
}

// publishSessionStatus renders the session's public status message into the
// configured session channel. On the first publish the message ID is stored
// on the session; every later call edits that message in place. An edit
// failure is logged and swallowed so a deleted or stale message never
// cascades into duplicate publishes.
func (b *Bot) publishSessionStatus(ctx context.Context, sessionID int64) error {
	status, err := b.sessionService.GetSessionStatus(ctx, &session.GetSessionStatusInput{
		SessionID: sessionID,
	})
	if err != nil {
		return fmt.Errorf("failed to load session status: %w", err)
	}

	channelID, err := b.settingsService.GetChannel(ctx, settings.KeySessionChannel)
	if err != nil {
		if errors.Is(err, settings.ErrSettingUnset) {
			return fmt.Errorf("session channel is not configured")
		}
		return fmt.Errorf("failed to resolve session channel: %w", err)
	}

	channel, err := b.session.Channel(channelID)
	if err != nil {
		return fmt.Errorf("failed to fetch session channel %s: %w", channelID, err)
	}
	if channel.Type != discordgo.ChannelTypeGuildText {
		return fmt.Errorf("session channel %s is not a text channel", channelID)
	}

	embed := buildStatusEmbed(status)
	components := buildStatusComponents(status)

	delivery := statusDeliveryFor(status.Session)
	if delivery.publish {
		msg, err := b.session.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: components,
		})
		if err != nil {
			return fmt.Errorf("failed to publish session status: %w", err)
		}

		if _, err := b.sessionService.SetSessionMessage(ctx, &session.SetSessionMessageInput{
			SessionID: sessionID,
			MessageID: msg.ID,
		}); err != nil {
			return fmt.Errorf("failed to record status message id: %w", err)
		}

		zap.L().Info("session status published",
			zap.Int64("session_id", sessionID),
			zap.String("channel_id", channelID),
			zap.String("message_id", msg.ID))
		return nil
	}

	_, err = b.session.ChannelMessageEditComplex(&discordgo.MessageEdit{
		Channel:    channelID,
		ID:         delivery.messageID,
		Embeds:     &[]*discordgo.MessageEmbed{embed},
		Components: &components,
	})
	if err != nil {
		// The tracked message may have been deleted by hand. Keep the stored
		// ID rather than flooding the channel with replacements.
		zap.L().Error("failed to edit session status message",
			zap.Int64("session_id", sessionID),
			zap.String("channel_id", channelID),
			zap.String("message_id", delivery.messageID),
			zap.Error(err))
		return nil
	}

	zap.L().Debug("session status updated",
		zap.Int64("session_id", sessionID),
		zap.String("message_id", delivery.messageID))
	return nil
}

// buildStatusEmbed renders the session header, schedule and the per-group
// attendance tally
func buildStatusEmbed(status *session.GetSessionStatusOutput) *discordgo.MessageEmbed {
	sess := status.Session

	var sb strings.Builder
	fmt.Fprintf(&sb, "**When:** %s (<t:%d:R>)\n",
		sess.Timestamp.Format("Monday, 2 January 2006 at 15:04"),
		sess.Timestamp.Unix())
	if sess.Details != nil && *sess.Details != "" {
		fmt.Fprintf(&sb, "**Details:** %s\n", *sess.Details)
	}

	sb.WriteString("\n")
	for _, g := range status.Groups {
		fmt.Fprintf(&sb, "%s **%s**: %s\n",
			groupBullet(g), g.Acronym, memberCount(status.GroupCounts[g.ID]))
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Session of %s", sess.Timestamp.Format("02/01/2006")),
		Description: sb.String(),
		Color:       statusEmbedColor,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Session #%d", sess.ID),
		},
	}
	if !sess.Active {
		embed.Title += " (closed)"
	}
	return embed
}

func groupBullet(g *models.Group) string {
	if g.Emoji != "" {
		return g.Emoji
	}
	return "•"
}

func memberCount(n int64) string {
	if n == 1 {
		return "1 member"
	}
	return fmt.Sprintf("%d members", n)
}

// buildStatusComponents renders the attendance controls: the group select
// and the absent/late buttons with their live counters. A closed session
// keeps its message but loses its controls.
func buildStatusComponents(status *session.GetSessionStatusOutput) []discordgo.MessageComponent {
	if !status.Session.Active {
		return []discordgo.MessageComponent{}
	}

	options := make([]discordgo.SelectMenuOption, 0, len(status.Groups))
	for _, g := range status.Groups {
		option := discordgo.SelectMenuOption{
			Label: fmt.Sprintf("[%s] %s", g.Acronym, g.Name),
			Value: strconv.FormatInt(g.ID, 10),
		}
		if g.Emoji != "" {
			option.Emoji = &discordgo.ComponentEmoji{Name: g.Emoji}
		}
		options = append(options, option)
	}

	minValues := 1

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.SelectMenu{
					CustomID:    attendanceControlID(status.Session.ID, session.ActionGroupSelection),
					Placeholder: "I will play with...",
					MinValues:   &minValues,
					MaxValues:   1,
					Options:     options,
				},
			},
		},
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    fmt.Sprintf("Absent (%d)", status.Absent),
					Style:    discordgo.DangerButton,
					CustomID: attendanceControlID(status.Session.ID, session.ActionAbsent),
				},
				discordgo.Button{
					Label:    fmt.Sprintf("Late (%d)", status.Late),
					Style:    discordgo.SecondaryButton,
					CustomID: attendanceControlID(status.Session.ID, session.ActionLate),
				},
			},
		},
	}
}
