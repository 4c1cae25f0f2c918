package discord

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/guildops/sessionbot/internal/models"
	"github.com/guildops/sessionbot/internal/services/group"
	"github.com/guildops/sessionbot/internal/services/session"
)

// wizardTimeout bounds the whole group-selection phase. When it elapses the
// ephemeral message is replaced with an expiry notice and the provisional
// session row is left behind, group-less.
const wizardTimeout = 5 * time.Minute

// wizard is the per-session, per-creator collector that stages the group
// selection for a session between its provisional insert and the creator's
// confirmation. All state lives in process memory and is torn down on every
// terminal transition.
type wizard struct {
	bot       *Bot
	sessionID int64
	invokerID string
	startsAt  time.Time
	dateLabel string

	// interaction is the original command interaction, kept to edit the
	// ephemeral message after the timeout fires without an inbound event
	interaction *discordgo.Interaction

	// groups is the registry snapshot shown in the select menu
	groups []*models.Group

	mu     sync.Mutex
	staged map[int64]struct{}
	done   bool
	timer  *time.Timer
}

// wizardRegistry tracks the live wizards keyed by session ID. Exactly one
// wizard exists per session for the duration of its collection window.
type wizardRegistry struct {
	mu   sync.Mutex
	byID map[int64]*wizard
}

func newWizardRegistry() *wizardRegistry {
	return &wizardRegistry{
		byID: make(map[int64]*wizard),
	}
}

func (r *wizardRegistry) register(w *wizard) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[w.sessionID] = w
}

func (r *wizardRegistry) remove(sessionID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byID, sessionID)
}

func (r *wizardRegistry) lookup(sessionID int64) *wizard {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.byID[sessionID]
}

// handle routes a wizard control interaction to its live wizard. Controls
// for a wizard that already terminated get an expiry notice.
func (r *wizardRegistry) handle(s *discordgo.Session, i *discordgo.InteractionCreate, ctl wizardControl) error {
	w := r.lookup(ctl.SessionID)
	if w == nil {
		return RespondWithEphemeralMessage(s, i, "This session setup has expired, please start over.")
	}
	return w.handle(s, i, ctl)
}

// startSessionWizard inserts nothing itself: the session row already exists.
// It presents the ephemeral group-selection message and registers the
// collector with its timeout.
func (b *Bot) startSessionWizard(s *discordgo.Session, i *discordgo.InteractionCreate, sess *models.Session) error {
	ctx := context.Background()

	listed, err := b.groupService.ListGroups(ctx, &group.ListGroupsInput{})
	if err != nil {
		zap.L().Error("failed to list groups for wizard",
			zap.Int64("session_id", sess.ID),
			zap.Error(err))
		return RespondWithError(s, i, "Session setup failed", "The group list could not be loaded.")
	}

	if len(listed.Groups) == 0 {
		// Nothing to select from; roll the provisional row back instead of
		// presenting an unconfirmable wizard.
		if _, err := b.sessionService.CancelSession(ctx, &session.CancelSessionInput{SessionID: sess.ID}); err != nil {
			zap.L().Error("failed to roll back group-less session",
				zap.Int64("session_id", sess.ID),
				zap.Error(err))
		}
		return RespondWithError(s, i, "Session setup failed",
			"No group is registered yet. Add one with `/session group add` first.")
	}

	w := &wizard{
		bot:         b,
		sessionID:   sess.ID,
		invokerID:   interactionUser(i).ID,
		startsAt:    sess.Timestamp,
		dateLabel:   sess.Timestamp.Format("02/01/2006"),
		interaction: i.Interaction,
		groups:      listed.Groups,
		staged:      make(map[int64]struct{}),
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content:    w.prompt(""),
			Components: w.components(),
			Flags:      discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to present session wizard: %w", err)
	}

	b.wizards.register(w)
	w.arm()

	zap.L().Info("session wizard started",
		zap.Int64("session_id", sess.ID),
		zap.String("creator", w.invokerID))
	return nil
}

// components builds the select menu and the confirm/cancel buttons. All
// control IDs share the wizard prefix for this session.
func (w *wizard) components() []discordgo.MessageComponent {
	options := make([]discordgo.SelectMenuOption, 0, len(w.groups))
	for _, g := range w.groups {
		option := discordgo.SelectMenuOption{
			Label: fmt.Sprintf("[%s] %s", g.Acronym, g.Name),
			Value: strconv.FormatInt(g.ID, 10),
		}
		if g.Emoji != "" {
			option.Emoji = &discordgo.ComponentEmoji{Name: g.Emoji}
		}
		options = append(options, option)
	}

	maxValues := len(options)

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.SelectMenu{
					CustomID:    wizardControlID(w.sessionID, wizardControlAddGroup),
					Placeholder: "Select the playable groups",
					MaxValues:   maxValues,
					Options:     options,
				},
			},
		},
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Confirm",
					Style:    discordgo.SuccessButton,
					CustomID: wizardControlID(w.sessionID, wizardControlValidate),
				},
				discordgo.Button{
					Label:    "Cancel",
					Style:    discordgo.DangerButton,
					CustomID: wizardControlID(w.sessionID, wizardControlCancel),
				},
			},
		},
	}
}

// prompt renders the wizard message body, optionally followed by a note
// (current selection summary or a validation notice)
func (w *wizard) prompt(note string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "## Organizing the session of %s\n", w.dateLabel)
	sb.WriteString("> Select the groups that can play in this session.")
	if note != "" {
		sb.WriteString("\n\n")
		sb.WriteString(note)
	}
	return sb.String()
}

// selectionSummary names the staged groups in registry order
func (w *wizard) selectionSummary() string {
	if len(w.staged) == 0 {
		return "No group selected."
	}

	ids := make([]int64, 0, len(w.staged))
	for id := range w.staged {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(a, b int) bool { return ids[a] < ids[b] })

	names := make([]string, 0, len(ids))
	for _, id := range ids {
		name := strconv.FormatInt(id, 10)
		for _, g := range w.groups {
			if g.ID == id {
				name = g.Name
				break
			}
		}
		names = append(names, name)
	}
	return "Selected groups: " + strings.Join(names, ", ")
}

// handle processes one control interaction from the wizard's ephemeral
// message. Only the original invoker may interact; anyone else gets a
// private notice and the wizard state is untouched.
func (w *wizard) handle(s *discordgo.Session, i *discordgo.InteractionCreate, ctl wizardControl) error {
	if interactionUser(i).ID != w.invokerID {
		return RespondWithEphemeralMessage(s, i, "You are not allowed to interact with this message.")
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.done {
		return RespondWithEphemeralMessage(s, i, "This session setup has expired, please start over.")
	}

	switch ctl.Kind {
	case wizardControlAddGroup:
		return w.handleSelection(s, i)
	case wizardControlValidate:
		return w.handleConfirm(s, i)
	case wizardControlCancel:
		return w.handleCancel(s, i)
	default:
		return RespondWithEphemeralMessage(s, i, "Impossible.")
	}
}

// handleSelection replaces the staged set with the new selection. The
// select menu reports the full selection on every change, so this is a
// replace, never a merge.
func (w *wizard) handleSelection(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	values := i.MessageComponentData().Values

	w.staged = make(map[int64]struct{}, len(values))
	for _, raw := range values {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			continue
		}
		w.staged[id] = struct{}{}
	}

	zap.L().Info("wizard selection updated",
		zap.Int64("session_id", w.sessionID),
		zap.Int("selected", len(w.staged)))

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Content:    w.prompt(w.selectionSummary()),
			Components: w.components(),
		},
	})
}

// handleConfirm validates the staged set and, when non-empty, terminates the
// wizard: the group links are persisted and the public status message is
// published. Individual link failures are logged by the service and skipped.
func (w *wizard) handleConfirm(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if len(w.staged) == 0 {
		return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseUpdateMessage,
			Data: &discordgo.InteractionResponseData{
				Content:    w.prompt("Please select at least one group before confirming."),
				Components: w.components(),
			},
		})
	}

	w.terminate()

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Content: fmt.Sprintf("Session %d confirmed for %s.\n%s",
				w.sessionID, w.startsAt.Format("Monday, 2 January 2006 at 15:04"), w.selectionSummary()),
			Components: []discordgo.MessageComponent{},
		},
	})
	if err != nil {
		zap.L().Error("failed to edit wizard confirmation",
			zap.Int64("session_id", w.sessionID),
			zap.Error(err))
	}

	ctx := context.Background()
	groupIDs := make([]int64, 0, len(w.staged))
	for id := range w.staged {
		groupIDs = append(groupIDs, id)
	}
	sort.Slice(groupIDs, func(a, b int) bool { return groupIDs[a] < groupIDs[b] })

	if _, err := w.bot.sessionService.AttachGroups(ctx, &session.AttachGroupsInput{
		SessionID: w.sessionID,
		GroupIDs:  groupIDs,
	}); err != nil {
		zap.L().Error("failed to attach groups",
			zap.Int64("session_id", w.sessionID),
			zap.Error(err))
	}

	if err := w.bot.publishSessionStatus(ctx, w.sessionID); err != nil {
		zap.L().Error("failed to publish session status",
			zap.Int64("session_id", w.sessionID),
			zap.Error(err))
	}

	zap.L().Info("session wizard confirmed",
		zap.Int64("session_id", w.sessionID),
		zap.Int64s("groups", groupIDs))
	return nil
}

// handleCancel terminates the wizard and rolls back the provisional session
func (w *wizard) handleCancel(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	w.terminate()

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Content: fmt.Sprintf("Session creation for %s cancelled.",
				w.startsAt.Format("Monday, 2 January 2006 at 15:04")),
			Components: []discordgo.MessageComponent{},
		},
	})
	if err != nil {
		zap.L().Error("failed to edit wizard cancellation",
			zap.Int64("session_id", w.sessionID),
			zap.Error(err))
	}

	if _, err := w.bot.sessionService.CancelSession(context.Background(), &session.CancelSessionInput{
		SessionID: w.sessionID,
	}); err != nil {
		zap.L().Error("failed to roll back cancelled session",
			zap.Int64("session_id", w.sessionID),
			zap.Error(err))
	}

	zap.L().Info("session wizard cancelled", zap.Int64("session_id", w.sessionID))
	return nil
}

// arm starts the timeout. The timer is assigned under w.mu because
// terminate reads it under the same lock; a wizard that already terminated
// stays unarmed.
func (w *wizard) arm() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.done {
		w.timer = time.AfterFunc(wizardTimeout, w.timeout)
	}
}

// terminate marks the wizard done, stops the timeout and unregisters it.
// Callers hold w.mu.
func (w *wizard) terminate() {
	w.done = true
	if w.timer != nil {
		w.timer.Stop()
	}
	w.bot.wizards.remove(w.sessionID)
}

// timeout fires when the collection window elapses without a terminal
// interaction. The ephemeral message is replaced with an expiry notice; the
// provisional session row is intentionally left behind.
func (w *wizard) timeout() {
	w.mu.Lock()
	if w.done {
		w.mu.Unlock()
		return
	}
	w.terminate()
	w.mu.Unlock()

	content := ":x: Time elapsed, please start over."
	empty := []discordgo.MessageComponent{}
	_, err := w.bot.session.InteractionResponseEdit(w.interaction, &discordgo.WebhookEdit{
		Content:    &content,
		Components: &empty,
	})
	if err != nil {
		zap.L().Error("failed to edit expired wizard message",
			zap.Int64("session_id", w.sessionID),
			zap.Error(err))
	}

	zap.L().Info("session wizard timed out", zap.Int64("session_id", w.sessionID))
}
