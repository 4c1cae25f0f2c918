package discord

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/guildops/sessionbot/internal/services/group"
	"github.com/guildops/sessionbot/internal/services/session"
	"github.com/guildops/sessionbot/internal/services/settings"
)

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID

	groupService    group.Service
	sessionService  session.Service
	settingsService settings.Service

	wizards *wizardRegistry
	config  *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// GroupService manages the player group registry
	GroupService group.Service

	// SessionService manages session lifecycle and attendance
	SessionService session.Service

	// SettingsService resolves the status message channel
	SettingsService settings.Service
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.GroupService == nil {
		return nil, errors.New("group service cannot be nil")
	}

	if cfg.SessionService == nil {
		return nil, errors.New("session service cannot be nil")
	}

	if cfg.SettingsService == nil {
		return nil, errors.New("settings service cannot be nil")
	}

	dg, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	bot := &Bot{
		session:         dg,
		commands:        make(map[string]CommandHandler),
		commandIDs:      make(map[string]string),
		groupService:    cfg.GroupService,
		sessionService:  cfg.SessionService,
		settingsService: cfg.SettingsService,
		wizards:         newWizardRegistry(),
		config:          cfg,
	}

	// Register the interaction handler
	dg.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start opens the Discord connection and registers commands
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	sessionCmd := NewSessionCommand(b)
	if err := b.RegisterCommand(sessionCmd); err != nil {
		return fmt.Errorf("failed to register session command: %w", err)
	}

	settingsCmd := NewSettingsCommand(b.settingsService)
	if err := b.RegisterCommand(settingsCmd); err != nil {
		return fmt.Errorf("failed to register settings command: %w", err)
	}

	zap.L().Info("bot is now running")
	return nil
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	appID := b.config.ApplicationID
	if appID == "" {
		appID = b.session.State.User.ID
	}

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			zap.L().Warn("failed to delete command",
				zap.String("command", cmdName),
				zap.String("command_id", cmdID),
				zap.Error(err))
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	appID := b.config.ApplicationID
	if appID == "" {
		// Fall back to session user ID if application ID is not provided
		appID = b.session.State.User.ID
	}

	createdCmd, err := b.session.ApplicationCommandCreate(appID, b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	zap.L().Info("registered command",
		zap.String("command", cmd.GetName()),
		zap.String("command_id", createdCmd.ID))

	return nil
}

// handleInteraction routes Discord interactions to commands, autocomplete
// handlers and component listeners
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		if h, ok := b.commands[i.ApplicationCommandData().Name]; ok {
			if err := h.Handle(s, i); err != nil {
				zap.L().Error("command handling failed",
					zap.String("command", i.ApplicationCommandData().Name),
					zap.Error(err))
			}
		}
	case discordgo.InteractionApplicationCommandAutocomplete:
		if h, ok := b.commands[i.ApplicationCommandData().Name]; ok {
			if ac, ok := h.(Autocompleter); ok {
				if err := ac.HandleAutocomplete(s, i); err != nil {
					zap.L().Error("autocomplete handling failed",
						zap.String("command", i.ApplicationCommandData().Name),
						zap.Error(err))
				}
			}
		}
	case discordgo.InteractionMessageComponent:
		if err := b.handleComponentInteraction(s, i); err != nil {
			zap.L().Error("component handling failed",
				zap.String("custom_id", i.MessageComponentData().CustomID),
				zap.Error(err))
		}
	}
}

// handleComponentInteraction decodes the control ID and dispatches to the
// wizard or the attendance intake. IDs matching neither pattern are ignored.
func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	customID := i.MessageComponentData().CustomID
	eventID := uuid.New().String()

	if ctl, ok := parseWizardControl(customID); ok {
		return b.wizards.handle(s, i, ctl)
	}

	if ctl, ok := parseAttendanceControl(customID); ok {
		zap.L().Debug("attendance control received",
			zap.String("event_id", eventID),
			zap.Int64("session_id", ctl.SessionID),
			zap.String("action", string(ctl.Action)))
		return b.handleAttendance(s, i, ctl, eventID)
	}

	zap.L().Debug("ignoring unrecognized component",
		zap.String("event_id", eventID),
		zap.String("custom_id", customID))
	return nil
}
