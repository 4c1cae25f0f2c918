package discord

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/guildops/sessionbot/internal/services/group"
	"github.com/guildops/sessionbot/internal/services/session"
)

// Length bounds Discord enforces client-side on the group registry options.
// The group service re-checks them before any write.
var (
	groupNameMinLength    = 3
	groupAcronymMinLength = 2
)

const (
	groupNameMaxLength    = 255
	groupAcronymMaxLength = 6
)

// SessionCommand implements the /session command: session lifecycle plus the
// group registry under the "group" subcommand group.
type SessionCommand struct {
	BaseCommand
	bot *Bot
}

// NewSessionCommand creates a new /session command handler
func NewSessionCommand(b *Bot) *SessionCommand {
	return &SessionCommand{
		BaseCommand: BaseCommand{
			Name:        "session",
			Description: "Organize play sessions and manage player groups",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "create",
					Description: "Schedule a new session",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "date",
							Description: "Session date (DD/MM/YYYY)",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "time",
							Description: "Session time (HH:MM, 24h)",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "details",
							Description: "Optional free-form details",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "close",
					Description: "Close a session, freezing its attendance",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "id",
							Description: "Session number",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommandGroup,
					Name:        "group",
					Description: "Manage the player group registry",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Name:        "add",
							Description: "Register a new group",
							Options: []*discordgo.ApplicationCommandOption{
								{
									Type:        discordgo.ApplicationCommandOptionString,
									Name:        "name",
									Description: "Full group name",
									Required:    true,
									MinLength:   &groupNameMinLength,
									MaxLength:   groupNameMaxLength,
								},
								{
									Type:        discordgo.ApplicationCommandOptionString,
									Name:        "acronym",
									Description: "Short tag, at most 6 characters",
									Required:    true,
									MinLength:   &groupAcronymMinLength,
									MaxLength:   groupAcronymMaxLength,
								},
								{
									Type:        discordgo.ApplicationCommandOptionString,
									Name:        "emoji",
									Description: "Emoji shown next to the group",
									Required:    true,
								},
								{
									Type:        discordgo.ApplicationCommandOptionString,
									Name:        "description",
									Description: "Optional description",
									MaxLength:   groupNameMaxLength,
								},
							},
						},
						{
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Name:        "edit",
							Description: "Update an existing group",
							Options: []*discordgo.ApplicationCommandOption{
								{
									Type:         discordgo.ApplicationCommandOptionString,
									Name:         "group",
									Description:  "Group to update",
									Required:     true,
									Autocomplete: true,
								},
								{
									Type:        discordgo.ApplicationCommandOptionString,
									Name:        "name",
									Description: "New full name",
									MinLength:   &groupNameMinLength,
									MaxLength:   groupNameMaxLength,
								},
								{
									Type:        discordgo.ApplicationCommandOptionString,
									Name:        "acronym",
									Description: "New short tag, at most 6 characters",
									MinLength:   &groupAcronymMinLength,
									MaxLength:   groupAcronymMaxLength,
								},
								{
									Type:        discordgo.ApplicationCommandOptionString,
									Name:        "emoji",
									Description: "New emoji",
								},
								{
									Type:        discordgo.ApplicationCommandOptionString,
									Name:        "description",
									Description: "New description",
									MaxLength:   groupNameMaxLength,
								},
							},
						},
						{
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Name:        "delete",
							Description: "Remove a group from the registry",
							Options: []*discordgo.ApplicationCommandOption{
								{
									Type:         discordgo.ApplicationCommandOptionString,
									Name:         "group",
									Description:  "Group to remove",
									Required:     true,
									Autocomplete: true,
								},
							},
						},
						{
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Name:        "list",
							Description: "List all registered groups",
						},
					},
				},
			},
		},
		bot: b,
	}
}

// Handle routes the /session subcommands
func (c *SessionCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	data := i.ApplicationCommandData()
	if len(data.Options) == 0 {
		return RespondWithError(s, i, "Invalid command", "Missing subcommand.")
	}

	sub := data.Options[0]
	switch sub.Name {
	case "create":
		return c.handleCreate(s, i, sub.Options)
	case "close":
		return c.handleClose(s, i, sub.Options)
	case "group":
		if len(sub.Options) == 0 {
			return RespondWithError(s, i, "Invalid command", "Missing subcommand.")
		}
		nested := sub.Options[0]
		switch nested.Name {
		case "add":
			return c.handleGroupAdd(s, i, nested.Options)
		case "edit":
			return c.handleGroupEdit(s, i, nested.Options)
		case "delete":
			return c.handleGroupDelete(s, i, nested.Options)
		case "list":
			return c.handleGroupList(s, i)
		}
	}

	return RespondWithError(s, i, "Invalid command", fmt.Sprintf("Unknown subcommand %q.", sub.Name))
}

func (c *SessionCommand) handleCreate(s *discordgo.Session, i *discordgo.InteractionCreate, options []*discordgo.ApplicationCommandInteractionDataOption) error {
	input := &session.CreateSessionInput{
		CreatedBy: interactionUser(i).ID,
	}
	for _, option := range options {
		switch option.Name {
		case "date":
			input.Date = option.StringValue()
		case "time":
			input.Time = option.StringValue()
		case "details":
			input.Details = option.StringValue()
		}
	}

	result, err := c.bot.sessionService.CreateSession(context.Background(), input)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrInvalidDate):
			return RespondWithError(s, i, "Session not created", "The date must be a valid DD/MM/YYYY calendar date.")
		case errors.Is(err, session.ErrInvalidTime):
			return RespondWithError(s, i, "Session not created", "The time must be HH:MM in 24-hour form.")
		case errors.Is(err, session.ErrInvalidInstant):
			return RespondWithError(s, i, "Session not created", "That date and time do not exist.")
		default:
			zap.L().Error("failed to create session", zap.Error(err))
			return RespondWithError(s, i, "Session not created", "Something went wrong, please try again.")
		}
	}

	return c.bot.startSessionWizard(s, i, result.Session)
}

func (c *SessionCommand) handleClose(s *discordgo.Session, i *discordgo.InteractionCreate, options []*discordgo.ApplicationCommandInteractionDataOption) error {
	var sessionID int64
	for _, option := range options {
		if option.Name == "id" {
			sessionID = option.IntValue()
		}
	}

	ctx := context.Background()
	if _, err := c.bot.sessionService.CloseSession(ctx, &session.CloseSessionInput{
		SessionID: sessionID,
	}); err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			return RespondWithError(s, i, "Session not closed", fmt.Sprintf("Session %d does not exist.", sessionID))
		}
		zap.L().Error("failed to close session",
			zap.Int64("session_id", sessionID),
			zap.Error(err))
		return RespondWithError(s, i, "Session not closed", "Something went wrong, please try again.")
	}

	// Refresh the public message so the controls disappear
	if err := c.bot.publishSessionStatus(ctx, sessionID); err != nil {
		zap.L().Error("failed to refresh closed session status",
			zap.Int64("session_id", sessionID),
			zap.Error(err))
	}

	return RespondWithSuccess(s, i, "Session closed", fmt.Sprintf("Session %d no longer accepts responses.", sessionID))
}

func (c *SessionCommand) handleGroupAdd(s *discordgo.Session, i *discordgo.InteractionCreate, options []*discordgo.ApplicationCommandInteractionDataOption) error {
	input := &group.AddGroupInput{
		ActorID: interactionUser(i).ID,
	}
	for _, option := range options {
		switch option.Name {
		case "name":
			input.Name = option.StringValue()
		case "acronym":
			input.Acronym = option.StringValue()
		case "emoji":
			input.Emoji = option.StringValue()
		case "description":
			input.Description = option.StringValue()
		}
	}

	result, err := c.bot.groupService.AddGroup(context.Background(), input)
	if err != nil {
		switch {
		case errors.Is(err, group.ErrNameLength):
			return RespondWithError(s, i, "Group not added", "The name must be 3 to 255 characters.")
		case errors.Is(err, group.ErrAcronymTooLong):
			return RespondWithError(s, i, "Group not added", "The acronym cannot be longer than 6 characters.")
		}
		zap.L().Error("failed to add group", zap.Error(err))
		return RespondWithError(s, i, "Group not added", "Something went wrong, please try again.")
	}

	return RespondWithSuccess(s, i, "Group added",
		fmt.Sprintf("%s **%s** [%s] is now registered.", result.Group.Emoji, result.Group.Name, result.Group.Acronym))
}

func (c *SessionCommand) handleGroupEdit(s *discordgo.Session, i *discordgo.InteractionCreate, options []*discordgo.ApplicationCommandInteractionDataOption) error {
	input := &group.EditGroupInput{}
	for _, option := range options {
		switch option.Name {
		case "group":
			id, err := strconv.ParseInt(option.StringValue(), 10, 64)
			if err != nil {
				return RespondWithError(s, i, "Group not updated", "Please pick a group from the suggestions.")
			}
			input.GroupID = id
		case "name":
			v := option.StringValue()
			input.Name = &v
		case "acronym":
			v := option.StringValue()
			input.Acronym = &v
		case "emoji":
			v := option.StringValue()
			input.Emoji = &v
		case "description":
			v := option.StringValue()
			input.Description = &v
		}
	}

	result, err := c.bot.groupService.EditGroup(context.Background(), input)
	if err != nil {
		switch {
		case errors.Is(err, group.ErrGroupNotFound):
			return RespondWithError(s, i, "Group not updated", "That group does not exist.")
		case errors.Is(err, group.ErrAcronymTooLong):
			return RespondWithError(s, i, "Group not updated", "The acronym cannot be longer than 6 characters.")
		case errors.Is(err, group.ErrNothingToUpdate):
			return RespondWithError(s, i, "Group not updated", "No usable change was provided.")
		default:
			zap.L().Error("failed to edit group",
				zap.Int64("group_id", input.GroupID),
				zap.Error(err))
			return RespondWithError(s, i, "Group not updated", "Something went wrong, please try again.")
		}
	}

	return RespondWithSuccess(s, i, "Group updated",
		fmt.Sprintf("%s **%s** [%s] has been updated.", result.Group.Emoji, result.Group.Name, result.Group.Acronym))
}

func (c *SessionCommand) handleGroupDelete(s *discordgo.Session, i *discordgo.InteractionCreate, options []*discordgo.ApplicationCommandInteractionDataOption) error {
	var groupID int64
	for _, option := range options {
		if option.Name == "group" {
			id, err := strconv.ParseInt(option.StringValue(), 10, 64)
			if err != nil {
				return RespondWithError(s, i, "Group not removed", "Please pick a group from the suggestions.")
			}
			groupID = id
		}
	}

	if _, err := c.bot.groupService.DeleteGroup(context.Background(), &group.DeleteGroupInput{
		GroupID: groupID,
		ActorID: interactionUser(i).ID,
	}); err != nil {
		if errors.Is(err, group.ErrGroupNotFound) {
			return RespondWithError(s, i, "Group not removed", "That group does not exist.")
		}
		zap.L().Error("failed to delete group",
			zap.Int64("group_id", groupID),
			zap.Error(err))
		return RespondWithError(s, i, "Group not removed", "Something went wrong, please try again.")
	}

	return RespondWithSuccess(s, i, "Group removed", "The group is no longer registered.")
}

func (c *SessionCommand) handleGroupList(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	result, err := c.bot.groupService.ListGroups(context.Background(), &group.ListGroupsInput{})
	if err != nil {
		zap.L().Error("failed to list groups", zap.Error(err))
		return RespondWithError(s, i, "Groups unavailable", "Something went wrong, please try again.")
	}

	if len(result.Groups) == 0 {
		return RespondWithEphemeralMessage(s, i, "No group is registered yet.")
	}

	var sb strings.Builder
	for _, g := range result.Groups {
		fmt.Fprintf(&sb, "%s **%s** [%s]", g.Emoji, g.Name, g.Acronym)
		if g.Description != nil && *g.Description != "" {
			fmt.Fprintf(&sb, " — %s", *g.Description)
		}
		sb.WriteString("\n")
	}

	return RespondWithSuccess(s, i, "Registered groups", sb.String())
}

// HandleAutocomplete serves group suggestions for the edit and delete
// subcommands. Failures degrade to an empty choice list; Discord treats a
// missing response as a UI error, an empty one as no matches.
func (c *SessionCommand) HandleAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	prefix := focusedOptionValue(i.ApplicationCommandData().Options)

	choices := []*discordgo.ApplicationCommandOptionChoice{}
	result, err := c.bot.groupService.SearchGroups(context.Background(), &group.SearchGroupsInput{
		Prefix: prefix,
	})
	if err != nil {
		zap.L().Warn("group autocomplete failed",
			zap.String("prefix", prefix),
			zap.Error(err))
	} else {
		for _, g := range result.Groups {
			choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
				Name:  fmt.Sprintf("[%s] %s", g.Acronym, g.Name),
				Value: strconv.FormatInt(g.ID, 10),
			})
		}
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{
			Choices: choices,
		},
	})
}

// focusedOptionValue walks the option tree to the focused option's current
// text
func focusedOptionValue(options []*discordgo.ApplicationCommandInteractionDataOption) string {
	for _, option := range options {
		if option.Focused {
			return option.StringValue()
		}
		if v := focusedOptionValue(option.Options); v != "" {
			return v
		}
	}
	return ""
}
