package discord

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/guildops/sessionbot/internal/services/settings"
)

// SettingsCommand implements the /settings command over the declared
// settings registry. Only declared keys are offered; arbitrary keys cannot
// be written.
type SettingsCommand struct {
	BaseCommand
	settingsService settings.Service
}

// NewSettingsCommand creates a new /settings command handler
func NewSettingsCommand(settingsService settings.Service) *SettingsCommand {
	keys := settingsService.Keys()
	sort.Strings(keys)

	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(keys))
	for _, key := range keys {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  key,
			Value: key,
		})
	}

	return &SettingsCommand{
		BaseCommand: BaseCommand{
			Name:        "settings",
			Description: "Read and change bot settings",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "set",
					Description: "Change a setting",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "key",
							Description: "Setting to change",
							Required:    true,
							Choices:     choices,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "value",
							Description: "New value",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "get",
					Description: "Show a setting",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "key",
							Description: "Setting to show",
							Required:    true,
							Choices:     choices,
						},
					},
				},
			},
		},
		settingsService: settingsService,
	}
}

// Handle routes the /settings subcommands
func (c *SettingsCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	data := i.ApplicationCommandData()
	if len(data.Options) == 0 {
		return RespondWithError(s, i, "Invalid command", "Missing subcommand.")
	}

	sub := data.Options[0]
	var key, value string
	for _, option := range sub.Options {
		switch option.Name {
		case "key":
			key = option.StringValue()
		case "value":
			value = option.StringValue()
		}
	}

	switch sub.Name {
	case "set":
		return c.handleSet(s, i, key, value)
	case "get":
		return c.handleGet(s, i, key)
	}

	return RespondWithError(s, i, "Invalid command", fmt.Sprintf("Unknown subcommand %q.", sub.Name))
}

func (c *SettingsCommand) handleSet(s *discordgo.Session, i *discordgo.InteractionCreate, key, value string) error {
	if err := c.settingsService.Set(context.Background(), key, value); err != nil {
		switch {
		case errors.Is(err, settings.ErrUnknownKey):
			return RespondWithError(s, i, "Setting not changed",
				fmt.Sprintf("Unknown setting %q. Known settings: %s.", key, strings.Join(c.settingsService.Keys(), ", ")))
		case errors.Is(err, settings.ErrInvalidValue):
			return RespondWithError(s, i, "Setting not changed",
				fmt.Sprintf("%q is not a valid value for %s.", value, key))
		default:
			zap.L().Error("failed to set setting",
				zap.String("key", key),
				zap.Error(err))
			return RespondWithError(s, i, "Setting not changed", "Something went wrong, please try again.")
		}
	}

	return RespondWithSuccess(s, i, "Setting changed", fmt.Sprintf("**%s** is now `%s`.", key, value))
}

func (c *SettingsCommand) handleGet(s *discordgo.Session, i *discordgo.InteractionCreate, key string) error {
	value, err := c.settingsService.Get(context.Background(), key)
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrUnknownKey):
			return RespondWithError(s, i, "Setting unavailable", fmt.Sprintf("Unknown setting %q.", key))
		case errors.Is(err, settings.ErrSettingUnset):
			return RespondWithEphemeralMessage(s, i, fmt.Sprintf("**%s** is not set.", key))
		default:
			zap.L().Error("failed to get setting",
				zap.String("key", key),
				zap.Error(err))
			return RespondWithError(s, i, "Setting unavailable", "Something went wrong, please try again.")
		}
	}

	return RespondWithSuccess(s, i, "Setting", fmt.Sprintf("**%s** is `%s`.", key, value))
}
