package discord

import (
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guildops/sessionbot/internal/models"
	"github.com/guildops/sessionbot/internal/services/session"
)

func statusFixture(active bool, messageID *string) *session.GetSessionStatusOutput {
	details := "Progression night"
	return &session.GetSessionStatusOutput{
		Session: &models.Session{
			ID:        12,
			Timestamp: time.Date(2024, 3, 16, 20, 30, 0, 0, time.Local),
			Details:   &details,
			Active:    active,
			MessageID: messageID,
		},
		Groups: []*models.Group{
			{ID: 1, Name: "Raiders", Acronym: "RAID", Emoji: "⚔️"},
			{ID: 2, Name: "Casuals", Acronym: "CAS"},
		},
		Absent:      2,
		Late:        1,
		GroupCounts: map[int64]int64{1: 3, 2: 1},
	}
}

func TestStatusDeliveryFor(t *testing.T) {
	messageID := "msg-777"
	cases := []struct {
		name string
		sess *models.Session
		want statusDelivery
	}{
		{
			name: "no tracked message publishes",
			sess: &models.Session{ID: 12},
			want: statusDelivery{publish: true},
		},
		{
			name: "tracked message edits in place",
			sess: &models.Session{ID: 12, MessageID: &messageID},
			want: statusDelivery{messageID: "msg-777"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, statusDeliveryFor(tc.sess))
		})
	}
}

func TestStatusDeliveryFor_StableAcrossRenders(t *testing.T) {
	// Once a message ID is stored, repeated renders keep editing the same
	// message instead of creating new ones.
	messageID := "msg-777"
	sess := &models.Session{ID: 12, MessageID: &messageID}

	first := statusDeliveryFor(sess)
	second := statusDeliveryFor(sess)

	assert.False(t, first.publish)
	assert.False(t, second.publish)
	assert.Equal(t, first.messageID, second.messageID)
}

func TestBuildStatusEmbed(t *testing.T) {
	status := statusFixture(true, nil)

	embed := buildStatusEmbed(status)

	assert.Equal(t, "Session of 16/03/2024", embed.Title)
	assert.Contains(t, embed.Description, "**Details:** Progression night")
	assert.Contains(t, embed.Description, "⚔️ **RAID**: 3 members")
	assert.Contains(t, embed.Description, "• **CAS**: 1 member")
	require.NotNil(t, embed.Footer)
	assert.Equal(t, "Session #12", embed.Footer.Text)
}

func TestBuildStatusEmbed_ClosedSession(t *testing.T) {
	status := statusFixture(false, nil)

	embed := buildStatusEmbed(status)

	assert.Equal(t, "Session of 16/03/2024 (closed)", embed.Title)
}

func TestBuildStatusComponents(t *testing.T) {
	status := statusFixture(true, nil)

	components := buildStatusComponents(status)
	require.Len(t, components, 2)

	selectRow, ok := components[0].(discordgo.ActionsRow)
	require.True(t, ok)
	require.Len(t, selectRow.Components, 1)
	menu, ok := selectRow.Components[0].(discordgo.SelectMenu)
	require.True(t, ok)
	assert.Equal(t, "session-12-group-selection", menu.CustomID)
	assert.Equal(t, 1, menu.MaxValues)
	require.Len(t, menu.Options, 2)
	assert.Equal(t, "[RAID] Raiders", menu.Options[0].Label)

	buttonRow, ok := components[1].(discordgo.ActionsRow)
	require.True(t, ok)
	require.Len(t, buttonRow.Components, 2)
	absent, ok := buttonRow.Components[0].(discordgo.Button)
	require.True(t, ok)
	assert.Equal(t, "Absent (2)", absent.Label)
	late, ok := buttonRow.Components[1].(discordgo.Button)
	require.True(t, ok)
	assert.Equal(t, "Late (1)", late.Label)
}

func TestBuildStatusComponents_ClosedSessionHasNoControls(t *testing.T) {
	status := statusFixture(false, nil)

	assert.Empty(t, buildStatusComponents(status))
}
