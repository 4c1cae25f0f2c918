package discord

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/guildops/sessionbot/internal/services/session"
)

func TestParseAttendanceControl(t *testing.T) {
	cases := []struct {
		name     string
		customID string
		want     attendanceControl
		ok       bool
	}{
		{
			name:     "group selection",
			customID: "session-12-group-selection",
			want:     attendanceControl{SessionID: 12, Action: session.ActionGroupSelection},
			ok:       true,
		},
		{
			name:     "absent",
			customID: "session-3-absent",
			want:     attendanceControl{SessionID: 3, Action: session.ActionAbsent},
			ok:       true,
		},
		{
			name:     "late",
			customID: "session-3-late",
			want:     attendanceControl{SessionID: 3, Action: session.ActionLate},
			ok:       true,
		},
		{
			name:     "wizard control is not an attendance control",
			customID: "collector-session-3-validate",
			ok:       false,
		},
		{
			name:     "unknown action",
			customID: "session-3-maybe",
			ok:       false,
		},
		{
			name:     "missing session id",
			customID: "session--absent",
			ok:       false,
		},
		{
			name:     "trailing garbage",
			customID: "session-3-absent-x",
			ok:       false,
		},
		{
			name:     "empty",
			customID: "",
			ok:       false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := parseAttendanceControl(tc.customID)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestParseWizardControl(t *testing.T) {
	cases := []struct {
		name     string
		customID string
		want     wizardControl
		ok       bool
	}{
		{
			name:     "addgroup",
			customID: "collector-session-9-addgroup",
			want:     wizardControl{SessionID: 9, Kind: wizardControlAddGroup},
			ok:       true,
		},
		{
			name:     "validate",
			customID: "collector-session-9-validate",
			want:     wizardControl{SessionID: 9, Kind: wizardControlValidate},
			ok:       true,
		},
		{
			name:     "cancel",
			customID: "collector-session-9-cancel",
			want:     wizardControl{SessionID: 9, Kind: wizardControlCancel},
			ok:       true,
		},
		{
			name:     "attendance control is not a wizard control",
			customID: "session-9-absent",
			ok:       false,
		},
		{
			name:     "unknown control",
			customID: "collector-session-9-reset",
			ok:       false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := parseWizardControl(tc.customID)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestControlIDRoundTrip(t *testing.T) {
	id := attendanceControlID(42, session.ActionGroupSelection)
	assert.Equal(t, "session-42-group-selection", id)

	parsed, ok := parseAttendanceControl(id)
	assert.True(t, ok)
	assert.Equal(t, int64(42), parsed.SessionID)

	wid := wizardControlID(42, wizardControlCancel)
	assert.Equal(t, "collector-session-42-cancel", wid)

	wparsed, ok := parseWizardControl(wid)
	assert.True(t, ok)
	assert.Equal(t, wizardControlCancel, wparsed.Kind)
}
