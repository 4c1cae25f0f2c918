package discord

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/guildops/sessionbot/internal/services/session"
)

// Control IDs carry the routing information for component interactions.
// Attendance controls on the public status message use
// "session-{id}-{action}"; the creation wizard's ephemeral controls use
// "collector-session-{id}-{control}". Both forms are decoded into typed
// values at this boundary so no other code re-parses strings.

var (
	attendanceControlRe = regexp.MustCompile(`^session-([0-9]+)-(group-selection|absent|late)$`)
	wizardControlRe     = regexp.MustCompile(`^collector-session-([0-9]+)-(addgroup|validate|cancel)$`)
)

// attendanceControl identifies one attendance control on a status message
type attendanceControl struct {
	SessionID int64
	Action    session.Action
}

// parseAttendanceControl decodes an attendance control ID. Non-matching IDs
// return ok=false and must be ignored by the caller.
func parseAttendanceControl(customID string) (attendanceControl, bool) {
	m := attendanceControlRe.FindStringSubmatch(customID)
	if m == nil {
		return attendanceControl{}, false
	}

	id, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return attendanceControl{}, false
	}

	return attendanceControl{
		SessionID: id,
		Action:    session.Action(m[2]),
	}, true
}

// attendanceControlID builds the custom ID for one attendance control
func attendanceControlID(sessionID int64, action session.Action) string {
	return fmt.Sprintf("session-%d-%s", sessionID, action)
}

// wizardControlKind is one of the creation wizard's controls
type wizardControlKind string

const (
	wizardControlAddGroup wizardControlKind = "addgroup"
	wizardControlValidate wizardControlKind = "validate"
	wizardControlCancel   wizardControlKind = "cancel"
)

// wizardControl identifies one control on a creation wizard message
type wizardControl struct {
	SessionID int64
	Kind      wizardControlKind
}

// parseWizardControl decodes a wizard control ID
func parseWizardControl(customID string) (wizardControl, bool) {
	m := wizardControlRe.FindStringSubmatch(customID)
	if m == nil {
		return wizardControl{}, false
	}

	id, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return wizardControl{}, false
	}

	return wizardControl{
		SessionID: id,
		Kind:      wizardControlKind(m[2]),
	}, true
}

// wizardControlID builds the custom ID for one wizard control
func wizardControlID(sessionID int64, kind wizardControlKind) string {
	return fmt.Sprintf("collector-session-%d-%s", sessionID, kind)
}
