// Package enforcement applies reviewer decisions to incidents. Decisions are
// the only way an incident's status changes after ingestion.
package enforcement

import (
	"cora/internal/incident"
	dErrors "cora/pkg/domainerrors"
)

// Action is a reviewer decision on a single incident.
type Action string

const (
	// ActionApproveAndAllowlist allows the upload and trusts the uploader
	// on that platform going forward.
	ActionApproveAndAllowlist Action = "approve_and_allowlist"
	// ActionKeepEnforcement keeps the incident queued for takedown.
	ActionKeepEnforcement Action = "keep_enforcement"
	// ActionFileTakedown escalates the incident. Terminal.
	ActionFileTakedown Action = "file_takedown"
)

// ParseAction validates a wire-level action string.
func ParseAction(raw string) (Action, error) {
	switch a := Action(raw); a {
	case ActionApproveAndAllowlist, ActionKeepEnforcement, ActionFileTakedown:
		return a, nil
	}
	return "", dErrors.New(dErrors.CodeBadRequest, "unknown decision action")
}

// CanDecide reports whether an incident in the given status still accepts
// decisions. A filed takedown is final.
func CanDecide(status incident.Status) bool {
	return status != incident.StatusEscalatedTakedownFiled
}
