// Package audit records the trail of protection activity: ingested
// incidents, reviewer decisions, trust changes, and registry updates.
// Events flow through an in-process channel to a store and, when
// configured, to a Kafka topic for downstream consumers.
package audit

import "time"

// Action names what happened. Values appear verbatim in the trail and on
// the wire, so treat them as a public contract.
type Action string

const (
	ActionAssetRegistered  Action = "asset_registered"
	ActionMarkerGenerated  Action = "marker_generated"
	ActionIncidentIngested Action = "incident_ingested"
	ActionDecisionMade     Action = "decision_made"
	ActionAllowlistAdded   Action = "allowlist_added"
	ActionAllowlistRemoved Action = "allowlist_removed"
	ActionScanCompleted    Action = "scan_completed"
	ActionDashboardReset   Action = "dashboard_reset"
)

// Event is one entry in the trail. Subject identifies the thing acted on
// (incident ID, marker ID, allowlist entry ID); Actor is the reviewer when
// a human made the call, empty for system activity.
type Event struct {
	ID        string            `json:"id"`
	Timestamp time.Time         `json:"timestamp"`
	Action    Action            `json:"action"`
	Subject   string            `json:"subject"`
	Actor     string            `json:"actor,omitempty"`
	RequestID string            `json:"requestId,omitempty"`
	Details   map[string]string `json:"details,omitempty"`
}
