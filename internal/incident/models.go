// Package incident owns the detection lifecycle: a raw detection becomes a
// persisted Incident whose status only changes through reviewer decisions.
package incident

import (
	"strconv"
	"time"

	"cora/internal/classifier"
)

// Status is the incident's position in the enforcement lifecycle.
type Status string

const (
	// StatusPendingEnforcement covers flagged and unresolved detections
	// awaiting a reviewer.
	StatusPendingEnforcement Status = "pending_enforcement"
	// StatusAllowed covers trusted-uploader detections and approvals.
	StatusAllowed Status = "allowed"
	// StatusEscalatedTakedownFiled is terminal.
	StatusEscalatedTakedownFiled Status = "escalated_takedown_filed"
)

// Legacy display strings for each way a status is reached. They appear
// verbatim in dashboards and are part of the product contract.
const (
	StatusLabelAllowedVerified = "Allowed – verified original"
	StatusLabelFlagged         = "Flagged – awaiting review"
	StatusLabelAllowlisted     = "Allowlisted upload"
	StatusLabelPending         = "Pending enforcement"
	StatusLabelEscalated       = "Escalated – takedown filed"
)

// TypeLabel describes what kind of capture an incident is.
type TypeLabel string

const (
	TypeOwnerApproved       TypeLabel = "Owner-approved content"
	TypeUnauthorizedCapture TypeLabel = "Potential unauthorized capture"
	TypeApprovedUploader    TypeLabel = "Approved uploader"
	TypePressEditorial      TypeLabel = "Press / editorial"
	TypeInteriorContent     TypeLabel = "Interior content"
	TypeRunwaySpotter       TypeLabel = "Runway spotter post"
	TypeFanContent          TypeLabel = "Fan content"
)

// Fallback display values for detections whose marker never resolved.
const (
	UnresolvedAssetName = "Registered asset"
	UnresolvedMarkerID  = "Unspecified"
)

// Incident is one recorded detection of a marker in external content. Asset
// name and marker id are resolved once at ingestion and never re-resolved.
type Incident struct {
	ID                string              `json:"id"`
	AssetName         string              `json:"assetName"`
	Platform          string              `json:"platform"`
	Uploader          string              `json:"uploader"`
	UploaderHandle    string              `json:"uploaderHandle"`
	MarkerID          string              `json:"markerId"`
	ContentType       string              `json:"contentType"`
	SourceURL         string              `json:"sourceUrl,omitempty"`
	DetectedAt        time.Time           `json:"detectedAt"`
	TimeLabel         string              `json:"timeLabel"`
	Status            Status              `json:"status"`
	StatusLabel       string              `json:"statusLabel"`
	TypeLabel         TypeLabel           `json:"typeLabel"`
	AuthenticityLabel string              `json:"authenticityLabel"`
	RealityCheckLabel string              `json:"realityCheckLabel,omitempty"`
	IsSpoofSuspected  bool                `json:"isSpoofSuspected"`
	SpoofCategory     classifier.Category `json:"spoofCategory,omitempty"`
	DeepfakeRiskScore int                 `json:"deepfakeRiskScore"`
	IncidentNotes     string              `json:"incidentNotes,omitempty"`
	ReferenceOriginal string              `json:"referenceOriginal,omitempty"`
	ReferenceSuspect  string              `json:"referenceSuspect,omitempty"`
	CreatedBySim      bool                `json:"createdBySimulation"`
}

// FormatTimeLabel renders the human time label shown next to an incident.
func FormatTimeLabel(detected, now time.Time) string {
	if now.Sub(detected) < time.Minute {
		return "Just now"
	}
	clock := detected.Format("3:04 PM")
	days := int(now.Sub(detected).Hours() / 24)
	switch {
	case days < 1:
		return "Today · " + clock
	case days == 1:
		return "1 day ago · " + clock
	default:
		return strconv.Itoa(days) + " days ago · " + clock
	}
}
