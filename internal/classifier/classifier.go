// Package classifier scores candidate detections against their registered
// asset and assigns a spoof category, risk score, and display labels. The
// rule-based implementation is deliberately a strategy behind an interface:
// a vision-model client can replace it without touching ingestion or
// enforcement.
package classifier

import (
	"context"

	"cora/internal/asset"
)

// Cue is the structural/contextual signal extracted from a detection before
// classification. Scans and manual reports supply it; the classifier only
// interprets it.
type Cue string

const (
	// CueNone means no signal either way was observed.
	CueNone Cue = ""
	// CueMarkerConfirmed means marker and subject geometry match the
	// registered reference imagery.
	CueMarkerConfirmed Cue = "marker_confirmed"
	// CueMarkerMismatch means the marker appears on a subject that does not
	// match the registered reference.
	CueMarkerMismatch Cue = "marker_mismatch"
	// CueSyntheticRender means imagery artifacts suggest a rendered or
	// AI-generated subject rather than a photograph.
	CueSyntheticRender Cue = "synthetic_render"
)

// Category classifies what kind of spoof, if any, a detection represents.
type Category string

const (
	CategoryNone           Category = "none"
	CategoryMarkerMismatch Category = "marker_mismatch"
	CategoryAIGenerated    Category = "ai_generated"
	CategoryUnknown        Category = "unknown"
)

// Detection is the raw observation handed to the classifier.
type Detection struct {
	MarkerID    string
	AssetName   string
	Platform    string
	Uploader    string
	SourceURL   string
	ContentType string
	Cue         Cue
}

// Assessment is the classification outcome attached to an incident at
// ingestion. RiskScore is always in [0,100].
type Assessment struct {
	SpoofSuspected    bool
	Category          Category
	RiskScore         int
	AuthenticityLabel string
	RealityCheckLabel string
}

// Classifier scores a detection against its resolved asset. subject is nil
// when the marker could not be resolved to a registry entry.
type Classifier interface {
	Classify(ctx context.Context, d Detection, subject *asset.Asset) Assessment
}
