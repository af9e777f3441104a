package classifier

import (
	"context"
	"hash/fnv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"cora/internal/asset"
)

// Display labels attached to assessments. These strings appear verbatim in
// incident views and are part of the product contract.
const (
	LabelVerifiedOriginal = "Verified original (marker confirmed)"
	LabelUnverified       = "Unverified"

	realityVerified = "Marker and geometry match the registered reference – content treated as original."
	realityMismatch = "Marker seen on a different subject – likely spoof or misuse of the CORA marker."
	realityAI       = "AI-style rendering – marker appears, but the subject is synthetic."
	realityUnknown  = "Original – spoof not evaluated"
)

var assessments = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "cora_classifier_assessments_total",
	Help: "Classifier outcomes by spoof category",
}, []string{"category"})

// Risk bands per category. The exact score within a band is a stable hash
// of the detection so identical inputs always classify identically.
var riskBands = map[Category]struct{ lo, hi int }{
	CategoryNone:           {0, 10},
	CategoryMarkerMismatch: {60, 80},
	CategoryAIGenerated:    {85, 100},
	CategoryUnknown:        {25, 45},
}

// Rules is the deterministic rule-based Classifier.
type Rules struct{}

func NewRules() *Rules {
	return &Rules{}
}

// Classify applies the cue-driven policy:
//
//	synthetic render  -> ai_generated, highest band
//	marker mismatch   -> marker_mismatch, high band
//	marker confirmed  -> none (requires a resolved asset), low band
//	anything else     -> unknown, moderate band, not suspected
func (r *Rules) Classify(_ context.Context, d Detection, subject *asset.Asset) Assessment {
	var out Assessment

	switch {
	case d.Cue == CueSyntheticRender:
		out = Assessment{
			SpoofSuspected:    true,
			Category:          CategoryAIGenerated,
			AuthenticityLabel: LabelUnverified,
			RealityCheckLabel: realityAI,
		}
	case d.Cue == CueMarkerMismatch:
		out = Assessment{
			SpoofSuspected:    true,
			Category:          CategoryMarkerMismatch,
			AuthenticityLabel: LabelUnverified,
			RealityCheckLabel: realityMismatch,
		}
	case d.Cue == CueMarkerConfirmed && subject != nil:
		out = Assessment{
			SpoofSuspected:    false,
			Category:          CategoryNone,
			AuthenticityLabel: LabelVerifiedOriginal,
			RealityCheckLabel: realityVerified,
		}
	default:
		out = Assessment{
			SpoofSuspected:    false,
			Category:          CategoryUnknown,
			AuthenticityLabel: LabelUnverified,
			RealityCheckLabel: realityUnknown,
		}
	}

	band := riskBands[out.Category]
	out.RiskScore = band.lo + int(stableHash(d)%uint32(band.hi-band.lo+1))

	assessments.WithLabelValues(string(out.Category)).Inc()
	return out
}

// stableHash folds the identifying detection fields so the in-band score is
// reproducible for identical inputs.
func stableHash(d Detection) uint32 {
	h := fnv.New32a()
	for _, part := range []string{d.MarkerID, d.AssetName, d.Platform, d.Uploader, d.SourceURL, string(d.Cue)} {
		_, _ = h.Write([]byte(part))
		_, _ = h.Write([]byte{0})
	}
	return h.Sum32()
}
