package incident

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"cora/internal/allowlist"
	"cora/internal/asset"
	"cora/internal/audit"
	"cora/internal/classifier"
	"cora/internal/incident/metrics"
	dErrors "cora/pkg/domainerrors"
	"cora/pkg/requestcontext"
)

var tracer = otel.Tracer("cora/incident")

// Registry resolves detections to registered assets.
type Registry interface {
	Get(ctx context.Context, id string) (asset.Asset, error)
	FindByName(ctx context.Context, name string) (asset.Asset, bool)
}

// TrustStore answers whether an uploader is exempt from enforcement.
type TrustStore interface {
	IsTrusted(ctx context.Context, handle string, platform allowlist.Platform) bool
}

// RawDetection is the input to ingestion, from a scan batch or a manual
// report.
type RawDetection struct {
	MarkerID    string
	AssetName   string
	Platform    string
	Uploader    string
	SourceURL   string
	ContentType string
	Cue         classifier.Cue
	Notes       string
	// TypeLabel optionally overrides the flagged type for scan variety.
	TypeLabel TypeLabel
	Simulated bool
}

// Service turns raw detections into persisted incidents. Asset resolution
// and trust lookup run concurrently; classification is pure and runs after.
type Service struct {
	repo       *Repository
	registry   Registry
	trust      TrustStore
	classifier classifier.Classifier
	logger     *slog.Logger
	metrics    *metrics.Metrics
	auditor    *audit.Publisher
}

func NewService(
	repo *Repository,
	registry Registry,
	trust TrustStore,
	cls classifier.Classifier,
	logger *slog.Logger,
	m *metrics.Metrics,
	auditor *audit.Publisher,
) *Service {
	return &Service{
		repo:       repo,
		registry:   registry,
		trust:      trust,
		classifier: cls,
		logger:     logger,
		metrics:    m,
		auditor:    auditor,
	}
}

// Ingest resolves, classifies, and persists one detection. Trust exemption
// takes precedence over every classifier signal; a detection that resolves
// to nothing is still ingested under placeholder labels.
func (s *Service) Ingest(ctx context.Context, raw RawDetection) (Incident, error) {
	ctx, span := tracer.Start(ctx, "incident.ingest")
	defer span.End()
	start := time.Now()

	raw.Uploader = strings.TrimSpace(raw.Uploader)
	if raw.Uploader == "" {
		raw.Uploader = "@unknown"
	}
	if raw.Platform == "" {
		raw.Platform = string(allowlist.PlatformInstagram)
	}
	span.SetAttributes(
		attribute.String("platform", raw.Platform),
		attribute.String("marker_id", raw.MarkerID),
	)

	subject, trusted := s.gatherEvidence(ctx, raw)

	detection := classifier.Detection{
		MarkerID:    raw.MarkerID,
		AssetName:   raw.AssetName,
		Platform:    raw.Platform,
		Uploader:    raw.Uploader,
		SourceURL:   raw.SourceURL,
		ContentType: raw.ContentType,
		Cue:         raw.Cue,
	}
	assessment := s.classifier.Classify(ctx, detection, subject)

	now := requestcontext.Now(ctx)
	inc := Incident{
		ID:                fmt.Sprintf("INC-%d-%04d", now.UnixMilli(), rand.IntN(10000)),
		AssetName:         resolveAssetName(raw, subject),
		Platform:          raw.Platform,
		Uploader:          raw.Uploader,
		UploaderHandle:    raw.Uploader,
		MarkerID:          resolveMarkerID(raw, subject),
		ContentType:       raw.ContentType,
		SourceURL:         raw.SourceURL,
		DetectedAt:        now,
		TimeLabel:         FormatTimeLabel(now, now),
		AuthenticityLabel: assessment.AuthenticityLabel,
		RealityCheckLabel: assessment.RealityCheckLabel,
		IsSpoofSuspected:  assessment.SpoofSuspected,
		SpoofCategory:     assessment.Category,
		DeepfakeRiskScore: assessment.RiskScore,
		IncidentNotes:     raw.Notes,
		CreatedBySim:      raw.Simulated,
	}

	switch {
	case trusted:
		// Trusted-uploader exemption wins over every spoof signal.
		inc.Status = StatusAllowed
		inc.StatusLabel = StatusLabelAllowedVerified
		inc.TypeLabel = TypeOwnerApproved
		inc.IsSpoofSuspected = false
		inc.SpoofCategory = classifier.CategoryNone
	case assessment.SpoofSuspected:
		inc.Status = StatusPendingEnforcement
		inc.StatusLabel = StatusLabelFlagged
		inc.TypeLabel = TypeUnauthorizedCapture
	default:
		inc.Status = StatusPendingEnforcement
		inc.StatusLabel = StatusLabelFlagged
		inc.TypeLabel = TypeUnauthorizedCapture
		inc.AuthenticityLabel = classifier.LabelUnverified
	}
	if raw.TypeLabel != "" && !trusted {
		inc.TypeLabel = raw.TypeLabel
	}

	s.repo.Prepend(ctx, inc)

	s.metrics.IncrementIngest(string(inc.Status), string(inc.SpoofCategory))
	s.metrics.ObserveIngestLatency(time.Since(start))
	s.auditor.Emit(ctx, audit.Event{
		Action:  audit.ActionIncidentIngested,
		Subject: inc.ID,
		Details: map[string]string{
			"platform": inc.Platform,
			"uploader": inc.Uploader,
			"status":   string(inc.Status),
			"category": string(inc.SpoofCategory),
		},
	})
	s.logger.InfoContext(ctx, "incident ingested",
		"incident_id", inc.ID,
		"status", inc.Status,
		"spoof_category", inc.SpoofCategory,
		"risk_score", inc.DeepfakeRiskScore,
		"trusted", trusted,
	)

	return inc, nil
}

// gatherEvidence resolves the asset and the trust exemption concurrently.
// Neither lookup can fail the ingest: a missing asset degrades to
// placeholder labels and an unreadable trust store reads as untrusted.
func (s *Service) gatherEvidence(ctx context.Context, raw RawDetection) (*asset.Asset, bool) {
	g, gctx := errgroup.WithContext(ctx)

	var subject *asset.Asset
	var trusted bool

	g.Go(func() error {
		if raw.MarkerID != "" {
			if a, err := s.registry.Get(gctx, raw.MarkerID); err == nil {
				subject = &a
				return nil
			}
		}
		if raw.AssetName != "" {
			if a, ok := s.registry.FindByName(gctx, raw.AssetName); ok {
				subject = &a
			}
		}
		return nil
	})

	g.Go(func() error {
		trusted = s.trust.IsTrusted(gctx, raw.Uploader, allowlist.Platform(raw.Platform))
		return nil
	})

	_ = g.Wait()
	return subject, trusted
}

func resolveAssetName(raw RawDetection, subject *asset.Asset) string {
	if subject != nil {
		return subject.Name
	}
	if name := strings.TrimSpace(raw.AssetName); name != "" {
		return name
	}
	return UnresolvedAssetName
}

func resolveMarkerID(raw RawDetection, subject *asset.Asset) string {
	if subject != nil {
		return subject.MarkerID
	}
	if raw.MarkerID != "" {
		return raw.MarkerID
	}
	return UnresolvedMarkerID
}

// List returns every incident, newest first.
func (s *Service) List(ctx context.Context) []Incident {
	return s.repo.List(ctx)
}

// Get returns one incident by id.
func (s *Service) Get(ctx context.Context, id string) (Incident, error) {
	inc, ok := s.repo.Find(ctx, id)
	if !ok {
		return Incident{}, dErrors.New(dErrors.CodeNotFound, "incident not found")
	}
	return inc, nil
}

// Reset drops the stored collection; the next read reseeds the references.
func (s *Service) Reset(ctx context.Context) {
	s.repo.Reset(ctx)
}
