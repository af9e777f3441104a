package enforcement

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"cora/internal/allowlist"
	"cora/internal/audit"
	"cora/internal/classifier"
	"cora/internal/enforcement/metrics"
	"cora/internal/incident"
	dErrors "cora/pkg/domainerrors"
	"cora/pkg/requestcontext"
)

var tracer = otel.Tracer("cora/enforcement")

// Truster grants trust to an uploader as a decision side effect.
type Truster interface {
	Add(ctx context.Context, input allowlist.AddInput) (allowlist.Entry, error)
}

// Service applies decisions through a whole-collection read-modify-write on
// the incident store.
type Service struct {
	incidents *incident.Repository
	trust     Truster
	logger    *slog.Logger
	metrics   *metrics.Metrics
	auditor   *audit.Publisher
}

func NewService(
	incidents *incident.Repository,
	trust Truster,
	logger *slog.Logger,
	m *metrics.Metrics,
	auditor *audit.Publisher,
) *Service {
	return &Service{
		incidents: incidents,
		trust:     trust,
		logger:    logger,
		metrics:   m,
		auditor:   auditor,
	}
}

// Decide applies one reviewer decision to one incident and returns the
// updated incident. A filed takedown accepts no further decisions.
func (s *Service) Decide(ctx context.Context, incidentID string, action Action) (incident.Incident, error) {
	ctx, span := tracer.Start(ctx, "enforcement.decide", trace.WithAttributes(
		attribute.String("incident_id", incidentID),
		attribute.String("action", string(action)),
	))
	defer span.End()

	all := s.incidents.List(ctx)
	idx := -1
	for i, inc := range all {
		if inc.ID == incidentID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.metrics.IncrementDecision(string(action), "rejected")
		return incident.Incident{}, dErrors.New(dErrors.CodeNotFound, "incident not found")
	}

	inc := all[idx]
	if !CanDecide(inc.Status) {
		s.metrics.IncrementDecision(string(action), "rejected")
		return incident.Incident{}, dErrors.New(dErrors.CodeInvalidState, "a takedown has already been filed for this incident")
	}

	switch action {
	case ActionApproveAndAllowlist:
		inc.Status = incident.StatusAllowed
		inc.StatusLabel = incident.StatusLabelAllowlisted
		inc.TypeLabel = incident.TypeApprovedUploader
		if inc.AuthenticityLabel == "" {
			inc.AuthenticityLabel = classifier.LabelVerifiedOriginal
		}
		inc.IsSpoofSuspected = false
		inc.SpoofCategory = classifier.CategoryNone
		s.allowlistUploader(ctx, inc)
	case ActionKeepEnforcement:
		inc.Status = incident.StatusPendingEnforcement
		inc.StatusLabel = incident.StatusLabelPending
	case ActionFileTakedown:
		inc.Status = incident.StatusEscalatedTakedownFiled
		inc.StatusLabel = incident.StatusLabelEscalated
	default:
		s.metrics.IncrementDecision(string(action), "rejected")
		return incident.Incident{}, dErrors.New(dErrors.CodeBadRequest, "unknown decision action")
	}

	all[idx] = inc
	s.incidents.ReplaceAll(ctx, all)

	reviewer := requestcontext.ReviewerID(ctx)
	s.metrics.IncrementDecision(string(action), "applied")
	s.auditor.Emit(ctx, audit.Event{
		Action:  audit.ActionDecisionMade,
		Subject: inc.ID,
		Actor:   reviewer,
		Details: map[string]string{
			"action":   string(action),
			"status":   string(inc.Status),
			"uploader": inc.Uploader,
		},
	})
	s.logger.InfoContext(ctx, "decision applied",
		"incident_id", inc.ID,
		"action", action,
		"status", inc.Status,
		"reviewer_id", reviewer,
	)

	return inc, nil
}

// allowlistUploader trusts the incident's uploader on its platform. The add
// is idempotent: an uploader already trusted there is not an error.
func (s *Service) allowlistUploader(ctx context.Context, inc incident.Incident) {
	_, err := s.trust.Add(ctx, allowlist.AddInput{
		Handle:   inc.Uploader,
		Platform: allowlist.Platform(inc.Platform),
		Note:     "Added via incident approval",
	})
	if err != nil && !dErrors.Is(err, dErrors.CodeDuplicateEntry) {
		s.logger.WarnContext(ctx, "allowlist side effect failed",
			"incident_id", inc.ID,
			"uploader", inc.Uploader,
			"error", err,
		)
	}
}
