package allowlist

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"cora/internal/audit"
	dErrors "cora/pkg/domainerrors"
	"cora/pkg/requestcontext"
)

var (
	entriesChanged = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cora_allowlist_changes_total",
		Help: "Allowlist mutations by action",
	}, []string{"action"})

	trustChecks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cora_allowlist_trust_checks_total",
		Help: "Trust lookups by result",
	}, []string{"result"})
)

// AddInput is the caller-supplied portion of a trust grant.
type AddInput struct {
	Handle   string   `json:"handle"`
	Platform Platform `json:"platform"`
	Note     string   `json:"note"`
}

// Service owns the trust store. Handles are compared case-insensitively;
// platforms exactly.
type Service struct {
	repo    *Repository
	auditor *audit.Publisher
}

func NewService(repo *Repository, auditor *audit.Publisher) *Service {
	return &Service{repo: repo, auditor: auditor}
}

// Add grants trust to an uploader. The same handle on the same platform is
// rejected as a duplicate.
func (s *Service) Add(ctx context.Context, input AddInput) (Entry, error) {
	handle := strings.TrimSpace(input.Handle)
	if handle == "" {
		return Entry{}, dErrors.New(dErrors.CodeBadRequest, "add an uploader handle or account name")
	}
	if input.Platform == "" {
		input.Platform = PlatformInstagram
	}
	if !input.Platform.Valid() {
		return Entry{}, dErrors.New(dErrors.CodeBadRequest, "unknown platform")
	}

	entries := s.repo.List(ctx)
	for _, e := range entries {
		if strings.EqualFold(e.Handle, handle) && e.Platform == input.Platform {
			return Entry{}, dErrors.New(dErrors.CodeDuplicateEntry,
				"this uploader is already on your allowlist for this platform")
		}
	}

	now := requestcontext.Now(ctx)
	entry := Entry{
		ID:        fmt.Sprintf("ALW-%d-%04d", now.UnixMilli(), rand.IntN(10000)),
		Handle:    handle,
		Platform:  input.Platform,
		Note:      strings.TrimSpace(input.Note),
		CreatedAt: now,
	}

	s.repo.Replace(ctx, append([]Entry{entry}, entries...))

	entriesChanged.WithLabelValues("added").Inc()
	s.auditor.Emit(ctx, audit.Event{
		Action:  audit.ActionAllowlistAdded,
		Subject: entry.ID,
		Details: map[string]string{"handle": entry.Handle, "platform": string(entry.Platform)},
	})
	return entry, nil
}

// Remove revokes trust by entry ID. Removing an unknown ID is a no-op.
func (s *Service) Remove(ctx context.Context, id string) {
	if id == "" {
		return
	}
	entries := s.repo.List(ctx)
	kept := entries[:0:0]
	var removed *Entry
	for _, e := range entries {
		if e.ID == id {
			removed = &e
			continue
		}
		kept = append(kept, e)
	}
	if removed == nil {
		return
	}

	s.repo.Replace(ctx, kept)

	entriesChanged.WithLabelValues("removed").Inc()
	s.auditor.Emit(ctx, audit.Event{
		Action:  audit.ActionAllowlistRemoved,
		Subject: removed.ID,
		Details: map[string]string{"handle": removed.Handle, "platform": string(removed.Platform)},
	})
}

// List returns every trusted uploader, newest first.
func (s *Service) List(ctx context.Context) []Entry {
	return s.repo.List(ctx)
}

// IsTrusted reports whether the uploader is allowlisted on the platform.
func (s *Service) IsTrusted(ctx context.Context, handle string, platform Platform) bool {
	want := strings.TrimSpace(handle)
	if want == "" {
		return false
	}
	for _, e := range s.repo.List(ctx) {
		if strings.EqualFold(e.Handle, want) && e.Platform == platform {
			trustChecks.WithLabelValues("trusted").Inc()
			return true
		}
	}
	trustChecks.WithLabelValues("untrusted").Inc()
	return false
}

// Reset drops every entry.
func (s *Service) Reset(ctx context.Context) {
	s.repo.Clear(ctx)
}
