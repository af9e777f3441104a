// Package admin implements destructive dashboard operations.
package admin

import (
	"context"
	"log/slog"

	"cora/internal/audit"
)

// Resetter clears one module's stored collection back to its seed state.
type Resetter interface {
	Reset(ctx context.Context)
}

// Service resets the whole dashboard: registered assets, incidents, and the
// allowlist. Seed data survives by construction, the registry merges its
// seeds into every read and the incident store reseeds on the next read.
type Service struct {
	resetters []Resetter
	logger    *slog.Logger
	auditor   *audit.Publisher
}

func NewService(logger *slog.Logger, auditor *audit.Publisher, resetters ...Resetter) *Service {
	return &Service{resetters: resetters, logger: logger, auditor: auditor}
}

// ResetDashboard clears every registered collection.
func (s *Service) ResetDashboard(ctx context.Context) {
	for _, r := range s.resetters {
		r.Reset(ctx)
	}

	s.auditor.Emit(ctx, audit.Event{
		Action:  audit.ActionDashboardReset,
		Subject: "dashboard",
	})
	s.logger.InfoContext(ctx, "dashboard reset", "collections", len(s.resetters))
}
