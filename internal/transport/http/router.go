// Package httptransport assembles the public router. Route logic lives in
// each module's handler package; this file only mounts and guards them.
package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	adminhandler "cora/internal/admin/handler"
	allowlisthandler "cora/internal/allowlist/handler"
	assethandler "cora/internal/asset/handler"
	audithandler "cora/internal/audit/handler"
	enforcementhandler "cora/internal/enforcement/handler"
	incidenthandler "cora/internal/incident/handler"
	scanhandler "cora/internal/scan/handler"
	"cora/pkg/platform/middleware/admin"
	"cora/pkg/platform/middleware/auth"
	"cora/pkg/platform/middleware/metadata"
	"cora/pkg/platform/middleware/requestid"
	"cora/pkg/platform/middleware/requesttime"
)

// Deps carries everything the router mounts.
type Deps struct {
	Logger *slog.Logger

	Assets      *assethandler.Handler
	Incidents   *incidenthandler.Handler
	Allowlist   *allowlisthandler.Handler
	Enforcement *enforcementhandler.Handler
	Scan        *scanhandler.Handler
	Audit       *audithandler.Handler
	Admin       *adminhandler.Handler

	ReviewerValidator auth.TokenValidator
	// AdminKeyHash empty disables the reset route entirely.
	AdminKeyHash string
}

// NewRouter wires all public endpoints.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.RequestID)
	r.Use(requesttime.RequestTime)
	r.Use(metadata.ClientMetadata)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	d.Assets.Register(r)
	d.Incidents.Register(r)
	d.Allowlist.Register(r)
	d.Scan.Register(r)
	d.Audit.Register(r)

	r.Group(func(g chi.Router) {
		g.Use(auth.RequireReviewer(d.ReviewerValidator, d.Logger))
		d.Enforcement.Register(g)
	})

	if d.AdminKeyHash != "" {
		r.Group(func(g chi.Router) {
			g.Use(admin.RequireAdminKey(d.AdminKeyHash, d.Logger))
			d.Admin.Register(g)
		})
	}

	return r
}
