// Package scan simulates a platform sweep. A run fabricates a small batch of
// detections and pushes them through the regular ingestion path, so simulated
// incidents are classified and persisted exactly like real ones.
package scan

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"time"

	"cora/internal/audit"
	"cora/internal/incident"
	"cora/internal/platform/config"
)

// Fixed vocabulary for fabricated detections.
var (
	platforms = []string{"Instagram", "Google Images", "TikTok", "YouTube", "X / Twitter"}
	assets    = []string{
		"Gulfstream G700 – tail N777PV",
		"Lake Como Villa – North Terrace",
		"Soho flat – interior library",
		"Art collection – Basel vault",
	}
	uploaders = []string{
		"@paparazzi_nyc",
		"@spotter_lhr",
		"@travel_daily",
		"@designinspo_daily",
		"@randomuser123",
	}
	typeLabels = []incident.TypeLabel{
		incident.TypeUnauthorizedCapture,
		incident.TypeInteriorContent,
		incident.TypeRunwaySpotter,
		incident.TypeFanContent,
	}
)

const (
	demoMarkerID  = "CORA-DEMO-MARKER"
	demoSourceURL = "https://example.com/detected"
	demoNotes     = "Simulated detection via 'Run scan now'."
)

// Ingestor is the piece of the incident service a scan needs.
type Ingestor interface {
	Ingest(ctx context.Context, raw incident.RawDetection) (incident.Incident, error)
}

// Simulator fabricates detection batches.
type Simulator struct {
	incidents Ingestor
	cfg       config.ScanConfig
	logger    *slog.Logger
	auditor   *audit.Publisher
}

func NewSimulator(incidents Ingestor, cfg config.ScanConfig, logger *slog.Logger, auditor *audit.Publisher) *Simulator {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 3
	}
	return &Simulator{incidents: incidents, cfg: cfg, logger: logger, auditor: auditor}
}

// Run performs one simulated sweep and returns the created incidents. The
// fixed delay mimics an external crawl so the dashboard shows the scan
// taking time.
func (s *Simulator) Run(ctx context.Context) ([]incident.Incident, error) {
	time.Sleep(s.cfg.Delay)

	batch := make([]incident.Incident, 0, s.cfg.BatchSize)
	for range s.cfg.BatchSize {
		inc, err := s.incidents.Ingest(ctx, incident.RawDetection{
			MarkerID:    demoMarkerID,
			AssetName:   assets[rand.IntN(len(assets))],
			Platform:    platforms[rand.IntN(len(platforms))],
			Uploader:    uploaders[rand.IntN(len(uploaders))],
			SourceURL:   demoSourceURL,
			ContentType: "Photo",
			Notes:       demoNotes,
			TypeLabel:   typeLabels[rand.IntN(len(typeLabels))],
			Simulated:   true,
		})
		if err != nil {
			return batch, err
		}
		batch = append(batch, inc)
	}

	s.auditor.Emit(ctx, audit.Event{
		Action:  audit.ActionScanCompleted,
		Subject: "scan",
		Details: map[string]string{
			"detections": strconv.Itoa(len(batch)),
		},
	})
	s.logger.InfoContext(ctx, "simulated scan completed", "detections", len(batch))

	return batch, nil
}
