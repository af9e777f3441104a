package scan_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cora/internal/audit"
	"cora/internal/incident"
	"cora/internal/platform/config"
	"cora/internal/scan"
)

type recordingIngestor struct {
	raws []incident.RawDetection
}

func (r *recordingIngestor) Ingest(_ context.Context, raw incident.RawDetection) (incident.Incident, error) {
	r.raws = append(r.raws, raw)
	return incident.Incident{
		ID:       "INC-FAKE",
		Platform: raw.Platform,
	}, nil
}

func newSimulator(t *testing.T, ing scan.Ingestor, cfg config.ScanConfig) (*scan.Simulator, *audit.Publisher) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	auditor := audit.NewPublisher(16, logger)
	return scan.NewSimulator(ing, cfg, logger, auditor), auditor
}

func TestRunProducesBatchThroughIngestion(t *testing.T) {
	ing := &recordingIngestor{}
	sim, auditor := newSimulator(t, ing, config.ScanConfig{Delay: 0, BatchSize: 3})

	batch, err := sim.Run(context.Background())

	require.NoError(t, err)
	require.Len(t, batch, 3)
	require.Len(t, ing.raws, 3)

	knownPlatforms := map[string]bool{
		"Instagram": true, "Google Images": true, "TikTok": true,
		"YouTube": true, "X / Twitter": true,
	}
	for _, raw := range ing.raws {
		assert.True(t, raw.Simulated)
		assert.Equal(t, "CORA-DEMO-MARKER", raw.MarkerID)
		assert.Equal(t, "https://example.com/detected", raw.SourceURL)
		assert.Equal(t, "Photo", raw.ContentType)
		assert.Equal(t, "Simulated detection via 'Run scan now'.", raw.Notes)
		assert.True(t, knownPlatforms[raw.Platform], "unexpected platform %q", raw.Platform)
		assert.NotEmpty(t, raw.AssetName)
		assert.NotEmpty(t, raw.Uploader)
		assert.NotEmpty(t, raw.TypeLabel)
	}

	select {
	case evt := <-auditor.Events():
		assert.Equal(t, audit.ActionScanCompleted, evt.Action)
		assert.Equal(t, "3", evt.Details["detections"])
	default:
		t.Fatal("expected a scan_completed audit event")
	}
}

func TestRunHonorsConfiguredDelay(t *testing.T) {
	ing := &recordingIngestor{}
	sim, _ := newSimulator(t, ing, config.ScanConfig{Delay: 30 * time.Millisecond, BatchSize: 1})

	start := time.Now()
	_, err := sim.Run(context.Background())

	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestNewSimulatorDefaultsBatchSize(t *testing.T) {
	ing := &recordingIngestor{}
	sim, _ := newSimulator(t, ing, config.ScanConfig{})

	batch, err := sim.Run(context.Background())

	require.NoError(t, err)
	assert.Len(t, batch, 3)
}
