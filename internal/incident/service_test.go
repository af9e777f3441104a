package incident_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cora/internal/allowlist"
	"cora/internal/asset"
	assetmetrics "cora/internal/asset/metrics"
	"cora/internal/audit"
	"cora/internal/classifier"
	"cora/internal/docstore"
	"cora/internal/incident"
	"cora/internal/incident/metrics"
	dErrors "cora/pkg/domainerrors"
	"cora/pkg/requestcontext"
	"cora/pkg/testutil"
)

var (
	ingestMetrics   = metrics.New()
	registryMetrics = assetmetrics.New()
)

type stubQR struct{}

func (stubQR) ImageURL(payload string, _ int) string { return "https://qr.test/?data=" + payload }

type fixture struct {
	incidents *incident.Service
	assets    *asset.Service
	trust     *allowlist.Service
	auditor   *audit.Publisher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := docstore.NewMemory()
	auditor := audit.NewPublisher(64, logger)

	assets := asset.NewService(asset.NewRepository(store, logger), stubQR{}, registryMetrics, auditor)
	trust := allowlist.NewService(allowlist.NewRepository(store, logger), auditor)
	incidents := incident.NewService(
		incident.NewRepository(store, logger),
		assets,
		trust,
		classifier.NewRules(),
		logger,
		ingestMetrics,
		auditor,
	)
	return &fixture{incidents: incidents, assets: assets, trust: trust, auditor: auditor}
}

func TestListSeedsReferenceIncidents(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	got := f.incidents.List(ctx)

	require.Len(t, got, 3)
	assert.Equal(t, "INC-VERIFIED-IG-1", got[0].ID)
	assert.Equal(t, incident.StatusAllowed, got[0].Status)
	assert.Equal(t, incident.StatusPendingEnforcement, got[1].Status)
	assert.Equal(t, 92, got[2].DeepfakeRiskScore)

	testutil.Then(t, "the seed set is stable across reads", func(t *testing.T) {
		again := f.incidents.List(ctx)
		require.Len(t, again, 3)
		assert.Equal(t, got[0].ID, again[0].ID)
	})
}

// Marker reused on a different property flags the incident for review.
func TestIngestMarkerMismatchScenario(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	inc, err := f.incidents.Ingest(ctx, incident.RawDetection{
		MarkerID:  "CORA-REAL-COMO-VILLA-3101",
		AssetName: "Como villa – family residence",
		Platform:  "Instagram",
		Uploader:  "@privatechefstudio",
		SourceURL: "https://instagram.com/p/demo1",
		Cue:       classifier.CueMarkerMismatch,
	})

	require.NoError(t, err)
	assert.Equal(t, classifier.CategoryMarkerMismatch, inc.SpoofCategory)
	assert.Equal(t, incident.StatusPendingEnforcement, inc.Status)
	assert.Equal(t, incident.StatusLabelFlagged, inc.StatusLabel)
	assert.Equal(t, incident.TypeUnauthorizedCapture, inc.TypeLabel)
	assert.GreaterOrEqual(t, inc.DeepfakeRiskScore, 60)
	assert.True(t, inc.IsSpoofSuspected)

	testutil.Then(t, "the incident leads the collection", func(t *testing.T) {
		got := f.incidents.List(ctx)
		assert.Equal(t, inc.ID, got[0].ID)
	})
}

// A trusted uploader wins over every classifier signal.
func TestIngestTrustedUploaderOverridesSpoof(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.trust.Add(ctx, allowlist.AddInput{Handle: "@housemanager_como", Platform: allowlist.PlatformInstagram})
	require.NoError(t, err)

	inc, err := f.incidents.Ingest(ctx, incident.RawDetection{
		MarkerID: "CORA-REAL-COMO-VILLA-3101",
		Platform: string(allowlist.PlatformInstagram),
		Uploader: "@HouseManager_Como",
		Cue:      classifier.CueSyntheticRender,
	})

	require.NoError(t, err)
	assert.Equal(t, incident.StatusAllowed, inc.Status)
	assert.Equal(t, incident.StatusLabelAllowedVerified, inc.StatusLabel)
	assert.Equal(t, incident.TypeOwnerApproved, inc.TypeLabel)
	assert.False(t, inc.IsSpoofSuspected, "trust exemption clears the spoof flag")
	assert.Equal(t, classifier.CategoryNone, inc.SpoofCategory)
}

func TestIngestTrustIsPlatformExact(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.trust.Add(ctx, allowlist.AddInput{Handle: "@crew", Platform: allowlist.PlatformTikTok})
	require.NoError(t, err)

	inc, err := f.incidents.Ingest(ctx, incident.RawDetection{
		Platform: string(allowlist.PlatformInstagram),
		Uploader: "@crew",
	})

	require.NoError(t, err)
	assert.Equal(t, incident.StatusPendingEnforcement, inc.Status)
}

func TestIngestUnresolvedMarkerUsesPlaceholders(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	inc, err := f.incidents.Ingest(ctx, incident.RawDetection{
		Platform: "TikTok",
		Uploader: "",
	})

	require.NoError(t, err)
	assert.Equal(t, incident.UnresolvedAssetName, inc.AssetName)
	assert.Equal(t, incident.UnresolvedMarkerID, inc.MarkerID)
	assert.Equal(t, "@unknown", inc.Uploader)
	assert.Equal(t, classifier.LabelUnverified, inc.AuthenticityLabel)
}

func TestIngestResolvesAssetByName(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	inc, err := f.incidents.Ingest(ctx, incident.RawDetection{
		AssetName: "g700 – tail n777c",
		Platform:  "Google Images",
		Uploader:  "@spotter_lhr",
	})

	require.NoError(t, err)
	assert.Equal(t, "G700 – tail N777C", inc.AssetName)
	assert.Equal(t, "CORA-JET-G700-TAIL-N777C", inc.MarkerID)
}

func TestIngestRiskScoreAlwaysInBounds(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	for _, cue := range []classifier.Cue{
		classifier.CueNone, classifier.CueMarkerConfirmed,
		classifier.CueMarkerMismatch, classifier.CueSyntheticRender,
	} {
		inc, err := f.incidents.Ingest(ctx, incident.RawDetection{
			MarkerID: "CORA-REAL-COMO-VILLA-3101",
			Platform: "Instagram",
			Uploader: "@probe",
			Cue:      cue,
		})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, inc.DeepfakeRiskScore, 0)
		assert.LessOrEqual(t, inc.DeepfakeRiskScore, 100)
	}
}

func TestGetAndReset(t *testing.T) {
	at := time.Date(2026, time.April, 2, 10, 0, 0, 0, time.UTC)
	ctx := requestcontext.WithTime(context.Background(), at)
	f := newFixture(t)

	inc, err := f.incidents.Ingest(ctx, incident.RawDetection{Platform: "YouTube", Uploader: "@x"})
	require.NoError(t, err)

	got, err := f.incidents.Get(ctx, inc.ID)
	require.NoError(t, err)
	assert.Equal(t, inc.ID, got.ID)

	_, err = f.incidents.Get(ctx, "INC-missing")
	assert.True(t, dErrors.Is(err, dErrors.CodeNotFound))

	f.incidents.Reset(ctx)

	testutil.Then(t, "reset restores the reference seed set", func(t *testing.T) {
		fresh := f.incidents.List(ctx)
		require.Len(t, fresh, 3)
		_, err := f.incidents.Get(ctx, inc.ID)
		assert.True(t, dErrors.Is(err, dErrors.CodeNotFound))
	})
}
