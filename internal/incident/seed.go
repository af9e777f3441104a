package incident

import (
	"time"

	"cora/internal/classifier"
)

// Seeds returns the three reference incidents the collection is seeded with
// whenever it reads back absent or empty. Detection times are anchored to
// the given clock reading so the dashboard always opens with fresh-looking
// examples.
func Seeds(now time.Time) []Incident {
	daysAgo := func(d int) time.Time { return now.AddDate(0, 0, -d) }

	return []Incident{
		{
			ID:                "INC-VERIFIED-IG-1",
			AssetName:         "Lake Como Villa – Pool Level",
			Platform:          "Instagram",
			Uploader:          "@housemanager_como",
			UploaderHandle:    "@housemanager_como",
			MarkerID:          "CORA-LAKECOMO-POOL-001",
			ContentType:       "Photo",
			SourceURL:         "https://instagram.com/p/verified-demo",
			DetectedAt:        daysAgo(0),
			TimeLabel:         "Today · 09:17 AM",
			Status:            StatusAllowed,
			StatusLabel:       StatusLabelAllowedVerified,
			TypeLabel:         TypeOwnerApproved,
			AuthenticityLabel: classifier.LabelVerifiedOriginal,
			RealityCheckLabel: "Marker and villa geometry match registered reference – content treated as original.",
			IsSpoofSuspected:  false,
			SpoofCategory:     classifier.CategoryNone,
			DeepfakeRiskScore: 5,
			IncidentNotes:     "Posted by a whitelisted house manager account. Marker and architecture match the pool-side reference imagery.",
			ReferenceOriginal: "/assets-reference/villa-reference.jpg",
		},
		{
			ID:                "INC-1001",
			AssetName:         "Lake Como Villa – North Terrace",
			Platform:          "Instagram",
			Uploader:          "@privatechefstudio",
			UploaderHandle:    "@privatechefstudio",
			MarkerID:          "CORA-LAKECOMO-0001",
			ContentType:       "Photo",
			SourceURL:         "https://instagram.com/p/demo1",
			DetectedAt:        daysAgo(0),
			TimeLabel:         "Today · 11:38 AM",
			Status:            StatusPendingEnforcement,
			StatusLabel:       StatusLabelFlagged,
			TypeLabel:         TypeUnauthorizedCapture,
			AuthenticityLabel: classifier.LabelUnverified,
			RealityCheckLabel: "Marker seen on a different property – likely spoof or misuse of the CORA marker.",
			IsSpoofSuspected:  true,
			SpoofCategory:     classifier.CategoryMarkerMismatch,
			DeepfakeRiskScore: 67,
			IncidentNotes:     "Marker ID matches the registered Lake Como villa, but architecture and surroundings do not match the reference images.",
			ReferenceOriginal: "/assets-reference/villa-reference.jpg",
			ReferenceSuspect:  "/assets-reference/villa-suspect.jpg",
		},
		{
			ID:                "INC-1002",
			AssetName:         "Gulfstream G700 – tail N777PV",
			Platform:          "Google Images",
			Uploader:          "Crawled result",
			UploaderHandle:    "Indexed image",
			MarkerID:          "CORA-LZ-G7-023819",
			ContentType:       "Photo",
			SourceURL:         "https://news-site.example.com/article",
			DetectedAt:        daysAgo(3),
			TimeLabel:         "3 days ago · 9:21 PM",
			Status:            StatusPendingEnforcement,
			StatusLabel:       StatusLabelFlagged,
			TypeLabel:         TypePressEditorial,
			AuthenticityLabel: classifier.LabelUnverified,
			RealityCheckLabel: "AI-style rendering – marker appears, but aircraft is synthetic.",
			IsSpoofSuspected:  true,
			SpoofCategory:     classifier.CategoryAIGenerated,
			DeepfakeRiskScore: 92,
			IncidentNotes:     "Tail number and marker are present, but lighting, reflections and surface detail match a rendered model, not the registered reference photography.",
			ReferenceOriginal: "/assets-reference/g700-reference.jpg",
			ReferenceSuspect:  "/assets-reference/g700-suspect.jpg",
		},
	}
}
