package asset

import "time"

// Seeds returns the five permanent registry entries. They are merged into
// every listing and survive a dashboard reset; user-registered assets layer
// on top of them.
func Seeds() []Asset {
	return []Asset{
		{
			ID:          "CORA-REAL-COMO-VILLA-3101",
			Name:        "Como villa – family residence",
			Type:        TypeRealEstate,
			Priority:    PriorityInstantAuto,
			Description: "Primary family residence overlooking Lake Como. Zero-tolerance for unauthorized publication.",
			MarkerID:    "CORA-REAL-COMO-VILLA-3101",
			CreatedAt:   time.Date(2024, time.January, 15, 10, 30, 0, 0, time.UTC),
			IsDefault:   true,
		},
		{
			ID:          "CORA-JET-G700-TAIL-N777C",
			Name:        "G700 – tail N777C",
			Type:        TypeVehicle,
			Priority:    PriorityInstantAuto,
			Description: "Long-range Gulfstream G700 used for family + principal travel. Highest enforcement priority.",
			MarkerID:    "CORA-JET-G700-TAIL-N777C",
			CreatedAt:   time.Date(2024, time.February, 3, 14, 5, 0, 0, time.UTC),
			IsDefault:   true,
		},
		{
			ID:          "CORA-YACHT-AURORA-70M",
			Name:        "Feadship 70m “AURORA”",
			Type:        TypeVehicle,
			Priority:    PriorityOwnerReview,
			Description: "Flagship family yacht. Press and broker content allowed only with explicit owner approval.",
			MarkerID:    "CORA-YACHT-AURORA-70M",
			CreatedAt:   time.Date(2024, time.March, 21, 9, 15, 0, 0, time.UTC),
			IsDefault:   true,
		},
		{
			ID:          "CORA-ART-PICASSO-BLUE-01",
			Name:        "Picasso – Blue Period work",
			Type:        TypeArtwork,
			Priority:    PriorityInstantAuto,
			Description: "Museum-grade artwork. No social posts from private showings without pre-cleared allowlisted accounts.",
			MarkerID:    "CORA-ART-PICASSO-BLUE-01",
			CreatedAt:   time.Date(2024, time.April, 10, 18, 45, 0, 0, time.UTC),
			IsDefault:   true,
		},
		{
			ID:          "CORA-PERSON-PRIMARY-PRINCIPAL",
			Name:        "Principal – HNW client",
			Type:        TypePerson,
			Priority:    PriorityInstantAuto,
			Description: "Primary protected individual. All sightings at hotels, airports, restaurants, and events must be suppressed.",
			MarkerID:    "CORA-PERSON-PRIMARY-PRINCIPAL",
			CreatedAt:   time.Date(2024, time.May, 2, 12, 0, 0, 0, time.UTC),
			IsDefault:   true,
		},
	}
}
