package asset

import "time"

// Type categorizes what kind of property a marker protects.
type Type string

const (
	TypePerson     Type = "Person"
	TypeVehicle    Type = "Vehicle / aircraft / yacht"
	TypeRealEstate Type = "Real estate"
	TypeArtwork    Type = "Artwork"
	TypeBrand      Type = "Brand / logo"
	TypeOther      Type = "Other"
)

// Types lists every accepted asset type.
func Types() []Type {
	return []Type{TypePerson, TypeVehicle, TypeRealEstate, TypeArtwork, TypeBrand, TypeOther}
}

// Valid reports whether t is one of the accepted asset types.
func (t Type) Valid() bool {
	switch t {
	case TypePerson, TypeVehicle, TypeRealEstate, TypeArtwork, TypeBrand, TypeOther:
		return true
	}
	return false
}

// Priority controls how aggressively enforcement proceeds for an asset.
type Priority string

const (
	PriorityInstantAuto Priority = "instant_auto"
	PriorityOwnerReview Priority = "owner_review"
	PriorityLow         Priority = "low_priority"
)

// Valid reports whether p is one of the accepted enforcement priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityInstantAuto, PriorityOwnerReview, PriorityLow:
		return true
	}
	return false
}

// Label is the human-readable form shown in listings.
func (p Priority) Label() string {
	switch p {
	case PriorityInstantAuto:
		return "Instant automatic"
	case PriorityOwnerReview:
		return "Owner review"
	case PriorityLow:
		return "Low priority"
	}
	return "—"
}

// Asset is a protected item in the registry. The marker identifier doubles
// as the asset identifier; descriptions are internal notes and never appear
// in public reports.
type Asset struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Type        Type      `json:"type"`
	Priority    Priority  `json:"priority"`
	Description string    `json:"description,omitempty"`
	MarkerID    string    `json:"markerId"`
	CreatedAt   time.Time `json:"createdAt"`
	IsDefault   bool      `json:"isDefault,omitempty"`
}
