package domain

import (
	"time"

	"github.com/google/uuid"
)

type CrowdLevel string

const (
	CrowdQuiet  CrowdLevel = "QUIET"
	CrowdBusy   CrowdLevel = "BUSY"
	CrowdPacked CrowdLevel = "PACKED"
)

// VenueCapacity is a snapshot of a venue's occupancy counter.
// Invariant: 0 <= Current <= Maximum after every committed mutation.
type VenueCapacity struct {
	VenueID   uuid.UUID
	Current   int
	Maximum   int
	UpdatedAt time.Time
}

// CrowdLevelFor classifies occupancy against capacity. It is derived on every
// read and never stored. An unregistered venue (maximum <= 0) reads as quiet.
func CrowdLevelFor(current, maximum int) CrowdLevel {
	if maximum <= 0 {
		return CrowdQuiet
	}
	switch {
	case 100*current <= 60*maximum:
		return CrowdQuiet
	case 100*current <= 85*maximum:
		return CrowdBusy
	default:
		return CrowdPacked
	}
}

func (v VenueCapacity) CrowdLevel() CrowdLevel {
	return CrowdLevelFor(v.Current, v.Maximum)
}

// CrowdTransition is emitted when a committed mutation moves a venue across a
// crowd level boundary.
type CrowdTransition struct {
	VenueID uuid.UUID
	From    CrowdLevel
	To      CrowdLevel
	Current int
	Maximum int
	At      time.Time
}
