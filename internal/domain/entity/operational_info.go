// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// OperationalInfo stores the day-to-day facts about a business: hours,
// amenities and accessibility notes. A business has at most one record;
// the invariant is enforced by an existence check at creation time rather
// than a structural constraint.
type OperationalInfo struct {
	ID                    uuid.UUID  // The Global Unique Identifier (GUID) for the record.
	BusinessID            uuid.UUID  // The business this record belongs to.
	OpeningHours          string     // Daily opening time as entered, e.g. "09:00".
	ClosingHours          string     // Daily closing time as entered, e.g. "21:00".
	OffDays               []string   // Weekday names the business is closed, e.g. ["Sunday"].
	DeliveryOptions       string     // Free-text delivery options.
	ReservationOptions    string     // Free-text reservation options.
	WifiAvailable         bool       // Whether guest wifi is available.
	AccessibilityFeatures string     // Free-text accessibility notes.
	NearbyParkingSpot     string     // Free-text parking notes.
	SpecialNotes          string     // Anything else the owner wants to surface.
	CreatedAt             time.Time  // Timestamp of when this record was created.
	UpdatedAt             *time.Time // Timestamp of the last modification. Nil if never updated.
}
