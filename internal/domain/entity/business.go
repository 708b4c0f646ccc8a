// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Business types with an explicit Schema.org mapping. Anything else falls
// back to the generic LocalBusiness vocabulary term.
const (
	BusinessTypeRestaurant = "restaurant"
	BusinessTypeSalon      = "salon"
	BusinessTypeClinic     = "clinic"
	BusinessTypeBakery     = "bakery"
	BusinessTypeGym        = "gym"
	BusinessTypeCafe       = "cafe"
)

// BusinessProfile is the central hub of the application. It connects a user
// to their services, media assets, coupons, operational info and
// AI-generated SEO metadata.
type BusinessProfile struct {
	ID                 uuid.UUID  // The Global Unique Identifier (GUID) for the business.
	OwnerID            uuid.UUID  // The ID of the user that owns this business.
	Name               string     // The public display name of the business.
	Description        string     // Free-text description shown in the directory.
	BusinessType       string     // Category, e.g. "restaurant", "cafe". May be empty.
	Phone              string     // Contact phone number.
	Website            string     // External website URL, if any.
	Address            string     // The full, human-readable street address.
	Latitude           *float64   // The geographic latitude. Nil when not set.
	Longitude          *float64   // The geographic longitude. Nil when not set.
	Timezone           string     // IANA timezone identifier of the business location.
	QuoteSlogan        string     // A short marketing slogan.
	IdentificationMark string     // Registered identification mark, if any.
	Published          bool       // Whether the business appears in the public directory.
	Version            int        // Monotonic record version, bumped by the owner on major edits.
	CreatedAt          time.Time  // Timestamp of when this business was created.
	UpdatedAt          *time.Time // Timestamp of the last modification. Nil if never updated.
}
