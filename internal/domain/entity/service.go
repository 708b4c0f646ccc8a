// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the ISO 4217 code applied to service prices when the
// owner does not specify one.
const DefaultCurrency = "INR"

// Service is a single offering of a business, e.g. a dish, a haircut or a
// consultation. Prices are exact decimals; never floats.
type Service struct {
	ID          uuid.UUID       // The Global Unique Identifier (GUID) for the service.
	BusinessID  uuid.UUID       // The business this service belongs to.
	ServiceType string          // Broad category of the offering, e.g. "restaurant", "salon".
	Name        string          // The display name of the offering.
	Description string          // Free-text description.
	Price       decimal.Decimal // The price with two decimal digits of precision.
	Currency    string          // ISO 4217 currency code, defaults to DefaultCurrency.
	IsAvailable bool            // Whether the offering is currently bookable/orderable.
	CreatedAt   time.Time       // Timestamp of when this service was created.
	UpdatedAt   *time.Time      // Timestamp of the last modification. Nil if never updated.
}
