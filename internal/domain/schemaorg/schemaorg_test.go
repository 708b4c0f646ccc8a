package schemaorg

import (
	"testing"
	"time"

	"vault/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeFor(t *testing.T) {
	tests := []struct {
		name         string
		businessType string
		expected     string
	}{
		{name: "restaurant maps to Restaurant", businessType: "restaurant", expected: "Restaurant"},
		{name: "salon maps to HairSalon", businessType: "salon", expected: "HairSalon"},
		{name: "clinic maps to MedicalClinic", businessType: "clinic", expected: "MedicalClinic"},
		{name: "bakery maps to Bakery", businessType: "bakery", expected: "Bakery"},
		{name: "gym maps to ExerciseGym", businessType: "gym", expected: "ExerciseGym"},
		{name: "cafe maps to Cafe", businessType: "cafe", expected: "Cafe"},
		{name: "mixed case is normalized", businessType: "Restaurant", expected: "Restaurant"},
		{name: "unknown falls back to LocalBusiness", businessType: "laundromat", expected: "LocalBusiness"},
		{name: "empty falls back to LocalBusiness", businessType: "", expected: "LocalBusiness"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TypeFor(tt.businessType))
		})
	}
}

func TestBuildDocument_FullProfile(t *testing.T) {
	businessID := uuid.New()
	lat, lng := 12.9716, 77.5946

	src := Source{
		Business: &entity.BusinessProfile{
			ID:           businessID,
			Name:         "Joe's Cafe",
			Description:  "Cozy neighborhood cafe",
			BusinessType: "cafe",
			Phone:        "+91-9876543210",
			Address:      "12 MG Road, Bengaluru",
			Latitude:     &lat,
			Longitude:    &lng,
		},
		Services: []*entity.Service{
			{
				Name:        "Filter Coffee",
				Description: "South Indian filter coffee",
				Price:       decimal.NewFromFloat(40.50),
			},
			{
				Name:     "Espresso Workshop",
				Price:    decimal.NewFromInt(150),
				Currency: "USD",
			},
		},
		ActiveCoupons: []*entity.Coupon{
			{
				Code:        "WELCOME10",
				Description: "10% off the first order",
				ValidUntil:  time.Date(2026, 12, 31, 23, 59, 0, 0, time.UTC),
			},
		},
		Media: []*entity.MediaAsset{
			{MediaType: entity.MediaTypeVideo, URL: "https://cdn.example.com/tour.mp4"},
			{MediaType: entity.MediaTypeImage, URL: "https://cdn.example.com/front.jpg"},
		},
		OperationalInfo: &entity.OperationalInfo{
			OpeningHours: "09:00",
			ClosingHours: "21:00",
		},
		AiMetadata: &entity.AiMetadata{
			ExtractedInsights: "Known for single-origin beans",
			Keywords:          "coffee, cafe, bengaluru",
		},
	}

	doc := BuildDocument("https://aivault.com", src)

	assert.Equal(t, "https://schema.org", doc["@context"])
	assert.Equal(t, "Cafe", doc["@type"])
	assert.Equal(t, "Joe's Cafe", doc["name"])
	assert.Equal(t, "Cozy neighborhood cafe - Known for single-origin beans", doc["description"])
	assert.Equal(t, "coffee, cafe, bengaluru", doc["keywords"])
	assert.Equal(t, "https://aivault.com/business/"+businessID.String(), doc["url"])
	assert.Equal(t, "+91-9876543210", doc["telephone"])
	assert.Equal(t, "$$", doc["priceRange"])

	addr, ok := doc["address"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "PostalAddress", addr["@type"])
	assert.Equal(t, "12 MG Road, Bengaluru", addr["streetAddress"])
	assert.Equal(t, "IN", addr["addressCountry"])

	geo, ok := doc["geo"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, lat, geo["latitude"])
	assert.Equal(t, lng, geo["longitude"])

	// The first image asset wins; video assets are skipped.
	assert.Equal(t, "https://cdn.example.com/front.jpg", doc["image"])

	assert.Equal(t, "Mo-Su 09:00-21:00", doc["openingHours"])

	offers, ok := doc["makesOffer"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, offers, 2)
	// Prices are always two decimal places, whatever scale the value came with.
	assert.Equal(t, "40.50", offers[0]["price"])
	assert.Equal(t, "INR", offers[0]["priceCurrency"])
	item, ok := offers[0]["itemOffered"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Service", item["@type"])
	assert.Equal(t, "Filter Coffee", item["name"])

	assert.Equal(t, "150.00", offers[1]["price"])
	assert.Equal(t, "USD", offers[1]["priceCurrency"])

	coupons, ok := doc["hasCoupon"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, coupons, 1)
	assert.Equal(t, "WELCOME10", coupons[0]["discountCode"])
	assert.Equal(t, "2026-12-31T23:59:00Z", coupons[0]["validThrough"])
}

func TestBuildDocument_MinimalProfile(t *testing.T) {
	src := Source{
		Business: &entity.BusinessProfile{
			ID:           uuid.New(),
			Name:         "Corner Bakery",
			BusinessType: "bakery",
		},
	}

	doc := BuildDocument("https://aivault.com", src)

	assert.Equal(t, "Bakery", doc["@type"])
	assert.Equal(t, "", doc["description"])
	assert.Equal(t, "", doc["keywords"])

	addr := doc["address"].(map[string]any)
	assert.Equal(t, "Not listed", addr["streetAddress"])

	// Optional sections must be absent, not null.
	assert.NotContains(t, doc, "geo")
	assert.NotContains(t, doc, "image")
	assert.NotContains(t, doc, "openingHours")
	assert.NotContains(t, doc, "makesOffer")
	assert.NotContains(t, doc, "hasCoupon")
}

func TestBuildDocument_GeoRequiresBothCoordinates(t *testing.T) {
	lat := 12.9716
	src := Source{
		Business: &entity.BusinessProfile{
			ID:       uuid.New(),
			Name:     "Half Mapped",
			Latitude: &lat,
		},
	}

	doc := BuildDocument("https://aivault.com", src)

	assert.Equal(t, "LocalBusiness", doc["@type"])
	assert.NotContains(t, doc, "geo")
}

func TestBuildDocument_CouponWithoutExpiry(t *testing.T) {
	src := Source{
		Business: &entity.BusinessProfile{ID: uuid.New(), Name: "Open Ended"},
		ActiveCoupons: []*entity.Coupon{
			{Code: "FOREVER", Description: "evergreen deal"},
		},
	}

	doc := BuildDocument("https://aivault.com", src)

	coupons := doc["hasCoupon"].([]map[string]any)
	require.Len(t, coupons, 1)
	assert.NotContains(t, coupons[0], "validThrough")
}
