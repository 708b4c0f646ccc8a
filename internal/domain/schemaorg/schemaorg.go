// Package schemaorg builds Schema.org JSON-LD documents for business
// profiles. The output targets AI-driven search engines, so field names
// follow the published vocabulary exactly.
package schemaorg

import (
	"fmt"
	"strings"
	"time"

	"vault/internal/domain/entity"
)

// Context is the JSON-LD context URL embedded in every document.
const Context = "https://schema.org"

// schemaTypeMap translates internal business categories into Schema.org
// vocabulary terms.
var schemaTypeMap = map[string]string{
	entity.BusinessTypeRestaurant: "Restaurant",
	entity.BusinessTypeSalon:      "HairSalon",
	entity.BusinessTypeClinic:     "MedicalClinic",
	entity.BusinessTypeBakery:     "Bakery",
	entity.BusinessTypeGym:        "ExerciseGym",
	entity.BusinessTypeCafe:       "Cafe",
}

// TypeFor maps a business category to its Schema.org type. Unknown or
// empty categories fall back to the generic LocalBusiness term, which is
// always safe to publish.
func TypeFor(businessType string) string {
	if t, ok := schemaTypeMap[strings.ToLower(businessType)]; ok {
		return t
	}
	return "LocalBusiness"
}

// Source bundles the related records a document is synthesized from.
// Business is required; everything else is optional enrichment.
type Source struct {
	Business        *entity.BusinessProfile
	Services        []*entity.Service
	ActiveCoupons   []*entity.Coupon
	Media           []*entity.MediaAsset
	OperationalInfo *entity.OperationalInfo
	AiMetadata      *entity.AiMetadata
}

// BuildDocument synthesizes a JSON-LD document from a business profile and
// its related records. baseURL is the public site root the canonical
// business URL is built from, without a trailing slash. Keys whose value
// is absent are stripped so the published document stays clean.
func BuildDocument(baseURL string, src Source) map[string]any {
	b := src.Business

	description := b.Description
	if src.AiMetadata != nil && src.AiMetadata.ExtractedInsights != "" {
		description = description + " - " + src.AiMetadata.ExtractedInsights
	}

	keywords := ""
	if src.AiMetadata != nil {
		keywords = src.AiMetadata.Keywords
	}

	address := b.Address
	if address == "" {
		address = "Not listed"
	}

	doc := map[string]any{
		"@context":    Context,
		"@type":       TypeFor(b.BusinessType),
		"name":        b.Name,
		"description": description,
		"keywords":    keywords,
		"url":         fmt.Sprintf("%s/business/%s", baseURL, b.ID),
		"telephone":   b.Phone,
		"address": map[string]any{
			"@type":          "PostalAddress",
			"streetAddress":  address,
			"addressCountry": "IN",
		},
		"priceRange": "$$",
	}

	// Geo coordinates only make sense as a pair.
	if b.Latitude != nil && b.Longitude != nil {
		doc["geo"] = map[string]any{
			"@type":     "GeoCoordinates",
			"latitude":  *b.Latitude,
			"longitude": *b.Longitude,
		}
	}

	if img := firstImageURL(src.Media); img != "" {
		doc["image"] = img
	}

	if info := src.OperationalInfo; info != nil {
		// Day granularity is not tracked, so hours are advertised for the
		// whole week.
		doc["openingHours"] = fmt.Sprintf("Mo-Su %s-%s", info.OpeningHours, info.ClosingHours)
	}

	if len(src.Services) > 0 {
		offers := make([]map[string]any, 0, len(src.Services))
		for _, s := range src.Services {
			currency := s.Currency
			if currency == "" {
				currency = entity.DefaultCurrency
			}
			offers = append(offers, map[string]any{
				"@type": "Offer",
				"itemOffered": map[string]any{
					"@type":       "Service",
					"name":        s.Name,
					"description": s.Description,
				},
				"price":         s.Price.StringFixed(2),
				"priceCurrency": currency,
			})
		}
		doc["makesOffer"] = offers
	}

	if len(src.ActiveCoupons) > 0 {
		coupons := make([]map[string]any, 0, len(src.ActiveCoupons))
		for _, c := range src.ActiveCoupons {
			offer := map[string]any{
				"@type":        "Offer",
				"discountCode": c.Code,
				"description":  c.Description,
			}
			if !c.ValidUntil.IsZero() {
				offer["validThrough"] = c.ValidUntil.Format(time.RFC3339)
			}
			coupons = append(coupons, offer)
		}
		doc["hasCoupon"] = coupons
	}

	return doc
}

func firstImageURL(media []*entity.MediaAsset) string {
	for _, m := range media {
		if m.MediaType == entity.MediaTypeImage {
			return m.URL
		}
	}
	return ""
}
