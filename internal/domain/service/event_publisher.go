package service

import (
	"context"
)

// Business change actions carried on published events.
const (
	BusinessChangeCreated = "created"
	BusinessChangeUpdated = "updated"
)

// BusinessChangeEvent announces that a business profile was created or
// updated, so downstream consumers (search indexers, feed rebuilders) can
// react asynchronously.
type BusinessChangeEvent struct {
	RequestID  string `json:"request_id,omitempty"` // For distributed tracing
	BusinessID string `json:"business_id"`
	OwnerID    string `json:"owner_id"`
	Action     string `json:"action"` // One of the BusinessChange constants
	Name       string `json:"name"`
	Type       string `json:"type"`
	City       string `json:"city,omitempty"`
	OccurredAt string `json:"occurred_at"` // RFC 3339
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishBusinessChange publishes a business change event for async processing
	PublishBusinessChange(ctx context.Context, event *BusinessChangeEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
