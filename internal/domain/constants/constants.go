// Package constants holds shared configuration constants.
package constants

// Pub/Sub provider identifiers understood by the event publisher factory.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
