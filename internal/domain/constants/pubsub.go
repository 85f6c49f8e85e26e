package constants

// Pub/Sub provider names accepted in configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// EventTypeAttribute is the message attribute carrying the event type.
const EventTypeAttribute = "event_type"

// Event type attribute values.
const (
	EventTypeOrderSubmitted = "order.submitted"
	EventTypeCatalogUpdated = "catalog.updated"
)
