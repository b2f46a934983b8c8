// Package constants holds shared domain-level constant values.
package constants

// Pub/Sub provider names accepted by the pubsub.provider config key.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Event types published to the inventory event topic.
const (
	EventOrderCreated = "order.created"
	EventStockLow     = "stock.low"
)
