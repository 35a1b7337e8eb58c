// Package constants holds shared domain constants.
package constants

const (
	// PubSubProviderLocal selects the local HTTP publisher.
	PubSubProviderLocal = "local"

	// PubSubProviderGoogle selects Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)
