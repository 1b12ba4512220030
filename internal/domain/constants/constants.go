// Package constants contains configuration values shared across layers.
package constants

// Environment names
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Quota counter backends
const (
	QuotaBackendPostgres = "postgres"
	QuotaBackendRedis    = "redis"
)

// Blob bucket schemes that need no credentials
const (
	BucketSchemeMemory = "mem"
	BucketSchemeFile   = "file"
)
