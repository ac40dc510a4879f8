package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Event publisher providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
