package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub publisher providers
const (
	PubSubProviderLocal    = "local"
	PubSubProviderGoogle   = "google"
	PubSubProviderRedis    = "redis"
	PubSubProviderPostgres = "postgres"
	PubSubProviderBroker   = "broker"
)

// Change feed transport providers
const (
	ChangeFeedProviderPostgres  = "postgres"
	ChangeFeedProviderRedis     = "redis"
	ChangeFeedProviderWebsocket = "websocket"
	ChangeFeedProviderBroker    = "broker"
)

// Query cache providers
const (
	CacheProviderRedis  = "redis"
	CacheProviderMemory = "memory"
)

// Alert surface providers
const (
	AlertProviderFCM  = "fcm"
	AlertProviderMQTT = "mqtt"
	AlertProviderLog  = "log"
)

// Echo context keys set by the auth middleware
const (
	ContextKeyUserID  = "userID"
	ContextKeyRoles   = "roles"
	ContextKeySession = "session"
)
