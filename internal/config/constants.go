package config

// Store drivers
const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

const (
	// ConfigPathItems is the catalog seed file loaded at startup
	ConfigPathItems = "configs/items.json"
)
