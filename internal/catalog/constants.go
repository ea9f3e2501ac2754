package catalog

// SchemaName is the registered name of the embedded seed file schema
const SchemaName = "items.schema.json"

// CacheSchemaVersion is the current version of the cache schema.
// Increment this when the cached data structure changes to auto-invalidate old entries.
const CacheSchemaVersion = "1.0"

// Cache keys
const (
	cacheKeyList       = "items"
	cacheKeyItemPrefix = "item:"
)

// Log messages
const (
	LogMsgItemCreated    = "Catalog item created"
	LogMsgItemUpdated    = "Catalog item updated"
	LogMsgItemDeleted    = "Catalog item deleted"
	LogMsgSeedLoaded     = "Catalog seed file loaded"
	LogMsgSeedCompleted  = "Catalog seed completed"
	LogMsgSeedFileAbsent = "Catalog seed file not found, skipping"
)

// Error messages
const (
	ErrMsgReadSeedFileFailed  = "failed to read catalog seed file: %w"
	ErrMsgParseSeedFailed     = "failed to parse catalog seed file: %w"
	ErrMsgSchemaInvalidFormat = "catalog seed %s failed schema validation: %w"
	ErrMsgSeedFailed          = "failed to seed catalog: %w"
	ErrMsgDuplicateSeedCode   = "%w: item code %d appears more than once"
	ErrMsgSeedItemInvalidFmt  = "item at index %d: %w"
)
