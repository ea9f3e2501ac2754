package inventory

// Log messages
const (
	LogMsgItemsGranted = "Items granted"
	LogMsgItemsRevoked = "Items revoked"
)

// Error messages
const (
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
	ErrMsgGetCatalogFailed        = "failed to read catalog: %w"
	ErrMsgGetInventoryFailed      = "failed to get inventory: %w"
	ErrMsgUpdateInventoryFailed   = "failed to update inventory: %w"
	ErrMsgNotOwnedFmt             = "%w: character %d"
)
