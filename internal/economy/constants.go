package economy

// Log messages
const (
	LogMsgItemsBought = "Items bought"
	LogMsgItemsSold   = "Items sold"
)

// Error messages
const (
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
	ErrMsgGetCatalogFailed        = "failed to read catalog: %w"
	ErrMsgGetInventoryFailed      = "failed to get inventory: %w"
	ErrMsgUpdateInventoryFailed   = "failed to update inventory: %w"
	ErrMsgUpdateCharacterFailed   = "failed to update character: %w"
	ErrMsgListItemsFailed         = "failed to list items: %w"

	ErrMsgItemNotFoundFmt       = "%w: %d"
	ErrMsgItemNotInInventoryFmt = "%w: %d"
	ErrMsgInsufficientStockFmt  = "%w: item %d has %d, requested %d"
)
