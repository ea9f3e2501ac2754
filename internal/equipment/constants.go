package equipment

// Log messages
const (
	LogMsgItemEquipped   = "Item equipped"
	LogMsgItemUnequipped = "Item unequipped"
)

// Error messages
const (
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
	ErrMsgGetCatalogFailed        = "failed to read catalog: %w"
	ErrMsgGetInventoryFailed      = "failed to get inventory: %w"
	ErrMsgGetEquipmentFailed      = "failed to get equipment: %w"
	ErrMsgUpdateInventoryFailed   = "failed to update inventory: %w"
	ErrMsgUpdateEquipmentFailed   = "failed to update equipment: %w"
	ErrMsgUpdateCharacterFailed   = "failed to update character: %w"
	ErrMsgItemNotFoundFmt         = "%w: %d"
	ErrMsgItemNotInInventoryFmt   = "%w: %d"
)
