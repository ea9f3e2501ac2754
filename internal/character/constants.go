package character

// Log messages
const (
	LogMsgCharacterCreated = "Character created"
	LogMsgCharacterDeleted = "Character deleted"
	LogMsgMoneyEarned      = "Money earned"
)

// Error messages
const (
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
	ErrMsgCreateCharacterFailed   = "failed to create character: %w"
	ErrMsgCreateInventoryFailed   = "failed to create inventory: %w"
	ErrMsgCreateEquipmentFailed   = "failed to create equipment: %w"
	ErrMsgDeleteCharacterFailed   = "failed to delete character: %w"
	ErrMsgUpdateCharacterFailed   = "failed to update character: %w"
	ErrMsgNotOwnedFmt             = "%w: character %d"
)
