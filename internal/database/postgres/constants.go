package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
	// PgErrorCodeCheckViolation is raised by the money >= 0 and price constraints
	PgErrorCodeCheckViolation = "23514"
	// PgErrorCodeForeignKeyViolation is raised when a character references a missing user
	PgErrorCodeForeignKeyViolation = "23503"
	// PgErrorCodeLockNotAvailable is raised when lock_timeout expires
	PgErrorCodeLockNotAvailable = "55P03"
	// PgErrorCodeQueryCanceled is raised when statement_timeout expires
	PgErrorCodeQueryCanceled = "57014"
)

// ConstraintMoneyNonNegative is the default name PostgreSQL gives the
// characters.money CHECK
const ConstraintMoneyNonNegative = "characters_money_check"

// Empty documents written for new characters
const (
	EmptyInventoryJSON = `{"items": []}`
	EmptyEquipmentJSON = `{"equippedItems": []}`
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction = "failed to begin transaction"
	ErrMsgFailedToSetTimeout       = "failed to set transaction timeout"
)

// Error Messages - Character Operations
const (
	ErrMsgFailedToGetCharacter    = "failed to get character"
	ErrMsgFailedToCreateCharacter = "failed to create character"
	ErrMsgFailedToUpdateCharacter = "failed to update character"
	ErrMsgFailedToDeleteCharacter = "failed to delete character"
)

// Error Messages - Inventory/Equipment Operations
const (
	ErrMsgFailedToGetInventory       = "failed to get inventory"
	ErrMsgFailedToUpdateInventory    = "failed to update inventory"
	ErrMsgFailedToUnmarshalInventory = "failed to unmarshal inventory"
	ErrMsgFailedToMarshalInventory   = "failed to marshal inventory"
	ErrMsgFailedToGetEquipment       = "failed to get equipment"
	ErrMsgFailedToUpdateEquipment    = "failed to update equipment"
	ErrMsgFailedToUnmarshalEquipment = "failed to unmarshal equipment"
	ErrMsgFailedToMarshalEquipment   = "failed to marshal equipment"
)

// Error Messages - Item Operations
const (
	ErrMsgFailedToGetItems    = "failed to get items"
	ErrMsgFailedToCreateItem  = "failed to create item"
	ErrMsgFailedToUpdateItem  = "failed to update item"
	ErrMsgFailedToDeleteItem  = "failed to delete item"
	ErrMsgFailedToSeedItems   = "failed to seed items"
	ErrMsgFailedToMarshalStat = "failed to marshal stats"
)

// Error Messages - User Operations
const (
	ErrMsgFailedToCreateUser  = "failed to create user"
	ErrMsgFailedToGetUser     = "failed to get user"
	ErrMsgFailedToUpdateToken = "failed to update refresh token"
)
