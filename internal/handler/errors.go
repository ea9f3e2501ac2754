package handler

// User-facing error messages. Internal error details never reach the client.
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgInvalidRequest     = "Invalid request body"
	ErrMsgInvalidInput       = "Invalid input"
	ErrMsgInvalidCharacterID = "Invalid character id"
	ErrMsgInvalidItemCode    = "Invalid item code"

	ErrMsgTokenExpired       = "Token has expired"
	ErrMsgTokenInvalid       = "Token is invalid"
	ErrMsgTokenMissing       = "Token is required"
	ErrMsgInvalidCredentials = "Invalid login id or password"
	ErrMsgForbidden          = "Not your character"

	ErrMsgUserNotFound      = "User not found"
	ErrMsgCharacterNotFound = "Character not found"
	ErrMsgItemNotFound      = "Item not found"

	ErrMsgDuplicateLoginID  = "Login id already exists"
	ErrMsgDuplicateName     = "Character name already exists"
	ErrMsgDuplicateItemCode = "Item code already exists"

	ErrMsgInvalidItemType      = "Invalid item type"
	ErrMsgInvalidStat          = "Invalid stat"
	ErrMsgNotEquippable        = "Item cannot be equipped"
	ErrMsgSlotFull             = "No free slot for that item type"
	ErrMsgNotEquipped          = "Item is not equipped"
	ErrMsgNotInInventory       = "You don't have that item"
	ErrMsgInsufficientQuantity = "Not enough items"
	ErrMsgInsufficientFunds    = "Not enough money"
	ErrMsgServiceUnavailable   = "database connection failed"
	ErrMsgRequestTimedOut      = "Request timed out. Please try again."
)

// Success messages
const (
	MsgSignedUp         = "Signed up"
	MsgSignedIn         = "Signed in"
	MsgTokenRefreshed   = "Token refreshed"
	MsgCharacterCreated = "Character created"
	MsgCharacterDeleted = "Character deleted"
	MsgCharacterFound   = "Character found"
	MsgMoneyEarned      = "Money earned"
	MsgInventoryListed  = "Inventory listed"
	MsgEquippedListed   = "Equipped items listed"
	MsgItemEquipped     = "Item equipped"
	MsgItemUnequipped   = "Item unequipped"
	MsgItemsBought      = "Items bought"
	MsgItemsSold        = "Items sold"
	MsgPricesListed     = "Prices listed"
	MsgItemsListed      = "Items listed"
	MsgItemFound        = "Item found"
	MsgItemCreated      = "Item created"
	MsgItemUpdated      = "Item updated"
	MsgItemDeleted      = "Item deleted"
	MsgItemsGranted     = "Items granted"
	MsgItemsRevoked     = "Items revoked"
)

// URL parameters
const (
	ParamCharacterID = "characterID"
	ParamItemCode    = "itemCode"
)
