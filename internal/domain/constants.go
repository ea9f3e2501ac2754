package domain

import "math"

// Character defaults applied at creation
const (
	DefaultCharacterHealth = 500
	DefaultCharacterAttack = 100
	DefaultCharacterMoney  = 10000

	// EarnMoneyReward is the fixed amount credited by EarnMoney
	EarnMoneyReward = 10000

	// MaxCharacterNameLength is measured in runes after normalisation
	MaxCharacterNameLength = 30
)

// Transaction limits
const (
	// MaxTransactionQuantity caps a single batch entry count
	MaxTransactionQuantity = 10000

	// MaxBatchEntries caps the number of distinct entries in a buy/sell batch
	MaxBatchEntries = 100

	// MaxItemPrice bounds catalog prices so that a full batch total, and the
	// resale numerator applied to it, stays well inside int64.
	MaxItemPrice = 1_000_000_000

	// MaxItemCode matches the INTEGER item_code column
	MaxItemCode = math.MaxInt32
)

// Resale is paid at ResaleNumerator/ResaleDenominator of the catalog price, rounded down.
const (
	ResaleNumerator   = 6
	ResaleDenominator = 10
)

// Account rules
const (
	MinPasswordLength = 6
	LoginIDPattern    = `^[a-z0-9]+$`
)
