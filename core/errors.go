package core

import "strconv"

// ErrorCode int
type ErrorCode int

const (
	// ErrUnknown unknown
	ErrUnknown ErrorCode = 100000
	// ErrOperationForbidden operation forbidden
	ErrOperationForbidden ErrorCode = 100001

	// ErrAssetNotListed asset is not a listed collateral
	ErrAssetNotListed ErrorCode = 100100
	// ErrInvalidAmount invalid amount
	ErrInvalidAmount ErrorCode = 100101
	// ErrInsufficientCollateral withdrawal exceeds collateral balance
	ErrInsufficientCollateral ErrorCode = 100103
	// ErrInsufficientDebt burn exceeds outstanding debt
	ErrInsufficientDebt ErrorCode = 100104
	// ErrHealthFactorBroken vault would drop below the minimum health factor
	ErrHealthFactorBroken ErrorCode = 100105
	// ErrHealthFactorOk liquidation target is still healthy
	ErrHealthFactorOk ErrorCode = 100106
	// ErrHealthFactorNotImproved liquidation did not improve the target vault
	ErrHealthFactorNotImproved ErrorCode = 100107
	// ErrInvalidPrice invalid price
	ErrInvalidPrice ErrorCode = 100108
	// ErrOracleUnavailable price feed unavailable
	ErrOracleUnavailable ErrorCode = 100109

	// ErrTransferFailed collateral token collaborator reported failure
	ErrTransferFailed ErrorCode = 100200
	// ErrMintFailed debt token mint reported failure
	ErrMintFailed ErrorCode = 100201
	// ErrBurnFailed debt token burn reported failure
	ErrBurnFailed ErrorCode = 100202
)

func (e ErrorCode) String() string {
	return strconv.Itoa(int(e))
}

func (e ErrorCode) Error() string {
	return e.String()
}
