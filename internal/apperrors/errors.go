// Package apperrors defines the sentinel errors shared across the
// service and HTTP layers.
package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities.
var (
	// ErrTradeNotFound indicates that a trade with the given ID does not exist.
	ErrTradeNotFound = errors.New("trade not found")

	// ErrSettingNotFound indicates that a portfolio setting key has no stored value.
	ErrSettingNotFound = errors.New("setting not found")
)

// Business logic errors represent validation failures or constraint
// violations that prevent an operation from completing.
var (
	// ErrTradeClosed indicates an operation that requires an open trade
	// was attempted on a CLOSED one. The CLOSED state is terminal.
	ErrTradeClosed = errors.New("trade is already closed")

	// ErrInvalidQuantity indicates a close quantity that is not positive
	// or exceeds the trade's open quantity.
	ErrInvalidQuantity = errors.New("invalid quantity")

	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrEmptyID indicates that a required ID parameter is empty or missing.
	ErrEmptyID = errors.New("ID cannot be empty")

	// ErrNegativeAmount indicates that an amount field has an invalid negative value.
	ErrNegativeAmount = errors.New("amount cannot be negative")
)

// Operation failure errors represent system-level failures when
// retrieving or processing data.
var (
	ErrFailedToRetrieveTrades   = errors.New("failed to retrieve trades")
	ErrFailedToRetrieveTrade    = errors.New("failed to retrieve trade")
	ErrFailedToGetOverview      = errors.New("failed to get portfolio overview")
	ErrFailedToRetrieveSettings = errors.New("failed to retrieve settings")
	ErrFailedToRefreshPrices    = errors.New("failed to refresh prices")
)

// Quote source errors.
var (
	// ErrPriceUnavailable indicates that no configured price source
	// could produce a quote for the instrument.
	ErrPriceUnavailable = errors.New("price unavailable")
)
