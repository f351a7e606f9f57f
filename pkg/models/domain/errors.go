package domain

import "errors"

// Validation errors are returned before anything is written.
var (
	ErrInvalidAccount         = errors.New("account id cannot be empty")
	ErrInvalidAmount          = errors.New("transaction amount must be greater than zero")
	ErrInsufficientBalance    = errors.New("insufficient balance")
	ErrInvalidTransactionType = errors.New("invalid transaction type, use 'D' for deposit or 'W' for withdrawal")
	ErrInvalidRate            = errors.New("interest rate must be greater than 0 and less than 100")
	ErrInvalidRuleID          = errors.New("rule id cannot be empty")
	ErrInvalidDate            = errors.New("invalid date, expected YYYYMMDD")
	ErrInvalidMonth           = errors.New("invalid month, expected YYYYMM")
)

// ErrInternalComputation marks an accrual that could not be computed.
// It is distinct from a legitimate zero-interest result.
var ErrInternalComputation = errors.New("interest computation failed")
