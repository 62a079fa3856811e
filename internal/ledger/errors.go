package ledger

import "errors"

// Integrity errors. Any of these denies authorization outright.
var (
	ErrTransactionFailed   = errors.New("order transaction failed")
	ErrOrderEventNotFound  = errors.New("order event not found in transaction")
	ErrAmbiguousOrderEvent = errors.New("multiple order events in the same transaction")
	ErrAssetMismatch       = errors.New("order event does not match the requested asset or service")
	ErrReceiverMismatch    = errors.New("order event receiver does not match the expected receiver")
	ErrSenderMismatch      = errors.New("transaction sender does not match the requesting account")
)

// Economic errors. The order exists but the payment does not cover the price.
var (
	ErrReceiverNotPaid     = errors.New("no transfer to the expected receiver")
	ErrInsufficientPayment = errors.New("transferred value does not meet the service cost")
)

// IsDenial reports whether err is a verification denial rather than a
// transport or node failure.
func IsDenial(err error) bool {
	for _, denial := range []error{
		ErrTransactionFailed,
		ErrOrderEventNotFound,
		ErrAmbiguousOrderEvent,
		ErrAssetMismatch,
		ErrReceiverMismatch,
		ErrSenderMismatch,
		ErrReceiverNotPaid,
		ErrInsufficientPayment,
	} {
		if errors.Is(err, denial) {
			return true
		}
	}
	return false
}
