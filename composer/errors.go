package composer

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrDepositNotFound is returned for unknown and already resolved
	// deposits. Completion and refund are mutually exclusive, whichever runs
	// second sees this error.
	ErrDepositNotFound = errors.New("pending deposit not found")
	// ErrNoMsgValueExpected is returned when a local deposit arrives with
	// attached value. Local deposits need no accounting read, there is
	// nothing to pay for.
	ErrNoMsgValueExpected = errors.New("no msg value expected for local deposit")
)

// InsufficientMsgValueError is returned when a cross-chain deposit does not
// carry enough value to cover the accounting read fee.
type InsufficientMsgValueError struct {
	Expected *big.Int
	Actual   *big.Int
}

func (e *InsufficientMsgValueError) Error() string {
	return fmt.Sprintf("msg value %s below required accounting fee %s", e.Actual, e.Expected)
}
