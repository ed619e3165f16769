package bridge

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrActionInMulticall is returned when a vault action request is
	// initiated from inside a batched execution context. The total assets
	// snapshot cannot be taken mid-batch.
	ErrActionInMulticall = errors.New("vault action request not allowed during multicall")
	// ErrAccountingViaOracles is returned when a read-aggregation request is
	// initiated while oracle-based cross-chain accounting is active.
	ErrAccountingViaOracles = errors.New("accounting is done via oracles")
	// ErrAccountingViaReads is returned when the synchronous aggregate is
	// requested while oracle-based accounting is disabled.
	ErrAccountingViaReads = errors.New("accounting is done via value reads")
	// ErrOnlyAccountingManager is returned when an accounting update comes
	// from anyone but the registered cross-chain accounting manager.
	ErrOnlyAccountingManager = errors.New("caller is not the cross-chain accounting manager")
	// ErrAlreadySet guards the oracle accounting toggle against re-enabling.
	ErrAlreadySet = errors.New("oracle accounting already enabled")

	ErrRequestNotFound         = errors.New("request not found")
	ErrRequestNotFulfilled     = errors.New("request not fulfilled")
	ErrRequestAlreadyFulfilled = errors.New("request already fulfilled")
	ErrRequestAlreadyFinalized = errors.New("request already finalized")
	ErrOnlyInitiator           = errors.New("caller is not the request initiator")
)

type NotEnoughFeeError struct {
	Quoted   *big.Int
	Provided *big.Int
}

func (e *NotEnoughFeeError) Error() string {
	return fmt.Sprintf("provided fee %s below quoted fee %s", e.Provided, e.Quoted)
}

type SlippageError struct {
	Actual *big.Int
	Bound  *big.Int
}

func (e *SlippageError) Error() string {
	return fmt.Sprintf("slippage exceeded: actual %s, bound %s", e.Actual, e.Bound)
}

type NoOracleForSpokeError struct {
	Eid uint32
}

func (e *NoOracleForSpokeError) Error() string {
	return fmt.Sprintf("no oracle configured for spoke %d", e.Eid)
}
