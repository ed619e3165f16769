package messaging

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

var (
	ErrNoPendingRead = errors.New("no pending read for guid")
	ErrNoSpokes      = errors.New("vault has no linked spokes")
)

// ChainPausedError fails bridging operations closed while a chain is paused
type ChainPausedError struct {
	ChainID uint64
}

func (e *ChainPausedError) Error() string {
	return fmt.Sprintf("chain %d is paused", e.ChainID)
}

// UntrustedOFTError is returned when a bridging operation involves an OFT
// that is not on the trusted list.
type UntrustedOFTError struct {
	Addr common.Address
}

func (e *UntrustedOFTError) Error() string {
	return fmt.Sprintf("oft %s is not trusted", e.Addr.Hex())
}
