package messaging

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"

	"github.com/omnivault/vault-accounting/bridge"
	"github.com/omnivault/vault-accounting/topology"
)

// Transport is the endpoint boundary the adapter sends through. Reads fan
// out to spokes and come back as one aggregated delivery, sends move share
// tokens between chains.
type Transport interface {
	QuoteRead(cmd *ReadCommand) (*big.Int, error)
	SendRead(ctx context.Context, cmd *ReadCommand, fee *big.Int) (common.Hash, error)
	QuoteSend(p SendParams) (*big.Int, error)
	Send(ctx context.Context, p SendParams, fee *big.Int) (common.Hash, error)
}

// SendParams describes an outbound share token transfer
type SendParams struct {
	OFT       common.Address
	DstEid    uint32
	To        common.Address
	Amount    *big.Int
	MinAmount *big.Int
}

// RequestFinalizer is the coordinator surface the delivery path drives
type RequestFinalizer interface {
	UpdateAccountingInfoForRequest(
		ctx context.Context,
		caller common.Address,
		guid common.Hash,
		aggregatedUsd *big.Int,
		success bool,
	) error
	ExecuteRequest(ctx context.Context, guid common.Hash) (*bridge.RequestOutcome, error)
}

// DepositCompleter finishes composer-initiated deposits once their request
// is finalized.
type DepositCompleter interface {
	CompleteDeposit(ctx context.Context, guid common.Hash) error
}

// Topology resolves the spokes linked to a hub vault
type Topology interface {
	Spokes(hubChainID uint64, hubVault common.Address) []topology.Spoke
}

type pendingRead struct {
	action    bridge.ActionType
	initiator common.Address
}

// Adapter builds fan-out value reads from the vault topology, tracks them
// until delivery and routes each delivered aggregate to the follow-up the
// initiating action requires. It also owns the OFT trust list and per-chain
// pause switches every bridging operation fails closed on.
type Adapter struct {
	chainID   uint64
	transport Transport
	topology  Topology
	manager   common.Address

	coordinator RequestFinalizer
	completer   DepositCompleter
	composer    common.Address

	mu           sync.RWMutex
	pendingReads map[common.Hash]*pendingRead
	trustedOFTs  map[common.Address]bool
	pausedChains map[uint64]bool
}

func NewAdapter(chainID uint64, transport Transport, topology Topology, manager common.Address) *Adapter {
	return &Adapter{
		chainID:      chainID,
		transport:    transport,
		topology:     topology,
		manager:      manager,
		pendingReads: make(map[common.Hash]*pendingRead),
		trustedOFTs:  make(map[common.Address]bool),
		pausedChains: make(map[uint64]bool),
	}
}

// SetCoordinator links the hub coordinator. Set after construction, the
// coordinator dispatches through this adapter.
func (a *Adapter) SetCoordinator(coordinator RequestFinalizer) {
	a.coordinator = coordinator
}

// SetDepositCompleter links the deposit composer so composer-initiated
// requests finish with share delivery on top of finalization.
func (a *Adapter) SetDepositCompleter(composer common.Address, completer DepositCompleter) {
	a.composer = composer
	a.completer = completer
}

// QuoteValueRead prices the fan-out read for a hub vault without mutating
// any state.
func (a *Adapter) QuoteValueRead(hubChainID uint64, vault common.Address) (*big.Int, error) {
	cmd, err := a.readCommand(hubChainID, vault)
	if err != nil {
		return nil, err
	}

	return a.transport.QuoteRead(cmd)
}

// DispatchValueRead sends the fan-out read and registers the pending entry
// the delivery handler routes by.
func (a *Adapter) DispatchValueRead(
	ctx context.Context,
	hubChainID uint64,
	vault common.Address,
	initiator common.Address,
	action bridge.ActionType,
	fee *big.Int,
) (common.Hash, error) {
	if a.ChainPaused(hubChainID) {
		return common.Hash{}, &ChainPausedError{ChainID: hubChainID}
	}

	cmd, err := a.readCommand(hubChainID, vault)
	if err != nil {
		return common.Hash{}, err
	}

	guid, err := a.transport.SendRead(ctx, cmd, fee)
	if err != nil {
		return common.Hash{}, err
	}

	a.mu.Lock()
	a.pendingReads[guid] = &pendingRead{
		action:    action,
		initiator: initiator,
	}
	a.mu.Unlock()
	return guid, nil
}

// HandleDelivery routes one delivered read aggregate. Composer deposits
// complete with share delivery, every other request executes against the
// vault right away.
//
// Deliveries are at-least-once. A repeated delivery for a fulfilled request
// re-attempts the follow-up, so a request cannot get stranded fulfilled but
// unfinalized by a transient vault failure. Follow-up failures never
// propagate into the delivery path, the read stays pending until the
// follow-up lands.
func (a *Adapter) HandleDelivery(ctx context.Context, guid common.Hash, aggregate []byte, success bool) error {
	a.mu.RLock()
	pending, ok := a.pendingReads[guid]
	a.mu.RUnlock()
	if !ok {
		return ErrNoPendingRead
	}

	if !success {
		return a.coordinator.UpdateAccountingInfoForRequest(ctx, a.manager, guid, nil, false)
	}

	aggregatedUsd, err := DecodeAggregate(aggregate)
	if err != nil {
		return err
	}

	err = a.coordinator.UpdateAccountingInfoForRequest(ctx, a.manager, guid, aggregatedUsd, true)
	if err != nil && !errors.Is(err, bridge.ErrRequestAlreadyFulfilled) {
		return err
	}

	if pending.initiator == a.composer && a.completer != nil {
		err = a.completer.CompleteDeposit(ctx, guid)
	} else {
		_, err = a.coordinator.ExecuteRequest(ctx, guid)
	}
	switch {
	case errors.Is(err, bridge.ErrRequestAlreadyFinalized):
	case err != nil:
		log.Warn().
			Err(err).
			Str("guid", guid.Hex()).
			Str("action", pending.action.String()).
			Msg("Request fulfilled but follow-up failed")
		return nil
	}

	a.mu.Lock()
	delete(a.pendingReads, guid)
	a.mu.Unlock()
	return nil
}

// QuoteSend prices an outbound share transfer
func (a *Adapter) QuoteSend(p SendParams) (*big.Int, error) {
	return a.transport.QuoteSend(p)
}

// Send moves share tokens out through the endpoint. Fails closed when the
// destination chain is paused or the OFT is not trusted.
func (a *Adapter) Send(ctx context.Context, dstChainID uint64, p SendParams, fee *big.Int) (common.Hash, error) {
	if a.ChainPaused(dstChainID) {
		return common.Hash{}, &ChainPausedError{ChainID: dstChainID}
	}
	if !a.IsTrustedOFT(p.OFT) {
		return common.Hash{}, &UntrustedOFTError{Addr: p.OFT}
	}

	return a.transport.Send(ctx, p, fee)
}

// SetTrustedOFTs updates the trust flag for a batch of OFT addresses
func (a *Adapter) SetTrustedOFTs(addrs []common.Address, trusted bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, addr := range addrs {
		if trusted {
			a.trustedOFTs[addr] = true
		} else {
			delete(a.trustedOFTs, addr)
		}
	}
}

func (a *Adapter) IsTrustedOFT(addr common.Address) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.trustedOFTs[addr]
}

func (a *Adapter) PauseChain(chainID uint64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.pausedChains[chainID] = true
}

func (a *Adapter) UnpauseChain(chainID uint64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	delete(a.pausedChains, chainID)
}

func (a *Adapter) ChainPaused(chainID uint64) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.pausedChains[chainID]
}

func (a *Adapter) readCommand(hubChainID uint64, vault common.Address) (*ReadCommand, error) {
	spokes := a.topology.Spokes(hubChainID, vault)
	if len(spokes) == 0 {
		return nil, ErrNoSpokes
	}

	now := uint64(time.Now().Unix())
	requests := make([]ReadRequest, len(spokes))
	for i, spoke := range spokes {
		requests[i] = ReadRequest{
			Eid:           spoke.Eid,
			Target:        spoke.Vault,
			CallData:      ValueCallData,
			Timestamp:     now,
			Confirmations: ReadConfirmations,
		}
	}

	return &ReadCommand{Requests: requests}, nil
}
