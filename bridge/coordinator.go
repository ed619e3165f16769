package bridge

import (
	"context"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"

	"github.com/omnivault/vault-accounting/conversion"
	"github.com/omnivault/vault-accounting/price"
	"github.com/omnivault/vault-accounting/topology"
)

// Vault is the hub vault core as seen by the coordinator. Share math always
// goes through the request's total assets snapshot, so the interface only
// exposes raw state and the executing operations.
type Vault interface {
	Address() common.Address
	Asset() common.Address
	AssetDecimals() uint8
	TotalAssets(ctx context.Context) (*big.Int, error)
	TotalSupply(ctx context.Context) (*big.Int, error)

	Deposit(ctx context.Context, assets *big.Int, receiver common.Address) error
	Mint(ctx context.Context, shares *big.Int, receiver common.Address) error
	Withdraw(ctx context.Context, assets *big.Int, receiver common.Address, owner common.Address) error
	Redeem(ctx context.Context, shares *big.Int, receiver common.Address, owner common.Address) error
	RequestWithdraw(ctx context.Context, assets *big.Int, receiver common.Address, owner common.Address) error
	RequestRedeem(ctx context.Context, shares *big.Int, receiver common.Address, owner common.Address) error
	MultiAssetsDeposit(ctx context.Context, tokens []common.Address, amounts []*big.Int, receiver common.Address) error
}

// ReadDispatcher is the messaging adapter boundary used for fan-out value
// reads.
type ReadDispatcher interface {
	QuoteValueRead(hubChainID uint64, vault common.Address) (*big.Int, error)
	DispatchValueRead(
		ctx context.Context,
		hubChainID uint64,
		vault common.Address,
		initiator common.Address,
		action ActionType,
		fee *big.Int,
	) (common.Hash, error)
}

// SpokeFeeds resolves per-spoke value feeds for oracle-based accounting
type SpokeFeeds interface {
	HasFeed(eid uint32) bool
	Feed(eid uint32) (price.ValueFeed, error)
}

// Topology resolves the spokes linked to a hub vault
type Topology interface {
	Spokes(hubChainID uint64, hubVault common.Address) []topology.Spoke
}

// RequestMetrics tracks the request lifecycle for observability
type RequestMetrics interface {
	StartRequest(guid common.Hash)
	FinalizeRequest(guid common.Hash)
}

// Coordinator owns the request ledger of one hub vault and drives the full
// request lifecycle: initiation, accounting-update ingestion and
// slippage-checked finalization.
type Coordinator struct {
	chainID uint64

	vault      Vault
	ledger     *RequestStore
	dispatcher ReadDispatcher
	oracle     price.AssetOracle
	spokeFeeds SpokeFeeds
	topology   Topology

	// accountingManager is the only identity allowed to push valuation
	// updates into the ledger
	accountingManager common.Address

	metrics RequestMetrics

	oracleAccountingMu sync.Mutex
	oracleAccounting   bool

	outcomeChn chan *RequestOutcome
}

func NewCoordinator(
	chainID uint64,
	vault Vault,
	ledger *RequestStore,
	dispatcher ReadDispatcher,
	oracle price.AssetOracle,
	spokeFeeds SpokeFeeds,
	topology Topology,
	accountingManager common.Address,
	metrics RequestMetrics,
	outcomeChn chan *RequestOutcome,
) *Coordinator {
	return &Coordinator{
		chainID:           chainID,
		vault:             vault,
		ledger:            ledger,
		dispatcher:        dispatcher,
		oracle:            oracle,
		spokeFeeds:        spokeFeeds,
		topology:          topology,
		accountingManager: accountingManager,
		metrics:           metrics,
		outcomeChn:        outcomeChn,
	}
}

func (c *Coordinator) ChainID() uint64 {
	return c.chainID
}

func (c *Coordinator) VaultAddress() common.Address {
	return c.vault.Address()
}

// InitVaultActionRequest snapshots the hub's total assets, dispatches a
// fan-out valuation read across every registered spoke and stores a new
// ledger entry keyed by the transport assigned identifier.
//
// The fee is checked against the adapter quote before dispatch. The send is
// one-way, a post-dispatch failure would strand the paid fee.
func (c *Coordinator) InitVaultActionRequest(
	ctx context.Context,
	initiator common.Address,
	action ActionType,
	encodedCall []byte,
	minAmountOut *big.Int,
	fee *big.Int,
) (common.Hash, error) {
	if IsBatched(ctx) {
		return common.Hash{}, ErrActionInMulticall
	}
	if c.OraclesCrossChainAccounting() {
		return common.Hash{}, ErrAccountingViaOracles
	}

	quote, err := c.dispatcher.QuoteValueRead(c.chainID, c.vault.Address())
	if err != nil {
		return common.Hash{}, err
	}
	if fee == nil || fee.Cmp(quote) < 0 {
		return common.Hash{}, &NotEnoughFeeError{Quoted: quote, Provided: fee}
	}

	snapshot, err := c.vault.TotalAssets(ctx)
	if err != nil {
		return common.Hash{}, err
	}

	guid, err := c.dispatcher.DispatchValueRead(ctx, c.chainID, c.vault.Address(), initiator, action, fee)
	if err != nil {
		return common.Hash{}, err
	}

	err = c.ledger.Save(&RequestInfo{
		GUID:                guid,
		Initiator:           initiator,
		ActionType:          action,
		EncodedCall:         encodedCall,
		TotalAssetsSnapshot: snapshot,
		MinAmountOut:        minAmountOut,
		CreatedAt:           time.Now(),
	})
	if err != nil {
		return common.Hash{}, err
	}

	c.metrics.StartRequest(guid)
	log.Info().
		Str("guid", guid.Hex()).
		Str("action", action.String()).
		Msgf("Initiated vault action request for vault %s", c.vault.Address().Hex())
	return guid, nil
}

// UpdateAccountingInfoForRequest ingests the aggregated spoke valuation for
// a pending request. Only the registered accounting manager may call it.
//
// A failed remote read leaves the request untouched and pending. A repeated
// successful update for an already fulfilled request is rejected so the
// aggregate can never be double-added.
func (c *Coordinator) UpdateAccountingInfoForRequest(
	ctx context.Context,
	caller common.Address,
	guid common.Hash,
	aggregatedUsd *big.Int,
	success bool,
) error {
	if caller != c.accountingManager {
		return ErrOnlyAccountingManager
	}

	if !success {
		log.Warn().Str("guid", guid.Hex()).Msg("Remote valuation read failed, request stays pending")
		return nil
	}

	assetPrice, err := c.oracle.Price(ctx, c.vault.Asset())
	if err != nil {
		return err
	}

	remoteAssets, err := conversion.UsdToAsset(aggregatedUsd, assetPrice.Value, c.vault.AssetDecimals())
	if err != nil {
		return err
	}

	return c.ledger.Update(guid, func(r *RequestInfo) error {
		if r.Fulfilled {
			return ErrRequestAlreadyFulfilled
		}

		r.TotalAssetsSnapshot = new(big.Int).Add(r.TotalAssetsSnapshot, remoteAssets)
		r.Fulfilled = true
		return nil
	})
}

// ExecuteRequest finalizes a fulfilled request: computes the action outcome
// with the completed total assets snapshot, enforces the caller's slippage
// bound and executes the underlying vault operation. Finalization is
// terminal.
//
// A slippage failure leaves the request fulfilled but unfinalized; the
// initiator may revise the bound with UpdateRequestSlippage and re-execute.
// A failed vault call releases the finalization claim so the request can be
// re-executed, partial application is never recorded.
func (c *Coordinator) ExecuteRequest(ctx context.Context, guid common.Hash) (*RequestOutcome, error) {
	r, err := c.ledger.Request(guid)
	if err != nil {
		return nil, err
	}
	if r.Finalized {
		return nil, ErrRequestAlreadyFinalized
	}
	if !r.Fulfilled {
		return nil, ErrRequestNotFulfilled
	}

	amount, execute, err := c.prepareAction(ctx, r)
	if err != nil {
		return nil, err
	}

	// claim finalization before executing so a concurrent call cannot apply
	// the vault operation twice
	err = c.ledger.Update(guid, func(r *RequestInfo) error {
		if r.Finalized {
			return ErrRequestAlreadyFinalized
		}

		r.Finalized = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := execute(ctx); err != nil {
		// release the claim so the request stays retryable, the vault
		// operation never ran
		rollbackErr := c.ledger.Update(guid, func(r *RequestInfo) error {
			r.Finalized = false
			return nil
		})
		if rollbackErr != nil {
			log.Error().
				Err(rollbackErr).
				Str("guid", guid.Hex()).
				Msg("Failed releasing finalization claim")
		}
		return nil, err
	}

	c.metrics.FinalizeRequest(guid)
	log.Info().
		Str("guid", guid.Hex()).
		Str("action", r.ActionType.String()).
		Msgf("Finalized request with amount %s", amount)
	outcome := &RequestOutcome{
		GUID:       guid,
		ActionType: r.ActionType,
		Amount:     amount,
	}
	c.publish(outcome)
	return outcome, nil
}

// UpdateRequestSlippage revises the slippage bound of an unfinalized
// request. Only the initiator may loosen its own bound.
func (c *Coordinator) UpdateRequestSlippage(caller common.Address, guid common.Hash, minAmountOut *big.Int) error {
	return c.ledger.Update(guid, func(r *RequestInfo) error {
		if r.Finalized {
			return ErrRequestAlreadyFinalized
		}
		if r.Initiator != caller {
			return ErrOnlyInitiator
		}

		r.MinAmountOut = minAmountOut
		return nil
	})
}

// RequestInfo exposes the ledger entry for operator observability
func (c *Coordinator) RequestInfo(guid common.Hash) (*RequestInfo, error) {
	return c.ledger.Request(guid)
}

// PendingRequests lists unfinalized requests for the staleness sweep
func (c *Coordinator) PendingRequests() []*RequestInfo {
	return c.ledger.Pending()
}

// SetOraclesCrossChainAccounting toggles between read-aggregation and
// oracle-based accounting. Enabling is safety checked against every linked
// spoke having a configured value feed. Disabling always succeeds, it is
// the recovery action when something upstream is broken.
func (c *Coordinator) SetOraclesCrossChainAccounting(enabled bool) error {
	c.oracleAccountingMu.Lock()
	defer c.oracleAccountingMu.Unlock()

	if !enabled {
		c.oracleAccounting = false
		return nil
	}

	if c.oracleAccounting {
		return ErrAlreadySet
	}

	for _, spoke := range c.topology.Spokes(c.chainID, c.vault.Address()) {
		if !c.spokeFeeds.HasFeed(spoke.Eid) {
			return &NoOracleForSpokeError{Eid: spoke.Eid}
		}
	}

	c.oracleAccounting = true
	return nil
}

func (c *Coordinator) OraclesCrossChainAccounting() bool {
	c.oracleAccountingMu.Lock()
	defer c.oracleAccountingMu.Unlock()

	return c.oracleAccounting
}

// Accounting sums the oracle-reported USD value of every linked spoke and
// converts the aggregate into underlying asset units. The sign flag is
// always positive in the current design.
func (c *Coordinator) Accounting(ctx context.Context) (*big.Int, bool, error) {
	if !c.OraclesCrossChainAccounting() {
		return nil, false, ErrAccountingViaReads
	}

	totalUsd := big.NewInt(0)
	for _, spoke := range c.topology.Spokes(c.chainID, c.vault.Address()) {
		feed, err := c.spokeFeeds.Feed(spoke.Eid)
		if err != nil {
			return nil, false, err
		}

		value, err := feed.Value(ctx)
		if err != nil {
			return nil, false, err
		}

		totalUsd.Add(totalUsd, value)
	}

	assetPrice, err := c.oracle.Price(ctx, c.vault.Asset())
	if err != nil {
		return nil, false, err
	}

	value, err := conversion.UsdToAsset(totalUsd, assetPrice.Value, c.vault.AssetDecimals())
	if err != nil {
		return nil, false, err
	}

	return value, true, nil
}

type vaultOp func(ctx context.Context) error

// prepareAction computes the action outcome from the completed snapshot and
// enforces the slippage bound. It performs no state changes, the returned
// operation executes the vault call once finalization is claimed.
func (c *Coordinator) prepareAction(ctx context.Context, r *RequestInfo) (*big.Int, vaultOp, error) {
	supply, err := c.vault.TotalSupply(ctx)
	if err != nil {
		return nil, nil, err
	}

	decimals := c.vault.AssetDecimals()
	totalAssets := r.TotalAssetsSnapshot

	switch r.ActionType {
	case DepositAction:
		call, err := DecodeAmountCall(r.EncodedCall)
		if err != nil {
			return nil, nil, err
		}

		shares := conversion.SharesForAssets(call.Amount, supply, totalAssets, decimals)
		if shares.Cmp(r.MinAmountOut) < 0 {
			return nil, nil, &SlippageError{Actual: shares, Bound: r.MinAmountOut}
		}

		return shares, func(ctx context.Context) error {
			return c.vault.Deposit(ctx, call.Amount, call.Receiver)
		}, nil
	case MintAction:
		call, err := DecodeAmountCall(r.EncodedCall)
		if err != nil {
			return nil, nil, err
		}

		assets := conversion.AssetsForSharesUp(call.Amount, supply, totalAssets, decimals)
		if assets.Cmp(r.MinAmountOut) > 0 {
			return nil, nil, &SlippageError{Actual: assets, Bound: r.MinAmountOut}
		}

		return assets, func(ctx context.Context) error {
			return c.vault.Mint(ctx, call.Amount, call.Receiver)
		}, nil
	case WithdrawAction:
		call, err := DecodeOwnedCall(r.EncodedCall)
		if err != nil {
			return nil, nil, err
		}

		shares := conversion.SharesForAssetsUp(call.Amount, supply, totalAssets, decimals)
		if shares.Cmp(r.MinAmountOut) > 0 {
			return nil, nil, &SlippageError{Actual: shares, Bound: r.MinAmountOut}
		}

		return shares, func(ctx context.Context) error {
			return c.vault.Withdraw(ctx, call.Amount, call.Receiver, call.Owner)
		}, nil
	case RedeemAction:
		call, err := DecodeOwnedCall(r.EncodedCall)
		if err != nil {
			return nil, nil, err
		}

		assets := conversion.AssetsForShares(call.Amount, supply, totalAssets, decimals)
		if assets.Cmp(r.MinAmountOut) < 0 {
			return nil, nil, &SlippageError{Actual: assets, Bound: r.MinAmountOut}
		}

		return assets, func(ctx context.Context) error {
			return c.vault.Redeem(ctx, call.Amount, call.Receiver, call.Owner)
		}, nil
	case MultiAssetsDepositAction:
		call, err := DecodeMultiAssetsCall(r.EncodedCall)
		if err != nil {
			return nil, nil, err
		}

		equivalent, err := c.underlyingEquivalent(ctx, call)
		if err != nil {
			return nil, nil, err
		}

		shares := conversion.SharesForAssets(equivalent, supply, totalAssets, decimals)
		if shares.Cmp(r.MinAmountOut) < 0 {
			return nil, nil, &SlippageError{Actual: shares, Bound: r.MinAmountOut}
		}

		return shares, func(ctx context.Context) error {
			return c.vault.MultiAssetsDeposit(ctx, call.Tokens, call.Amounts, call.Receiver)
		}, nil
	case RequestWithdrawAction:
		call, err := DecodeOwnedCall(r.EncodedCall)
		if err != nil {
			return nil, nil, err
		}

		shares := conversion.SharesForAssetsUp(call.Amount, supply, totalAssets, decimals)
		if shares.Cmp(r.MinAmountOut) > 0 {
			return nil, nil, &SlippageError{Actual: shares, Bound: r.MinAmountOut}
		}

		return shares, func(ctx context.Context) error {
			return c.vault.RequestWithdraw(ctx, call.Amount, call.Receiver, call.Owner)
		}, nil
	case RequestRedeemAction:
		call, err := DecodeOwnedCall(r.EncodedCall)
		if err != nil {
			return nil, nil, err
		}

		assets := conversion.AssetsForShares(call.Amount, supply, totalAssets, decimals)
		if assets.Cmp(r.MinAmountOut) < 0 {
			return nil, nil, &SlippageError{Actual: assets, Bound: r.MinAmountOut}
		}

		return assets, func(ctx context.Context) error {
			return c.vault.RequestRedeem(ctx, call.Amount, call.Receiver, call.Owner)
		}, nil
	default:
		return nil, nil, fmt.Errorf("unknown action type %d", r.ActionType)
	}
}

// underlyingEquivalent values a basket of tokens through the asset oracle
// and rebases the USD sum into underlying asset units.
func (c *Coordinator) underlyingEquivalent(ctx context.Context, call *MultiAssetsCall) (*big.Int, error) {
	if len(call.Tokens) != len(call.Amounts) {
		return nil, fmt.Errorf("token count %d not matching amount count %d", len(call.Tokens), len(call.Amounts))
	}

	assetPrice, err := c.oracle.Price(ctx, c.vault.Asset())
	if err != nil {
		return nil, err
	}

	totalUsd := big.NewInt(0)
	for i, token := range call.Tokens {
		tokenPrice, err := c.oracle.Price(ctx, token)
		if err != nil {
			return nil, err
		}

		// token amounts arrive rebased to underlying decimals by the vault
		totalUsd.Add(totalUsd, conversion.AssetToUsd(call.Amounts[i], tokenPrice.Value, c.vault.AssetDecimals()))
	}

	return conversion.UsdToAsset(totalUsd, assetPrice.Value, c.vault.AssetDecimals())
}

func (c *Coordinator) publish(outcome *RequestOutcome) {
	select {
	case c.outcomeChn <- outcome:
	default:
		log.Warn().Str("guid", outcome.GUID.Hex()).Msg("Outcome channel full, dropping outcome")
	}
}
