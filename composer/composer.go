package composer

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"

	"github.com/omnivault/vault-accounting/bridge"
	"github.com/omnivault/vault-accounting/messaging"
)

// Vault is the composer's view of the hub vault. Composed deposits mint
// shares to the composer which then forwards them to the receiver.
type Vault interface {
	Asset() common.Address
	Deposit(ctx context.Context, assets *big.Int, receiver common.Address) error
	TransferShares(ctx context.Context, to common.Address, amount *big.Int) error
}

// TokenMover moves composer-held funds on the refund path
type TokenMover interface {
	TransferAsset(ctx context.Context, asset common.Address, to common.Address, amount *big.Int) error
	RefundNative(ctx context.Context, to common.Address, amount *big.Int) error
}

// RequestInitiator is the coordinator surface composed deposits run through
type RequestInitiator interface {
	InitVaultActionRequest(
		ctx context.Context,
		initiator common.Address,
		action bridge.ActionType,
		encodedCall []byte,
		minAmountOut *big.Int,
		fee *big.Int,
	) (common.Hash, error)
	ExecuteRequest(ctx context.Context, guid common.Hash) (*bridge.RequestOutcome, error)
}

// Bridge is the adapter surface used for OFT trust checks, read fee quoting
// and outbound share delivery.
type Bridge interface {
	IsTrustedOFT(addr common.Address) bool
	QuoteValueRead(hubChainID uint64, vault common.Address) (*big.Int, error)
	QuoteSend(p messaging.SendParams) (*big.Int, error)
	Send(ctx context.Context, dstChainID uint64, p messaging.SendParams, fee *big.Int) (common.Hash, error)
}

// DepositMetrics counts resolved composed deposits
type DepositMetrics interface {
	DepositCompleted()
	DepositRefunded()
}

// Topology classifies the target vault and resolves share destinations
type Topology interface {
	IsCrossChainVault(chainID uint64, vault common.Address) bool
	ChainID(eid uint32) (uint64, bool)
}

// Composer turns inbound OFT transfers with attached instructions into
// vault deposits. Local vaults deposit synchronously, hub vaults go through
// the full accounting request and deliver shares once it finalizes. Funds
// are never stranded, every failure past fund acceptance refunds the
// depositor.
type Composer struct {
	chainID  uint64
	localEid uint32
	addr     common.Address

	vault       Vault
	mover       TokenMover
	coordinator RequestInitiator
	bridge      Bridge
	topology    Topology
	deposits    *DepositStore
	metrics     DepositMetrics
}

func NewComposer(
	chainID uint64,
	localEid uint32,
	addr common.Address,
	vault Vault,
	mover TokenMover,
	coordinator RequestInitiator,
	bridge Bridge,
	topology Topology,
	deposits *DepositStore,
	metrics DepositMetrics,
) *Composer {
	return &Composer{
		chainID:     chainID,
		localEid:    localEid,
		addr:        addr,
		vault:       vault,
		mover:       mover,
		coordinator: coordinator,
		bridge:      bridge,
		topology:    topology,
		deposits:    deposits,
		metrics:     metrics,
	}
}

func (c *Composer) Address() common.Address {
	return c.addr
}

// HandleCompose processes one inbound composed transfer. The amount has
// already been credited to the composer by the source OFT when this runs.
// Only the quoted read fee is spent on the accounting read, the remainder
// of the attached value stays escrowed with the deposit for the refund
// path.
func (c *Composer) HandleCompose(
	ctx context.Context,
	srcOFT common.Address,
	depositor common.Address,
	srcChainID uint64,
	payload []byte,
	amount *big.Int,
	msgValue *big.Int,
) error {
	if !c.bridge.IsTrustedOFT(srcOFT) {
		return &messaging.UntrustedOFTError{Addr: srcOFT}
	}

	p, err := DecodePayload(payload)
	if err != nil {
		c.refund(ctx, depositor, amount, msgValue)
		return err
	}

	if !c.topology.IsCrossChainVault(c.chainID, p.Vault) {
		return c.localDeposit(ctx, depositor, p, amount, msgValue)
	}

	if msgValue == nil || msgValue.Cmp(p.MinReadFee) < 0 {
		c.refund(ctx, depositor, amount, msgValue)
		return &InsufficientMsgValueError{Expected: p.MinReadFee, Actual: msgValue}
	}

	readFee, err := c.bridge.QuoteValueRead(c.chainID, p.Vault)
	if err != nil {
		c.refund(ctx, depositor, amount, msgValue)
		return err
	}
	if msgValue.Cmp(readFee) < 0 {
		c.refund(ctx, depositor, amount, msgValue)
		return &InsufficientMsgValueError{Expected: readFee, Actual: msgValue}
	}

	encodedCall, err := bridge.AmountCall{Amount: amount, Receiver: c.addr}.Encode()
	if err != nil {
		c.refund(ctx, depositor, amount, msgValue)
		return err
	}

	guid, err := c.coordinator.InitVaultActionRequest(
		ctx, c.addr, bridge.DepositAction, encodedCall, p.MinAmountOut, readFee,
	)
	if err != nil {
		c.refund(ctx, depositor, amount, msgValue)
		return err
	}

	err = c.deposits.Save(&PendingDeposit{
		GUID:       guid,
		Depositor:  depositor,
		SrcChainID: srcChainID,
		Asset:      c.vault.Asset(),
		Amount:     amount,
		SendParams: messaging.SendParams{
			OFT:       p.ShareOFT,
			DstEid:    p.DstEid,
			To:        p.Receiver,
			MinAmount: p.MinAmountOut,
		},
		AccountingFee: new(big.Int).Sub(msgValue, readFee),
		CreatedAt:     time.Now(),
	})
	if err != nil {
		// the read is already in flight, losing the entry only loses the
		// automatic completion
		log.Error().Err(err).Str("guid", guid.Hex()).Msg("Failed storing pending deposit")
		return err
	}

	log.Info().
		Str("guid", guid.Hex()).
		Str("depositor", depositor.Hex()).
		Msgf("Registered composed deposit of %s", amount)
	return nil
}

// CompleteDeposit finalizes the accounting request of a composed deposit
// and delivers the minted shares per the stored send parameters. Delivery
// failures keep the entry so completion can be retried without double
// execution.
func (c *Composer) CompleteDeposit(ctx context.Context, guid common.Hash) error {
	d, err := c.deposits.Deposit(guid)
	if err != nil {
		return err
	}

	shares := d.SharesMinted
	if shares == nil {
		outcome, err := c.coordinator.ExecuteRequest(ctx, guid)
		if err != nil {
			return err
		}

		shares = outcome.Amount
		err = c.deposits.Update(guid, func(d *PendingDeposit) error {
			d.SharesMinted = shares
			return nil
		})
		if err != nil {
			return err
		}
	}

	if err := c.deliverShares(ctx, d, shares); err != nil {
		return err
	}

	if err := c.deposits.Delete(guid); err != nil {
		return err
	}

	c.metrics.DepositCompleted()
	log.Info().
		Str("guid", guid.Hex()).
		Str("receiver", d.SendParams.To.Hex()).
		Msgf("Completed composed deposit with %s shares", shares)
	return nil
}

// RefundDeposit returns the deposited asset and the unspent fee to the
// depositor. The entry is claimed before any transfer so a deposit refunds
// at most once.
func (c *Composer) RefundDeposit(ctx context.Context, guid common.Hash) error {
	d, err := c.deposits.Deposit(guid)
	if err != nil {
		return err
	}
	if d.SharesMinted != nil {
		return fmt.Errorf("deposit %s already executed, complete it instead", guid.Hex())
	}

	if err := c.deposits.Delete(guid); err != nil {
		return err
	}

	c.refund(ctx, d.Depositor, d.Amount, d.AccountingFee)
	log.Info().
		Str("guid", guid.Hex()).
		Str("depositor", d.Depositor.Hex()).
		Msg("Refunded composed deposit")
	return nil
}

// PendingDeposits lists unresolved deposits for the staleness sweep.
// Deposits with minted shares are excluded, they are completion retries,
// not refund candidates.
func (c *Composer) PendingDeposits() []*PendingDeposit {
	pending := make([]*PendingDeposit, 0)
	for _, d := range c.deposits.Pending() {
		if d.SharesMinted == nil {
			pending = append(pending, d)
		}
	}

	return pending
}

func (c *Composer) localDeposit(
	ctx context.Context,
	depositor common.Address,
	p *ComposePayload,
	amount *big.Int,
	msgValue *big.Int,
) error {
	if msgValue != nil && msgValue.Sign() != 0 {
		c.refund(ctx, depositor, amount, msgValue)
		return ErrNoMsgValueExpected
	}

	if err := c.vault.Deposit(ctx, amount, p.Receiver); err != nil {
		c.refund(ctx, depositor, amount, nil)
		return err
	}

	c.metrics.DepositCompleted()
	log.Info().
		Str("receiver", p.Receiver.Hex()).
		Msgf("Completed local composed deposit of %s", amount)
	return nil
}

func (c *Composer) deliverShares(ctx context.Context, d *PendingDeposit, shares *big.Int) error {
	if d.SendParams.DstEid == c.localEid {
		return c.vault.TransferShares(ctx, d.SendParams.To, shares)
	}

	dstChainID, ok := c.topology.ChainID(d.SendParams.DstEid)
	if !ok {
		return fmt.Errorf("no chain for endpoint %d", d.SendParams.DstEid)
	}

	p := d.SendParams
	p.Amount = shares
	fee, err := c.bridge.QuoteSend(p)
	if err != nil {
		return err
	}

	_, err = c.bridge.Send(ctx, dstChainID, p, fee)
	return err
}

func (c *Composer) refund(ctx context.Context, depositor common.Address, amount *big.Int, msgValue *big.Int) {
	c.metrics.DepositRefunded()
	if err := c.mover.TransferAsset(ctx, c.vault.Asset(), depositor, amount); err != nil {
		log.Error().Err(err).Str("depositor", depositor.Hex()).Msg("Asset refund failed")
	}
	if msgValue != nil && msgValue.Sign() > 0 {
		if err := c.mover.RefundNative(ctx, depositor, msgValue); err != nil {
			log.Error().Err(err).Str("depositor", depositor.Hex()).Msg("Fee refund failed")
		}
	}
}
