package message

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"
	"github.com/sygmaprotocol/sygma-core/relayer/message"
	"github.com/sygmaprotocol/sygma-core/relayer/proposal"

	"github.com/omnivault/vault-accounting/bridge"
)

type RequestInitiator interface {
	InitVaultActionRequest(
		ctx context.Context,
		initiator common.Address,
		action bridge.ActionType,
		encodedCall []byte,
		minAmountOut *big.Int,
		fee *big.Int,
	) (common.Hash, error)
}

type VaultActionHandler struct {
	chainID     uint64
	coordinator RequestInitiator
}

func NewVaultActionHandler(chainID uint64, coordinator RequestInitiator) *VaultActionHandler {
	return &VaultActionHandler{
		chainID:     chainID,
		coordinator: coordinator,
	}
}

// HandleMessage initiates the vault action request the message describes
// and reports the resulting request guid back to the caller. Initiation
// errors propagate through the error channel.
func (h *VaultActionHandler) HandleMessage(m *message.Message) (*proposal.Proposal, error) {
	data := m.Data.(*VaultActionData)

	ctx, cancel := context.WithTimeout(context.Background(), TIMEOUT)
	defer cancel()

	guid, err := h.coordinator.InitVaultActionRequest(
		ctx,
		data.Initiator,
		data.ActionType,
		data.EncodedCall,
		data.MinAmountOut,
		data.Fee,
	)
	if err != nil {
		data.ErrChn <- err
		return nil, err
	}

	log.Debug().Str("guid", guid.Hex()).Msgf("Handled vault action message on chain %d", h.chainID)

	data.ErrChn <- nil
	data.GuidChn <- guid
	return nil, nil
}
