package message

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sygmaprotocol/sygma-core/relayer/message"

	"github.com/omnivault/vault-accounting/bridge"
)

const (
	VaultActionMessage message.MessageType = "VaultActionMessage"

	TIMEOUT = 10 * time.Minute
)

type VaultActionData struct {
	ErrChn  chan error       `json:"-"`
	GuidChn chan common.Hash `json:"-"`

	Initiator    common.Address
	ActionType   bridge.ActionType
	EncodedCall  []byte
	MinAmountOut *big.Int
	Fee          *big.Int
	Source       uint64
}

func NewVaultActionMessage(source, destination uint64, actionData *VaultActionData) *message.Message {
	return &message.Message{
		Source:      source,
		Destination: destination,
		Data:        actionData,
		Type:        VaultActionMessage,
		Timestamp:   time.Now(),
	}
}
