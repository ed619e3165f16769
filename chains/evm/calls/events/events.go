// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package events

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

type EventSig string

func (es EventSig) GetTopic() common.Hash {
	return crypto.Keccak256Hash([]byte(es))
}

const (
	// ReadSentSig marks an outbound fan-out read, guid is indexed
	ReadSentSig EventSig = "ReadSent(bytes32)"
	// TokenSentSig marks an outbound share transfer, guid is indexed
	TokenSentSig EventSig = "TokenSent(bytes32)"
	// ReadDeliveredSig carries the reduced aggregate of a fan-out read back
	// to the hub
	ReadDeliveredSig EventSig = "ReadDelivered(bytes32,bytes,bool)"
	// ComposeDeliveredSig marks an inbound composed OFT transfer
	ComposeDeliveredSig EventSig = "ComposeDelivered(address,address,uint64,uint256,uint256,bytes)"
)

// ReadDelivered holds the delivered aggregate of one fan-out read
type ReadDelivered struct {
	Guid      [32]byte
	Aggregate []byte
	Success   bool
}

// ComposeDelivered holds one inbound composed transfer
type ComposeDelivered struct {
	SrcOFT     common.Address
	Depositor  common.Address
	SrcChainId uint64
	Amount     *big.Int
	MsgValue   *big.Int
	Payload    []byte
}
