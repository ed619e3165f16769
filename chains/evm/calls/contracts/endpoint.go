// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package contracts

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/sygmaprotocol/sygma-core/chains/evm/client"
	"github.com/sygmaprotocol/sygma-core/chains/evm/contracts"
	"github.com/sygmaprotocol/sygma-core/chains/evm/transactor"

	"github.com/omnivault/vault-accounting/chains/evm/calls/consts"
	"github.com/omnivault/vault-accounting/chains/evm/calls/events"
	"github.com/omnivault/vault-accounting/messaging"
)

var (
	readRequestsType, _ = abi.NewType("tuple[]", "", []abi.ArgumentMarshaling{
		{Name: "eid", Type: "uint32"},
		{Name: "target", Type: "address"},
		{Name: "callData", Type: "bytes"},
		{Name: "timestamp", Type: "uint64"},
		{Name: "confirmations", Type: "uint16"},
	})

	readCommandArgs = abi.Arguments{
		{Name: "requests", Type: readRequestsType},
	}
)

// EndpointContract binds the messaging endpoint. Reads and sends are
// payable, the guid identifying the resulting channel message is pulled
// out of the transaction receipt.
type EndpointContract struct {
	contracts.Contract
	address common.Address
	client  client.Client
}

func NewEndpointContract(
	client client.Client,
	address common.Address,
	t transactor.Transactor,
) *EndpointContract {
	return &EndpointContract{
		Contract: contracts.NewContract(address, consts.EndpointABI, nil, client, t),
		address:  address,
		client:   client,
	}
}

func (c *EndpointContract) Address() common.Address {
	return c.address
}

func (c *EndpointContract) QuoteRead(cmd *messaging.ReadCommand) (*big.Int, error) {
	data, err := encodeReadCommand(cmd)
	if err != nil {
		return nil, err
	}

	res, err := c.CallContract("quoteRead", data)
	if err != nil {
		return nil, err
	}

	return abi.ConvertType(res[0], new(big.Int)).(*big.Int), nil
}

func (c *EndpointContract) SendRead(
	ctx context.Context,
	cmd *messaging.ReadCommand,
	fee *big.Int,
) (common.Hash, error) {
	data, err := encodeReadCommand(cmd)
	if err != nil {
		return common.Hash{}, err
	}

	hash, err := c.ExecuteTransaction("sendRead", transactor.TransactOptions{Value: fee}, data)
	if err != nil {
		return common.Hash{}, err
	}

	return c.guidFromReceipt(*hash, events.ReadSentSig)
}

func (c *EndpointContract) QuoteSend(p messaging.SendParams) (*big.Int, error) {
	res, err := c.CallContract("quoteSend", p.OFT, p.DstEid, p.To, p.Amount, p.MinAmount)
	if err != nil {
		return nil, err
	}

	return abi.ConvertType(res[0], new(big.Int)).(*big.Int), nil
}

func (c *EndpointContract) Send(
	ctx context.Context,
	p messaging.SendParams,
	fee *big.Int,
) (common.Hash, error) {
	hash, err := c.ExecuteTransaction(
		"send",
		transactor.TransactOptions{Value: fee},
		p.OFT, p.DstEid, p.To, p.Amount, p.MinAmount,
	)
	if err != nil {
		return common.Hash{}, err
	}

	return c.guidFromReceipt(*hash, events.TokenSentSig)
}

func (c *EndpointContract) guidFromReceipt(hash common.Hash, sig events.EventSig) (common.Hash, error) {
	receipt, err := c.client.WaitAndReturnTxReceipt(hash)
	if err != nil {
		return common.Hash{}, err
	}

	topic := sig.GetTopic()
	for _, l := range receipt.Logs {
		if l.Address != c.address || len(l.Topics) < 2 || l.Topics[0] != topic {
			continue
		}

		return l.Topics[1], nil
	}

	return common.Hash{}, fmt.Errorf("no %s event in receipt of tx %s", sig, hash)
}

func encodeReadCommand(cmd *messaging.ReadCommand) ([]byte, error) {
	return readCommandArgs.Pack(cmd.Requests)
}
