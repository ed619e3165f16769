// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package contracts

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sygmaprotocol/sygma-core/chains/evm/client"
	"github.com/sygmaprotocol/sygma-core/chains/evm/contracts"
	"github.com/sygmaprotocol/sygma-core/chains/evm/transactor"

	"github.com/omnivault/vault-accounting/chains/evm/calls/consts"
)

// ComposerContract binds the on-chain composer that escrows deposited
// assets and native fees until their deposit resolves.
type ComposerContract struct {
	contracts.Contract
	address common.Address
}

func NewComposerContract(
	client client.Client,
	address common.Address,
	t transactor.Transactor,
) *ComposerContract {
	return &ComposerContract{
		Contract: contracts.NewContract(address, consts.ComposerABI, nil, client, t),
		address:  address,
	}
}

func (c *ComposerContract) Address() common.Address {
	return c.address
}

func (c *ComposerContract) TransferAsset(
	ctx context.Context,
	asset common.Address,
	to common.Address,
	amount *big.Int,
) error {
	_, err := c.ExecuteTransaction("transferAsset", transactor.TransactOptions{}, asset, to, amount)
	return err
}

func (c *ComposerContract) RefundNative(ctx context.Context, to common.Address, amount *big.Int) error {
	_, err := c.ExecuteTransaction("refundNative", transactor.TransactOptions{}, to, amount)
	return err
}
