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
)

// VaultContract binds the hub vault. Static token metadata is resolved once
// at construction, state reads go to the chain on every call.
type VaultContract struct {
	contracts.Contract
	address common.Address

	asset    common.Address
	decimals uint8
}

func NewVaultContract(
	client client.Client,
	address common.Address,
	t transactor.Transactor,
) (*VaultContract, error) {
	c := &VaultContract{
		Contract: contracts.NewContract(address, consts.VaultABI, nil, client, t),
		address:  address,
	}

	res, err := c.CallContract("asset")
	if err != nil {
		return nil, fmt.Errorf("fetching vault asset: %w", err)
	}
	c.asset = *abi.ConvertType(res[0], new(common.Address)).(*common.Address)

	res, err = c.CallContract("decimals")
	if err != nil {
		return nil, fmt.Errorf("fetching vault decimals: %w", err)
	}
	c.decimals = *abi.ConvertType(res[0], new(uint8)).(*uint8)

	return c, nil
}

func (c *VaultContract) Address() common.Address {
	return c.address
}

func (c *VaultContract) Asset() common.Address {
	return c.asset
}

func (c *VaultContract) AssetDecimals() uint8 {
	return c.decimals
}

func (c *VaultContract) TotalAssets(ctx context.Context) (*big.Int, error) {
	res, err := c.CallContract("totalAssets")
	if err != nil {
		return nil, err
	}

	return abi.ConvertType(res[0], new(big.Int)).(*big.Int), nil
}

func (c *VaultContract) TotalSupply(ctx context.Context) (*big.Int, error) {
	res, err := c.CallContract("totalSupply")
	if err != nil {
		return nil, err
	}

	return abi.ConvertType(res[0], new(big.Int)).(*big.Int), nil
}

func (c *VaultContract) Deposit(ctx context.Context, assets *big.Int, receiver common.Address) error {
	_, err := c.ExecuteTransaction("deposit", transactor.TransactOptions{}, assets, receiver)
	return err
}

func (c *VaultContract) Mint(ctx context.Context, shares *big.Int, receiver common.Address) error {
	_, err := c.ExecuteTransaction("mint", transactor.TransactOptions{}, shares, receiver)
	return err
}

func (c *VaultContract) Withdraw(ctx context.Context, assets *big.Int, receiver common.Address, owner common.Address) error {
	_, err := c.ExecuteTransaction("withdraw", transactor.TransactOptions{}, assets, receiver, owner)
	return err
}

func (c *VaultContract) Redeem(ctx context.Context, shares *big.Int, receiver common.Address, owner common.Address) error {
	_, err := c.ExecuteTransaction("redeem", transactor.TransactOptions{}, shares, receiver, owner)
	return err
}

func (c *VaultContract) RequestWithdraw(ctx context.Context, assets *big.Int, receiver common.Address, owner common.Address) error {
	_, err := c.ExecuteTransaction("requestWithdraw", transactor.TransactOptions{}, assets, receiver, owner)
	return err
}

func (c *VaultContract) RequestRedeem(ctx context.Context, shares *big.Int, receiver common.Address, owner common.Address) error {
	_, err := c.ExecuteTransaction("requestRedeem", transactor.TransactOptions{}, shares, receiver, owner)
	return err
}

func (c *VaultContract) MultiAssetsDeposit(
	ctx context.Context,
	tokens []common.Address,
	amounts []*big.Int,
	receiver common.Address,
) error {
	_, err := c.ExecuteTransaction("multiAssetsDeposit", transactor.TransactOptions{}, tokens, amounts, receiver)
	return err
}

func (c *VaultContract) TransferShares(ctx context.Context, to common.Address, amount *big.Int) error {
	_, err := c.ExecuteTransaction("transfer", transactor.TransactOptions{}, to, amount)
	return err
}
