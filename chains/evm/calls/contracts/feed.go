// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package contracts

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/sygmaprotocol/sygma-core/chains/evm/client"
	"github.com/sygmaprotocol/sygma-core/chains/evm/contracts"

	"github.com/omnivault/vault-accounting/chains/evm/calls/consts"
	"github.com/omnivault/vault-accounting/price"
)

// FeedContract binds a usd price feed. Answers are expected with 8
// decimals.
type FeedContract struct {
	contracts.Contract
	maxAge time.Duration
}

func NewFeedContract(client client.Client, address common.Address, maxAge time.Duration) *FeedContract {
	return &FeedContract{
		Contract: contracts.NewContract(address, consts.FeedABI, nil, client, nil),
		maxAge:   maxAge,
	}
}

func (c *FeedContract) LatestPrice(asset common.Address) (*price.Price, error) {
	res, err := c.CallContract("latestAnswer")
	if err != nil {
		return nil, err
	}
	value := abi.ConvertType(res[0], new(big.Int)).(*big.Int)

	res, err = c.CallContract("latestTimestamp")
	if err != nil {
		return nil, err
	}
	timestamp := abi.ConvertType(res[0], new(big.Int)).(*big.Int)

	updatedAt := time.Unix(timestamp.Int64(), 0)
	if time.Since(updatedAt) > c.maxAge {
		return nil, &price.StalePriceError{Asset: asset, UpdatedAt: updatedAt}
	}

	return &price.Price{
		Value:     value,
		UpdatedAt: updatedAt,
	}, nil
}

// FeedOracle resolves asset prices through configured on-chain feeds with a
// market data oracle as fallback for assets without one.
type FeedOracle struct {
	feeds    map[common.Address]*FeedContract
	fallback price.AssetOracle
}

func NewFeedOracle(feeds map[common.Address]*FeedContract, fallback price.AssetOracle) *FeedOracle {
	return &FeedOracle{
		feeds:    feeds,
		fallback: fallback,
	}
}

func (o *FeedOracle) Price(ctx context.Context, asset common.Address) (*price.Price, error) {
	feed, ok := o.feeds[asset]
	if !ok {
		return o.fallback.Price(ctx, asset)
	}

	return feed.LatestPrice(asset)
}

// ValueFeedContract binds a spoke value mirror used for oracle based
// accounting.
type ValueFeedContract struct {
	contracts.Contract
}

func NewValueFeedContract(client client.Client, address common.Address) *ValueFeedContract {
	return &ValueFeedContract{
		Contract: contracts.NewContract(address, consts.FeedABI, nil, client, nil),
	}
}

func (c *ValueFeedContract) Value(ctx context.Context) (*big.Int, error) {
	res, err := c.CallContract("totalValueUSD")
	if err != nil {
		return nil, err
	}

	return abi.ConvertType(res[0], new(big.Int)).(*big.Int), nil
}
