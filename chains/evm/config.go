// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package evm

import (
	"math/big"
	"time"

	"github.com/creasty/defaults"
	"github.com/ethereum/go-ethereum/common"
	"github.com/mitchellh/mapstructure"

	"github.com/omnivault/vault-accounting/config"
	"github.com/omnivault/vault-accounting/config/chain"
)

type EVMConfig struct {
	GeneralChainConfig chain.GeneralChainConfig

	Vault             common.Address
	Composer          common.Address
	Endpoint          common.Address
	AccountingManager common.Address
	// AssetFeeds maps asset addresses to their on-chain usd price feeds.
	// Assets without a feed fall back to the market data oracle.
	AssetFeeds map[common.Address]common.Address
	// SpokeFeeds maps spoke endpoint ids to local read-only value feeds used
	// when oracle based accounting is enabled.
	SpokeFeeds map[uint32]common.Address

	Tokens map[string]config.TokenConfig

	BlockInterval      *big.Int
	BlockRetryInterval time.Duration
}

type RawEVMConfig struct {
	chain.GeneralChainConfig `mapstructure:",squash"`
	Vault                    string                    `mapstructure:"vault"`
	Composer                 string                    `mapstructure:"composer"`
	LzEndpoint               string                    `mapstructure:"lzEndpoint"`
	AccountingManager        string                    `mapstructure:"accountingManager"`
	AssetFeeds               map[string]string         `mapstructure:"assetFeeds"`
	SpokeFeeds               map[uint32]string         `mapstructure:"spokeFeeds"`
	Tokens                   map[string]RawTokenConfig `mapstructure:"tokens"`

	BlockInterval      int64  `mapstructure:"blockInterval" default:"5"`
	BlockRetryInterval uint64 `mapstructure:"blockRetryInterval" default:"5"`
}

type RawTokenConfig struct {
	Address  string `mapstructure:"address"`
	OFT      string `mapstructure:"oft"`
	Decimals uint8  `mapstructure:"decimals" default:"18"`
}

func (c *RawEVMConfig) Validate() error {
	return c.GeneralChainConfig.Validate()
}

// NewEVMConfig decodes and validates an instance of an EVMConfig from
// raw chain config
func NewEVMConfig(chainConfig map[string]interface{}) (*EVMConfig, error) {
	var c RawEVMConfig
	err := mapstructure.Decode(chainConfig, &c)
	if err != nil {
		return nil, err
	}

	err = defaults.Set(&c)
	if err != nil {
		return nil, err
	}

	err = c.Validate()
	if err != nil {
		return nil, err
	}

	tokens := make(map[string]config.TokenConfig)
	for symbol, t := range c.Tokens {
		tokens[symbol] = config.TokenConfig{
			Address:  common.HexToAddress(t.Address),
			OFT:      common.HexToAddress(t.OFT),
			Decimals: t.Decimals,
		}
	}

	assetFeeds := make(map[common.Address]common.Address)
	for asset, feed := range c.AssetFeeds {
		assetFeeds[common.HexToAddress(asset)] = common.HexToAddress(feed)
	}

	spokeFeeds := make(map[uint32]common.Address)
	for eid, feed := range c.SpokeFeeds {
		spokeFeeds[eid] = common.HexToAddress(feed)
	}

	c.ParseFlags()
	config := &EVMConfig{
		GeneralChainConfig: c.GeneralChainConfig,

		Vault:             common.HexToAddress(c.Vault),
		Composer:          common.HexToAddress(c.Composer),
		Endpoint:          common.HexToAddress(c.LzEndpoint),
		AccountingManager: common.HexToAddress(c.AccountingManager),
		AssetFeeds:        assetFeeds,
		SpokeFeeds:        spokeFeeds,
		Tokens:            tokens,

		// nolint:gosec
		BlockRetryInterval: time.Duration(c.BlockRetryInterval) * time.Second,
		BlockInterval:      big.NewInt(c.BlockInterval),
	}

	return config, nil
}
