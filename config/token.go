package config

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// TokenConfig describes a depositable asset on one chain. OFT is the token
// transport contract bridging the asset between chains and is the address
// checked against the trusted OFT registry.
type TokenConfig struct {
	Address  common.Address
	OFT      common.Address
	Decimals uint8
}

type TokenStore struct {
	Tokens map[uint64]map[string]TokenConfig
}

func NewTokenStore() *TokenStore {
	return &TokenStore{
		Tokens: make(map[uint64]map[string]TokenConfig),
	}
}

func (s *TokenStore) ConfigByAddress(chainID uint64, address common.Address) (string, TokenConfig, error) {
	tokens, ok := s.Tokens[chainID]
	if !ok {
		return "", TokenConfig{}, fmt.Errorf("no tokens for chain %d", chainID)
	}

	for symbol, c := range tokens {
		if c.Address == address {
			return symbol, c, nil
		}
	}

	return "", TokenConfig{}, fmt.Errorf("no symbol for address %s", address.Hex())
}

func (s *TokenStore) ConfigBySymbol(chainID uint64, symbol string) (TokenConfig, error) {
	tokens, ok := s.Tokens[chainID]
	if !ok {
		return TokenConfig{}, fmt.Errorf("no tokens for chain %d", chainID)
	}

	c, ok := tokens[symbol]
	if !ok {
		return TokenConfig{}, fmt.Errorf("no config for token %s", symbol)
	}

	return c, nil
}

// Symbols maps every configured token address on a chain to its symbol
func (s *TokenStore) Symbols(chainID uint64) map[common.Address]string {
	symbols := make(map[common.Address]string)
	for symbol, c := range s.Tokens[chainID] {
		symbols[c.Address] = symbol
	}

	return symbols
}

// OFTs returns every configured token transport address for a chain
func (s *TokenStore) OFTs(chainID uint64) []common.Address {
	ofts := make([]common.Address, 0)
	for _, c := range s.Tokens[chainID] {
		if c.OFT != (common.Address{}) {
			ofts = append(ofts, c.OFT)
		}
	}

	return ofts
}
