// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package events

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	ethTypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog/log"

	"github.com/omnivault/vault-accounting/chains/evm/calls/consts"
)

type ChainClient interface {
	FetchEventLogs(ctx context.Context, contractAddress common.Address, event string, startBlock *big.Int, endBlock *big.Int) ([]ethTypes.Log, error)
	LatestBlock() (*big.Int, error)
}

type Listener struct {
	client ChainClient
}

func NewListener(client ChainClient) *Listener {
	return &Listener{
		client: client,
	}
}

func (l *Listener) FetchDeliveryEvents(ctx context.Context, contractAddress common.Address, startBlock *big.Int, endBlock *big.Int) ([]*ReadDelivered, error) {
	logs, err := l.client.FetchEventLogs(ctx, contractAddress, string(ReadDeliveredSig), startBlock, endBlock)
	if err != nil {
		return nil, err
	}
	deliveries := make([]*ReadDelivered, 0)

	for _, dl := range logs {
		d, err := l.UnpackDelivery(dl.Data)
		if err != nil {
			log.Err(err).Msgf("failed unpacking read delivery event log")
			continue
		}

		deliveries = append(deliveries, d)
	}

	return deliveries, nil
}

func (l *Listener) UnpackDelivery(data []byte) (*ReadDelivered, error) {
	var d ReadDelivered

	err := consts.EndpointABI.UnpackIntoInterface(&d, "ReadDelivered", data)
	if err != nil {
		return &ReadDelivered{}, err
	}

	return &d, nil
}

func (l *Listener) FetchComposeEvents(ctx context.Context, contractAddress common.Address, startBlock *big.Int, endBlock *big.Int) ([]*ComposeDelivered, error) {
	logs, err := l.client.FetchEventLogs(ctx, contractAddress, string(ComposeDeliveredSig), startBlock, endBlock)
	if err != nil {
		return nil, err
	}
	composes := make([]*ComposeDelivered, 0)

	for _, cl := range logs {
		c, err := l.UnpackCompose(cl.Data)
		if err != nil {
			log.Err(err).Msgf("failed unpacking compose event log")
			continue
		}

		composes = append(composes, c)
	}

	return composes, nil
}

func (l *Listener) UnpackCompose(data []byte) (*ComposeDelivered, error) {
	var c ComposeDelivered

	err := consts.ComposerABI.UnpackIntoInterface(&c, "ComposeDelivered", data)
	if err != nil {
		return &ComposeDelivered{}, err
	}

	return &c, nil
}
