// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package listener

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"

	"github.com/omnivault/vault-accounting/chains/evm/calls/events"
)

type EventListener interface {
	FetchDeliveryEvents(ctx context.Context, address common.Address, startBlock *big.Int, endBlock *big.Int) ([]*events.ReadDelivered, error)
	FetchComposeEvents(ctx context.Context, address common.Address, startBlock *big.Int, endBlock *big.Int) ([]*events.ComposeDelivered, error)
}

type DeliveryHandler interface {
	HandleDelivery(ctx context.Context, guid common.Hash, aggregate []byte, success bool) error
}

// DeliveryEventHandler routes delivered read aggregates from the endpoint
// to the messaging adapter that dispatched them.
type DeliveryEventHandler struct {
	log             zerolog.Logger
	eventListener   EventListener
	adapter         DeliveryHandler
	endpointAddress common.Address
}

func NewDeliveryEventHandler(
	logC zerolog.Context,
	eventListener EventListener,
	adapter DeliveryHandler,
	endpointAddress common.Address,
) *DeliveryEventHandler {
	return &DeliveryEventHandler{
		log:             logC.Logger(),
		eventListener:   eventListener,
		adapter:         adapter,
		endpointAddress: endpointAddress,
	}
}

func (eh *DeliveryEventHandler) HandleEvents(
	startBlock *big.Int,
	endBlock *big.Int,
) error {
	deliveries, err := eh.eventListener.FetchDeliveryEvents(
		context.Background(), eh.endpointAddress, startBlock, endBlock,
	)
	if err != nil {
		return fmt.Errorf("unable to fetch read delivery events because of: %+v", err)
	}

	for _, d := range deliveries {
		guid := common.Hash(d.Guid)
		eh.log.Info().Str("guid", guid.Hex()).Msgf(
			"Resolved read delivery in block range: %s-%s", startBlock.String(), endBlock.String(),
		)

		err := eh.adapter.HandleDelivery(context.Background(), guid, d.Aggregate, d.Success)
		if err != nil {
			eh.log.Err(err).Str("guid", guid.Hex()).Msgf("Failed handling read delivery")
		}
	}

	return nil
}
