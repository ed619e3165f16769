// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package listener

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"
)

type ComposeHandler interface {
	HandleCompose(
		ctx context.Context,
		srcOFT common.Address,
		depositor common.Address,
		srcChainID uint64,
		payload []byte,
		amount *big.Int,
		msgValue *big.Int,
	) error
}

// ComposeEventHandler routes inbound composed OFT transfers to the deposit
// composer.
type ComposeEventHandler struct {
	log             zerolog.Logger
	eventListener   EventListener
	composer        ComposeHandler
	composerAddress common.Address
}

func NewComposeEventHandler(
	logC zerolog.Context,
	eventListener EventListener,
	composer ComposeHandler,
	composerAddress common.Address,
) *ComposeEventHandler {
	return &ComposeEventHandler{
		log:             logC.Logger(),
		eventListener:   eventListener,
		composer:        composer,
		composerAddress: composerAddress,
	}
}

func (eh *ComposeEventHandler) HandleEvents(
	startBlock *big.Int,
	endBlock *big.Int,
) error {
	composes, err := eh.eventListener.FetchComposeEvents(
		context.Background(), eh.composerAddress, startBlock, endBlock,
	)
	if err != nil {
		return fmt.Errorf("unable to fetch compose events because of: %+v", err)
	}

	for _, c := range composes {
		eh.log.Info().Str("depositor", c.Depositor.Hex()).Msgf(
			"Resolved composed transfer in block range: %s-%s", startBlock.String(), endBlock.String(),
		)

		err := eh.composer.HandleCompose(
			context.Background(), c.SrcOFT, c.Depositor, c.SrcChainId, c.Payload, c.Amount, c.MsgValue,
		)
		if err != nil {
			eh.log.Err(err).Str("depositor", c.Depositor.Hex()).Msgf("Failed handling composed transfer")
		}
	}

	return nil
}
