package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jellydator/ttlcache/v3"
	"github.com/libp2p/go-libp2p/core/peer"
	"github.com/rs/zerolog/log"

	"github.com/omnivault/vault-accounting/bridge"
	"github.com/omnivault/vault-accounting/comm"
)

const (
	OUTCOME_TTL = time.Minute * 10
)

// OutcomeCache keeps finalized request outcomes available for API consumers.
// Locally finalized outcomes are gossiped to replica peers so every replica
// can answer status queries regardless of which one executed the request.
type OutcomeCache struct {
	outcomeCache *ttlcache.Cache[string, *bridge.RequestOutcome]

	comm  comm.Communication
	peers peer.IDSlice
	subID comm.SubscriptionID

	subLock     sync.Mutex
	subscribers map[string][]chan *bridge.RequestOutcome
}

func NewOutcomeCache(
	ctx context.Context,
	c comm.Communication,
	peers peer.IDSlice,
	outcomeChn chan *bridge.RequestOutcome,
) *OutcomeCache {
	cache := ttlcache.New(
		ttlcache.WithTTL[string, *bridge.RequestOutcome](OUTCOME_TTL),
	)

	msgChn := make(chan *comm.WrappedMessage)
	subID := c.Subscribe(comm.OutcomeSessionID, comm.OutcomeMsg, msgChn)

	oc := &OutcomeCache{
		outcomeCache: cache,
		comm:         c,
		peers:        peers,
		subID:        subID,
		subscribers:  make(map[string][]chan *bridge.RequestOutcome),
	}

	go cache.Start()
	go oc.watch(ctx, outcomeChn, msgChn)
	return oc
}

// Outcome returns the cached outcome of a finalized request
func (c *OutcomeCache) Outcome(guid common.Hash) (*bridge.RequestOutcome, error) {
	outcome := c.outcomeCache.Get(guid.Hex())
	if outcome == nil {
		return nil, fmt.Errorf("no outcome found for request %s", guid.Hex())
	}

	return outcome.Value(), nil
}

// Subscribe delivers the outcome for a request to the provided channel as
// soon as it is known. An already cached outcome is delivered immediately.
func (c *OutcomeCache) Subscribe(ctx context.Context, guid common.Hash, outcomeChn chan *bridge.RequestOutcome) {
	cached := c.outcomeCache.Get(guid.Hex())
	if cached != nil {
		outcomeChn <- cached.Value()
		return
	}

	c.subLock.Lock()
	defer c.subLock.Unlock()
	c.subscribers[guid.Hex()] = append(c.subscribers[guid.Hex()], outcomeChn)
}

func (c *OutcomeCache) watch(
	ctx context.Context,
	outcomeChn chan *bridge.RequestOutcome,
	msgChn chan *comm.WrappedMessage,
) {
	for {
		select {
		case outcome := <-outcomeChn:
			{
				c.set(outcome)

				payload, err := json.Marshal(outcome)
				if err != nil {
					log.Warn().Msgf("Failed to marshal outcome: %s", err)
					continue
				}

				err = c.comm.Broadcast(c.peers, payload, comm.OutcomeMsg, comm.OutcomeSessionID)
				if err != nil {
					log.Warn().Msgf("Failed to broadcast outcome: %s", err)
				}
			}
		case msg := <-msgChn:
			{
				outcome := &bridge.RequestOutcome{}
				err := json.Unmarshal(msg.Payload, outcome)
				if err != nil {
					log.Warn().Msgf("Failed to unmarshal outcome message: %s", err)
					continue
				}

				log.Debug().Msgf("Received outcome for request: %s", outcome.GUID.Hex())
				c.set(outcome)
			}
		case <-ctx.Done():
			{
				c.outcomeCache.Stop()
				c.comm.UnSubscribe(c.subID)
				return
			}
		}
	}
}

func (c *OutcomeCache) set(outcome *bridge.RequestOutcome) {
	c.outcomeCache.Set(outcome.GUID.Hex(), outcome, ttlcache.DefaultTTL)

	c.subLock.Lock()
	defer c.subLock.Unlock()
	for _, subscriber := range c.subscribers[outcome.GUID.Hex()] {
		select {
		case subscriber <- outcome:
		default:
		}
	}
	delete(c.subscribers, outcome.GUID.Hex())
}
