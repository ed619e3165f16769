// Package price defines the oracle boundary used by the bridge coordinator.
// Every price is an 8 decimal fixed point USD value, the convention shared
// with the cross-chain value reads.
package price

import (
	"context"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

type Price struct {
	// Value is the USD price in 8 decimal fixed point
	Value     *big.Int
	UpdatedAt time.Time
}

type StalePriceError struct {
	Asset     common.Address
	UpdatedAt time.Time
}

func (e *StalePriceError) Error() string {
	return fmt.Sprintf("price for asset %s stale, last updated at %s", e.Asset.Hex(), e.UpdatedAt)
}

// AssetOracle supplies a staleness-checked USD price for an asset
type AssetOracle interface {
	Price(ctx context.Context, asset common.Address) (*Price, error)
}

// ValueFeed reports the USD value of one spoke vault's holdings
type ValueFeed interface {
	Value(ctx context.Context) (*big.Int, error)
}

// SpokeFeedRegistry maps spoke endpoint ids to their configured value feeds.
// Oracle-based accounting can only be enabled when every linked spoke has an
// entry here.
type SpokeFeedRegistry struct {
	mu    sync.RWMutex
	feeds map[uint32]ValueFeed
}

func NewSpokeFeedRegistry() *SpokeFeedRegistry {
	return &SpokeFeedRegistry{
		feeds: make(map[uint32]ValueFeed),
	}
}

func (r *SpokeFeedRegistry) SetFeed(eid uint32, feed ValueFeed) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.feeds[eid] = feed
}

func (r *SpokeFeedRegistry) HasFeed(eid uint32) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.feeds[eid]
	return ok
}

func (r *SpokeFeedRegistry) Feed(eid uint32) (ValueFeed, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	feed, ok := r.feeds[eid]
	if !ok {
		return nil, fmt.Errorf("no value feed for spoke %d", eid)
	}

	return feed, nil
}
