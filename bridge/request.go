package bridge

import (
	"encoding/json"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sygmaprotocol/sygma-core/store"
)

// RequestInfo is one in-flight hub-side action. Records are never deleted,
// a finalized record is kept for idempotency checks and audit.
type RequestInfo struct {
	GUID        common.Hash
	Initiator   common.Address
	ActionType  ActionType
	EncodedCall []byte
	// TotalAssetsSnapshot is the hub's locally known total assets at
	// initiation time, in underlying asset units. The aggregated spoke value
	// is added to it on fulfillment.
	TotalAssetsSnapshot *big.Int
	MinAmountOut        *big.Int
	Fulfilled           bool
	Finalized           bool
	CreatedAt           time.Time
}

// RequestOutcome is published on finalization and consumed by the outcome
// cache and the replica gossip.
type RequestOutcome struct {
	GUID       common.Hash `json:"guid"`
	ActionType ActionType  `json:"actionType"`
	// Amount is the realized action output: shares for deposit style actions,
	// assets for withdraw style actions.
	Amount *big.Int `json:"amount"`
}

var ledgerPrefix = []byte("request:")

// RequestStore is the request ledger. The in-memory map is the source of
// truth for the running process and every write goes through to the
// underlying key-value store so a restarted coordinator keeps rejecting
// double finalization.
type RequestStore struct {
	mu       sync.Mutex
	requests map[common.Hash]*RequestInfo
	db       store.KeyValueReaderWriter
}

func NewRequestStore(db store.KeyValueReaderWriter) *RequestStore {
	return &RequestStore{
		requests: make(map[common.Hash]*RequestInfo),
		db:       db,
	}
}

// Request returns the stored request or ErrRequestNotFound
func (s *RequestStore) Request(guid common.Hash) (*RequestInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.request(guid)
}

// Save persists the request, overwriting any previous version
func (s *RequestStore) Save(r *RequestInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.save(r)
}

// Update applies fn to the stored request under the store lock and persists
// the result. fn returning an error leaves the record untouched.
func (s *RequestStore) Update(guid common.Hash, fn func(*RequestInfo) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, err := s.request(guid)
	if err != nil {
		return err
	}

	updated := *r
	if err := fn(&updated); err != nil {
		return err
	}

	return s.save(&updated)
}

// Pending returns every request created but not yet finalized, for the
// staleness sweep.
func (s *RequestStore) Pending() []*RequestInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending := make([]*RequestInfo, 0)
	for _, r := range s.requests {
		if !r.Finalized {
			copied := *r
			pending = append(pending, &copied)
		}
	}

	return pending
}

func (s *RequestStore) request(guid common.Hash) (*RequestInfo, error) {
	r, ok := s.requests[guid]
	if ok {
		copied := *r
		return &copied, nil
	}

	// warm restart path
	data, err := s.db.GetByKey(append(ledgerPrefix, guid.Bytes()...))
	if err != nil {
		return nil, ErrRequestNotFound
	}

	stored := &RequestInfo{}
	if err := json.Unmarshal(data, stored); err != nil {
		return nil, err
	}

	s.requests[guid] = stored
	copied := *stored
	return &copied, nil
}

func (s *RequestStore) save(r *RequestInfo) error {
	data, err := json.Marshal(r)
	if err != nil {
		return err
	}

	err = s.db.SetByKey(append(ledgerPrefix, r.GUID.Bytes()...), data)
	if err != nil {
		return err
	}

	copied := *r
	s.requests[r.GUID] = &copied
	return nil
}
