package composer

import (
	"encoding/json"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sygmaprotocol/sygma-core/store"

	"github.com/omnivault/vault-accounting/messaging"
)

// PendingDeposit is one composed deposit waiting for its accounting request
// to finalize. An entry exists exactly between compose acceptance and
// completion or refund.
type PendingDeposit struct {
	GUID       common.Hash
	Depositor  common.Address
	SrcChainID uint64
	Asset      common.Address
	Amount     *big.Int
	SendParams messaging.SendParams
	// AccountingFee is the unspent part of the attached msg value, returned
	// on refund.
	AccountingFee *big.Int
	// SharesMinted is set once the request finalizes so a failed share
	// delivery can be retried without re-executing the request.
	SharesMinted *big.Int
	CreatedAt    time.Time
}

var depositPrefix = []byte("deposit:")

// DepositStore holds pending deposits with the same write-through layout as
// the request ledger. Deletion writes a tombstone, the key-value store has
// no delete primitive.
type DepositStore struct {
	mu       sync.Mutex
	deposits map[common.Hash]*PendingDeposit
	db       store.KeyValueReaderWriter
}

func NewDepositStore(db store.KeyValueReaderWriter) *DepositStore {
	return &DepositStore{
		deposits: make(map[common.Hash]*PendingDeposit),
		db:       db,
	}
}

// Deposit returns the pending deposit or ErrDepositNotFound
func (s *DepositStore) Deposit(guid common.Hash) (*PendingDeposit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.deposit(guid)
}

// Save persists the deposit, overwriting any previous version
func (s *DepositStore) Save(d *PendingDeposit) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.save(d)
}

// Update applies fn to the stored deposit under the store lock and persists
// the result.
func (s *DepositStore) Update(guid common.Hash, fn func(*PendingDeposit) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.deposit(guid)
	if err != nil {
		return err
	}

	updated := *d
	if err := fn(&updated); err != nil {
		return err
	}

	return s.save(&updated)
}

// Delete removes the deposit. Returns ErrDepositNotFound when the deposit
// was already resolved, making completion and refund mutually exclusive.
func (s *DepositStore) Delete(guid common.Hash) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.deposit(guid)
	if err != nil {
		return err
	}

	err = s.db.SetByKey(append(depositPrefix, guid.Bytes()...), []byte{})
	if err != nil {
		return err
	}

	delete(s.deposits, guid)
	return nil
}

// Pending returns every unresolved deposit, for the staleness sweep
func (s *DepositStore) Pending() []*PendingDeposit {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending := make([]*PendingDeposit, 0)
	for _, d := range s.deposits {
		copied := *d
		pending = append(pending, &copied)
	}

	return pending
}

func (s *DepositStore) deposit(guid common.Hash) (*PendingDeposit, error) {
	d, ok := s.deposits[guid]
	if ok {
		copied := *d
		return &copied, nil
	}

	// warm restart path, empty data is a tombstone
	data, err := s.db.GetByKey(append(depositPrefix, guid.Bytes()...))
	if err != nil || len(data) == 0 {
		return nil, ErrDepositNotFound
	}

	stored := &PendingDeposit{}
	if err := json.Unmarshal(data, stored); err != nil {
		return nil, err
	}

	s.deposits[guid] = stored
	copied := *stored
	return &copied, nil
}

func (s *DepositStore) save(d *PendingDeposit) error {
	data, err := json.Marshal(d)
	if err != nil {
		return err
	}

	err = s.db.SetByKey(append(depositPrefix, d.GUID.Bytes()...), data)
	if err != nil {
		return err
	}

	copied := *d
	s.deposits[d.GUID] = &copied
	return nil
}
