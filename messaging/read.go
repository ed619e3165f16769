package messaging

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

const (
	// ReadConfirmations is the confirmation depth every spoke read waits for
	// before its response is considered final.
	ReadConfirmations = 15
)

// ValueCallData is the calldata of the spoke vault accessor every read
// sub-request targets.
var ValueCallData = crypto.Keccak256([]byte("totalValueUSD()"))[:4]

// ReadRequest is one spoke-targeted sub-request of a fan-out value read.
type ReadRequest struct {
	Eid           uint32
	Target        common.Address
	CallData      []byte
	Timestamp     uint64
	Confirmations uint16
}

// ReadCommand is the full fan-out command sent through the read channel.
// Responses come back per sub-request and are reduced off-chain before
// delivery.
type ReadCommand struct {
	Requests []ReadRequest
}

var (
	uint256Type, _ = abi.NewType("uint256", "", nil)

	valueArgs = abi.Arguments{
		{Name: "value", Type: uint256Type},
	}
)

// ReduceResponses folds the per-spoke read responses into a single encoded
// aggregate. Summation is commutative, response order does not matter.
func ReduceResponses(responses [][]byte) ([]byte, error) {
	total := big.NewInt(0)
	for _, response := range responses {
		values, err := valueArgs.Unpack(response)
		if err != nil {
			return nil, err
		}

		total.Add(total, abi.ConvertType(values[0], new(big.Int)).(*big.Int))
	}

	return valueArgs.Pack(total)
}

// DecodeAggregate decodes a reduced read response into its USD value
func DecodeAggregate(data []byte) (*big.Int, error) {
	values, err := valueArgs.Unpack(data)
	if err != nil {
		return nil, err
	}

	return abi.ConvertType(values[0], new(big.Int)).(*big.Int), nil
}

// EncodeValue encodes a single spoke response. Used by tests and the local
// read simulation.
func EncodeValue(value *big.Int) ([]byte, error) {
	return valueArgs.Pack(value)
}
