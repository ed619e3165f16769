package bridge

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// ActionType identifies the vault operation a cross-chain request finalizes
// into.
type ActionType uint8

const (
	DepositAction ActionType = iota
	MintAction
	WithdrawAction
	RedeemAction
	MultiAssetsDepositAction
	RequestWithdrawAction
	RequestRedeemAction
)

// String implements fmt.Stringer
func (a ActionType) String() string {
	switch a {
	case DepositAction:
		return "Deposit"
	case MintAction:
		return "Mint"
	case WithdrawAction:
		return "Withdraw"
	case RedeemAction:
		return "Redeem"
	case MultiAssetsDepositAction:
		return "MultiAssetsDeposit"
	case RequestWithdrawAction:
		return "RequestWithdraw"
	case RequestRedeemAction:
		return "RequestRedeem"
	default:
		return "Unknown"
	}
}

var (
	uint256Type, _      = abi.NewType("uint256", "", nil)
	addressType, _      = abi.NewType("address", "", nil)
	uint256ArrayType, _ = abi.NewType("uint256[]", "", nil)
	addressArrayType, _ = abi.NewType("address[]", "", nil)

	amountReceiverArgs = abi.Arguments{
		{Name: "amount", Type: uint256Type},
		{Name: "receiver", Type: addressType},
	}
	amountReceiverOwnerArgs = abi.Arguments{
		{Name: "amount", Type: uint256Type},
		{Name: "receiver", Type: addressType},
		{Name: "owner", Type: addressType},
	}
	multiAssetsArgs = abi.Arguments{
		{Name: "tokens", Type: addressArrayType},
		{Name: "amounts", Type: uint256ArrayType},
		{Name: "receiver", Type: addressType},
	}
)

// AmountCall carries the parameters of deposit and mint style actions.
// Amount is assets for deposits and shares for mints.
type AmountCall struct {
	Amount   *big.Int
	Receiver common.Address
}

func (c AmountCall) Encode() ([]byte, error) {
	return amountReceiverArgs.Pack(c.Amount, c.Receiver)
}

func DecodeAmountCall(data []byte) (*AmountCall, error) {
	values, err := amountReceiverArgs.Unpack(data)
	if err != nil {
		return nil, err
	}

	return &AmountCall{
		Amount:   abi.ConvertType(values[0], new(big.Int)).(*big.Int),
		Receiver: *abi.ConvertType(values[1], new(common.Address)).(*common.Address),
	}, nil
}

// OwnedCall carries the parameters of withdraw and redeem style actions.
// Amount is assets for withdraws and shares for redeems.
type OwnedCall struct {
	Amount   *big.Int
	Receiver common.Address
	Owner    common.Address
}

func (c OwnedCall) Encode() ([]byte, error) {
	return amountReceiverOwnerArgs.Pack(c.Amount, c.Receiver, c.Owner)
}

func DecodeOwnedCall(data []byte) (*OwnedCall, error) {
	values, err := amountReceiverOwnerArgs.Unpack(data)
	if err != nil {
		return nil, err
	}

	return &OwnedCall{
		Amount:   abi.ConvertType(values[0], new(big.Int)).(*big.Int),
		Receiver: *abi.ConvertType(values[1], new(common.Address)).(*common.Address),
		Owner:    *abi.ConvertType(values[2], new(common.Address)).(*common.Address),
	}, nil
}

// MultiAssetsCall carries the parameters of a multi asset deposit.
type MultiAssetsCall struct {
	Tokens   []common.Address
	Amounts  []*big.Int
	Receiver common.Address
}

func (c MultiAssetsCall) Encode() ([]byte, error) {
	if len(c.Tokens) != len(c.Amounts) {
		return nil, fmt.Errorf("token count %d not matching amount count %d", len(c.Tokens), len(c.Amounts))
	}

	return multiAssetsArgs.Pack(c.Tokens, c.Amounts, c.Receiver)
}

func DecodeMultiAssetsCall(data []byte) (*MultiAssetsCall, error) {
	values, err := multiAssetsArgs.Unpack(data)
	if err != nil {
		return nil, err
	}

	return &MultiAssetsCall{
		Tokens:   *abi.ConvertType(values[0], new([]common.Address)).(*[]common.Address),
		Amounts:  *abi.ConvertType(values[1], new([]*big.Int)).(*[]*big.Int),
		Receiver: *abi.ConvertType(values[2], new(common.Address)).(*common.Address),
	}, nil
}
