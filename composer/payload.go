package composer

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

var (
	uint256Type, _ = abi.NewType("uint256", "", nil)
	uint32Type, _  = abi.NewType("uint32", "", nil)
	addressType, _ = abi.NewType("address", "", nil)

	composeArgs = abi.Arguments{
		{Name: "vault", Type: addressType},
		{Name: "receiver", Type: addressType},
		{Name: "dstEid", Type: uint32Type},
		{Name: "shareOFT", Type: addressType},
		{Name: "minAmountOut", Type: uint256Type},
		{Name: "minReadFee", Type: uint256Type},
	}
)

// ComposePayload is the instruction set a depositor attaches to an OFT
// transfer. It names the target vault, where the resulting shares go and
// the bounds the deposit finalizes under.
type ComposePayload struct {
	Vault        common.Address
	Receiver     common.Address
	DstEid       uint32
	ShareOFT     common.Address
	MinAmountOut *big.Int
	MinReadFee   *big.Int
}

func (p ComposePayload) Encode() ([]byte, error) {
	return composeArgs.Pack(p.Vault, p.Receiver, p.DstEid, p.ShareOFT, p.MinAmountOut, p.MinReadFee)
}

func DecodePayload(data []byte) (*ComposePayload, error) {
	values, err := composeArgs.Unpack(data)
	if err != nil {
		return nil, err
	}

	return &ComposePayload{
		Vault:        *abi.ConvertType(values[0], new(common.Address)).(*common.Address),
		Receiver:     *abi.ConvertType(values[1], new(common.Address)).(*common.Address),
		DstEid:       *abi.ConvertType(values[2], new(uint32)).(*uint32),
		ShareOFT:     *abi.ConvertType(values[3], new(common.Address)).(*common.Address),
		MinAmountOut: abi.ConvertType(values[4], new(big.Int)).(*big.Int),
		MinReadFee:   abi.ConvertType(values[5], new(big.Int)).(*big.Int),
	}, nil
}
