package consts

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

var ComposerABI, _ = abi.JSON(strings.NewReader(`
[
  {
    "inputs": [
      {"internalType": "address", "name": "asset", "type": "address"},
      {"internalType": "address", "name": "to", "type": "address"},
      {"internalType": "uint256", "name": "amount", "type": "uint256"}
    ],
    "name": "transferAsset",
    "outputs": [],
    "stateMutability": "nonpayable",
    "type": "function"
  },
  {
    "inputs": [
      {"internalType": "address", "name": "to", "type": "address"},
      {"internalType": "uint256", "name": "amount", "type": "uint256"}
    ],
    "name": "refundNative",
    "outputs": [],
    "stateMutability": "nonpayable",
    "type": "function"
  },
  {
    "anonymous": false,
    "inputs": [
      {"indexed": false, "internalType": "address", "name": "srcOFT", "type": "address"},
      {"indexed": false, "internalType": "address", "name": "depositor", "type": "address"},
      {"indexed": false, "internalType": "uint64", "name": "srcChainId", "type": "uint64"},
      {"indexed": false, "internalType": "uint256", "name": "amount", "type": "uint256"},
      {"indexed": false, "internalType": "uint256", "name": "msgValue", "type": "uint256"},
      {"indexed": false, "internalType": "bytes", "name": "payload", "type": "bytes"}
    ],
    "name": "ComposeDelivered",
    "type": "event"
  }
]
`))
