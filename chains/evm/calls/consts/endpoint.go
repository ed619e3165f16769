package consts

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// EndpointABI is the adapter-facing surface of the messaging endpoint.
// Read commands and send params travel pre-encoded, the contract forwards
// them to the underlying channel.
var EndpointABI, _ = abi.JSON(strings.NewReader(`
[
  {
    "inputs": [{"internalType": "bytes", "name": "cmd", "type": "bytes"}],
    "name": "quoteRead",
    "outputs": [{"internalType": "uint256", "name": "fee", "type": "uint256"}],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "inputs": [{"internalType": "bytes", "name": "cmd", "type": "bytes"}],
    "name": "sendRead",
    "outputs": [{"internalType": "bytes32", "name": "guid", "type": "bytes32"}],
    "stateMutability": "payable",
    "type": "function"
  },
  {
    "inputs": [
      {"internalType": "address", "name": "oft", "type": "address"},
      {"internalType": "uint32", "name": "dstEid", "type": "uint32"},
      {"internalType": "address", "name": "to", "type": "address"},
      {"internalType": "uint256", "name": "amount", "type": "uint256"},
      {"internalType": "uint256", "name": "minAmount", "type": "uint256"}
    ],
    "name": "quoteSend",
    "outputs": [{"internalType": "uint256", "name": "fee", "type": "uint256"}],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "inputs": [
      {"internalType": "address", "name": "oft", "type": "address"},
      {"internalType": "uint32", "name": "dstEid", "type": "uint32"},
      {"internalType": "address", "name": "to", "type": "address"},
      {"internalType": "uint256", "name": "amount", "type": "uint256"},
      {"internalType": "uint256", "name": "minAmount", "type": "uint256"}
    ],
    "name": "send",
    "outputs": [{"internalType": "bytes32", "name": "guid", "type": "bytes32"}],
    "stateMutability": "payable",
    "type": "function"
  },
  {
    "anonymous": false,
    "inputs": [{"indexed": true, "internalType": "bytes32", "name": "guid", "type": "bytes32"}],
    "name": "ReadSent",
    "type": "event"
  },
  {
    "anonymous": false,
    "inputs": [{"indexed": true, "internalType": "bytes32", "name": "guid", "type": "bytes32"}],
    "name": "TokenSent",
    "type": "event"
  },
  {
    "anonymous": false,
    "inputs": [
      {"indexed": false, "internalType": "bytes32", "name": "guid", "type": "bytes32"},
      {"indexed": false, "internalType": "bytes", "name": "aggregate", "type": "bytes"},
      {"indexed": false, "internalType": "bool", "name": "success", "type": "bool"}
    ],
    "name": "ReadDelivered",
    "type": "event"
  }
]
`))
