package handlers

import (
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gorilla/mux"
	coreMessage "github.com/sygmaprotocol/sygma-core/relayer/message"

	"github.com/omnivault/vault-accounting/bridge"
	evmMessage "github.com/omnivault/vault-accounting/chains/evm/message"
)

var actionsByName = map[string]bridge.ActionType{
	"deposit":            bridge.DepositAction,
	"mint":               bridge.MintAction,
	"withdraw":           bridge.WithdrawAction,
	"redeem":             bridge.RedeemAction,
	"multiAssetsDeposit": bridge.MultiAssetsDepositAction,
	"requestWithdraw":    bridge.RequestWithdrawAction,
	"requestRedeem":      bridge.RequestRedeemAction,
}

type RequestBody struct {
	ChainId      uint64
	Action       string  `json:"action"`
	Initiator    string  `json:"initiator"`
	EncodedCall  string  `json:"encodedCall"`
	MinAmountOut *BigInt `json:"minAmountOut"`
	Fee          *BigInt `json:"fee"`
}

type RequestResponse struct {
	RequestId string `json:"requestId"`
}

type RequestsHandler struct {
	msgChan chan []*coreMessage.Message
	chains  map[uint64]struct{}
}

func NewRequestsHandler(msgChan chan []*coreMessage.Message, chains map[uint64]struct{}) *RequestsHandler {
	return &RequestsHandler{
		msgChan: msgChan,
		chains:  chains,
	}
}

// HandleRequest sends a message to the vault action handler and returns
// status code 202 with the request id once the accounting read has been
// dispatched
func (h *RequestsHandler) HandleRequest(w http.ResponseWriter, r *http.Request) {
	b := &RequestBody{}
	d := json.NewDecoder(r.Body)
	err := d.Decode(b)
	if err != nil {
		JSONError(w, fmt.Errorf("invalid request body: %s", err), http.StatusBadRequest)
		return
	}

	vars := mux.Vars(r)
	action, err := h.validate(b, vars)
	if err != nil {
		JSONError(w, fmt.Errorf("invalid request body: %s", err), http.StatusBadRequest)
		return
	}

	errChn := make(chan error, 1)
	guidChn := make(chan common.Hash, 1)
	var minAmountOut *big.Int
	if b.MinAmountOut != nil {
		minAmountOut = b.MinAmountOut.Int
	}
	m := evmMessage.NewVaultActionMessage(b.ChainId, b.ChainId, &evmMessage.VaultActionData{
		ErrChn:       errChn,
		GuidChn:      guidChn,
		Initiator:    common.HexToAddress(b.Initiator),
		ActionType:   action,
		EncodedCall:  common.FromHex(b.EncodedCall),
		MinAmountOut: minAmountOut,
		Fee:          b.Fee.Int,
		Source:       b.ChainId,
	})
	h.msgChan <- []*coreMessage.Message{m}

	err = <-errChn
	if err != nil {
		JSONError(w, fmt.Errorf("request initiation failed: %s", err), http.StatusInternalServerError)
		return
	}
	guid := <-guidChn

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	_ = json.NewEncoder(w).Encode(RequestResponse{
		RequestId: guid.Hex(),
	})
}

func (h *RequestsHandler) validate(b *RequestBody, vars map[string]string) (bridge.ActionType, error) {
	chainId, ok := new(big.Int).SetString(vars["chainId"], 10)
	if !ok {
		return 0, fmt.Errorf("field 'chainId' invalid")
	}
	b.ChainId = chainId.Uint64()

	action, ok := actionsByName[b.Action]
	if !ok {
		return 0, fmt.Errorf("invalid action '%s'", b.Action)
	}

	if b.Initiator == "" {
		return 0, fmt.Errorf("missing field 'initiator'")
	}

	if b.EncodedCall == "" {
		return 0, fmt.Errorf("missing field 'encodedCall'")
	}

	if b.Fee == nil {
		return 0, fmt.Errorf("missing field 'fee'")
	}

	_, ok = h.chains[b.ChainId]
	if !ok {
		return 0, fmt.Errorf("chain '%d' not supported", b.ChainId)
	}

	return action, nil
}
