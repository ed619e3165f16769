package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gorilla/mux"

	"github.com/omnivault/vault-accounting/bridge"
)

type RequestExecutor interface {
	UpdateRequestSlippage(caller common.Address, guid common.Hash, minAmountOut *big.Int) error
	ExecuteRequest(ctx context.Context, guid common.Hash) (*bridge.RequestOutcome, error)
}

type RetryBody struct {
	Initiator    string  `json:"initiator"`
	MinAmountOut *BigInt `json:"minAmountOut"`
}

type RetryResponse struct {
	RequestId string  `json:"requestId"`
	Action    string  `json:"action"`
	Amount    *BigInt `json:"amount"`
}

// RetryHandler re-executes a fulfilled request that has not finalized yet,
// optionally revising the initiator's slippage bound first
type RetryHandler struct {
	executors map[uint64]RequestExecutor
}

func NewRetryHandler(executors map[uint64]RequestExecutor) *RetryHandler {
	return &RetryHandler{
		executors: executors,
	}
}

// HandleRequest drives the request through execution and returns its outcome
func (h *RetryHandler) HandleRequest(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	chainId, ok := new(big.Int).SetString(vars["chainId"], 10)
	if !ok {
		JSONError(w, fmt.Errorf("chain id invalid"), http.StatusBadRequest)
		return
	}
	executor, ok := h.executors[chainId.Uint64()]
	if !ok {
		JSONError(w, fmt.Errorf("chain %d not supported", chainId.Uint64()), http.StatusNotFound)
		return
	}

	b := &RetryBody{}
	if err := json.NewDecoder(r.Body).Decode(b); err != nil {
		JSONError(w, fmt.Errorf("invalid request body: %s", err), http.StatusBadRequest)
		return
	}

	guid := common.HexToHash(vars["requestId"])
	if b.MinAmountOut != nil {
		if b.Initiator == "" {
			JSONError(w, fmt.Errorf("missing field 'initiator'"), http.StatusBadRequest)
			return
		}

		err := executor.UpdateRequestSlippage(common.HexToAddress(b.Initiator), guid, b.MinAmountOut.Int)
		if err != nil {
			JSONError(w, err, slippageStatus(err))
			return
		}
	}

	outcome, err := executor.ExecuteRequest(r.Context(), guid)
	if err != nil {
		JSONError(w, err, executeStatus(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(RetryResponse{
		RequestId: outcome.GUID.Hex(),
		Action:    outcome.ActionType.String(),
		Amount:    &BigInt{outcome.Amount},
	})
}

func slippageStatus(err error) int {
	switch {
	case errors.Is(err, bridge.ErrOnlyInitiator):
		return http.StatusForbidden
	case errors.Is(err, bridge.ErrRequestAlreadyFinalized):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func executeStatus(err error) int {
	slippageErr := &bridge.SlippageError{}
	switch {
	case errors.Is(err, bridge.ErrRequestNotFound):
		return http.StatusNotFound
	case errors.Is(err, bridge.ErrRequestAlreadyFinalized), errors.Is(err, bridge.ErrRequestNotFulfilled):
		return http.StatusConflict
	case errors.As(err, &slippageErr):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
