package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gorilla/mux"

	"github.com/omnivault/vault-accounting/bridge"
)

type OutcomeCacher interface {
	Subscribe(ctx context.Context, guid common.Hash, outcomeChn chan *bridge.RequestOutcome)
}

type StatusHandler struct {
	cache  OutcomeCacher
	chains map[uint64]struct{}
}

func NewStatusHandler(cache OutcomeCacher, chains map[uint64]struct{}) *StatusHandler {
	return &StatusHandler{
		cache:  cache,
		chains: chains,
	}
}

// HandleRequest is an sse handler that waits until the request is finalized
// and returns its outcome
func (h *StatusHandler) HandleRequest(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	chainId, ok := new(big.Int).SetString(vars["chainId"], 0)
	if !ok {
		JSONError(w, fmt.Errorf("chain id invalid"), http.StatusBadRequest)
		return
	}
	_, ok = h.chains[chainId.Uint64()]
	if !ok {
		JSONError(w, fmt.Errorf("chain %d not supported", chainId.Int64()), http.StatusNotFound)
		return
	}
	requestId, ok := vars["requestId"]
	if !ok {
		JSONError(w, fmt.Errorf("missing 'requestId'"), http.StatusBadRequest)
		return
	}

	h.setheaders(w)

	ctx := r.Context()
	outcomeChn := make(chan *bridge.RequestOutcome, 1)
	h.cache.Subscribe(ctx, common.HexToHash(requestId), outcomeChn)
	for {
		select {
		case <-r.Context().Done():
			return
		case outcome := <-outcomeChn:
			{
				data, _ := json.Marshal(outcome)
				fmt.Fprintf(w, "data: %s\n\n", data)
				w.(http.Flusher).Flush()
				return
			}
		}
	}
}

func (h *StatusHandler) setheaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

type RequestReader interface {
	RequestInfo(guid common.Hash) (*bridge.RequestInfo, error)
}

type RequestInfoResponse struct {
	RequestId    string    `json:"requestId"`
	Initiator    string    `json:"initiator"`
	Action       string    `json:"action"`
	MinAmountOut *BigInt   `json:"minAmountOut,omitempty"`
	Fulfilled    bool      `json:"fulfilled"`
	Finalized    bool      `json:"finalized"`
	CreatedAt    time.Time `json:"createdAt"`
}

type InfoHandler struct {
	readers map[uint64]RequestReader
}

func NewInfoHandler(readers map[uint64]RequestReader) *InfoHandler {
	return &InfoHandler{
		readers: readers,
	}
}

// HandleRequest returns the ledger state of a request
func (h *InfoHandler) HandleRequest(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	chainId, ok := new(big.Int).SetString(vars["chainId"], 10)
	if !ok {
		JSONError(w, fmt.Errorf("chain id invalid"), http.StatusBadRequest)
		return
	}
	reader, ok := h.readers[chainId.Uint64()]
	if !ok {
		JSONError(w, fmt.Errorf("chain %d not supported", chainId.Uint64()), http.StatusNotFound)
		return
	}

	info, err := reader.RequestInfo(common.HexToHash(vars["requestId"]))
	if err != nil {
		JSONError(w, err, http.StatusNotFound)
		return
	}

	resp := RequestInfoResponse{
		RequestId: info.GUID.Hex(),
		Initiator: info.Initiator.Hex(),
		Action:    info.ActionType.String(),
		Fulfilled: info.Fulfilled,
		Finalized: info.Finalized,
		CreatedAt: info.CreatedAt,
	}
	if info.MinAmountOut != nil {
		resp.MinAmountOut = &BigInt{info.MinAmountOut}
	}

	data, _ := json.Marshal(resp)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
