package handlers

import (
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gorilla/mux"
)

type FeeQuoter interface {
	QuoteValueRead(hubChainID uint64, vault common.Address) (*big.Int, error)
}

type QuoteResponse struct {
	Fee *BigInt `json:"fee"`
}

// QuoteHandler quotes the native fee a vault action request on a chain
// currently requires
type QuoteHandler struct {
	quoters map[uint64]FeeQuoter
	vaults  map[uint64]common.Address
}

func NewQuoteHandler(quoters map[uint64]FeeQuoter, vaults map[uint64]common.Address) *QuoteHandler {
	return &QuoteHandler{
		quoters: quoters,
		vaults:  vaults,
	}
}

// HandleRequest returns the current accounting read fee for the requested chain
func (h *QuoteHandler) HandleRequest(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	chainId, ok := new(big.Int).SetString(vars["chainId"], 10)
	if !ok {
		JSONError(w, fmt.Errorf("invalid chainId"), http.StatusBadRequest)
		return
	}

	quoter, ok := h.quoters[chainId.Uint64()]
	if !ok {
		JSONError(w, fmt.Errorf("no quoter for chainID: %d", chainId.Uint64()), http.StatusNotFound)
		return
	}

	fee, err := quoter.QuoteValueRead(chainId.Uint64(), h.vaults[chainId.Uint64()])
	if err != nil {
		JSONError(w, err, http.StatusInternalServerError)
		return
	}

	data, _ := json.Marshal(QuoteResponse{Fee: &BigInt{fee}})
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
