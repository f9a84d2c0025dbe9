package handlers

import (
	"fmt"
	"net/http"

	"github.com/bebop-dex/go-sdk/lifecycle"
	"github.com/gorilla/mux"
)

type ResultGetter interface {
	Result(chainID uint64, protocol string, quoteID string) (*lifecycle.Result, error)
}

type StatusResponse struct {
	QuoteID     string `json:"quoteId"`
	LifecycleID string `json:"lifecycleId,omitempty"`
	State       string `json:"state"`
	TxHash      string `json:"txHash,omitempty"`
	Polls       int    `json:"polls,omitempty"`
	Reason      string `json:"reason,omitempty"`
}

type StatusHandler struct {
	protocols Protocols
	results   ResultGetter
}

func NewStatusHandler(protocols Protocols, results ResultGetter) *StatusHandler {
	return &StatusHandler{
		protocols: protocols,
		results:   results,
	}
}

// HandleRequest returns the outcome of a finished lifecycle, or the Submitted state
// while the order is still being tracked.
func (h *StatusHandler) HandleRequest(w http.ResponseWriter, r *http.Request) {
	rt, code, err := h.protocols.fromRequest(r)
	if err != nil {
		JSONError(w, err, code)
		return
	}

	quoteID := mux.Vars(r)["quoteId"]
	if quoteID == "" {
		JSONError(w, fmt.Errorf("missing 'quoteId'"), http.StatusBadRequest)
		return
	}

	result, err := h.results.Result(rt.chainID, rt.protocol, quoteID)
	if err == nil {
		resp := StatusResponse{
			QuoteID:     result.QuoteID,
			LifecycleID: result.ID.String(),
			State:       string(result.State),
			TxHash:      result.TxHash,
			Polls:       result.Polls,
		}
		if result.Err != nil {
			resp.Reason = result.Err.Error()
		}
		JSONResponse(w, resp, http.StatusOK)
		return
	}

	if rt.line.Submitted(quoteID) {
		JSONResponse(w, StatusResponse{QuoteID: quoteID, State: string(lifecycle.StateSubmitted)}, http.StatusOK)
		return
	}

	JSONError(w, fmt.Errorf("no order found for quote %s", quoteID), http.StatusNotFound)
}
