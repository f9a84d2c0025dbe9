package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/bebop-dex/go-sdk/lifecycle"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
	"golang.org/x/sync/semaphore"
)

type OrderBody struct {
	QuoteID      string `json:"quoteId"`
	SelfExecuted bool   `json:"selfExecuted"`
}

type OrderResponse struct {
	QuoteID string `json:"quoteId"`
	State   string `json:"state"`
}

type OrderHandler struct {
	ctx       context.Context
	protocols Protocols
	quotes    QuoteStorer
	slots     *semaphore.Weighted
	pool      *pool.Pool
}

// NewOrderHandler runs accepted lifecycles on ctx, at most maxConcurrency at a time.
// Orders arriving while every slot is taken are refused with status code 503.
func NewOrderHandler(ctx context.Context, protocols Protocols, quotes QuoteStorer, maxConcurrency int) *OrderHandler {
	if maxConcurrency < 1 {
		maxConcurrency = 1
	}

	return &OrderHandler{
		ctx:       ctx,
		protocols: protocols,
		quotes:    quotes,
		slots:     semaphore.NewWeighted(int64(maxConcurrency)),
		pool:      pool.New(),
	}
}

// HandleRequest starts the lifecycle of a stored quote and returns status code 202
// once the quote has been accepted. Progress is served by the status handler.
func (h *OrderHandler) HandleRequest(w http.ResponseWriter, r *http.Request) {
	rt, code, err := h.protocols.fromRequest(r)
	if err != nil {
		JSONError(w, err, code)
		return
	}

	b := &OrderBody{}
	err = json.NewDecoder(r.Body).Decode(b)
	if err != nil {
		JSONError(w, fmt.Errorf("invalid request body: %s", err), http.StatusBadRequest)
		return
	}
	if b.QuoteID == "" {
		JSONError(w, fmt.Errorf("invalid request body: missing field 'quoteId'"), http.StatusBadRequest)
		return
	}

	quote, err := h.quotes.Quote(rt.chainID, rt.protocol, b.QuoteID)
	if err != nil {
		JSONError(w, err, http.StatusNotFound)
		return
	}
	if !time.Now().Before(quote.ExpiresAt()) {
		JSONError(w, fmt.Errorf("%w: %s", lifecycle.ErrQuoteExpired, b.QuoteID), http.StatusGone)
		return
	}
	if rt.line.Submitted(b.QuoteID) {
		JSONError(w, fmt.Errorf("%w: %s", lifecycle.ErrAlreadySubmitted, b.QuoteID), http.StatusConflict)
		return
	}
	if !h.slots.TryAcquire(1) {
		w.Header().Set("Retry-After", "1")
		JSONError(w, fmt.Errorf("too many orders in progress, retry later"), http.StatusServiceUnavailable)
		return
	}

	h.pool.Go(func() {
		defer h.slots.Release(1)

		execute := rt.line.Execute
		if b.SelfExecuted {
			execute = rt.line.ExecuteSelf
		}

		_, err := execute(h.ctx, quote)
		if err != nil {
			log.Err(err).Str("quoteID", b.QuoteID).Msgf("Order lifecycle failed")
		}
	})

	JSONResponse(w, OrderResponse{QuoteID: b.QuoteID, State: string(lifecycle.StateSubmitted)}, http.StatusAccepted)
}

// Wait blocks until every started lifecycle returned.
func (h *OrderHandler) Wait() {
	h.pool.Wait()
}
