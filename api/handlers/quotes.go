package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/bebop-dex/go-sdk/lifecycle"
	"github.com/bebop-dex/go-sdk/protocol"
	"github.com/rs/zerolog/log"
)

// Protocol is one protocol line of one chain as seen by the gateway.
type Protocol interface {
	Quote(ctx context.Context, req protocol.QuoteRequest) (lifecycle.Quotable, error)
	Execute(ctx context.Context, quote lifecycle.Quotable) (*lifecycle.Result, error)
	ExecuteSelf(ctx context.Context, quote lifecycle.Quotable) (*lifecycle.Result, error)
	Submitted(quoteID string) bool
}

// QuoteStorer keeps quotes per protocol line.
type QuoteStorer interface {
	Add(chainID uint64, protocol string, quote lifecycle.Quotable) error
	Quote(chainID uint64, protocol string, quoteID string) (lifecycle.Quotable, error)
}

type QuoteBody struct {
	SellTokens       []string              `json:"sellTokens"`
	BuyTokens        []string              `json:"buyTokens"`
	SellAmounts      []*BigInt             `json:"sellAmounts"`
	BuyAmounts       []*BigInt             `json:"buyAmounts"`
	TakerAddress     string                `json:"takerAddress"`
	ReceiverAddress  string                `json:"receiverAddress"`
	ApprovalType     protocol.ApprovalType `json:"approvalType"`
	BuyTokensRatios  []float64             `json:"buyTokensRatios"`
	SellTokensRatios []float64             `json:"sellTokensRatios"`
	// Gasless defaults to true.
	Gasless    *bool  `json:"gasless"`
	SourceAuth string `json:"sourceAuth"`
}

func (b *QuoteBody) validate() error {
	if len(b.SellTokens) == 0 {
		return fmt.Errorf("missing field 'sellTokens'")
	}
	if len(b.BuyTokens) == 0 {
		return fmt.Errorf("missing field 'buyTokens'")
	}
	if err := validateAmounts("sellAmounts", b.SellAmounts); err != nil {
		return err
	}
	return validateAmounts("buyAmounts", b.BuyAmounts)
}

func validateAmounts(field string, amounts []*BigInt) error {
	for i, amount := range amounts {
		if amount == nil || amount.Int == nil || amount.Sign() < 0 {
			return fmt.Errorf("invalid amount at '%s[%d]'", field, i)
		}
	}
	return nil
}

func (b *QuoteBody) request() protocol.QuoteRequest {
	req := protocol.NewQuoteRequest(b.SellTokens, b.BuyTokens)
	req.SellAmounts = bigInts(b.SellAmounts)
	req.BuyAmounts = bigInts(b.BuyAmounts)
	req.TakerAddress = b.TakerAddress
	req.ReceiverAddress = b.ReceiverAddress
	req.BuyTokensRatios = b.BuyTokensRatios
	req.SellTokensRatios = b.SellTokensRatios
	req.SourceAuth = b.SourceAuth
	if b.ApprovalType != "" {
		req.ApprovalType = b.ApprovalType
	}
	if b.Gasless != nil {
		req.Gasless = *b.Gasless
	}
	return *req
}

type QuoteHandler struct {
	protocols Protocols
	quotes    QuoteStorer
}

func NewQuoteHandler(protocols Protocols, quotes QuoteStorer) *QuoteHandler {
	return &QuoteHandler{
		protocols: protocols,
		quotes:    quotes,
	}
}

// HandleRequest fetches a quote from the protocol line in the route and keeps it
// until it is ordered or expires.
func (h *QuoteHandler) HandleRequest(w http.ResponseWriter, r *http.Request) {
	rt, code, err := h.protocols.fromRequest(r)
	if err != nil {
		JSONError(w, err, code)
		return
	}

	b := &QuoteBody{}
	err = json.NewDecoder(r.Body).Decode(b)
	if err != nil {
		JSONError(w, fmt.Errorf("invalid request body: %s", err), http.StatusBadRequest)
		return
	}
	err = b.validate()
	if err != nil {
		JSONError(w, fmt.Errorf("invalid request body: %s", err), http.StatusBadRequest)
		return
	}

	quote, err := rt.line.Quote(r.Context(), b.request())
	if err != nil {
		JSONError(w, fmt.Errorf("quote failed: %s", err), quoteErrorCode(err))
		return
	}

	err = h.quotes.Add(rt.chainID, rt.protocol, quote)
	if err != nil {
		JSONError(w, err, http.StatusGone)
		return
	}

	log.Debug().Str("quoteID", quote.ID()).Msgf("Stored quote expiring at %s", quote.ExpiresAt())
	JSONResponse(w, quote, http.StatusOK)
}

func quoteErrorCode(err error) int {
	var validationErr *protocol.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest
	}

	var apiErr *protocol.APIError
	if errors.As(err, &apiErr) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
