package pmm

import (
	"encoding/json"
	"net/url"
	"strings"

	"github.com/bebop-dex/go-sdk/chains/evm/signature"
	"github.com/bebop-dex/go-sdk/protocol"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
)

type ExpiryType string

const (
	ExpiryStandard ExpiryType = "standard"
	ExpiryShort    ExpiryType = "short"
)

type QuoteRequest struct {
	protocol.QuoteRequest

	// IncludeMakers restricts the RFQ to the listed makers.
	IncludeMakers []string
	ExpiryType    ExpiryType
}

func NewQuoteRequest(sellTokens []string, buyTokens []string) *QuoteRequest {
	return &QuoteRequest{
		QuoteRequest: *protocol.NewQuoteRequest(sellTokens, buyTokens),
		ExpiryType:   ExpiryStandard,
	}
}

func (r *QuoteRequest) Params() (url.Values, error) {
	params, err := r.QuoteRequest.Params()
	if err != nil {
		return nil, err
	}

	if len(r.IncludeMakers) > 0 {
		params.Set("include_makers", strings.Join(r.IncludeMakers, ","))
	}
	expiryType := r.ExpiryType
	if expiryType == "" {
		expiryType = ExpiryStandard
	}
	params.Set("expiry_type", string(expiryType))
	return params, nil
}

type Quote struct {
	protocol.QuoteResponse

	ToSign            json.RawMessage `json:"toSign"`
	OnchainOrderType  OrderType       `json:"onchainOrderType"`
	PartialFillOffset *int            `json:"partialFillOffset,omitempty"`
}

func (q *Quote) Order() (signature.Order, error) {
	return MapOrder(q.OnchainOrderType, q.ToSign)
}

// TypedData builds the typed-data document of the topology the quote settles with.
func (q *Quote) TypedData() (apitypes.TypedData, error) {
	order, err := q.Order()
	if err != nil {
		return apitypes.TypedData{}, err
	}

	return Settlement.Assemble(q.ChainID, order), nil
}
