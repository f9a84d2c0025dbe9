package jam

import (
	"net/url"
	"strings"

	"github.com/bebop-dex/go-sdk/chains/evm/signature"
	"github.com/bebop-dex/go-sdk/protocol"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
)

type QuoteRequest struct {
	protocol.QuoteRequest

	// IncludeSolvers restricts the auction to the listed solvers.
	IncludeSolvers []string
}

func NewQuoteRequest(sellTokens []string, buyTokens []string) *QuoteRequest {
	return &QuoteRequest{
		QuoteRequest: *protocol.NewQuoteRequest(sellTokens, buyTokens),
	}
}

func (r *QuoteRequest) Params() (url.Values, error) {
	params, err := r.QuoteRequest.Params()
	if err != nil {
		return nil, err
	}

	if len(r.IncludeSolvers) > 0 {
		params.Set("include_solvers", strings.Join(r.IncludeSolvers, ","))
	}
	return params, nil
}

type Quote struct {
	protocol.QuoteResponse

	HooksHash string `json:"hooksHash"`
	ToSign    ToSign `json:"toSign"`
	Solver    string `json:"solver"`

	// Version is the order schema the quote is signed with.
	Version SchemaVersion `json:"-"`
}

func (q *Quote) Order() (signature.Order, error) {
	return MapOrder(q.Version, q.ToSign)
}

// TypedData builds the JamOrder typed-data document of the quote.
func (q *Quote) TypedData() (apitypes.TypedData, error) {
	order, err := q.Order()
	if err != nil {
		return apitypes.TypedData{}, err
	}

	return Settlement.Assemble(q.ChainID, order), nil
}
