package pmm

import (
	"context"
	"fmt"

	"github.com/bebop-dex/go-sdk/config"
	"github.com/bebop-dex/go-sdk/protocol"
)

// API talks to the PMM endpoints of one chain.
type API struct {
	*protocol.OrderClient

	chain config.Chain
}

func NewAPI(api *protocol.API, chain config.Chain) (*API, error) {
	if !Supported(chain.Name) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedChain, chain.Name)
	}

	return &API{
		OrderClient: &protocol.OrderClient{
			API:       api,
			Endpoints: Endpoints(chain.Name),
		},
		chain: chain,
	}, nil
}

func (a *API) Chain() config.Chain {
	return a.chain
}

func (a *API) GetQuote(ctx context.Context, req *QuoteRequest) (*Quote, error) {
	params, err := req.Params()
	if err != nil {
		return nil, err
	}

	quote := new(Quote)
	err = a.Get(ctx, a.Endpoints.Quote, params, quote, protocol.WithSourceAuth(req.SourceAuth))
	if err != nil {
		return nil, err
	}
	if quote.ChainID != a.chain.ID {
		return nil, fmt.Errorf("quote %s is for chain %d, expected %d", quote.QuoteID, quote.ChainID, a.chain.ID)
	}

	return quote, nil
}
