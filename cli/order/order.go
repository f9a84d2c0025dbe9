package order

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/big"

	"github.com/bebop-dex/go-sdk/api/handlers"
	"github.com/bebop-dex/go-sdk/app"
	"github.com/bebop-dex/go-sdk/config"
	"github.com/bebop-dex/go-sdk/lifecycle"
	"github.com/bebop-dex/go-sdk/protocol"
	"github.com/bebop-dex/go-sdk/protocol/jam"
	"github.com/bebop-dex/go-sdk/protocol/pmm"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	protocolName string
	sellTokens   []string
	buyTokens    []string
	sellAmounts  []string
	buyAmounts   []string
	buyRatios    []float64
	receiver     string
	gasless      bool
)

func bindQuoteFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&protocolName, "protocol", jam.PROTOCOL_NAME, "Protocol line, jam or pmm")
	cmd.Flags().StringSliceVar(&sellTokens, "sell", nil, "Sell token addresses or symbols")
	_ = cmd.MarkFlagRequired("sell")
	cmd.Flags().StringSliceVar(&buyTokens, "buy", nil, "Buy token addresses or symbols")
	_ = cmd.MarkFlagRequired("buy")
	cmd.Flags().StringSliceVar(&sellAmounts, "sell-amounts", nil, "Sell amounts in base units")
	cmd.Flags().StringSliceVar(&buyAmounts, "buy-amounts", nil, "Buy amounts in base units")
	cmd.Flags().Float64SliceVar(&buyRatios, "buy-ratios", nil, "Ratios between multiple buy tokens")
	cmd.Flags().StringVar(&receiver, "receiver", "", "Receiver of the buy tokens, defaults to the taker")
}

// QuoteFlags are the command line inputs of a quote request.
type QuoteFlags struct {
	SellTokens  []string
	BuyTokens   []string
	SellAmounts []string
	BuyAmounts  []string
	BuyRatios   []float64
	Receiver    string
	Gasless     bool
}

func flags() QuoteFlags {
	return QuoteFlags{
		SellTokens:  sellTokens,
		BuyTokens:   buyTokens,
		SellAmounts: sellAmounts,
		BuyAmounts:  buyAmounts,
		BuyRatios:   buyRatios,
		Receiver:    receiver,
		Gasless:     gasless,
	}
}

// Request resolves token symbols on the chain and parses the amounts of the flags.
func (f QuoteFlags) Request(chain config.Chain) (protocol.QuoteRequest, error) {
	sell, err := resolveTokens(chain, f.SellTokens)
	if err != nil {
		return protocol.QuoteRequest{}, err
	}
	buy, err := resolveTokens(chain, f.BuyTokens)
	if err != nil {
		return protocol.QuoteRequest{}, err
	}

	req := protocol.NewQuoteRequest(sell, buy)
	req.SellAmounts, err = parseAmounts(f.SellAmounts)
	if err != nil {
		return protocol.QuoteRequest{}, err
	}
	req.BuyAmounts, err = parseAmounts(f.BuyAmounts)
	if err != nil {
		return protocol.QuoteRequest{}, err
	}
	req.BuyTokensRatios = f.BuyRatios
	req.ReceiverAddress = f.Receiver
	req.Gasless = f.Gasless

	return *req, req.Validate()
}

func resolveTokens(chain config.Chain, tokens []string) ([]string, error) {
	addresses := make([]string, len(tokens))
	for i, token := range tokens {
		address, err := chain.ResolveToken(token)
		if err != nil {
			return nil, err
		}
		addresses[i] = chain.WrapIfNative(address)
	}
	return addresses, nil
}

func parseAmounts(amounts []string) ([]*big.Int, error) {
	if len(amounts) == 0 {
		return nil, nil
	}

	ints := make([]*big.Int, len(amounts))
	for i, amount := range amounts {
		v, ok := new(big.Int).SetString(amount, 10)
		if !ok || v.Sign() <= 0 {
			return nil, fmt.Errorf("invalid amount %s", amount)
		}
		ints[i] = v
	}
	return ints, nil
}

// line returns the client of the protocol line selected by name.
func line(sdk *app.SDK, name string) (handlers.Protocol, error) {
	switch name {
	case jam.PROTOCOL_NAME:
		return sdk.Jam, nil
	case pmm.PROTOCOL_NAME:
		if sdk.PMM == nil {
			return nil, fmt.Errorf("%w: %s", pmm.ErrUnsupportedChain, sdk.Chain.Name)
		}
		return sdk.PMM, nil
	default:
		return nil, fmt.Errorf("unknown protocol %s", name)
	}
}

type usdValued interface {
	SellUSDAmount() decimal.Decimal
	BuyUSDAmount() decimal.Decimal
}

type QuoteSummary struct {
	QuoteID   string          `json:"quoteId"`
	ExpiresAt string          `json:"expiresAt"`
	SellUSD   decimal.Decimal `json:"sellUsd"`
	BuyUSD    decimal.Decimal `json:"buyUsd"`
	Quote     interface{}     `json:"quote"`
}

func summarize(quote lifecycle.Quotable) QuoteSummary {
	summary := QuoteSummary{
		QuoteID:   quote.ID(),
		ExpiresAt: quote.ExpiresAt().UTC().String(),
		Quote:     quote,
	}
	if valued, ok := quote.(usdValued); ok {
		summary.SellUSD = valued.SellUSDAmount().Round(2)
		summary.BuyUSD = valued.BuyUSDAmount().Round(2)
	}
	return summary
}

type ResultSummary struct {
	QuoteID string `json:"quoteId"`
	State   string `json:"state"`
	TxHash  string `json:"txHash,omitempty"`
	TxLink  string `json:"txLink,omitempty"`
	Polls   int    `json:"polls"`
	Reason  string `json:"reason,omitempty"`
}

func summarizeResult(chain config.Chain, result *lifecycle.Result) ResultSummary {
	summary := ResultSummary{
		QuoteID: result.QuoteID,
		State:   string(result.State),
		TxHash:  result.TxHash,
		Polls:   result.Polls,
	}
	if result.TxHash != "" {
		summary.TxLink = chain.TxLink(result.TxHash)
	}
	if result.Err != nil {
		summary.Reason = result.Err.Error()
	}
	return summary
}

func printJSON(out io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

func newSDK(ctx context.Context) (*app.SDK, error) {
	c, err := app.LoadConfig()
	if err != nil {
		return nil, err
	}
	return app.NewSDK(ctx, c, nil)
}
