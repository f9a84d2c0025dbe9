package order

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/bebop-dex/go-sdk/lifecycle"
)

var (
	SwapCMD = &cobra.Command{
		Use:   "swap",
		Short: "Quote, sign and settle an order",
		Long: "Requests a quote, signs it with the configured private key and tracks the order " +
			"until it settles. Self executed orders are sent from the taker account",
		RunE: swap,
	}
)

var selfExecuted bool

func init() {
	bindQuoteFlags(SwapCMD)
	SwapCMD.Flags().BoolVar(&selfExecuted, "self-executed", false, "Send the settlement transaction from the taker account")
}

func swap(cmd *cobra.Command, args []string) error {
	sdk, err := newSDK(cmd.Context())
	if err != nil {
		return err
	}
	if sdk.Signer == nil {
		return lifecycle.ErrNoSigner
	}
	l, err := line(sdk, protocolName)
	if err != nil {
		return err
	}

	f := flags()
	f.Gasless = !selfExecuted
	req, err := f.Request(sdk.Chain)
	if err != nil {
		return err
	}
	q, err := l.Quote(cmd.Context(), req)
	if err != nil {
		return err
	}
	log.Info().Str("quoteID", q.ID()).Msgf("Received quote expiring at %s", q.ExpiresAt())

	var result *lifecycle.Result
	if selfExecuted {
		result, err = l.ExecuteSelf(cmd.Context(), q)
	} else {
		result, err = l.Execute(cmd.Context(), q)
	}
	if result != nil {
		if printErr := printJSON(cmd.OutOrStdout(), summarizeResult(sdk.Chain, result)); printErr != nil {
			return printErr
		}
	}
	return err
}
