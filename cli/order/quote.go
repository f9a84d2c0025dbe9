package order

import (
	"github.com/spf13/cobra"
)

var (
	QuoteCMD = &cobra.Command{
		Use:   "quote",
		Short: "Request a quote",
		Long:  "Requests a quote from the selected protocol line and prints it without signing",
		RunE:  quote,
	}
)

func init() {
	bindQuoteFlags(QuoteCMD)
	QuoteCMD.Flags().BoolVar(&gasless, "gasless", true, "Request a gasless quote")
}

func quote(cmd *cobra.Command, args []string) error {
	sdk, err := newSDK(cmd.Context())
	if err != nil {
		return err
	}
	l, err := line(sdk, protocolName)
	if err != nil {
		return err
	}

	req, err := flags().Request(sdk.Chain)
	if err != nil {
		return err
	}
	q, err := l.Quote(cmd.Context(), req)
	if err != nil {
		return err
	}

	return printJSON(cmd.OutOrStdout(), summarize(q))
}
