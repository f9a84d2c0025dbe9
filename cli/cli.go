// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package cli

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/bebop-dex/go-sdk/cli/order"
	"github.com/bebop-dex/go-sdk/cli/token"
	"github.com/bebop-dex/go-sdk/config"
)

var (
	rootCMD = &cobra.Command{
		Use:               "bebop",
		Short:             "Quote, sign and settle Bebop orders",
		PersistentPreRunE: loadDotEnv,
		SilenceUsage:      true,
	}
)

func init() {
	config.BindFlags(rootCMD)
}

// loadDotEnv exports the variables of a .env file in the working directory, if there is one.
func loadDotEnv(cmd *cobra.Command, args []string) error {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func Execute() {
	rootCMD.AddCommand(runCMD, order.QuoteCMD, order.SwapCMD, token.ApproveCMD, token.RevokeCMD)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCMD.ExecuteContext(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to execute root cmd")
	}
}
