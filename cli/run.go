package cli

import (
	"github.com/spf13/cobra"

	"github.com/bebop-dex/go-sdk/app"
)

var (
	runCMD = &cobra.Command{
		Use:   "serve",
		Short: "Run the gateway API",
		Long:  "Serves quotes and order lifecycles of the configured chain over HTTP, together with a /health endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run()
		},
	}
)
