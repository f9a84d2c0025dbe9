// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/bebop-dex/go-sdk/api"
	"github.com/bebop-dex/go-sdk/api/handlers"
	"github.com/bebop-dex/go-sdk/cache"
	"github.com/bebop-dex/go-sdk/chains/evm/executor"
	"github.com/bebop-dex/go-sdk/chains/evm/signer"
	"github.com/bebop-dex/go-sdk/config"
	"github.com/bebop-dex/go-sdk/health"
	"github.com/bebop-dex/go-sdk/lifecycle"
	"github.com/bebop-dex/go-sdk/metrics"
	"github.com/bebop-dex/go-sdk/protocol"
	"github.com/bebop-dex/go-sdk/protocol/jam"
	"github.com/bebop-dex/go-sdk/protocol/pmm"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

var Version string

// SDK holds the protocol clients of the configured chain.
type SDK struct {
	Config *config.Config
	Chain  config.Chain

	Jam *jam.Client
	// PMM is nil on chains without PMM support.
	PMM *pmm.Client

	// Signer and Executor are nil without a configured private key.
	Signer   *signer.KeySigner
	Executor *executor.Executor
}

// LoadConfig loads the configuration selected by the command line flags and
// configures the global logger from it.
func LoadConfig() (*config.Config, error) {
	c, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, err
	}

	ConfigureLogger(c.LogLevel, os.Stderr)
	log.Debug().Msg("Successfully loaded configuration")
	return c, nil
}

// NewSDK builds the clients of the configured chain. Finished lifecycles are sent to
// results when it is not nil.
func NewSDK(ctx context.Context, c *config.Config, results chan *lifecycle.Result) (*SDK, error) {
	chain, err := c.ResolveChain()
	if err != nil {
		return nil, err
	}

	var auth *protocol.BasicAuth
	if c.BasicAuth.Username != "" {
		auth = &protocol.BasicAuth{Username: c.BasicAuth.Username, Password: c.BasicAuth.Password}
	}
	bebopAPI, err := protocol.NewAPI(c.Env, auth, c.SourceAuth)
	if err != nil {
		return nil, err
	}

	sdk := &SDK{
		Config: c,
		Chain:  chain,
	}
	if c.PrivateKey != "" {
		sdk.Signer, err = signer.NewKeySigner(c.PrivateKey)
		if err != nil {
			return nil, err
		}

		client, err := ethclient.DialContext(ctx, c.Endpoint(chain))
		if err != nil {
			return nil, err
		}
		sdk.Executor = executor.NewExecutor(client, sdk.Signer, c.ReceiptPollInterval())
		log.Info().Msgf("Taking quotes as %s", sdk.Signer.Address().Hex())
	}

	receiptPolicy := lifecycle.Policy{Attempts: c.ReceiptPollAttempts, Interval: c.ReceiptPollInterval()}

	version, err := jam.ParseSchemaVersion(c.JamSchemaVersion)
	if err != nil {
		return nil, err
	}
	jamConfig := jam.ClientConfig{
		Submissions: submissionCache(ctx),
		Lifecycle: lifecycle.Config{
			StatusPolicy:  lifecycle.Policy{Attempts: c.JamPollAttempts, Interval: c.JamPollInterval()},
			ReceiptPolicy: receiptPolicy,
			Results:       results,
		},
	}
	if sdk.Signer != nil {
		jamConfig.Taker = sdk.Signer
		jamConfig.Executor = sdk.Executor
	}
	sdk.Jam, err = jam.NewClient(jam.NewAPI(bebopAPI, chain, version), jamConfig)
	if err != nil {
		return nil, err
	}

	if !pmm.Supported(chain.Name) {
		log.Debug().Msgf("PMM is not available on %s", chain.Name)
		return sdk, nil
	}
	pmmAPI, err := pmm.NewAPI(bebopAPI, chain)
	if err != nil {
		return nil, err
	}
	pmmConfig := pmm.ClientConfig{
		Submissions: submissionCache(ctx),
		Lifecycle: lifecycle.Config{
			StatusPolicy:  lifecycle.Policy{Attempts: c.PmmPollAttempts, Interval: c.PmmPollInterval()},
			ReceiptPolicy: receiptPolicy,
			Results:       results,
		},
	}
	if sdk.Signer != nil {
		pmmConfig.Taker = sdk.Signer
		pmmConfig.Executor = sdk.Executor
	}
	sdk.PMM, err = pmm.NewClient(pmmAPI, pmmConfig)
	if err != nil {
		return nil, err
	}

	return sdk, nil
}

// submissionCache tracks the submitted quotes of one protocol line.
func submissionCache(ctx context.Context) *cache.SubmissionCache {
	submissions := cache.NewSubmissionCache(cache.SUBMISSION_TTL)
	go submissions.Watch(ctx)
	return submissions
}

// Protocols returns the protocol lines served by the gateway.
func (s *SDK) Protocols() handlers.Protocols {
	lines := map[string]handlers.Protocol{
		jam.PROTOCOL_NAME: s.Jam,
	}
	if s.PMM != nil {
		lines[pmm.PROTOCOL_NAME] = s.PMM
	}

	return handlers.Protocols{s.Chain.ID: lines}
}

// Run serves the gateway API and the health endpoint until the process is signalled.
func Run() error {
	configuration, err := LoadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mp, shutdown, err := metrics.InitMetricProvider(ctx, configuration.OpenTelemetryCollectorURL)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			log.Error().Msgf("Error shutting down meter provider: %v", err)
		}
	}()
	resultChn := make(chan *lifecycle.Result)
	results := cache.NewResultCache(ctx, resultChn)
	quotes := cache.NewQuoteCache(configuration.QuoteTTL())
	defer quotes.Stop()

	sdk, err := NewSDK(ctx, configuration, resultChn)
	if err != nil {
		return err
	}
	protocols := sdk.Protocols()

	hostMetrics, err := metrics.NewHostMetrics(mp.Meter(metrics.METER_NAME), metrics.HostInfo{
		Env:     configuration.Env,
		Version: Version,
		ChainID: sdk.Chain.ID,
	})
	if err != nil {
		return err
	}
	defer func() {
		_ = hostMetrics.Stop()
	}()

	go health.StartHealthEndpoint(configuration.HealthPort)

	serveCtx, stopServing := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		api.Serve(
			serveCtx,
			configuration.ApiAddr,
			handlers.NewQuoteHandler(protocols, quotes),
			handlers.NewOrderHandler(ctx, protocols, quotes, configuration.MaxConcurrentLifecycles),
			handlers.NewStatusHandler(protocols, results),
		)
		close(done)
	}()

	sysErr := make(chan os.Signal, 1)
	signal.Notify(sysErr,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGHUP,
		syscall.SIGQUIT)

	log.Info().Msgf("Started gateway on chain %s. Version: v%s", sdk.Chain.Name, Version)

	sig := <-sysErr
	log.Info().Msgf("terminating got [%v] signal", sig)
	stopServing()
	<-done
	return nil
}
