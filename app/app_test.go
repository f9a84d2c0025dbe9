package app_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/bebop-dex/go-sdk/app"
	"github.com/bebop-dex/go-sdk/config"
	"github.com/bebop-dex/go-sdk/protocol/jam"
	"github.com/bebop-dex/go-sdk/protocol/pmm"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/suite"
)

func testConfig(chain string) *config.Config {
	return &config.Config{
		Env:                     config.EnvProd,
		Chain:                   chain,
		JamSchemaVersion:        2,
		JamPollAttempts:         10,
		JamPollIntervalMs:       1000,
		PmmPollAttempts:         20,
		PmmPollIntervalMs:       500,
		ReceiptPollAttempts:     20,
		ReceiptPollIntervalMs:   500,
		MaxConcurrentLifecycles: 1,
	}
}

type SDKTestSuite struct {
	suite.Suite

	ctx    context.Context
	cancel context.CancelFunc
}

func TestRunSDKTestSuite(t *testing.T) {
	suite.Run(t, new(SDKTestSuite))
}

func (s *SDKTestSuite) SetupTest() {
	s.ctx, s.cancel = context.WithCancel(context.Background())
}

func (s *SDKTestSuite) TearDownTest() {
	s.cancel()
}

func (s *SDKTestSuite) Test_NewSDK_WithoutKey() {
	sdk, err := app.NewSDK(s.ctx, testConfig("ethereum"), nil)

	s.Nil(err)
	s.Nil(sdk.Signer)
	s.Nil(sdk.Executor)
	s.NotNil(sdk.Jam)
	s.NotNil(sdk.PMM)
	s.Equal(uint64(1), sdk.Chain.ID)

	protocols := sdk.Protocols()
	s.Len(protocols[1], 2)
	s.Contains(protocols[1], jam.PROTOCOL_NAME)
	s.Contains(protocols[1], pmm.PROTOCOL_NAME)
}

func (s *SDKTestSuite) Test_NewSDK_ChainWithoutPMM() {
	sdk, err := app.NewSDK(s.ctx, testConfig("324"), nil)

	s.Nil(err)
	s.Nil(sdk.PMM)
	s.Equal(uint64(324), sdk.Chain.ID)
	s.Len(sdk.Protocols()[324], 1)
}

func (s *SDKTestSuite) Test_NewSDK_WithKey() {
	c := testConfig("arbitrum")
	c.PrivateKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	c.RPCURL = "http://localhost:8545"

	sdk, err := app.NewSDK(s.ctx, c, nil)

	s.Nil(err)
	s.Equal("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266", sdk.Signer.Address().Hex())
	s.Equal(sdk.Signer.Address(), sdk.Executor.Address())
}

func (s *SDKTestSuite) Test_NewSDK_InvalidKey() {
	c := testConfig("arbitrum")
	c.PrivateKey = "invalid"

	_, err := app.NewSDK(s.ctx, c, nil)

	s.NotNil(err)
}

func (s *SDKTestSuite) Test_NewSDK_UnknownChain() {
	_, err := app.NewSDK(s.ctx, testConfig("unknown"), nil)

	s.NotNil(err)
}

type LoggerTestSuite struct {
	suite.Suite
}

func TestRunLoggerTestSuite(t *testing.T) {
	suite.Run(t, new(LoggerTestSuite))
}

func (s *LoggerTestSuite) TearDownTest() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func (s *LoggerTestSuite) Test_ConfigureLogger_Level() {
	out := new(bytes.Buffer)
	app.ConfigureLogger("warn", out)

	log.Info().Msg("hidden")
	log.Warn().Msg("shown")

	s.NotContains(out.String(), "hidden")
	s.Contains(out.String(), "shown")
}

func (s *LoggerTestSuite) Test_ConfigureLogger_InvalidLevel() {
	app.ConfigureLogger("verbose", new(bytes.Buffer))

	s.Equal(zerolog.InfoLevel, zerolog.GlobalLevel())
}
