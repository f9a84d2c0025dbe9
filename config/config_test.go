// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bebop-dex/go-sdk/config"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestRunConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) writeConfig(content string) string {
	path := filepath.Join(s.T().TempDir(), "config.json")
	err := os.WriteFile(path, []byte(content), 0600)
	s.Nil(err)
	return path
}

func (s *ConfigTestSuite) Test_Load_FileWithDefaults() {
	path := s.writeConfig(`{"chain": "arbitrum", "sourceAuth": "auth"}`)
	v := viper.New()
	v.Set(config.ConfigFlagName, path)

	c, err := config.Load(v)

	s.Nil(err)
	s.Equal("arbitrum", c.Chain)
	s.Equal("auth", c.SourceAuth)
	s.Equal(config.EnvProd, c.Env)
	s.Equal(10, c.JamPollAttempts)
	s.Equal(time.Second, c.JamPollInterval())
	s.Equal(20, c.PmmPollAttempts)
	s.Equal(500*time.Millisecond, c.PmmPollInterval())
	s.Equal(20, c.ReceiptPollAttempts)
	s.Equal(500*time.Millisecond, c.ReceiptPollInterval())
	s.Equal(2, c.JamSchemaVersion)
}

func (s *ConfigTestSuite) Test_Load_FlagsOverrideFile() {
	path := s.writeConfig(`{"chain": "arbitrum", "logLevel": "debug"}`)
	v := viper.New()
	v.Set(config.ConfigFlagName, path)
	v.Set(config.ChainFlagName, "polygon")

	c, err := config.Load(v)

	s.Nil(err)
	s.Equal("polygon", c.Chain)
	s.Equal("debug", c.LogLevel)
}

func (s *ConfigTestSuite) Test_Load_TestEnvWithoutBasicAuth() {
	path := s.writeConfig(`{"env": "test"}`)
	v := viper.New()
	v.Set(config.ConfigFlagName, path)

	_, err := config.Load(v)

	s.NotNil(err)
}

func (s *ConfigTestSuite) Test_Load_TestEnvWithBasicAuth() {
	path := s.writeConfig(`{"env": "test", "basicAuth": {"username": "user", "password": "pass"}}`)
	v := viper.New()
	v.Set(config.ConfigFlagName, path)

	c, err := config.Load(v)

	s.Nil(err)
	s.Equal(config.EnvTest, c.Env)
	s.Equal("user", c.BasicAuth.Username)
}

func (s *ConfigTestSuite) Test_Load_UnknownChain() {
	path := s.writeConfig(`{"chain": "solana"}`)
	v := viper.New()
	v.Set(config.ConfigFlagName, path)

	_, err := config.Load(v)

	s.NotNil(err)
}

func (s *ConfigTestSuite) Test_Load_MissingFile() {
	v := viper.New()
	v.Set(config.ConfigFlagName, filepath.Join(s.T().TempDir(), "missing.json"))

	_, err := config.Load(v)

	s.NotNil(err)
}

func (s *ConfigTestSuite) Test_GetConfigFromENV() {
	s.T().Setenv("BEBOP_CHAIN", "42161")
	s.T().Setenv("BEBOP_RPCURL", "http://localhost:8545")
	s.T().Setenv("BEBOP_JAMPOLLATTEMPTS", "3")

	c, err := config.GetConfigFromENV()

	s.Nil(err)
	s.Equal("42161", c.Chain)
	s.Equal("http://localhost:8545", c.RPCURL)
	s.Equal(3, c.JamPollAttempts)
}

func (s *ConfigTestSuite) Test_ResolveChain_ByID() {
	c := &config.Config{Chain: "42161"}

	chain, err := c.ResolveChain()

	s.Nil(err)
	s.Equal("arbitrum", chain.Name)
	s.Equal(chain.PublicRPC, c.Endpoint(chain))
}

func (s *ConfigTestSuite) Test_Validate_InvalidSchemaVersion() {
	c := &config.Config{
		Env:                     config.EnvProd,
		Chain:                   "ethereum",
		JamSchemaVersion:        3,
		JamPollAttempts:         1,
		PmmPollAttempts:         1,
		ReceiptPollAttempts:     1,
		MaxConcurrentLifecycles: 1,
	}

	err := c.Validate()

	s.NotNil(err)
}
