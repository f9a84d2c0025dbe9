// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/imdario/mergo"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	ConfigFlagName     = "config"
	EnvFlagName        = "env"
	ChainFlagName      = "chain"
	RPCURLFlagName     = "rpc-url"
	PrivateKeyFlagName = "private-key"
	LogLevelFlagName   = "log-level"

	ENV_PREFIX = "BEBOP"
)

const (
	EnvProd = "PROD"
	EnvTest = "TEST"
)

type BasicAuthConfig struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type Config struct {
	Env        string          `mapstructure:"env" default:"PROD"`
	Chain      string          `mapstructure:"chain" default:"ethereum"`
	RPCURL     string          `mapstructure:"rpcUrl"`
	PrivateKey string          `mapstructure:"privateKey"`
	SourceAuth string          `mapstructure:"sourceAuth"`
	BasicAuth  BasicAuthConfig `mapstructure:"basicAuth"`
	LogLevel   string          `mapstructure:"logLevel" default:"info"`

	ApiAddr    string `mapstructure:"apiAddr" default:":8080"`
	HealthPort uint16 `mapstructure:"healthPort" default:"9001"`

	OpenTelemetryCollectorURL string `mapstructure:"openTelemetryCollectorURL"`

	// jam is the only protocol with two typed-data schemas
	JamSchemaVersion int `mapstructure:"jamSchemaVersion" default:"2"`

	JamPollAttempts       int    `mapstructure:"jamPollAttempts" default:"10"`
	JamPollIntervalMs     uint64 `mapstructure:"jamPollIntervalMs" default:"1000"`
	PmmPollAttempts       int    `mapstructure:"pmmPollAttempts" default:"20"`
	PmmPollIntervalMs     uint64 `mapstructure:"pmmPollIntervalMs" default:"500"`
	ReceiptPollAttempts   int    `mapstructure:"receiptPollAttempts" default:"20"`
	ReceiptPollIntervalMs uint64 `mapstructure:"receiptPollIntervalMs" default:"500"`

	QuoteCacheTTL           uint64 `mapstructure:"quoteCacheTTL" default:"300"`
	MaxConcurrentLifecycles int    `mapstructure:"maxConcurrentLifecycles" default:"8"`
}

// Validate checks the decoded configuration and resolves the configured chain.
func (c *Config) Validate() error {
	switch strings.ToUpper(c.Env) {
	case EnvProd:
	case EnvTest:
		if c.BasicAuth.Username == "" || c.BasicAuth.Password == "" {
			return fmt.Errorf("basic auth is required for the %s environment", EnvTest)
		}
	default:
		return fmt.Errorf("unknown environment %s", c.Env)
	}

	if _, err := c.ResolveChain(); err != nil {
		return err
	}
	if c.JamSchemaVersion != 1 && c.JamSchemaVersion != 2 {
		return fmt.Errorf("unsupported jam schema version %d", c.JamSchemaVersion)
	}
	if c.JamPollAttempts <= 0 || c.PmmPollAttempts <= 0 || c.ReceiptPollAttempts <= 0 {
		return fmt.Errorf("poll attempts have to be positive")
	}
	if c.MaxConcurrentLifecycles <= 0 {
		return fmt.Errorf("maxConcurrentLifecycles has to be positive")
	}
	return nil
}

// ResolveChain returns the registry entry for the configured chain, given by name or id.
func (c *Config) ResolveChain() (Chain, error) {
	var id uint64
	if _, err := fmt.Sscanf(c.Chain, "%d", &id); err == nil {
		return ChainByID(id)
	}
	return ChainByName(c.Chain)
}

// Endpoint returns the configured RPC endpoint or the public RPC of the chain.
func (c *Config) Endpoint(chain Chain) string {
	if c.RPCURL != "" {
		return c.RPCURL
	}
	return chain.PublicRPC
}

func (c *Config) QuoteTTL() time.Duration {
	// nolint:gosec
	return time.Duration(c.QuoteCacheTTL) * time.Second
}

func millis(ms uint64) time.Duration {
	// nolint:gosec
	return time.Duration(ms) * time.Millisecond
}

func (c *Config) JamPollInterval() time.Duration     { return millis(c.JamPollIntervalMs) }
func (c *Config) PmmPollInterval() time.Duration     { return millis(c.PmmPollIntervalMs) }
func (c *Config) ReceiptPollInterval() time.Duration { return millis(c.ReceiptPollIntervalMs) }

// BindFlags registers the persistent flags shared by every command.
func BindFlags(rootCMD *cobra.Command) {
	rootCMD.PersistentFlags().String(ConfigFlagName, "env", "Path to JSON/YAML configuration file or 'env' to read from environment")
	_ = viper.BindPFlag(ConfigFlagName, rootCMD.PersistentFlags().Lookup(ConfigFlagName))

	rootCMD.PersistentFlags().String(EnvFlagName, "", "API environment (PROD or TEST)")
	_ = viper.BindPFlag(EnvFlagName, rootCMD.PersistentFlags().Lookup(EnvFlagName))

	rootCMD.PersistentFlags().String(ChainFlagName, "", "Chain name or id")
	_ = viper.BindPFlag(ChainFlagName, rootCMD.PersistentFlags().Lookup(ChainFlagName))

	rootCMD.PersistentFlags().String(RPCURLFlagName, "", "RPC endpoint, defaults to the public RPC of the chain")
	_ = viper.BindPFlag(RPCURLFlagName, rootCMD.PersistentFlags().Lookup(RPCURLFlagName))

	rootCMD.PersistentFlags().String(PrivateKeyFlagName, "", "Hex encoded private key used for signing")
	_ = viper.BindPFlag(PrivateKeyFlagName, rootCMD.PersistentFlags().Lookup(PrivateKeyFlagName))

	rootCMD.PersistentFlags().String(LogLevelFlagName, "", "Log level (debug, info, warn, error)")
	_ = viper.BindPFlag(LogLevelFlagName, rootCMD.PersistentFlags().Lookup(LogLevelFlagName))
}

// Load reads the configuration from the file or environment selected by the config flag,
// applies command line overrides and defaults and validates the result.
func Load(v *viper.Viper) (*Config, error) {
	var c *Config
	var err error

	source := v.GetString(ConfigFlagName)
	if source == "" || strings.ToLower(source) == "env" {
		c, err = GetConfigFromENV()
	} else {
		c, err = GetConfigFromFile(source)
	}
	if err != nil {
		return nil, err
	}

	overrides := &Config{
		Env:        v.GetString(EnvFlagName),
		Chain:      v.GetString(ChainFlagName),
		RPCURL:     v.GetString(RPCURLFlagName),
		PrivateKey: v.GetString(PrivateKeyFlagName),
		LogLevel:   v.GetString(LogLevelFlagName),
	}
	err = mergo.Merge(c, overrides, mergo.WithOverride)
	if err != nil {
		return nil, err
	}

	return finalize(c)
}

// GetConfigFromFile decodes the configuration from a JSON or YAML file.
func GetConfigFromFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	err := v.ReadInConfig()
	if err != nil {
		return nil, fmt.Errorf("failed reading config file %s: %w", path, err)
	}

	return decode(v.AllSettings())
}

// GetConfigFromENV decodes the configuration from BEBOP_ prefixed environment variables.
func GetConfigFromENV() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(ENV_PREFIX)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	keys := make(map[string]interface{})
	err := mapstructure.Decode(Config{}, &keys)
	if err != nil {
		return nil, err
	}
	for key, value := range keys {
		if _, nested := value.(map[string]interface{}); nested {
			continue
		}
		_ = v.BindEnv(key)
	}
	_ = v.BindEnv("basicAuth.username")
	_ = v.BindEnv("basicAuth.password")

	return decode(v.AllSettings())
}

func decode(raw map[string]interface{}) (*Config, error) {
	c := &Config{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           c,
	})
	if err != nil {
		return nil, err
	}

	err = decoder.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("failed decoding config: %w", err)
	}
	return c, nil
}

func finalize(c *Config) (*Config, error) {
	err := defaults.Set(c)
	if err != nil {
		return nil, err
	}

	c.Env = strings.ToUpper(c.Env)
	err = c.Validate()
	if err != nil {
		return nil, err
	}
	return c, nil
}
