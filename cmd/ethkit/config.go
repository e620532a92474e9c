package main

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config holds settings read from ethkit.yaml and ETHKIT_* variables.
type Config struct {
	// SelfTestOnStart runs the known-answer tests before every command.
	SelfTestOnStart bool `mapstructure:"selftest_on_start"`

	// StrictMnemonic rejects mnemonics that fail the BIP-39 word list and
	// checksum checks before deriving a seed.
	StrictMnemonic bool `mapstructure:"strict_mnemonic"`
}

// loadConfig reads configFile when given, otherwise an optional ethkit.yaml
// from the working directory or $HOME/.config/ethkit. Environment variables
// override both.
func loadConfig(configFile string) (*Config, error) {
	v := viper.New()
	v.SetDefault("selftest_on_start", false)
	v.SetDefault("strict_mnemonic", false)

	v.SetEnvPrefix("ethkit")
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("ethkit")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/ethkit")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}
