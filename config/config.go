// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/creasty/defaults"
	"github.com/imdario/mergo"
	"github.com/spf13/viper"

	"github.com/omnivault/vault-accounting/config/coordinator"
)

type Config struct {
	CoordinatorConfig *coordinator.CoordinatorConfig
	ChainConfigs      []map[string]interface{}
}

type RawConfig struct {
	CoordinatorConfig coordinator.RawCoordinatorConfig `mapstructure:"coordinator" json:"coordinator"`
	ChainConfigs      []map[string]interface{}         `mapstructure:"chains" json:"chains"`
}

// GetConfigFromFile reads config from file, overriding values with the
// shared config when provided
func GetConfigFromFile(path string, sharedConfig *Config) (*Config, error) {
	rawConfig := RawConfig{}

	viper.SetConfigFile(path)
	viper.SetConfigType("json")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&rawConfig)
	if err != nil {
		return nil, err
	}

	return processRawConfig(rawConfig, sharedConfig)
}

// GetConfigFromENV reads config from the CVA_CONFIG env variable holding the
// full JSON configuration, overriding values with the shared config
func GetConfigFromENV(sharedConfig *Config) (*Config, error) {
	rawConfig := RawConfig{}

	data := viper.GetString("CVA_CONFIG")
	if data == "" {
		viper.AutomaticEnv()
		viper.SetEnvPrefix("CVA")
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		data = viper.GetString("CONFIG")
	}
	if data == "" {
		return nil, fmt.Errorf("shared configuration environment variable empty")
	}

	err := json.Unmarshal([]byte(data), &rawConfig)
	if err != nil {
		return nil, err
	}

	return processRawConfig(rawConfig, sharedConfig)
}

// GetSharedConfigFromNetwork fetches the organization wide shared
// configuration. Local config always takes precedence over shared values.
func GetSharedConfigFromNetwork(url string) (*Config, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching shared config failed with status %d", resp.StatusCode)
	}

	rawConfig := RawConfig{}
	err = json.NewDecoder(resp.Body).Decode(&rawConfig)
	if err != nil {
		return nil, err
	}

	return processRawConfig(rawConfig, nil)
}

func processRawConfig(rawConfig RawConfig, sharedConfig *Config) (*Config, error) {
	if err := defaults.Set(&rawConfig); err != nil {
		return nil, err
	}

	coordinatorConfig, err := coordinator.ParseConfig(&rawConfig.CoordinatorConfig)
	if err != nil {
		return nil, err
	}

	config := &Config{
		CoordinatorConfig: coordinatorConfig,
		ChainConfigs:      rawConfig.ChainConfigs,
	}
	if sharedConfig == nil {
		return config, nil
	}

	err = mergo.Merge(config, sharedConfig)
	if err != nil {
		return nil, err
	}
	return config, nil
}
