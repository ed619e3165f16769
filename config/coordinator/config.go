// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package coordinator

import (
	"fmt"
	"time"
)

type CoordinatorConfig struct {
	LogLevel                  string
	Env                       string
	Id                        string
	ApiAddr                   string
	HealthPort                uint16
	OpenTelemetryCollectorURL string
	RequestTTL                time.Duration
	StaleCheckInterval        time.Duration
	P2PConfig                 P2PConfig
	CoinmarketcapConfig       CoinmarketcapConfig
	TopologyConfiguration     TopologyConfiguration
}

type P2PConfig struct {
	Key  string
	Port uint16
}

// CoinmarketcapConfig configures the fallback usd price source used when a
// chain has no on-chain feed for an asset.
type CoinmarketcapConfig struct {
	Url    string
	ApiKey string
	MaxAge time.Duration
}

// TopologyConfiguration points to the hub-spoke topology document shared
// between coordinator replicas.
type TopologyConfiguration struct {
	Url  string `mapstructure:"Url" json:"url"`
	Hash string `mapstructure:"Hash" json:"hash"`
	Path string `mapstructure:"Path" json:"path" default:"./topology.json"`
}

type RawCoordinatorConfig struct {
	LogLevel                  string                `mapstructure:"LogLevel" json:"logLevel" default:"info"`
	Env                       string                `mapstructure:"Env" json:"env"`
	Id                        string                `mapstructure:"Id" json:"id"`
	ApiAddr                   string                `mapstructure:"ApiAddr" json:"apiAddr" default:":8080"`
	HealthPort                uint16                `mapstructure:"HealthPort" json:"healthPort" default:"9001"`
	OpenTelemetryCollectorURL string                `mapstructure:"OpenTelemetryCollectorURL" json:"openTelemetryCollectorURL"`
	RequestTTLMinutes         uint64                `mapstructure:"RequestTTLMinutes" json:"requestTTLMinutes" default:"60"`
	StaleCheckMinutes         uint64                `mapstructure:"StaleCheckMinutes" json:"staleCheckMinutes" default:"5"`
	P2PKey                    string                `mapstructure:"P2PKey" json:"p2pKey"`
	P2PPort                   uint16                `mapstructure:"P2PPort" json:"p2pPort" default:"9000"`
	CoinmarketcapUrl          string                `mapstructure:"CoinmarketcapUrl" json:"coinmarketcapUrl"`
	CoinmarketcapApiKey       string                `mapstructure:"CoinmarketcapApiKey" json:"coinmarketcapApiKey"`
	CoinmarketcapMaxAge       uint64                `mapstructure:"CoinmarketcapMaxAgeMinutes" json:"coinmarketcapMaxAgeMinutes" default:"10"`
	TopologyConfiguration     TopologyConfiguration `mapstructure:"TopologyConfiguration" json:"topologyConfiguration"`
}

func (c *RawCoordinatorConfig) Validate() error {
	if c.RequestTTLMinutes == 0 {
		return fmt.Errorf("required field coordinator.RequestTTLMinutes empty")
	}
	return nil
}

// ParseConfig converts a validated raw config into a runtime CoordinatorConfig
func ParseConfig(raw *RawCoordinatorConfig) (*CoordinatorConfig, error) {
	if err := raw.Validate(); err != nil {
		return nil, err
	}

	return &CoordinatorConfig{
		LogLevel:                  raw.LogLevel,
		Env:                       raw.Env,
		Id:                        raw.Id,
		ApiAddr:                   raw.ApiAddr,
		HealthPort:                raw.HealthPort,
		OpenTelemetryCollectorURL: raw.OpenTelemetryCollectorURL,
		// nolint:gosec
		RequestTTL: time.Duration(raw.RequestTTLMinutes) * time.Minute,
		// nolint:gosec
		StaleCheckInterval: time.Duration(raw.StaleCheckMinutes) * time.Minute,
		P2PConfig: P2PConfig{
			Key:  raw.P2PKey,
			Port: raw.P2PPort,
		},
		CoinmarketcapConfig: CoinmarketcapConfig{
			Url:    raw.CoinmarketcapUrl,
			ApiKey: raw.CoinmarketcapApiKey,
			// nolint:gosec
			MaxAge: time.Duration(raw.CoinmarketcapMaxAge) * time.Minute,
		},
		TopologyConfiguration: raw.TopologyConfiguration,
	}, nil
}
