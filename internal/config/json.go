// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON-friendly
// duration fields.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey       string `json:"token_sign_key"`
		TokenIssuer        string `json:"token_issuer"`
		StateSecret        string `json:"state_secret"`
		TokenEncryptionKey string `json:"token_encryption_key"`
		Version            string `json:"version"`
	} `json:"app,omitempty"`

	Remote struct {
		ClientID       string   `json:"client_id"`
		ClientSecret   string   `json:"client_secret"`
		RedirectURI    string   `json:"redirect_uri"`
		SandboxURL     string   `json:"sandbox_url"`
		ProductionURL  string   `json:"production_url"`
		APIVersion     string   `json:"api_version"`
		RequestTimeout Duration `json:"request_timeout"`
		RateLimit      float64  `json:"rate_limit"`
		RateBurst      int      `json:"rate_burst"`
	} `json:"remote,omitempty"`

	Webhook struct {
		Secret       string   `json:"secret"`
		ReplayWindow Duration `json:"replay_window"`
	} `json:"webhook,omitempty"`

	Sync struct {
		Interval            Duration `json:"interval"`
		RefreshThreshold    Duration `json:"refresh_threshold"`
		StateTTL            Duration `json:"state_ttl"`
		FullSyncWindow      int      `json:"full_sync_window"`
		IncrementalLookback Duration `json:"incremental_lookback"`
		IncrementalOverlap  Duration `json:"incremental_overlap"`
	} `json:"sync,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Workers struct {
		PoolSize int `json:"pool_size"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:       jsonCfg.App.TokenSignKey,
			TokenIssuer:        jsonCfg.App.TokenIssuer,
			StateSecret:        jsonCfg.App.StateSecret,
			TokenEncryptionKey: jsonCfg.App.TokenEncryptionKey,
			Version:            jsonCfg.App.Version,
		},
		Remote: Remote{
			ClientID:       jsonCfg.Remote.ClientID,
			ClientSecret:   jsonCfg.Remote.ClientSecret,
			RedirectURI:    jsonCfg.Remote.RedirectURI,
			SandboxURL:     jsonCfg.Remote.SandboxURL,
			ProductionURL:  jsonCfg.Remote.ProductionURL,
			APIVersion:     jsonCfg.Remote.APIVersion,
			RequestTimeout: time.Duration(jsonCfg.Remote.RequestTimeout),
			RateLimit:      jsonCfg.Remote.RateLimit,
			RateBurst:      jsonCfg.Remote.RateBurst,
		},
		Webhook: Webhook{
			Secret:       jsonCfg.Webhook.Secret,
			ReplayWindow: time.Duration(jsonCfg.Webhook.ReplayWindow),
		},
		Sync: Sync{
			Interval:            time.Duration(jsonCfg.Sync.Interval),
			RefreshThreshold:    time.Duration(jsonCfg.Sync.RefreshThreshold),
			StateTTL:            time.Duration(jsonCfg.Sync.StateTTL),
			FullSyncWindow:      jsonCfg.Sync.FullSyncWindow,
			IncrementalLookback: time.Duration(jsonCfg.Sync.IncrementalLookback),
			IncrementalOverlap:  time.Duration(jsonCfg.Sync.IncrementalOverlap),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Workers: Workers{
			PoolSize: jsonCfg.Workers.PoolSize,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
