// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for the JSON file source.
// Token lifetimes stay strings since they use the <n><s|m|h|d> format;
// timeouts and intervals accept Go duration strings or nanoseconds.
type StructuredJSONConfig struct {
	App struct {
		AccessTokenSecret  string `json:"access_token_secret"`
		RefreshTokenSecret string `json:"refresh_token_secret"`
		AccessTokenTTL     string `json:"access_token_ttl"`
		RefreshTokenTTL    string `json:"refresh_token_ttl"`
		TokenIssuer        string `json:"token_issuer"`
		PasswordCost       int    `json:"password_cost"`
		LogLevel           string `json:"log_level"`
		Version            string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN            string `json:"dsn"`
			SkipMigrations bool   `json:"skip_migrations"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		SessionSweepInterval Duration `json:"session_sweep_interval"`
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
			AccessTokenSecret:  jsonCfg.App.AccessTokenSecret,
			RefreshTokenSecret: jsonCfg.App.RefreshTokenSecret,
			AccessTokenTTL:     jsonCfg.App.AccessTokenTTL,
			RefreshTokenTTL:    jsonCfg.App.RefreshTokenTTL,
			TokenIssuer:        jsonCfg.App.TokenIssuer,
			PasswordCost:       jsonCfg.App.PasswordCost,
			LogLevel:           jsonCfg.App.LogLevel,
			Version:            jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN:            jsonCfg.Storage.DB.DSN,
				SkipMigrations: jsonCfg.Storage.DB.SkipMigrations,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			SessionSweepInterval: time.Duration(jsonCfg.Workers.SessionSweepInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
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
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
