// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-skip-migrations do not apply migrations on start
//	-c/-config json file path with configs
//	-access-token-secret access token signing secret
//	-refresh-token-secret refresh token signing secret
//	-access-token-ttl access token lifetime (e.g., "15m")
//	-refresh-token-ttl refresh token lifetime (e.g., "7d")
//	-token-issuer token issuer name
//	-password-cost bcrypt cost factor
//	-log-level minimal log level
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-session-sweep-interval expired sessions reaper period (e.g., "10m")
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN string
	var skipMigrations bool
	var jsonConfigPath string
	var accessTokenSecret, refreshTokenSecret string
	var accessTokenTTL, refreshTokenTTL string
	var tokenIssuer string
	var passwordCost int
	var logLevel string
	var requestTimeout time.Duration
	var sweepInterval time.Duration

	fs := flag.NewFlagSet("worklog-auth", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.BoolVar(&skipMigrations, "skip-migrations", false, "Do not apply migrations on start")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&accessTokenSecret, "access-token-secret", "", "Access token signing secret")
	fs.StringVar(&refreshTokenSecret, "refresh-token-secret", "", "Refresh token signing secret")
	fs.StringVar(&accessTokenTTL, "access-token-ttl", "", "Access token lifetime (e.g., 15m)")
	fs.StringVar(&refreshTokenTTL, "refresh-token-ttl", "", "Refresh token lifetime (e.g., 7d)")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.IntVar(&passwordCost, "password-cost", 0, "bcrypt cost factor")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&sweepInterval, "session-sweep-interval", 0, "Expired sessions sweep interval, 0 disables")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			AccessTokenSecret:  accessTokenSecret,
			RefreshTokenSecret: refreshTokenSecret,
			AccessTokenTTL:     accessTokenTTL,
			RefreshTokenTTL:    refreshTokenTTL,
			TokenIssuer:        tokenIssuer,
			PasswordCost:       passwordCost,
			LogLevel:           logLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN:            databaseDSN,
				SkipMigrations: skipMigrations,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			SessionSweepInterval: sweepInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host means all interfaces. Any other host must be "localhost" or
// a valid IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
