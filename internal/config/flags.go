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

// ParseFlags parses configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-env-file path to a .env file
//	-token-sign-key operator token verification key
//	-token-issuer operator token issuer
//	-state-secret OAuth state signing secret
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
//	-remote-timeout outbound request timeout
//	-sync-interval incremental sync period
//	-pool-size concurrent owner syncs
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("crm-sync", flag.ContinueOnError)

	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var dotEnvPath string
	var tokenSignKey string
	var tokenIssuer string
	var stateSecret string
	var requestTimeout time.Duration
	var remoteTimeout time.Duration
	var syncInterval time.Duration
	var poolSize int

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&dotEnvPath, "env-file", "", "Dotenv file path")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Operator token verification key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Operator token issuer")
	fs.StringVar(&stateSecret, "state-secret", "", "OAuth state signing secret")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&remoteTimeout, "remote-timeout", 0, "Remote API call timeout (e.g., 30s)")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Incremental sync interval (e.g., 5m)")
	fs.IntVar(&poolSize, "pool-size", 0, "Concurrent owner syncs")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey: tokenSignKey,
			TokenIssuer:  tokenIssuer,
			StateSecret:  stateSecret,
		},
		Remote: Remote{
			RequestTimeout: remoteTimeout,
		},
		Sync: Sync{
			Interval: syncInterval,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			PoolSize: poolSize,
		},
		JSONFilePath: jsonConfigPath,
		DotEnvPath:   dotEnvPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// It returns "" when neither Host nor Port are set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
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
		return errors.New("port number must be within 1..65535")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
