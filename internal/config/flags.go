// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SMS Platform Authors

package config

import (
	"errors"
	"flag"
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

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-ban-threshold consecutive failures before auto-ban
//	-bcrypt-cost bcrypt work factor for password hashing
//	-seed-admin create a bootstrap admin account at startup
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-adapter-address authgate server address used by the client
//	-adapter-timeout outbound request timeout used by the client
func ParseFlags() *StructuredConfig {
	var serverAddress, adapterAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var banThreshold int
	var bcryptCost int
	var seedAdmin bool
	var requestTimeout time.Duration
	var adapterTimeout time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.IntVar(&banThreshold, "ban-threshold", 0, "Consecutive failures before auto-ban")
	flag.IntVar(&bcryptCost, "bcrypt-cost", 0, "Bcrypt work factor")
	flag.BoolVar(&seedAdmin, "seed-admin", false, "Seed a bootstrap admin account")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.Var(&adapterAddress, "adapter-address", "Server address used by the client host:port")
	flag.DurationVar(&adapterTimeout, "adapter-timeout", 0, "Outbound request timeout used by the client")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			BanThreshold: banThreshold,
			BcryptCost:   bcryptCost,
			SeedAdmin:    seedAdmin,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress.String(),
			RequestTimeout: adapterTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string so the value
// does not shadow other configuration sources during merging.
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
		return errors.New("port number must be between 1 and 65535")
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
