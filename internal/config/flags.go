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

// ParseFlags parses all daemon configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-handle-sign-key activation handle signing key
//	-handle-issuer activation handle issuer
//	-handle-ttl activation handle lifetime (e.g., "5m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-vault-timeout default vault timeout ("never", "on_app_restart", "15m")
//	-vault-timeout-action default vault timeout action ("lock", "logout")
//	-log-level log level
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var handleSignKey string
	var handleIssuer string
	var handleTTL time.Duration
	var requestTimeout time.Duration
	var vaultTimeout string
	var vaultTimeoutAction string
	var logLevel string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&handleSignKey, "handle-sign-key", "", "Activation handle signing key")
	flag.StringVar(&handleIssuer, "handle-issuer", "", "Activation handle issuer")
	flag.DurationVar(&handleTTL, "handle-ttl", 0, "Activation handle lifetime (e.g., 5m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&vaultTimeout, "vault-timeout", "", "Default vault timeout (never, on_app_restart, 15m)")
	flag.StringVar(&vaultTimeoutAction, "vault-timeout-action", "", "Default vault timeout action (lock, logout)")
	flag.StringVar(&logLevel, "log-level", "", "Log level")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			HandleSignKey: handleSignKey,
			HandleIssuer:  handleIssuer,
			HandleTTL:     handleTTL,
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
		Vault: Vault{
			DefaultTimeout:       vaultTimeout,
			DefaultTimeoutAction: vaultTimeoutAction,
		},
		Log:          Log{Level: logLevel},
		JSONFilePath: jsonConfigPath,
	}
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

	if port < 1 {
		return errors.New("port number is a positive integer")
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
