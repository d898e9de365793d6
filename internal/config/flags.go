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
//	-movies-dir directory with per-movie metadata and review files
//	-users-dir directory with users.json and movieLists.json
//	-session-timeout session lifetime (e.g., "24h")
//	-penalty-threshold penalty points at which login is blocked
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var moviesDir string
	var usersDir string
	var sessionTimeout time.Duration
	var penaltyThreshold int
	var requestTimeout time.Duration
	var jsonConfigPath string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&moviesDir, "movies-dir", "", "Movies data directory")
	flag.StringVar(&usersDir, "users-dir", "", "Users data directory")
	flag.DurationVar(&sessionTimeout, "session-timeout", 0, "Session timeout (e.g., 24h)")
	flag.IntVar(&penaltyThreshold, "penalty-threshold", 0, "Penalty points blocking login")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			SessionTimeout:   sessionTimeout,
			PenaltyThreshold: penaltyThreshold,
		},
		Storage: Storage{
			Files: Files{
				MoviesDir: moviesDir,
				UsersDir:  usersDir,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
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
// It validates the port range, checks IP correctness unless host is
// "localhost", and returns an error if the format or values are invalid.
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
