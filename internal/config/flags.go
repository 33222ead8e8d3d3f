package config

import (
	"errors"
	"flag"
	"net"
	"os"
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

// ParseFlags parses the process command line into a partial config.
//
// Flags:
//
//	-a feed address in format [host]:[port]
//	-s signer address used by peers in format [host]:[port]
//	-v vault file path
//	-c/-config json file path with configs
//	-hash-key request integrity hash key
//	-request-timeout feed decision timeout (e.g., "2m")
//	-peer-timeout peer request timeout (e.g., "2m5s")
//	-queue-size feed queue capacity
//	-argon-time argon2id passes (uint32)
//	-argon-memory argon2id memory in KiB (uint32)
//	-argon-threads argon2id lanes (uint8)
//	-log-file log file path
//	-log-level log level
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(flag.CommandLine, os.Args[1:])
}

func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var feedAddress, signerAddress NetAddress
	var vaultPath string
	var jsonConfigPath string
	var hashKey string
	var requestTimeout, peerTimeout time.Duration
	var queueSize int
	var argonTime, argonMemory uint32
	var argonThreads uint8
	var logFile, logLevel string

	fs.Var(&feedAddress, "a", "Feed net address host:port")
	fs.Var(&signerAddress, "s", "Signer net address host:port")
	fs.StringVar(&vaultPath, "v", "", "Vault file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&hashKey, "hash-key", "", "Security hash key")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Decision timeout (e.g., 2m)")
	fs.DurationVar(&peerTimeout, "peer-timeout", 0, "Peer request timeout (e.g., 2m5s)")
	fs.IntVar(&queueSize, "queue-size", 0, "Feed queue capacity")
	fs.Func("argon-time", "Argon2id passes", uintFlag(&argonTime, 32))
	fs.Func("argon-memory", "Argon2id memory in KiB", uintFlag(&argonMemory, 32))
	fs.Func("argon-threads", "Argon2id lanes (max 255)", uintFlag(&argonThreads, 8))
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			HashKey: hashKey,
		},
		Storage: Storage{
			Vault: Vault{Path: vaultPath},
		},
		Feed: Feed{
			HTTPAddress:    feedAddress.String(),
			RequestTimeout: requestTimeout,
			QueueSize:      queueSize,
		},
		Adapter: Adapter{
			HTTPAddress:    signerAddress.String(),
			RequestTimeout: peerTimeout,
		},
		Crypto: Crypto{
			ArgonTime:      argonTime,
			ArgonMemoryKiB: argonMemory,
			ArgonThreads:   argonThreads,
		},
		Log: Log{
			FilePath: logFile,
			Level:    logLevel,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// uintFlag parses a flag straight into its target width, so an out-of-range
// value is a parse error instead of a silent truncation.
func uintFlag[T uint8 | uint32](dst *T, bitSize int) func(string) error {
	return func(s string) error {
		n, err := strconv.ParseUint(s, 10, bitSize)
		if err != nil {
			return err
		}
		*dst = T(n)
		return nil
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns the default server address.
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
