package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables read at startup.
const (
	EnvAPIKey          = "ETHERSCAN_API_KEY"
	EnvAddress         = "ETHEREUM_ADDRESS"
	EnvContractAddress = "TOKEN_CONTRACT_ADDRESS"
	EnvNetwork         = "ETHERSCAN_NETWORK"
	EnvBaseURL         = "ETHERSCAN_BASE_URL"
	EnvTimeout         = "ETHERSCAN_TIMEOUT"
)

// Config holds everything the CLI needs to build an api.Client.
// APIKey and Address are required; the rest keep their zero value when
// unset and fall back to client defaults.
type Config struct {
	APIKey          string
	Address         string
	ContractAddress string
	Network         string
	BaseURL         string
	Timeout         time.Duration
}

// Load reads configuration from a .env file in the working directory
// (if present) and the process environment. Required values are
// checked by the caller so that command-line flags can still fill
// them in.
func Load() (Config, error) {
	// A missing .env file is fine; the environment may carry everything
	_ = godotenv.Load()

	cfg := Config{
		APIKey:          os.Getenv(EnvAPIKey),
		Address:         os.Getenv(EnvAddress),
		ContractAddress: os.Getenv(EnvContractAddress),
		Network:         os.Getenv(EnvNetwork),
		BaseURL:         os.Getenv(EnvBaseURL),
	}

	if raw := os.Getenv(EnvTimeout); raw != "" {
		secs, err := strconv.Atoi(raw)
		if err != nil || secs <= 0 {
			return Config{}, fmt.Errorf("invalid %s: %q (want seconds)", EnvTimeout, raw)
		}
		cfg.Timeout = time.Duration(secs) * time.Second
	}

	return cfg, nil
}
