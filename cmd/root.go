package cmd

import (
	"fmt"

	"ethaddr/api"
	"ethaddr/config"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
)

var (
	version = "1.0.0"
)

var (
	apiKeyFlag  string
	addressFlag string
	networkFlag string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ethaddr",
	Short: "Query Ethereum address information from Etherscan",
	Long: `Ethaddr is a read-only command-line client for the Etherscan API.
It answers three questions about a configured Ethereum address: its ETH
balance, its transaction history, and its balance of any ERC-20 token.

Features:
  • ETH balance in wei or formatted ETH
  • Normal-transaction history with block-range filtering
  • ERC-20 token balances by contract address
  • Mainnet and Sepolia support
  • Configuration via .env file, environment, or flags

Configuration:
  ETHERSCAN_API_KEY        API key (required, or --api-key)
  ETHEREUM_ADDRESS         Address to query (required, or --address)
  TOKEN_CONTRACT_ADDRESS   Default token contract for 'token'
  ETHERSCAN_NETWORK        mainnet (default) or sepolia
  ETHERSCAN_TIMEOUT        HTTP timeout in seconds

Examples:
  ethaddr balance                 # ETH balance of the configured address
  ethaddr balance --wei           # Raw wei balance only
  ethaddr transactions --limit 5  # First 5 transactions
  ethaddr token 0xdAC1...831ec7   # ERC-20 balance by contract`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&apiKeyFlag, "api-key", "", "Etherscan API key (overrides ETHERSCAN_API_KEY)")
	rootCmd.PersistentFlags().StringVar(&addressFlag, "address", "", "Ethereum address to query (overrides ETHEREUM_ADDRESS)")
	rootCmd.PersistentFlags().StringVar(&networkFlag, "network", "", "Network: mainnet or sepolia (overrides ETHERSCAN_NETWORK)")

	// Add subcommands
	rootCmd.AddCommand(balanceCmd)
	rootCmd.AddCommand(transactionsCmd)
	rootCmd.AddCommand(tokenCmd)
	rootCmd.AddCommand(versionCmd)
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Ethaddr v%s\n", version)
	},
}

// newClient assembles an api.Client from the environment config with
// flag overrides applied on top.
func newClient() (*api.Client, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, config.Config{}, err
	}

	if apiKeyFlag != "" {
		cfg.APIKey = apiKeyFlag
	}
	if addressFlag != "" {
		cfg.Address = addressFlag
	}
	if networkFlag != "" {
		cfg.Network = networkFlag
	}

	if cfg.APIKey == "" {
		return nil, cfg, fmt.Errorf("missing API key. Set %s or use --api-key", config.EnvAPIKey)
	}
	if cfg.Address == "" {
		return nil, cfg, fmt.Errorf("missing address. Set %s or use --address", config.EnvAddress)
	}

	var opts []api.Option
	switch cfg.Network {
	case "", api.NetworkMainnet:
		// mainnet is the client default
	case api.NetworkSepolia:
		opts = append(opts, api.WithBaseURL(api.SepoliaAPIURL))
	default:
		return nil, cfg, fmt.Errorf("invalid network: %s. Use 'mainnet' or 'sepolia'", cfg.Network)
	}

	if cfg.BaseURL != "" {
		opts = append(opts, api.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, api.WithTimeout(cfg.Timeout))
	}

	return api.NewClient(cfg.APIKey, cfg.Address, opts...), cfg, nil
}

// displayAddress renders an address in EIP-55 checksum form when it
// parses as a hex address, otherwise as given. Queries always use the
// address exactly as configured.
func displayAddress(addr string) string {
	if common.IsHexAddress(addr) {
		return common.HexToAddress(addr).Hex()
	}
	return addr
}
