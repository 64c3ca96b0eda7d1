package cmd

import (
	"fmt"

	"ethaddr/config"

	"github.com/spf13/cobra"
)

var (
	decimalsFlag int32
	rawFlag      bool
)

var tokenCmd = &cobra.Command{
	Use:   "token [contract]",
	Short: "Check an ERC-20 token balance of the configured address",
	Long: `Check the balance of an ERC-20 token held by the configured address.

The token is identified by its contract address, given as an argument
or via TOKEN_CONTRACT_ADDRESS. The explorer reports the balance in the
token's smallest unit; --decimals controls the display conversion.

Examples:
  ethaddr token 0xdAC17F958D2ee523a2206206994597C13D831ec7
  ethaddr token --decimals 6    # Tokens with 6 decimal places (e.g. USDT)
  ethaddr token --raw           # Smallest-unit balance only`,
	Args: cobra.MaximumNArgs(1),
	RunE: runToken,
}

func init() {
	tokenCmd.Flags().Int32Var(&decimalsFlag, "decimals", 18, "Token decimal places for display")
	tokenCmd.Flags().BoolVar(&rawFlag, "raw", false, "Print the smallest-unit balance only")
}

func runToken(cmd *cobra.Command, args []string) error {
	client, cfg, err := newClient()
	if err != nil {
		return err
	}

	contract := cfg.ContractAddress
	if len(args) > 0 {
		contract = args[0]
	}
	if contract == "" {
		return fmt.Errorf("missing contract address. Pass it as an argument or set %s", config.EnvContractAddress)
	}

	balance, err := client.GetTokenBalance(contract)
	if err != nil {
		return fmt.Errorf("failed to fetch token balance: %w", err)
	}

	if rawFlag {
		fmt.Println(balance)
		return nil
	}

	fmt.Printf("🪙 Token balance: %s\n", formatUnits(balance, decimalsFlag))
	fmt.Printf("   📄 Contract: %s\n", displayAddress(contract))
	fmt.Printf("   📍 Address: %s\n", displayAddress(client.Address()))
	return nil
}
