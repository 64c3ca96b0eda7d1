package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var weiFlag bool

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Check the ETH balance of the configured address",
	Long: `Check the ETH balance of the configured address.

The explorer reports balances in wei; by default the value is converted
to ETH for display.

Examples:
  ethaddr balance          # Balance in ETH
  ethaddr balance --wei    # Raw wei balance only`,
	Args: cobra.NoArgs,
	RunE: runBalance,
}

func init() {
	balanceCmd.Flags().BoolVar(&weiFlag, "wei", false, "Print the raw wei balance only")
}

func runBalance(cmd *cobra.Command, args []string) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}

	balance, err := client.GetBalance()
	if err != nil {
		return fmt.Errorf("failed to fetch balance: %w", err)
	}

	if weiFlag {
		fmt.Println(balance)
		return nil
	}

	fmt.Printf("🔷 Ethereum: %s ETH\n", formatUnits(balance, etherDecimals))
	fmt.Printf("   📍 Address: %s\n", displayAddress(client.Address()))
	return nil
}

// ETH has 18 decimal places (1 ETH = 10^18 wei)
const etherDecimals = 18

// formatUnits converts a smallest-unit numeric string to its display
// denomination. Values that don't parse are shown as-is.
func formatUnits(raw string, decimals int32) string {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return raw
	}
	return d.Shift(-decimals).String()
}
