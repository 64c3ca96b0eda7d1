package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"ethaddr/api"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	limitFlag      int
	startBlockFlag int64
	endBlockFlag   int64
	sortFlag       string
)

var transactionsCmd = &cobra.Command{
	Use:     "transactions",
	Aliases: []string{"txs"},
	Short:   "Show transaction history for the configured address",
	Long: `Show the normal-transaction history for the configured address, in
the order the explorer reports it.

Examples:
  ethaddr transactions                 # Full history, oldest first
  ethaddr transactions --limit 5       # Show only the first 5
  ethaddr txs --sort desc              # Newest first
  ethaddr txs --start-block 19000000   # From block 19000000 onward`,
	Args: cobra.NoArgs,
	RunE: runTransactions,
}

func init() {
	transactionsCmd.Flags().IntVarP(&limitFlag, "limit", "l", 0, "Max transactions to display (0 = all)")
	transactionsCmd.Flags().Int64Var(&startBlockFlag, "start-block", 0, "First block to include")
	transactionsCmd.Flags().Int64Var(&endBlockFlag, "end-block", 99999999, "Last block to include")
	transactionsCmd.Flags().StringVar(&sortFlag, "sort", "asc", "Sort order: asc or desc")
}

func runTransactions(cmd *cobra.Command, args []string) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}

	fmt.Println("🔄 Loading transactions...")

	txs, err := client.GetTransactions(
		api.WithStartBlock(startBlockFlag),
		api.WithEndBlock(endBlockFlag),
		api.WithSort(sortFlag),
	)
	if err != nil {
		return fmt.Errorf("failed to fetch transactions: %w", err)
	}

	fmt.Printf("📜 Transaction history for: %s\n\n", displayAddress(client.Address()))

	if len(txs) == 0 {
		fmt.Println("No transactions found")
		return nil
	}

	shown := txs
	if limitFlag > 0 && len(shown) > limitFlag {
		shown = shown[:limitFlag]
	}

	for i, tx := range shown {
		printTransaction(i+1, tx, client.Address())
		if i < len(shown)-1 {
			fmt.Println()
		}
	}

	if len(shown) < len(txs) {
		fmt.Printf("\n📊 Showing %d of %d transactions (use --limit to change)\n", len(shown), len(txs))
	}

	return nil
}

func printTransaction(n int, tx api.Transaction, address string) {
	// Direction indicator
	direction := color.GreenString("⬅️ IN")
	if strings.EqualFold(tx.From, address) {
		direction = color.YellowString("➡️ OUT")
	}

	fmt.Printf("%d. %s | %s\n", n, direction, formatTimestamp(tx.TimeStamp))
	fmt.Printf("   Hash: %s\n", tx.Hash)
	fmt.Printf("   Block: %s\n", tx.BlockNumber)
	fmt.Printf("   From: %s\n", truncateAddress(tx.From))
	fmt.Printf("   To:   %s\n", truncateAddress(tx.To))
	fmt.Printf("   Value: %s ETH\n", formatUnits(tx.Value, etherDecimals))

	if tx.IsError == "1" {
		fmt.Println("   ❌ Failed on-chain")
	}
}

// formatTimestamp renders the service's unix-seconds timestamp string
func formatTimestamp(raw string) string {
	secs, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return raw
	}
	return time.Unix(secs, 0).UTC().Format("2006-01-02 15:04:05")
}

// truncateAddress shortens long blockchain addresses for display
func truncateAddress(address string) string {
	if len(address) <= 12 {
		return address
	}
	return address[:6] + "..." + address[len(address)-6:]
}
