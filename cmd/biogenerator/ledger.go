// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/pdiddy/biogenerator/internal/ledger"
	"github.com/pdiddy/biogenerator/pkg/types"
)

var ledgerCmd = &cobra.Command{
	Use:   "ledger",
	Short: "Inspect the material ledger (balance, history, export)",
	Long: `Ledger reads the SQLite material ledger that extractors credit.
Use subcommands to show balances, recent credits, or export balances.`,
}

// --- balance subcommand ---

var ledgerBalanceCmd = &cobra.Command{
	Use:   "balance [storage]",
	Short: "Show material balances, optionally for one storage entity",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := ledger.NewStore(appConfig.Ledger)
		if err != nil {
			return err
		}
		defer store.Close()

		balances, err := store.Balances(context.Background(), storageArg(args))
		if err != nil {
			return err
		}
		if len(balances) == 0 {
			fmt.Println("No balances recorded.")
			return nil
		}

		data := pterm.TableData{{"Storage", "Material", "Amount"}}
		for _, b := range balances {
			data = append(data, []string{string(b.Storage), string(b.Material), strconv.Itoa(b.Amount)})
		}
		return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	},
}

// --- history subcommand ---

var ledgerHistoryCmd = &cobra.Command{
	Use:   "history [storage]",
	Short: "Show recent credits, newest first",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		store, err := ledger.NewStore(appConfig.Ledger)
		if err != nil {
			return err
		}
		defer store.Close()

		credits, err := store.History(context.Background(), storageArg(args), limit)
		if err != nil {
			return err
		}
		if len(credits) == 0 {
			fmt.Println("No credits recorded.")
			return nil
		}

		data := pterm.TableData{{"When", "Storage", "Material", "Amount"}}
		for _, c := range credits {
			data = append(data, []string{
				c.CreatedAt.Local().Format(time.DateTime),
				string(c.Storage), string(c.Material), fmt.Sprintf("%+d", c.Amount),
			})
		}
		return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	},
}

// --- export subcommand ---

var ledgerExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all balances to stdout as YAML or JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")

		store, err := ledger.NewStore(appConfig.Ledger)
		if err != nil {
			return err
		}
		defer store.Close()

		switch format {
		case "yaml", "":
			return store.ExportYAML(context.Background(), os.Stdout)
		case "json":
			return store.ExportJSON(context.Background(), os.Stdout)
		default:
			return fmt.Errorf("unsupported format %q: use yaml or json", format)
		}
	},
}

func storageArg(args []string) types.EntityID {
	if len(args) == 0 {
		return ""
	}
	return types.EntityID(args[0])
}

func init() {
	ledgerHistoryCmd.Flags().Int("limit", 0, "maximum credits shown (0 = use max-history)")
	ledgerExportCmd.Flags().String("format", "yaml", "export format: yaml or json")

	ledgerCmd.AddCommand(ledgerBalanceCmd)
	ledgerCmd.AddCommand(ledgerHistoryCmd)
	ledgerCmd.AddCommand(ledgerExportCmd)

	rootCmd.AddCommand(ledgerCmd)
}
