package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/saffronbudget/saffron/internal/cli"
	"github.com/saffronbudget/saffron/internal/ledger"
)

func merchantsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merchants",
		Short: "Top merchants by total spend",
		RunE:  runMerchants,
	}

	cmd.Flags().IntP("top", "t", 10, "Number of merchants to show")

	return cmd
}

func runMerchants(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	topN, _ := cmd.Flags().GetInt("top")
	if topN <= 0 {
		return fmt.Errorf("invalid top count %d: must be positive", topN)
	}

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	txns, _, err := loadSnapshots(ctx, store)
	if err != nil {
		return err
	}

	totals := ledger.MerchantTotals(txns, topN)
	if len(totals) == 0 {
		fmt.Println(cli.InfoStyle.Render("No merchant spending recorded yet."))
		return nil
	}

	fmt.Println(cli.FormatTitle(fmt.Sprintf("Top %d merchants", len(totals))))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer func() { _ = w.Flush() }()

	fmt.Fprintf(w, "%s\t%s\t%s\n",
		cli.TableHeaderStyle.Render("#"),
		cli.TableHeaderStyle.Render("Merchant"),
		cli.TableHeaderStyle.Render("Spent"))
	fmt.Fprintf(w, "%s\t%s\t%s\n",
		strings.Repeat("-", 3),
		strings.Repeat("-", 20),
		strings.Repeat("-", 10))

	for i, mt := range totals {
		fmt.Fprintf(w, "%d\t%s\t%s\n", i+1, mt.Merchant, formatAmount(mt.Amount))
	}

	return nil
}
