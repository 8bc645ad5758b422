package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/saffronbudget/saffron/internal/cli"
	"github.com/saffronbudget/saffron/internal/ledger"
)

func trendsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trends",
		Short: "Monthly spending and income series",
		Long:  `Show spending and income for the last N calendar months, oldest first.`,
		RunE:  runTrends,
	}

	cmd.Flags().IntP("months", "n", 6, "Number of months to include")

	return cmd
}

func runTrends(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	months, _ := cmd.Flags().GetInt("months")
	if months <= 0 {
		return fmt.Errorf("invalid month count %d: must be positive", months)
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

	now := time.Now()
	series := ledger.MonthlySeries(txns, months, now.Year(), now.Month())

	fmt.Println(cli.FormatTitle(fmt.Sprintf("Last %d months", months)))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer func() { _ = w.Flush() }()

	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		cli.TableHeaderStyle.Render("Month"),
		cli.TableHeaderStyle.Render("Spending"),
		cli.TableHeaderStyle.Render("Income"),
		cli.TableHeaderStyle.Render("Net"))
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		strings.Repeat("-", 10),
		strings.Repeat("-", 10),
		strings.Repeat("-", 10),
		strings.Repeat("-", 10))

	for _, m := range series {
		net := m.Income - m.Spending
		netCell := formatAmount(net)
		if net < 0 {
			netCell = cli.ErrorStyle.Render(netCell)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			m.Label(), formatAmount(m.Spending), formatAmount(m.Income), netCell)
	}

	return nil
}
