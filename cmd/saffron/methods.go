package main

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/saffronbudget/saffron/internal/cli"
	"github.com/saffronbudget/saffron/internal/ledger"
)

func methodsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "methods",
		Short: "Spending by payment method",
		Long: `Show debit spend grouped by payment method (card last digits or UPI),
optionally broken down into the categories dominating each method.`,
		RunE: runMethods,
	}

	cmd.Flags().Bool("by-category", false, "Break each method down by category")

	return cmd
}

func runMethods(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	byCategory, _ := cmd.Flags().GetBool("by-category")

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	txns, _, err := loadSnapshots(ctx, store)
	if err != nil {
		return err
	}

	totals := ledger.PaymentMethodTotals(txns)
	if len(totals) == 0 {
		fmt.Println(cli.InfoStyle.Render("No payment-method spending recorded yet."))
		return nil
	}

	// The map carries no order; sort descending by amount for display.
	methods := make([]string, 0, len(totals))
	for method := range totals {
		methods = append(methods, method)
	}
	sort.Slice(methods, func(i, j int) bool {
		if totals[methods[i]] != totals[methods[j]] {
			return totals[methods[i]] > totals[methods[j]]
		}
		return methods[i] < methods[j]
	})

	breakdown := map[string]map[string]float64{}
	if byCategory {
		breakdown = ledger.PaymentMethodCategoryBreakdown(txns)
	}

	fmt.Println(cli.FormatTitle("Spending by payment method"))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer func() { _ = w.Flush() }()

	fmt.Fprintf(w, "%s\t%s\n",
		cli.TableHeaderStyle.Render("Method"),
		cli.TableHeaderStyle.Render("Spent"))
	fmt.Fprintf(w, "%s\t%s\n", strings.Repeat("-", 12), strings.Repeat("-", 10))

	for _, method := range methods {
		fmt.Fprintf(w, "%s\t%s\n", methodLabel(method), formatAmount(totals[method]))

		if !byCategory {
			continue
		}
		categories := breakdown[method]
		names := make([]string, 0, len(categories))
		for name := range categories {
			names = append(names, name)
		}
		sort.Slice(names, func(i, j int) bool {
			if categories[names[i]] != categories[names[j]] {
				return categories[names[i]] > categories[names[j]]
			}
			return names[i] < names[j]
		})
		for _, name := range names {
			label := name
			if label == "" {
				label = "(uncategorized)"
			}
			fmt.Fprintf(w, "%s\t%s\n",
				cli.SubtleStyle.Render("  "+label),
				cli.SubtleStyle.Render(formatAmount(categories[name])))
		}
	}

	return nil
}

// methodLabel renders the UPI sentinel distinctly from card digits.
func methodLabel(method string) string {
	if method == ledger.AccountUPI {
		return "UPI"
	}
	return "Card •••• " + method
}
