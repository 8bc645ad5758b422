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

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Monthly spending report with budget consumption",
		Long: `Show a month's total spending and income, plus a per-category
breakdown with budget percentage and remaining allowance.`,
		RunE: runReport,
	}

	cmd.Flags().IntP("year", "y", 0, "Year to report (default: current)")
	cmd.Flags().IntP("month", "m", 0, "Month to report, 1-12 (default: current)")

	return cmd
}

func runReport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	yearFlag, _ := cmd.Flags().GetInt("year")
	monthFlag, _ := cmd.Flags().GetInt("month")
	year, month, err := resolveMonth(yearFlag, monthFlag)
	if err != nil {
		return err
	}

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	txns, budgets, err := loadSnapshots(ctx, store)
	if err != nil {
		return err
	}

	spending := ledger.MonthlyTotalSpending(txns, year, month)
	income := ledger.MonthlyIncome(txns, year, month)
	byCategory := ledger.CategorySpending(txns, year, month)

	period := fmt.Sprintf("%s %d", month, year)
	summary := fmt.Sprintf("Spent: %s\nIncome: %s\nNet: %s",
		formatAmount(spending),
		formatAmount(income),
		cli.BoldStyle.Render(formatAmount(income-spending)))
	fmt.Println(cli.RenderBox(fmt.Sprintf("%s Overview", period), summary))

	if len(byCategory) == 0 {
		fmt.Println(cli.InfoStyle.Render("No spending recorded for this month."))
		return nil
	}

	// Deterministic row order for output
	names := make([]string, 0, len(byCategory))
	for name := range byCategory {
		names = append(names, name)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer func() { _ = w.Flush() }()

	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		cli.TableHeaderStyle.Render("Category"),
		cli.TableHeaderStyle.Render("Spent"),
		cli.TableHeaderStyle.Render("Budget"),
		cli.TableHeaderStyle.Render("Used"),
		cli.TableHeaderStyle.Render("Remaining"))
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		strings.Repeat("-", 16),
		strings.Repeat("-", 10),
		strings.Repeat("-", 10),
		strings.Repeat("-", 6),
		strings.Repeat("-", 10))

	for _, name := range names {
		spent := byCategory[name]
		label := name
		if label == "" {
			label = cli.SubtleStyle.Render("(uncategorized)")
		}

		budget := ledger.BudgetFor(budgets, name)
		if budget == nil {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				label, formatAmount(spent),
				cli.SubtleStyle.Render("-"),
				cli.SubtleStyle.Render("-"),
				cli.SubtleStyle.Render("-"))
			continue
		}

		total := ledger.RolloverAdjustedBudget(*budget)
		pct := ledger.SpendingPercentage(byCategory, budgets, name)
		remaining := ledger.RemainingBudget(spent, total)

		remainingCell := formatAmount(remaining)
		if remaining < 0 {
			remainingCell = cli.ErrorStyle.Render(remainingCell)
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%.0f%%\t%s\n",
			label, formatAmount(spent), formatAmount(total), pct, remainingCell)
	}

	return nil
}
