package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/saffronbudget/saffron/internal/cli"
	"github.com/saffronbudget/saffron/internal/ledger"
	"github.com/saffronbudget/saffron/internal/model"
)

func budgetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Manage per-category budgets",
		Long:  `Set, list, and delete monthly category budgets, and control surplus rollover.`,
	}

	cmd.AddCommand(listBudgetsCmd())
	cmd.AddCommand(setBudgetCmd())
	cmd.AddCommand(rolloverBudgetCmd())
	cmd.AddCommand(clearRolloverBudgetCmd())
	cmd.AddCommand(deleteBudgetCmd())

	return cmd
}

func listBudgetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all budgets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			budgets, err := store.GetBudgets(ctx)
			if err != nil {
				return fmt.Errorf("failed to get budgets: %w", err)
			}

			if len(budgets) == 0 {
				fmt.Println(cli.InfoStyle.Render("No budgets found. Use 'saffron budget set' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				cli.TableHeaderStyle.Render("Category"),
				cli.TableHeaderStyle.Render("Amount"),
				cli.TableHeaderStyle.Render("Rollover"),
				cli.TableHeaderStyle.Render("Carried"),
				cli.TableHeaderStyle.Render("Total"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 16),
				strings.Repeat("-", 10),
				strings.Repeat("-", 8),
				strings.Repeat("-", 10),
				strings.Repeat("-", 10))

			for i := range budgets {
				b := &budgets[i]
				rollover := cli.SubtleStyle.Render("off")
				if b.RolloverEnabled {
					rollover = cli.SuccessStyle.Render("on")
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					b.Category,
					formatAmount(b.Amount),
					rollover,
					formatAmount(b.RolledOverAmount),
					formatAmount(ledger.RolloverAdjustedBudget(*b)))
			}

			return nil
		},
	}
}

func setBudgetCmd() *cobra.Command {
	var (
		rollover bool
		carried  float64
	)

	cmd := &cobra.Command{
		Use:   "set <category> <amount>",
		Short: "Create or update a category budget",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var amount float64
			if _, err := fmt.Sscanf(args[1], "%f", &amount); err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[1], err)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			budget := &model.Budget{
				Category:         args[0],
				Amount:           amount,
				RolloverEnabled:  rollover,
				RolledOverAmount: carried,
			}
			if err := store.UpsertBudget(ctx, budget); err != nil {
				return fmt.Errorf("failed to set budget: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf(
				"Budget for %q set to %s (total with rollover: %s)",
				budget.Category, formatAmount(budget.Amount),
				formatAmount(ledger.RolloverAdjustedBudget(*budget)))))
			return nil
		},
	}

	cmd.Flags().BoolVar(&rollover, "rollover", false, "Carry unspent budget into the next period")
	cmd.Flags().Float64Var(&carried, "carried", 0, "Surplus carried over from the prior period")

	return cmd
}

func rolloverBudgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rollover <category> <on|off>",
		Short: "Toggle rollover for a budget",
		Long: `Toggle rollover without touching the stored carried amount, so it
can be re-enabled later without loss.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var enabled bool
			switch args[1] {
			case "on":
				enabled = true
			case "off":
				enabled = false
			default:
				return fmt.Errorf("invalid rollover state %q: use on or off", args[1])
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.SetBudgetRollover(ctx, args[0], enabled); err != nil {
				return fmt.Errorf("failed to toggle rollover: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Rollover for %q turned %s", args[0], args[1])))
			return nil
		},
	}
}

func clearRolloverBudgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear-rollover <category>",
		Short: "Permanently zero a budget's carried-over surplus",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.ClearBudgetRollover(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to clear rollover: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Cleared carried surplus for %q", args[0])))
			return nil
		},
	}
}

func deleteBudgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <category>",
		Short: "Delete a category budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteBudget(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to delete budget: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted budget for %q", args[0])))
			return nil
		},
	}
}
