package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/nasiya/internal/app"
	"github.com/idilsaglam/nasiya/internal/model"
	"github.com/idilsaglam/nasiya/internal/money"
	"github.com/idilsaglam/nasiya/internal/ui"
	"github.com/idilsaglam/nasiya/internal/view"
)

func newDebtCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "debt",
		Aliases: []string{"nasiya", "d"},
		Short:   "Manage store-credit debts",
	}
	cmd.AddCommand(newDebtAddCmd(e))
	cmd.AddCommand(newDebtListCmd(e))
	cmd.AddCommand(newDebtPaidCmd(e))
	cmd.AddCommand(newDebtEditCmd(e))
	cmd.AddCommand(newDebtRmCmd(e))
	cmd.AddCommand(newDebtClearCmd(e))
	return cmd
}

func newDebtAddCmd(e *env) *cobra.Command {
	var form app.DebtForm
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a debt (due date defaults to one week from today)",
		Example: strings.TrimSpace(`
  nasiya debt add --customer "Ali aka" --product Un --qty 2 --price 15000
  nasiya debt add --customer Vali --product Shakar --qty 1 --price "12 500" --due 2026-11-01
`),
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := e.open(cmd.Context())
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("due") {
				form.DueDate = a.DefaultDueDate().String()
			}
			n, err := a.AddDebt(cmd.Context(), form)
			if err != nil {
				return err
			}
			return report(cmd, n)
		},
	}
	f := cmd.Flags()
	f.StringVar(&form.Customer, "customer", "", "Customer name")
	f.StringVar(&form.Product, "product", "", "Product name")
	f.StringVar(&form.Qty, "qty", "", "Quantity (positive integer)")
	f.StringVar(&form.Price, "price", "", "Unit price in so'm (positive integer)")
	f.StringVar(&form.DueDate, "due", "", "Due date YYYY-MM-DD, not before today")
	return cmd
}

func newDebtListCmd(e *env) *cobra.Command {
	var sortKey string
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List debts with the summary",
		Args:    usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := model.ParseSortKey(sortKey)
			if err != nil {
				return usageError{err: err}
			}
			a, err := e.open(cmd.Context())
			if err != nil {
				return err
			}
			a.SetSort(key)
			fmt.Fprintln(cmd.OutOrStdout(), renderDebtPage(a.DebtPage()))
			return nil
		},
	}
	cmd.Flags().StringVar(&sortKey, "sort", string(model.SortByDate), "date|amount")
	return cmd
}

func newDebtPaidCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:     "paid <id>",
		Aliases: []string{"toggle"},
		Short:   "Toggle a debt between paid and unpaid",
		Args:    usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			a, err := e.open(cmd.Context())
			if err != nil {
				return err
			}
			n, err := a.ToggleDebtPaid(cmd.Context(), id)
			if err != nil {
				return err
			}
			return report(cmd, n)
		},
	}
}

func newDebtEditCmd(e *env) *cobra.Command {
	var in app.DebtEditForm
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit customer, product, qty and price together; omitted flags keep their value",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			a, err := e.open(cmd.Context())
			if err != nil {
				return err
			}
			form, n, ok := a.EditFormFor(id)
			if !ok {
				return report(cmd, n)
			}
			fl := cmd.Flags()
			if fl.Changed("customer") {
				form.Customer = in.Customer
			}
			if fl.Changed("product") {
				form.Product = in.Product
			}
			if fl.Changed("qty") {
				form.Qty = in.Qty
			}
			if fl.Changed("price") {
				form.Price = in.Price
			}
			n, err = a.EditDebt(cmd.Context(), id, form)
			if err != nil {
				return err
			}
			return report(cmd, n)
		},
	}
	f := cmd.Flags()
	f.StringVar(&in.Customer, "customer", "", "Customer name")
	f.StringVar(&in.Product, "product", "", "Product name")
	f.StringVar(&in.Qty, "qty", "", "Quantity (positive integer)")
	f.StringVar(&in.Price, "price", "", "Unit price in so'm (positive integer)")
	return cmd
}

func newDebtRmCmd(e *env) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a debt (asks first)",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			a, err := e.open(cmd.Context())
			if err != nil {
				return err
			}
			in, n, ok := a.RequestDeleteDebt(id)
			if !ok {
				return report(cmd, n)
			}
			return runDelete(cmd, a, in, yes)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}

func newDebtClearCmd(e *env) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all paid debts (asks first)",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := e.open(cmd.Context())
			if err != nil {
				return err
			}
			in, n, ok := a.RequestClearPaid()
			if !ok {
				return report(cmd, n)
			}
			return runDelete(cmd, a, in, yes)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}

func renderDebtPage(page view.DebtPage) string {
	t := ui.Current()
	s := page.Summary

	lines := []string{
		t.Title.Render("Nasiya daftari"),
		fmt.Sprintf("%s %s   %s %d   %s %d   %s %d",
			t.Muted.Render("Kutilmoqda:"), t.Warning.Render(money.WithUnit(s.Pending)),
			t.Muted.Render("Nasiyalar:"), s.Count,
			t.Muted.Render("Mijozlar:"), s.Customers,
			t.Muted.Render("Muddati o'tgan:"), s.Overdue,
		),
	}
	tabs := make([]string, 0, len(page.Tabs))
	for _, tab := range page.Tabs {
		if tab.Active {
			tabs = append(tabs, t.Selected.Render(tab.Label))
		} else {
			tabs = append(tabs, t.Muted.Render(tab.Label))
		}
	}
	lines = append(lines, strings.Join(tabs, "  "), "")

	if page.Empty {
		lines = append(lines, t.Muted.Render(page.Placeholder))
		return ui.Panel(lines)
	}

	rows := make([][]string, 0, len(page.Rows))
	for _, r := range page.Rows {
		title := ui.Truncate(r.Title, 40)
		box := t.Muted.Render(t.Box(false))
		if r.Paid {
			title = t.Done.Render(title)
			box = t.Success.Render(t.Box(true))
		}
		due := r.Due
		if r.Overdue {
			due = t.Overdue.Render(due + " " + view.OverdueBadge)
		}
		rows = append(rows, []string{
			t.Muted.Render(fmt.Sprint(r.ID)), box, title,
			r.Qty + " x " + r.Price, t.Accent.Render(r.Total), due,
		})
	}
	lines = append(lines, strings.Split(strings.TrimRight(ui.Table(rows), "\n"), "\n")...)
	return ui.Panel(lines)
}
