package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/nasiya/internal/money"
	"github.com/idilsaglam/nasiya/internal/ui"
)

func newStatsCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show counters for todos and debts",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := e.open(cmd.Context())
			if err != nil {
				return err
			}
			t := ui.Current()
			c := a.TodoPage().Counts
			s := a.DebtPage().Summary

			rows := [][]string{
				{t.Title.Render("Vazifalar"), ""},
				{"Hammasi", fmt.Sprint(c.All)},
				{"Bajarilmagan", fmt.Sprint(c.Pending)},
				{"Bajarilgan", fmt.Sprint(c.Completed)},
				{"", t.Muted.Render(ui.ProgressBar(c.Completed, c.All, 20))},
				{t.Title.Render("Nasiyalar"), ""},
				{"Nasiyalar", fmt.Sprint(s.Count)},
				{"Mijozlar", fmt.Sprint(s.Customers)},
				{"Muddati o'tgan", fmt.Sprint(s.Overdue)},
				{"Jami", money.WithUnit(s.Total)},
				{"To'langan", money.WithUnit(s.Paid)},
				{"Kutilmoqda", money.WithUnit(s.Pending)},
			}
			fmt.Fprint(cmd.OutOrStdout(), ui.Table(rows))
			return nil
		},
	}
}
