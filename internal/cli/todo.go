package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/nasiya/internal/model"
	"github.com/idilsaglam/nasiya/internal/ui"
	"github.com/idilsaglam/nasiya/internal/view"
)

func newTodoCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "todo",
		Aliases: []string{"t"},
		Short:   "Manage todos",
	}
	cmd.AddCommand(newTodoAddCmd(e))
	cmd.AddCommand(newTodoListCmd(e))
	cmd.AddCommand(newTodoDoneCmd(e))
	cmd.AddCommand(newTodoEditCmd(e))
	cmd.AddCommand(newTodoRmCmd(e))
	cmd.AddCommand(newTodoClearCmd(e))
	return cmd
}

func newTodoAddCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "add <text...>",
		Short: "Add a todo (text can be multiple words)",
		Args:  usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := e.open(cmd.Context())
			if err != nil {
				return err
			}
			n, err := a.AddTodo(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			return report(cmd, n)
		},
	}
}

func newTodoListCmd(e *env) *cobra.Command {
	var filter string
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List todos",
		Args:    usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := model.ParseFilter(filter)
			if err != nil {
				return usageError{err: err}
			}
			a, err := e.open(cmd.Context())
			if err != nil {
				return err
			}
			a.SetFilter(f)
			fmt.Fprintln(cmd.OutOrStdout(), renderTodoPage(a.TodoPage()))
			return nil
		},
	}
	cmd.Flags().StringVar(&filter, "filter", string(model.FilterAll), "all|pending|completed")
	return cmd
}

func newTodoDoneCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:     "done <id>",
		Aliases: []string{"toggle"},
		Short:   "Toggle a todo between pending and completed",
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
			n, err := a.ToggleTodo(cmd.Context(), id)
			if err != nil {
				return err
			}
			return report(cmd, n)
		},
	}
}

func newTodoEditCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <id> <text...>",
		Short: "Replace a todo's text",
		Args:  usageArgs(cobra.MinimumNArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			a, err := e.open(cmd.Context())
			if err != nil {
				return err
			}
			n, err := a.EditTodo(cmd.Context(), id, strings.Join(args[1:], " "))
			if err != nil {
				return err
			}
			return report(cmd, n)
		},
	}
}

func newTodoRmCmd(e *env) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a todo (asks first)",
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
			in, n, ok := a.RequestDeleteTodo(id)
			if !ok {
				return report(cmd, n)
			}
			return runDelete(cmd, a, in, yes)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}

func newTodoClearCmd(e *env) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all completed todos (asks first)",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := e.open(cmd.Context())
			if err != nil {
				return err
			}
			in, n, ok := a.RequestClearCompleted()
			if !ok {
				return report(cmd, n)
			}
			return runDelete(cmd, a, in, yes)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}

func renderTodoPage(page view.TodoPage) string {
	t := ui.Current()
	c := page.Counts

	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		t.Title.Render("Vazifalar"),
		t.Success.Render(t.SymOK), c.Completed,
		t.Warning.Render(t.SymInfo), c.Pending,
		t.Accent.Render("Jami"), c.All,
	)

	tabs := make([]string, 0, len(page.Tabs))
	for _, tab := range page.Tabs {
		if tab.Active {
			tabs = append(tabs, t.Selected.Render(tab.Label))
		} else {
			tabs = append(tabs, t.Muted.Render(tab.Label))
		}
	}

	lines := []string{
		header,
		t.Muted.Render(ui.ProgressBar(c.Completed, c.All, 28)),
		strings.Join(tabs, "  "),
		"",
	}
	if page.Empty {
		lines = append(lines, t.Muted.Render(page.Placeholder))
		return ui.Panel(lines)
	}

	rows := make([][]string, 0, len(page.Rows))
	for _, r := range page.Rows {
		text := ui.Truncate(r.Text, 60)
		box := t.Muted.Render(t.Box(false))
		if r.Completed {
			text = t.Done.Render(text)
			box = t.Success.Render(t.Box(true))
		}
		rows = append(rows, []string{t.Muted.Render(fmt.Sprint(r.ID)), box, text, t.Muted.Render(r.Created)})
	}
	lines = append(lines, strings.Split(strings.TrimRight(ui.Table(rows), "\n"), "\n")...)
	return ui.Panel(lines)
}
