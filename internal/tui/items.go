package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/nasiya/internal/ui"
	"github.com/idilsaglam/nasiya/internal/view"
)

// todoItem adapts a view row to bubbles/list.Item
type todoItem struct{ row view.TodoRow }

func (i todoItem) FilterValue() string { return i.row.Text }

type debtItem struct{ row view.DebtRow }

func (i debtItem) FilterValue() string { return i.row.Title }

// Single-line todo rows.
type todoDelegate struct{}

func (d todoDelegate) Height() int                               { return 1 }
func (d todoDelegate) Spacing() int                              { return 0 }
func (d todoDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d todoDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(todoItem)
	if !ok {
		return
	}
	t := ui.Current()
	box := t.Muted.Render(t.Box(false))
	text := it.row.Text
	if it.row.Completed {
		box = t.Success.Render(t.Box(true))
		text = t.Done.Render(text)
	}
	line := fmt.Sprintf("%s %s  %s", box, text, t.Muted.Render(it.row.Created))
	fmt.Fprint(w, rowPrefix(m, index)+ui.Truncate(line, m.Width()-2))
}

// Two-line debt rows: title, then quantity, amounts and due date.
type debtDelegate struct{}

func (d debtDelegate) Height() int                               { return 2 }
func (d debtDelegate) Spacing() int                              { return 0 }
func (d debtDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d debtDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(debtItem)
	if !ok {
		return
	}
	t := ui.Current()
	r := it.row

	box := t.Muted.Render(t.Box(false))
	title := r.Title
	if r.Paid {
		box = t.Success.Render(t.Box(true))
		title = t.Done.Render(title)
	}
	due := "Muddat: " + r.Due
	if r.Overdue {
		due = t.Overdue.Render(due + "  " + view.OverdueBadge)
	} else {
		due = t.Muted.Render(due)
	}
	detail := strings.Join([]string{
		t.Muted.Render(r.Qty + " x " + r.Price),
		t.Accent.Render(r.Total),
		due,
	}, "  ")

	width := m.Width() - 4
	fmt.Fprintf(w, "%s%s %s\n    %s",
		rowPrefix(m, index), box, ui.Truncate(title, width), ui.Truncate(detail, width))
}

func rowPrefix(m list.Model, index int) string {
	if index == m.Index() {
		return ui.Current().Selected.Render(">") + " "
	}
	return "  "
}

func newList(d list.ItemDelegate) list.Model {
	l := list.New(nil, d, 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowPagination(true)
	l.Styles.PaginationStyle = ui.Current().Muted
	l.DisableQuitKeybindings()
	return l
}
