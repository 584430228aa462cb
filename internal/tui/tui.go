// Package tui is the interactive two-pane interface over an app.App.
package tui

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/idilsaglam/nasiya/internal/app"
	"github.com/idilsaglam/nasiya/internal/model"
	"github.com/idilsaglam/nasiya/internal/money"
	"github.com/idilsaglam/nasiya/internal/ui"
	"github.com/idilsaglam/nasiya/internal/view"
)

type pane int

const (
	paneTodos pane = iota
	paneDebts
)

type mode int

const (
	modeBrowse mode = iota
	modeTodoInput
	modeDebtForm
	modeConfirm
	modeHelp
)

type Model struct {
	app  *app.App
	ctx  context.Context
	keys keyMap

	pane pane
	mode mode

	todos list.Model
	debts list.Model

	// todo add/edit; editID 0 means add
	input  textinput.Model
	editID int64

	form  debtForm
	toast *toast
	help  string

	width, height int
}

func New(a *app.App) Model {
	m := Model{
		app:    a,
		ctx:    context.Background(),
		keys:   defaultKeys(),
		todos:  newList(todoDelegate{}),
		debts:  newList(debtDelegate{}),
		input:  newInput(view.TodoPlaceholder, 200),
		width:  80,
		height: 24,
	}
	m.resize()
	m.refresh()
	return m
}

// Run starts the program on the alternate screen and blocks until quit.
func Run(a *app.App) error {
	p := tea.NewProgram(New(a), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		if m.mode == modeHelp {
			m.help = renderHelp(m.width - 4)
		}
		return m, nil
	case toastExpiredMsg:
		if m.toast != nil && m.toast.id == msg.id {
			m.toast = nil
		}
		return m, nil
	case tea.KeyMsg:
		switch m.mode {
		case modeTodoInput:
			return m.updateTodoInput(msg)
		case modeDebtForm:
			return m.updateDebtForm(msg)
		case modeConfirm:
			return m.updateConfirm(msg)
		case modeHelp:
			if msg.String() == "ctrl+c" {
				return m, tea.Quit
			}
			m.mode = modeBrowse
			return m, nil
		}
		return m.updateBrowse(msg)
	}

	if m.mode == modeTodoInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	if m.mode == modeDebtForm {
		var cmd tea.Cmd
		m.form, cmd = m.form.update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit
	case key.Matches(msg, k.Help):
		m.mode = modeHelp
		m.help = renderHelp(m.width - 4)
		return m, nil
	case key.Matches(msg, k.Switch):
		if m.pane == paneTodos {
			m.pane = paneDebts
		} else {
			m.pane = paneTodos
		}
		return m, nil
	case key.Matches(msg, k.Add):
		return m.openAdd()
	case key.Matches(msg, k.Edit):
		return m.openEdit()
	case key.Matches(msg, k.Toggle):
		return m.toggleSelected()
	case key.Matches(msg, k.Delete):
		return m.requestDelete()
	case key.Matches(msg, k.Clear):
		return m.requestClear()
	}

	if m.pane == paneTodos {
		switch {
		case key.Matches(msg, k.FilterAll):
			return m.setFilter(model.FilterAll)
		case key.Matches(msg, k.FilterPending):
			return m.setFilter(model.FilterPending)
		case key.Matches(msg, k.FilterCompleted):
			return m.setFilter(model.FilterCompleted)
		}
		var cmd tea.Cmd
		m.todos, cmd = m.todos.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, k.SortDate):
		m.app.SetSort(model.SortByDate)
		m.refresh()
		return m, nil
	case key.Matches(msg, k.SortAmount):
		m.app.SetSort(model.SortByAmount)
		m.refresh()
		return m, nil
	}
	var cmd tea.Cmd
	m.debts, cmd = m.debts.Update(msg)
	return m, cmd
}

func (m Model) setFilter(f model.Filter) (tea.Model, tea.Cmd) {
	m.app.SetFilter(f)
	m.refresh()
	return m, nil
}

func (m Model) openAdd() (tea.Model, tea.Cmd) {
	if m.pane == paneTodos {
		m.mode = modeTodoInput
		m.editID = 0
		m.input.SetValue("")
		m.input.Placeholder = view.TodoPlaceholder
		cmd := m.input.Focus()
		return m, cmd
	}
	m.mode = modeDebtForm
	m.form = newDebtForm(app.DebtForm{DueDate: m.app.DefaultDueDate().String()})
	return m, textinput.Blink
}

func (m Model) openEdit() (tea.Model, tea.Cmd) {
	if m.pane == paneTodos {
		it, ok := m.todos.SelectedItem().(todoItem)
		if !ok {
			return m, nil
		}
		m.mode = modeTodoInput
		m.editID = it.row.ID
		m.input.SetValue(it.row.Text)
		m.input.CursorEnd()
		cmd := m.input.Focus()
		return m, cmd
	}
	it, ok := m.debts.SelectedItem().(debtItem)
	if !ok {
		return m, nil
	}
	values, n, ok := m.app.EditFormFor(it.row.ID)
	if !ok {
		cmd := m.notify(n)
		return m, cmd
	}
	m.mode = modeDebtForm
	m.form = newDebtEditForm(it.row.ID, values)
	return m, textinput.Blink
}

func (m Model) toggleSelected() (tea.Model, tea.Cmd) {
	var (
		n   app.Notice
		err error
	)
	if m.pane == paneTodos {
		it, ok := m.todos.SelectedItem().(todoItem)
		if !ok {
			return m, nil
		}
		n, err = m.app.ToggleTodo(m.ctx, it.row.ID)
	} else {
		it, ok := m.debts.SelectedItem().(debtItem)
		if !ok {
			return m, nil
		}
		n, err = m.app.ToggleDebtPaid(m.ctx, it.row.ID)
	}
	return m.outcome(n, err)
}

func (m Model) requestDelete() (tea.Model, tea.Cmd) {
	var (
		n  app.Notice
		ok bool
	)
	if m.pane == paneTodos {
		it, sel := m.todos.SelectedItem().(todoItem)
		if !sel {
			return m, nil
		}
		_, n, ok = m.app.RequestDeleteTodo(it.row.ID)
	} else {
		it, sel := m.debts.SelectedItem().(debtItem)
		if !sel {
			return m, nil
		}
		_, n, ok = m.app.RequestDeleteDebt(it.row.ID)
	}
	if !ok {
		cmd := m.notify(n)
		return m, cmd
	}
	m.mode = modeConfirm
	return m, nil
}

func (m Model) requestClear() (tea.Model, tea.Cmd) {
	var (
		n  app.Notice
		ok bool
	)
	if m.pane == paneTodos {
		_, n, ok = m.app.RequestClearCompleted()
	} else {
		_, n, ok = m.app.RequestClearPaid()
	}
	if !ok {
		cmd := m.notify(n)
		return m, cmd
	}
	m.mode = modeConfirm
	return m, nil
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.mode = modeBrowse
		n, err := m.app.ConfirmDelete(m.ctx)
		if err != nil {
			m.app.CancelDelete()
		}
		return m.outcome(n, err)
	case key.Matches(msg, m.keys.Cancel):
		m.app.CancelDelete()
		m.mode = modeBrowse
		return m, nil
	}
	return m, nil
}

func (m Model) updateTodoInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		m.input.SetValue("")
		m.input.Blur()
		return m, nil
	case "enter":
		var (
			n   app.Notice
			err error
		)
		if m.editID == 0 {
			n, err = m.app.AddTodo(m.ctx, m.input.Value())
		} else {
			n, err = m.app.EditTodo(m.ctx, m.editID, m.input.Value())
		}
		if err == nil && !n.IsWarning() {
			m.mode = modeBrowse
			m.input.SetValue("")
			m.input.Blur()
		}
		return m.outcome(n, err)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateDebtForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "esc":
		m.mode = modeBrowse
		return m, nil
	case key.Matches(msg, m.keys.NextField):
		m.form.setFocus(m.form.focus + 1)
		return m, nil
	case key.Matches(msg, m.keys.PrevField):
		m.form.setFocus(m.form.focus - 1)
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		var (
			n   app.Notice
			err error
		)
		if m.form.editID == 0 {
			n, err = m.app.AddDebt(m.ctx, m.form.addValues())
		} else {
			n, err = m.app.EditDebt(m.ctx, m.form.editID, m.form.editValues())
		}
		if err == nil {
			if n.IsWarning() {
				m.form.focusField(n.Field)
			} else {
				m.mode = modeBrowse
			}
		}
		return m.outcome(n, err)
	}
	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

// outcome refreshes the lists after a mutation and shows its notice. A
// storage error is logged and shown as a danger toast.
func (m Model) outcome(n app.Notice, err error) (tea.Model, tea.Cmd) {
	if err != nil {
		log.Printf("tui: %v", err)
		n = app.Notice{Level: app.LevelDanger, Message: "Saqlashda xatolik: " + err.Error()}
	}
	m.refresh()
	cmd := m.notify(n)
	return m, cmd
}

func (m *Model) notify(n app.Notice) tea.Cmd {
	if n.Message == "" {
		return nil
	}
	t := &toast{id: uuid.New(), notice: n}
	m.toast = t
	return expireToast(t.id)
}

// refresh rebuilds both lists from the App, keeping the cursor in range.
func (m *Model) refresh() {
	tp := m.app.TodoPage()
	todoItems := make([]list.Item, 0, len(tp.Rows))
	for _, r := range tp.Rows {
		todoItems = append(todoItems, todoItem{row: r})
	}
	m.todos.SetItems(todoItems)
	if i := m.todos.Index(); i >= len(todoItems) && len(todoItems) > 0 {
		m.todos.Select(len(todoItems) - 1)
	}

	dp := m.app.DebtPage()
	debtItems := make([]list.Item, 0, len(dp.Rows))
	for _, r := range dp.Rows {
		debtItems = append(debtItems, debtItem{row: r})
	}
	m.debts.SetItems(debtItems)
	if i := m.debts.Index(); i >= len(debtItems) && len(debtItems) > 0 {
		m.debts.Select(len(debtItems) - 1)
	}
}

func (m *Model) resize() {
	w := max(m.width-4, 20)
	h := max(m.height-12, 3)
	m.todos.SetSize(w, h)
	m.debts.SetSize(w, h)
	m.input.Width = max(w-4, 10)
}

func (m Model) View() string {
	t := ui.Current()
	width := max(m.width-2, 20)

	var body string
	switch m.mode {
	case modeHelp:
		body = m.help
	default:
		body = m.paneView()
	}

	parts := []string{m.tabsView(), body}
	switch m.mode {
	case modeTodoInput:
		title := "Yangi vazifa"
		if m.editID != 0 {
			title = "Vazifani tahrirlash"
		}
		parts = append(parts, m.boxed(t.Title.Render(title)+"\n"+m.input.View()))
	case modeDebtForm:
		parts = append(parts, m.boxed(m.form.view()))
	case modeConfirm:
		if in, ok := m.app.Pending(); ok {
			parts = append(parts, m.boxed(t.Warning.Render(in.Prompt)+"\n"+t.Muted.Render("y/enter: ha   n/esc: yo'q")))
		}
	}
	if m.toast != nil {
		parts = append(parts, m.toast.view())
	}
	if m.mode == modeBrowse {
		parts = append(parts, helpLine(m.keys.browseHelp(m.pane)))
	}

	return lipgloss.NewStyle().MaxWidth(width).Render(ui.Panel(parts))
}

func (m Model) tabsView() string {
	t := ui.Current()
	tp := m.app.TodoPage()
	dp := m.app.DebtPage()
	todoTab := fmt.Sprintf("Vazifalar (%d)", tp.Counts.All)
	debtTab := fmt.Sprintf("Nasiya (%d)", dp.Summary.Count)
	if m.pane == paneTodos {
		return t.Selected.Render(" "+todoTab+" ") + "  " + t.Muted.Render(debtTab)
	}
	return t.Muted.Render(todoTab) + "  " + t.Selected.Render(" "+debtTab+" ")
}

func (m Model) paneView() string {
	t := ui.Current()
	if m.pane == paneTodos {
		page := m.app.TodoPage()
		tabs := make([]string, 0, len(page.Tabs))
		for _, tab := range page.Tabs {
			if tab.Active {
				tabs = append(tabs, t.Accent.Render(tab.Label))
			} else {
				tabs = append(tabs, t.Muted.Render(tab.Label))
			}
		}
		c := page.Counts
		head := strings.Join(tabs, "  ") + "\n" + t.Muted.Render(ui.ProgressBar(c.Completed, c.All, 28))
		if page.Empty {
			return head + "\n\n" + t.Muted.Render(page.Placeholder)
		}
		return head + "\n\n" + m.todos.View()
	}

	page := m.app.DebtPage()
	s := page.Summary
	summary := fmt.Sprintf("%s %s   %s %d   %s %d   %s %d",
		t.Muted.Render("Kutilmoqda:"), t.Warning.Render(money.WithUnit(s.Pending)),
		t.Muted.Render("Nasiyalar:"), s.Count,
		t.Muted.Render("Mijozlar:"), s.Customers,
		t.Muted.Render("Muddati o'tgan:"), s.Overdue,
	)
	tabs := make([]string, 0, len(page.Tabs))
	for _, tab := range page.Tabs {
		if tab.Active {
			tabs = append(tabs, t.Accent.Render(tab.Label))
		} else {
			tabs = append(tabs, t.Muted.Render(tab.Label))
		}
	}
	head := summary + "\n" + strings.Join(tabs, "  ")
	if page.Empty {
		return head + "\n\n" + t.Muted.Render(page.Placeholder)
	}
	return head + "\n\n" + m.debts.View()
}

func (m Model) boxed(s string) string {
	t := ui.Current()
	return lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1).
		Render(s)
}

func helpLine(bindings []key.Binding) string {
	t := ui.Current()
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return t.Muted.Render(strings.Join(parts, " • "))
}
