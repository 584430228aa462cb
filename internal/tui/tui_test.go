package tui

import (
	"context"
	"io"
	"log"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/idilsaglam/nasiya/internal/app"
	"github.com/idilsaglam/nasiya/internal/ledger"
	"github.com/idilsaglam/nasiya/internal/model"
	"github.com/idilsaglam/nasiya/internal/store"
	"github.com/idilsaglam/nasiya/internal/store/memstore"
)

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
)

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func newTestModel(t *testing.T) (Model, *app.App) {
	t.Helper()
	now := time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)
	repo := store.NewRepository(memstore.New(), log.New(io.Discard, "", 0))
	a, err := app.New(context.Background(), repo, app.WithClock(func() time.Time { return now }))
	if err != nil {
		t.Fatalf("app.New: %v", err)
	}
	return New(a), a
}

func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		nm, ok := next.(Model)
		if !ok {
			t.Fatalf("Update returned %T", next)
		}
		m = nm
	}
	return m
}

func seedTodo(t *testing.T, a *app.App, text string) {
	t.Helper()
	if n, err := a.AddTodo(context.Background(), text); err != nil || n.IsWarning() {
		t.Fatalf("seed todo: %+v %v", n, err)
	}
}

func seedDebt(t *testing.T, a *app.App) {
	t.Helper()
	form := app.DebtForm{Customer: "Ali", Product: "Un", Qty: "2", Price: "500", DueDate: "2026-10-20"}
	if n, err := a.AddDebt(context.Background(), form); err != nil || n.IsWarning() {
		t.Fatalf("seed debt: %+v %v", n, err)
	}
}

func TestAddTodoFromInput(t *testing.T) {
	m, a := newTestModel(t)

	m = press(t, m, runes("a"))
	if m.mode != modeTodoInput || m.editID != 0 {
		t.Fatalf("expected add input, got mode %v", m.mode)
	}
	m.input.SetValue("Non olish")
	m = press(t, m, keyEnter)

	if m.mode != modeBrowse {
		t.Fatalf("expected input to close, mode %v", m.mode)
	}
	if todos := a.Todos(); len(todos) != 1 || todos[0].Text != "Non olish" {
		t.Fatalf("unexpected todos %+v", todos)
	}
	if len(m.todos.Items()) != 1 {
		t.Fatalf("list not refreshed: %d items", len(m.todos.Items()))
	}
	if m.toast == nil || m.toast.notice.Level != app.LevelSuccess {
		t.Fatalf("expected success toast, got %+v", m.toast)
	}
}

func TestBlankTodoKeepsInputOpen(t *testing.T) {
	m, a := newTestModel(t)

	m = press(t, m, runes("a"), keyEnter)
	if m.mode != modeTodoInput {
		t.Fatalf("input should stay open on a warning, mode %v", m.mode)
	}
	if m.toast == nil || !m.toast.notice.IsWarning() {
		t.Fatalf("expected warning toast, got %+v", m.toast)
	}
	if len(a.Todos()) != 0 {
		t.Fatalf("blank todo stored")
	}

	m = press(t, m, keyEsc)
	if m.mode != modeBrowse {
		t.Fatalf("esc should close the input")
	}
}

func TestEditTodoEscDiscards(t *testing.T) {
	m, a := newTestModel(t)
	seedTodo(t, a, "eski")
	m.refresh()

	m = press(t, m, runes("e"))
	if m.mode != modeTodoInput || m.input.Value() != "eski" {
		t.Fatalf("expected prefilled edit input, got %q", m.input.Value())
	}
	m.input.SetValue("yangi")
	m = press(t, m, keyEsc)
	if a.Todos()[0].Text != "eski" {
		t.Fatalf("esc must not commit the edit")
	}

	m = press(t, m, runes("e"))
	m.input.SetValue("yangi")
	press(t, m, keyEnter)
	if a.Todos()[0].Text != "yangi" {
		t.Fatalf("enter should commit the edit")
	}
}

func TestToggleTodoWithSpace(t *testing.T) {
	m, a := newTestModel(t)
	seedTodo(t, a, "a")
	m.refresh()

	m = press(t, m, keySpace)
	if !a.Todos()[0].Completed {
		t.Fatalf("space should toggle the selected todo")
	}
	press(t, m, runes("x"))
	if a.Todos()[0].Completed {
		t.Fatalf("x should toggle back")
	}
}

func TestDeleteAsksForConfirmation(t *testing.T) {
	m, a := newTestModel(t)
	seedTodo(t, a, "a")
	m.refresh()

	m = press(t, m, runes("d"))
	if m.mode != modeConfirm {
		t.Fatalf("expected confirm modal, mode %v", m.mode)
	}
	if !strings.Contains(m.View(), "Ushbu vazifani o'chirishni istaysizmi?") {
		t.Fatalf("modal prompt not rendered")
	}

	m = press(t, m, runes("n"))
	if m.mode != modeBrowse || len(a.Todos()) != 1 {
		t.Fatalf("cancel must keep the todo")
	}
	if _, ok := a.Pending(); ok {
		t.Fatalf("cancel must clear the intent")
	}

	m = press(t, m, runes("d"), runes("y"))
	if len(a.Todos()) != 0 || len(m.todos.Items()) != 0 {
		t.Fatalf("confirm should delete the todo")
	}
}

func TestClearWithNothingToClear(t *testing.T) {
	m, a := newTestModel(t)
	seedTodo(t, a, "a")
	m.refresh()

	m = press(t, m, runes("C"))
	if m.mode != modeBrowse {
		t.Fatalf("no modal expected, mode %v", m.mode)
	}
	if m.toast == nil || m.toast.notice.Level != app.LevelInfo {
		t.Fatalf("expected info toast, got %+v", m.toast)
	}
}

func TestFilterAndSortKeys(t *testing.T) {
	m, a := newTestModel(t)

	m = press(t, m, runes("3"))
	if a.Filter() != model.FilterCompleted {
		t.Fatalf("filter = %v", a.Filter())
	}
	m = press(t, m, runes("2"))
	if a.Filter() != model.FilterPending {
		t.Fatalf("filter = %v", a.Filter())
	}

	m = press(t, m, keyTab, runes("S"))
	if m.pane != paneDebts || a.Sort() != model.SortByAmount {
		t.Fatalf("pane %v sort %v", m.pane, a.Sort())
	}
	press(t, m, runes("s"))
	if a.Sort() != model.SortByDate {
		t.Fatalf("sort = %v", a.Sort())
	}
}

func TestDebtFormFocusesInvalidField(t *testing.T) {
	m, a := newTestModel(t)

	m = press(t, m, keyTab, runes("a"))
	if m.mode != modeDebtForm || len(m.form.fields) != 5 {
		t.Fatalf("expected 5-field add form, mode %v", m.mode)
	}
	if got := m.form.value(ledger.FieldDueDate); got != "2026-10-23" {
		t.Fatalf("due date prefill = %q", got)
	}

	m.form.fields[0].input.SetValue("Ali")
	m.form.fields[1].input.SetValue("Un")
	m.form.fields[3].input.SetValue("1 500")
	m = press(t, m, keyEnter)

	if m.mode != modeDebtForm {
		t.Fatalf("form should stay open on a warning")
	}
	if m.form.focused() != ledger.FieldQty {
		t.Fatalf("focus = %v, want qty", m.form.focused())
	}

	m.form.fields[2].input.SetValue("2")
	m = press(t, m, keyEnter)
	if m.mode != modeBrowse {
		t.Fatalf("form should close after saving")
	}
	debts := a.Debts()
	if len(debts) != 1 || debts[0].Total != 3000 {
		t.Fatalf("unexpected debts %+v", debts)
	}
	if len(m.debts.Items()) != 1 {
		t.Fatalf("debt list not refreshed")
	}
}

func TestDebtEditFormIsAtomic(t *testing.T) {
	m, a := newTestModel(t)
	seedDebt(t, a)
	m.refresh()

	m = press(t, m, keyTab, runes("e"))
	if m.mode != modeDebtForm || len(m.form.fields) != 4 || m.form.editID == 0 {
		t.Fatalf("expected 4-field edit form")
	}
	m.form.fields[0].input.SetValue("Vali")
	m.form.fields[3].input.SetValue("0")
	m = press(t, m, keyEnter)
	if m.form.focused() != ledger.FieldPrice {
		t.Fatalf("focus = %v, want price", m.form.focused())
	}
	if d := a.Debts()[0]; d.Customer != "Ali" || d.Total != 1000 {
		t.Fatalf("rejected edit leaked: %+v", d)
	}

	m = press(t, m, keyEsc)
	if m.mode != modeBrowse || a.Debts()[0].Customer != "Ali" {
		t.Fatalf("esc must discard the form")
	}

	press(t, m, runes("p"))
	if !a.Debts()[0].Paid {
		t.Fatalf("p should toggle paid")
	}
}

func TestToastExpiresOnlyForItsOwnTick(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, runes("C"))
	if m.toast == nil {
		t.Fatalf("expected a toast")
	}

	m = press(t, m, toastExpiredMsg{id: uuid.New()})
	if m.toast == nil {
		t.Fatalf("a stale tick cleared the toast")
	}
	m = press(t, m, toastExpiredMsg{id: m.toast.id})
	if m.toast != nil {
		t.Fatalf("toast should expire")
	}
}

func TestHelpOverlay(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(t, m, runes("?"))
	if m.mode != modeHelp || m.help == "" {
		t.Fatalf("help not shown")
	}
	m = press(t, m, runes("x"))
	if m.mode != modeBrowse {
		t.Fatalf("any key should close help")
	}
}

func TestViewShowsPanes(t *testing.T) {
	m, a := newTestModel(t)
	seedDebt(t, a)
	m.refresh()

	if v := m.View(); !strings.Contains(v, "Vazifalar") || !strings.Contains(v, "Hozircha vazifalar yo'q") {
		t.Fatalf("todo pane view:\n%s", v)
	}
	m = press(t, m, keyTab)
	if v := m.View(); !strings.Contains(v, "Ali - Un") {
		t.Fatalf("debt pane view:\n%s", v)
	}
}
