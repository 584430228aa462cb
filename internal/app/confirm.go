package app

import (
	"context"
	"fmt"

	"github.com/idilsaglam/nasiya/internal/ledger"
)

// DeleteKind names what a pending delete will remove.
type DeleteKind int

const (
	DeleteTodo DeleteKind = iota + 1
	DeleteCompletedTodos
	DeleteDebt
	DeletePaidDebts
)

// DeleteIntent is a recorded, not yet executed, destructive action.
// ID is only meaningful for the single-record kinds.
type DeleteIntent struct {
	Kind   DeleteKind
	ID     int64
	Prompt string
}

// At most one intent is pending; a new request replaces a stale one.
func (a *App) record(in DeleteIntent) DeleteIntent {
	a.pending = &in
	return in
}

// RequestDeleteTodo records a single delete, or returns ok=false with a
// warning when no todo has that id.
func (a *App) RequestDeleteTodo(id int64) (DeleteIntent, Notice, bool) {
	if _, ok := ledger.FindTodo(a.todos, id); !ok {
		return DeleteIntent{}, warning(msgNotFound, ""), false
	}
	in := a.record(DeleteIntent{Kind: DeleteTodo, ID: id, Prompt: msgTodoDeletePrompt})
	return in, Notice{}, true
}

func (a *App) RequestDeleteDebt(id int64) (DeleteIntent, Notice, bool) {
	if _, ok := ledger.FindDebt(a.debts, id); !ok {
		return DeleteIntent{}, warning(msgNotFound, ""), false
	}
	in := a.record(DeleteIntent{Kind: DeleteDebt, ID: id, Prompt: msgDebtDeletePrompt})
	return in, Notice{}, true
}

// RequestClearCompleted records a bulk intent, or returns ok=false with an
// informational notice when no todo is completed.
func (a *App) RequestClearCompleted() (DeleteIntent, Notice, bool) {
	n := ledger.CountCompleted(a.todos)
	if n == 0 {
		return DeleteIntent{}, info(msgNoCompleted), false
	}
	in := a.record(DeleteIntent{Kind: DeleteCompletedTodos, Prompt: fmt.Sprintf(msgClearCompletedAsk, n)})
	return in, Notice{}, true
}

// RequestClearPaid is RequestClearCompleted for paid debts.
func (a *App) RequestClearPaid() (DeleteIntent, Notice, bool) {
	n := ledger.CountPaid(a.debts)
	if n == 0 {
		return DeleteIntent{}, info(msgNoPaid), false
	}
	in := a.record(DeleteIntent{Kind: DeletePaidDebts, Prompt: fmt.Sprintf(msgClearPaidAsk, n)})
	return in, Notice{}, true
}

func (a *App) Pending() (DeleteIntent, bool) {
	if a.pending == nil {
		return DeleteIntent{}, false
	}
	return *a.pending, true
}

func (a *App) CancelDelete() { a.pending = nil }

// ConfirmDelete executes the pending intent and clears it. With nothing
// pending it returns a zero Notice and does nothing. If persisting fails the
// intent stays pending so the caller can retry or cancel.
func (a *App) ConfirmDelete(ctx context.Context) (Notice, error) {
	if a.pending == nil {
		return Notice{}, nil
	}
	in := *a.pending

	var (
		n   Notice
		err error
	)
	switch in.Kind {
	case DeleteTodo:
		next, ok := ledger.RemoveTodo(a.todos, in.ID)
		if !ok {
			n = warning(msgNotFound, "")
			break
		}
		err = a.commitTodos(ctx, next)
		n = success(msgTodoDeleted)
	case DeleteCompletedTodos:
		next, _ := ledger.ClearCompleted(a.todos)
		err = a.commitTodos(ctx, next)
		n = success(msgCompletedCleared)
	case DeleteDebt:
		next, ok := ledger.RemoveDebt(a.debts, in.ID)
		if !ok {
			n = warning(msgNotFound, "")
			break
		}
		err = a.commitDebts(ctx, next)
		n = success(msgDebtDeleted)
	case DeletePaidDebts:
		next, _ := ledger.ClearPaid(a.debts)
		err = a.commitDebts(ctx, next)
		n = success(msgPaidCleared)
	}
	if err != nil {
		return Notice{}, err
	}
	a.pending = nil
	return n, nil
}
