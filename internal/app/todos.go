package app

import (
	"context"
	"errors"

	"github.com/idilsaglam/nasiya/internal/ledger"
)

func (a *App) AddTodo(ctx context.Context, text string) (Notice, error) {
	now := a.stamp()
	id := a.nextID(now)
	next, err := ledger.AddTodo(a.todos, id, text, now)
	if err != nil {
		return warning(msgTodoEmpty, ledger.FieldText), nil
	}
	if err := a.commitTodos(ctx, next); err != nil {
		return Notice{}, err
	}
	a.commitID(id)
	return success(msgTodoAdded), nil
}

func (a *App) ToggleTodo(ctx context.Context, id int64) (Notice, error) {
	next, ok := ledger.ToggleTodo(a.todos, id)
	if !ok {
		return warning(msgNotFound, ""), nil
	}
	if err := a.commitTodos(ctx, next); err != nil {
		return Notice{}, err
	}
	return info(msgTodoToggled), nil
}

// EditTodo commits new text. A caller that aborts the edit simply never calls it.
func (a *App) EditTodo(ctx context.Context, id int64, text string) (Notice, error) {
	next, err := ledger.EditTodo(a.todos, id, text)
	switch {
	case errors.Is(err, ledger.ErrNotFound):
		return warning(msgNotFound, ""), nil
	case err != nil:
		return warning(msgTodoEmpty, ledger.FieldText), nil
	}
	if err := a.commitTodos(ctx, next); err != nil {
		return Notice{}, err
	}
	return success(msgTodoEdited), nil
}
