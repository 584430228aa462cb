package ledger

import (
	"strings"
	"time"

	"github.com/idilsaglam/nasiya/internal/model"
)

// AddTodo prepends a new pending todo. Blank text is rejected.
func AddTodo(todos []model.Todo, id int64, text string, now time.Time) ([]model.Todo, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return todos, fieldErr(FieldText, "empty")
	}
	out := make([]model.Todo, 0, len(todos)+1)
	out = append(out, model.Todo{ID: id, Text: text, CreatedAt: now})
	return append(out, todos...), nil
}

// ToggleTodo flips the completed flag of the matching todo.
func ToggleTodo(todos []model.Todo, id int64) ([]model.Todo, bool) {
	i := indexTodo(todos, id)
	if i < 0 {
		return todos, false
	}
	out := cloneTodos(todos)
	out[i].Completed = !out[i].Completed
	return out, true
}

// EditTodo replaces the text of the matching todo.
func EditTodo(todos []model.Todo, id int64, text string) ([]model.Todo, error) {
	i := indexTodo(todos, id)
	if i < 0 {
		return todos, ErrNotFound
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return todos, fieldErr(FieldText, "empty")
	}
	out := cloneTodos(todos)
	out[i].Text = text
	return out, nil
}

// RemoveTodo deletes the matching todo.
func RemoveTodo(todos []model.Todo, id int64) ([]model.Todo, bool) {
	i := indexTodo(todos, id)
	if i < 0 {
		return todos, false
	}
	out := make([]model.Todo, 0, len(todos)-1)
	out = append(out, todos[:i]...)
	return append(out, todos[i+1:]...), true
}

// ClearCompleted drops every completed todo and reports how many went.
func ClearCompleted(todos []model.Todo) ([]model.Todo, int) {
	out := FilterTodos(todos, model.FilterPending)
	return out, len(todos) - len(out)
}

func CountCompleted(todos []model.Todo) int {
	return TodoCountsOf(todos).Completed
}

// FilterTodos keeps collection order, so the newest todo stays first.
func FilterTodos(todos []model.Todo, f model.Filter) []model.Todo {
	out := make([]model.Todo, 0, len(todos))
	for _, t := range todos {
		if f.Match(t.Completed) {
			out = append(out, t)
		}
	}
	return out
}

type TodoCounts struct {
	All, Pending, Completed int
}

func TodoCountsOf(todos []model.Todo) TodoCounts {
	c := TodoCounts{All: len(todos)}
	for _, t := range todos {
		if t.Completed {
			c.Completed++
		} else {
			c.Pending++
		}
	}
	return c
}

// Of returns the counter matching a filter tab.
func (c TodoCounts) Of(f model.Filter) int {
	switch f {
	case model.FilterPending:
		return c.Pending
	case model.FilterCompleted:
		return c.Completed
	}
	return c.All
}

func FindTodo(todos []model.Todo, id int64) (model.Todo, bool) {
	if i := indexTodo(todos, id); i >= 0 {
		return todos[i], true
	}
	return model.Todo{}, false
}

func indexTodo(todos []model.Todo, id int64) int {
	for i, t := range todos {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func cloneTodos(todos []model.Todo) []model.Todo {
	return append([]model.Todo(nil), todos...)
}
