package ledger

import (
	"errors"
	"testing"
	"time"

	"pgregory.net/rapid"

	"github.com/idilsaglam/nasiya/internal/model"
)

var t0 = time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)

func sampleTodos() []model.Todo {
	return []model.Todo{
		{ID: 5, Text: "e", Completed: true, CreatedAt: t0.Add(5 * time.Minute)},
		{ID: 4, Text: "d", Completed: false, CreatedAt: t0.Add(4 * time.Minute)},
		{ID: 3, Text: "c", Completed: true, CreatedAt: t0.Add(3 * time.Minute)},
		{ID: 2, Text: "b", Completed: false, CreatedAt: t0.Add(2 * time.Minute)},
		{ID: 1, Text: "a", Completed: false, CreatedAt: t0.Add(1 * time.Minute)},
	}
}

func TestAddTodo_RejectsBlankText(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"", "   ", "\t\n"} {
		before := sampleTodos()
		got, err := AddTodo(before, 99, text, t0)
		if f, ok := FieldOf(err); !ok || f != FieldText {
			t.Fatalf("text %q: expected FieldText error, got %v", text, err)
		}
		if len(got) != len(before) {
			t.Fatalf("text %q: collection changed: %d -> %d", text, len(before), len(got))
		}
	}
}

func TestAddTodo_PrependsPending(t *testing.T) {
	t.Parallel()

	before := sampleTodos()
	got, err := AddTodo(before, 99, "  Buy milk ", t0)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if len(got) != len(before)+1 {
		t.Fatalf("expected %d todos, got %d", len(before)+1, len(got))
	}
	first := got[0]
	if first.ID != 99 || first.Text != "Buy milk" || first.Completed || !first.CreatedAt.Equal(t0) {
		t.Fatalf("unexpected new todo: %+v", first)
	}
	if got[1].ID != before[0].ID {
		t.Fatalf("existing todos should follow the new one")
	}
}

func TestToggleTodo_TwiceRestores(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		todos := sampleTodos()
		i := rapid.IntRange(0, len(todos)-1).Draw(rt, "index")
		id := todos[i].ID

		once, ok := ToggleTodo(todos, id)
		if !ok {
			rt.Fatalf("toggle: id %d not found", id)
		}
		if once[i].Completed == todos[i].Completed {
			rt.Fatalf("first toggle did not flip")
		}
		twice, _ := ToggleTodo(once, id)
		if twice[i] != todos[i] {
			rt.Fatalf("double toggle changed record: %+v -> %+v", todos[i], twice[i])
		}
	})
}

func TestToggleTodo_MissingIsNoop(t *testing.T) {
	t.Parallel()

	before := sampleTodos()
	got, ok := ToggleTodo(before, 12345)
	if ok {
		t.Fatalf("expected not found")
	}
	for i := range before {
		if got[i] != before[i] {
			t.Fatalf("collection changed at %d", i)
		}
	}
}

func TestEditTodo(t *testing.T) {
	t.Parallel()

	got, err := EditTodo(sampleTodos(), 3, " renamed ")
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if todo, _ := FindTodo(got, 3); todo.Text != "renamed" || !todo.Completed {
		t.Fatalf("unexpected todo after edit: %+v", todo)
	}

	if _, err := EditTodo(sampleTodos(), 3, "  "); err == nil {
		t.Fatalf("expected blank edit to be rejected")
	}
	if _, err := EditTodo(sampleTodos(), 77, "x"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := EditTodo(sampleTodos(), 77, " "); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing id must win over blank text, got %v", err)
	}
}

func TestEditTodo_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	before := sampleTodos()
	if _, err := EditTodo(before, 3, "new"); err != nil {
		t.Fatalf("edit: %v", err)
	}
	if before[2].Text != "c" {
		t.Fatalf("input slice was mutated: %+v", before[2])
	}
}

func TestRemoveTodo(t *testing.T) {
	t.Parallel()

	got, ok := RemoveTodo(sampleTodos(), 3)
	if !ok || len(got) != 4 {
		t.Fatalf("remove: ok=%v len=%d", ok, len(got))
	}
	if _, found := FindTodo(got, 3); found {
		t.Fatalf("todo 3 still present")
	}
	if _, ok := RemoveTodo(got, 3); ok {
		t.Fatalf("second remove should report not found")
	}
}

func TestClearCompleted_KeepsOnlyPending(t *testing.T) {
	t.Parallel()

	got, removed := ClearCompleted(sampleTodos())
	if removed != 2 {
		t.Fatalf("expected 2 removed, got %d", removed)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 remaining, got %d", len(got))
	}
	for _, todo := range got {
		if todo.Completed {
			t.Fatalf("completed todo survived: %+v", todo)
		}
	}
	if CountCompleted(got) != 0 {
		t.Fatalf("expected no completed todos left")
	}
}

func TestFilterTodos_PreservesOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		filter model.Filter
		want   []int64
	}{
		{model.FilterAll, []int64{5, 4, 3, 2, 1}},
		{model.FilterPending, []int64{4, 2, 1}},
		{model.FilterCompleted, []int64{5, 3}},
	}
	for _, tt := range tests {
		got := FilterTodos(sampleTodos(), tt.filter)
		if len(got) != len(tt.want) {
			t.Fatalf("%s: got %d todos, want %d", tt.filter, len(got), len(tt.want))
		}
		for i, id := range tt.want {
			if got[i].ID != id {
				t.Fatalf("%s: position %d has id %d, want %d", tt.filter, i, got[i].ID, id)
			}
		}
	}
}

func TestTodoCounts(t *testing.T) {
	t.Parallel()

	c := TodoCountsOf(sampleTodos())
	if c.All != 5 || c.Pending != 3 || c.Completed != 2 {
		t.Fatalf("unexpected counts: %+v", c)
	}
	if c.Of(model.FilterPending) != 3 || c.Of(model.FilterCompleted) != 2 || c.Of(model.FilterAll) != 5 {
		t.Fatalf("Of() disagrees with counts: %+v", c)
	}
}
