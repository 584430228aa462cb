package cli

import (
	"bytes"
	"context"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/idilsaglam/nasiya/internal/model"
	"github.com/idilsaglam/nasiya/internal/store"
	"github.com/idilsaglam/nasiya/internal/store/jsonstore"
)

type result struct {
	code   int
	stdout string
	stderr string
}

func runNasiya(t *testing.T, dir, stdin string, args ...string) result {
	t.Helper()
	var out, errb bytes.Buffer
	full := append([]string{"--dir", dir, "--backend", "json", "--no-color"}, args...)
	code := Run(full, strings.NewReader(stdin), &out, &errb)
	return result{code: code, stdout: out.String(), stderr: errb.String()}
}

func mustRun(t *testing.T, dir string, args ...string) result {
	t.Helper()
	r := runNasiya(t, dir, "", args...)
	if r.code != 0 {
		t.Fatalf("nasiya %v: exit %d\nstdout:\n%s\nstderr:\n%s", args, r.code, r.stdout, r.stderr)
	}
	return r
}

func storedTodos(t *testing.T, dir string) []model.Todo {
	t.Helper()
	repo := store.NewRepository(jsonstore.New(dir), log.New(io.Discard, "", 0))
	todos, err := repo.LoadTodos(context.Background())
	if err != nil {
		t.Fatalf("LoadTodos: %v", err)
	}
	return todos
}

func storedDebts(t *testing.T, dir string) []model.Debt {
	t.Helper()
	repo := store.NewRepository(jsonstore.New(dir), log.New(io.Discard, "", 0))
	debts, err := repo.LoadDebts(context.Background())
	if err != nil {
		t.Fatalf("LoadDebts: %v", err)
	}
	return debts
}

func TestTodoAddListDone(t *testing.T) {
	dir := t.TempDir()

	r := mustRun(t, dir, "todo", "add", "Non", "olish")
	if !strings.Contains(r.stdout, "Vazifa muvaffaqiyatli qo'shildi!") {
		t.Fatalf("unexpected stdout %q", r.stdout)
	}

	todos := storedTodos(t, dir)
	if len(todos) != 1 || todos[0].Text != "Non olish" {
		t.Fatalf("unexpected todos %+v", todos)
	}
	id := todos[0].ID

	mustRun(t, dir, "todo", "done", itoa(id))
	if !storedTodos(t, dir)[0].Completed {
		t.Fatalf("todo not toggled")
	}

	r = mustRun(t, dir, "todo", "ls", "--filter", "completed")
	if !strings.Contains(r.stdout, "Non olish") || !strings.Contains(r.stdout, "Bajarilgan (1)") {
		t.Fatalf("completed view missing the todo:\n%s", r.stdout)
	}
	r = mustRun(t, dir, "todo", "ls", "--filter", "pending")
	if !strings.Contains(r.stdout, "Hozircha vazifalar yo'q") {
		t.Fatalf("pending view should be empty:\n%s", r.stdout)
	}
}

func TestTodoEdit(t *testing.T) {
	dir := t.TempDir()
	mustRun(t, dir, "todo", "add", "eski")
	id := storedTodos(t, dir)[0].ID

	mustRun(t, dir, "todo", "edit", itoa(id), "yangi", "matn")
	if got := storedTodos(t, dir)[0].Text; got != "yangi matn" {
		t.Fatalf("got %q", got)
	}

	r := runNasiya(t, dir, "", "todo", "edit", itoa(id), "   ")
	if r.code != 2 || !strings.Contains(r.stderr, "Iltimos, vazifa nomini kiriting!") {
		t.Fatalf("blank edit: exit %d stderr %q", r.code, r.stderr)
	}
}

func TestUsageErrorsExitTwo(t *testing.T) {
	dir := t.TempDir()
	tests := [][]string{
		{"todo", "add"},
		{"todo", "done", "abc"},
		{"todo", "ls", "--filter", "someday"},
		{"debt", "ls", "--sort", "name"},
		{"debt", "add", "--bogus"},
		{"--backend", "postgres", "stats"},
		{"frobnicate"},
	}
	for _, args := range tests {
		if r := runNasiya(t, dir, "", args...); r.code != 2 {
			t.Errorf("nasiya %v: exit %d, want 2 (stderr %q)", args, r.code, r.stderr)
		}
	}
}

func TestTodoRmAsksFirst(t *testing.T) {
	dir := t.TempDir()
	mustRun(t, dir, "todo", "add", "a")
	id := itoa(storedTodos(t, dir)[0].ID)

	r := runNasiya(t, dir, "n\n", "todo", "rm", id)
	if r.code != 0 || !strings.Contains(r.stdout, "Ushbu vazifani o'chirishni istaysizmi?") {
		t.Fatalf("expected prompt, got exit %d stdout %q", r.code, r.stdout)
	}
	if len(storedTodos(t, dir)) != 1 {
		t.Fatalf("declined delete removed the todo")
	}

	r = runNasiya(t, dir, "", "todo", "rm", id)
	if len(storedTodos(t, dir)) != 1 {
		t.Fatalf("EOF on the prompt must count as no")
	}

	r = runNasiya(t, dir, "y\n", "todo", "rm", id)
	if r.code != 0 || !strings.Contains(r.stdout, "Vazifa o'chirildi!") {
		t.Fatalf("confirm failed: exit %d stdout %q", r.code, r.stdout)
	}
	if len(storedTodos(t, dir)) != 0 {
		t.Fatalf("confirmed delete kept the todo")
	}
}

func TestTodoClear(t *testing.T) {
	dir := t.TempDir()
	mustRun(t, dir, "todo", "add", "a")
	mustRun(t, dir, "todo", "add", "b")

	r := mustRun(t, dir, "todo", "clear")
	if !strings.Contains(r.stdout, "Bajarilgan vazifalar mavjud emas!") {
		t.Fatalf("expected info notice, got %q", r.stdout)
	}

	mustRun(t, dir, "todo", "done", itoa(storedTodos(t, dir)[0].ID))
	r = mustRun(t, dir, "todo", "clear", "--yes")
	if !strings.Contains(r.stdout, "Bajarilgan vazifalar o'chirildi!") {
		t.Fatalf("unexpected stdout %q", r.stdout)
	}
	if todos := storedTodos(t, dir); len(todos) != 1 || todos[0].Completed {
		t.Fatalf("unexpected todos %+v", todos)
	}
}

func TestDebtAddValidation(t *testing.T) {
	dir := t.TempDir()

	r := runNasiya(t, dir, "", "debt", "add", "--product", "Un", "--qty", "2", "--price", "1000")
	if r.code != 2 || !strings.Contains(r.stderr, "Iltimos, mijoz ismini kiriting!") {
		t.Fatalf("exit %d stderr %q", r.code, r.stderr)
	}

	r = runNasiya(t, dir, "", "debt", "add", "--customer", "Ali", "--product", "Un", "--qty", "2", "--price", "1000", "--due", "2000-01-01")
	if r.code != 2 || !strings.Contains(r.stderr, "bugundan oldin") {
		t.Fatalf("past due date: exit %d stderr %q", r.code, r.stderr)
	}
	if len(storedDebts(t, dir)) != 0 {
		t.Fatalf("rejected debts were stored")
	}
}

func TestDebtLifecycle(t *testing.T) {
	dir := t.TempDir()

	mustRun(t, dir, "debt", "add", "--customer", "Ali", "--product", "Un", "--qty", "2", "--price", "1 500")
	mustRun(t, dir, "debt", "add", "--customer", "Vali", "--product", "Shakar", "--qty", "1", "--price", "9000", "--due", "2999-01-01")

	debts := storedDebts(t, dir)
	if len(debts) != 2 {
		t.Fatalf("unexpected debts %+v", debts)
	}
	ali := debts[1]
	if ali.Customer != "Ali" || ali.Total != 3000 || ali.DueDate.IsZero() {
		t.Fatalf("unexpected first debt %+v", ali)
	}

	r := mustRun(t, dir, "debt", "ls", "--sort", "amount")
	if strings.Index(r.stdout, "Vali - Shakar") > strings.Index(r.stdout, "Ali - Un") {
		t.Fatalf("amount sort should list the larger total first:\n%s", r.stdout)
	}
	if !strings.Contains(r.stdout, "12 000 so'm") {
		t.Fatalf("pending total missing:\n%s", r.stdout)
	}

	r = runNasiya(t, dir, "", "debt", "edit", itoa(ali.ID), "--customer", "Ali aka", "--price", "0")
	if r.code != 2 {
		t.Fatalf("invalid edit: exit %d", r.code)
	}
	if got := storedDebts(t, dir)[1]; got.Customer != "Ali" || got.Total != 3000 {
		t.Fatalf("rejected edit changed the debt: %+v", got)
	}

	mustRun(t, dir, "debt", "edit", itoa(ali.ID), "--price", "2000")
	if got := storedDebts(t, dir)[1]; got.Customer != "Ali" || got.Qty != 2 || got.Total != 4000 {
		t.Fatalf("edit not applied: %+v", got)
	}

	mustRun(t, dir, "debt", "paid", itoa(ali.ID))
	r = mustRun(t, dir, "stats")
	for _, want := range []string{"Mijozlar", "To'langan", "4 000 so'm", "9 000 so'm"} {
		if !strings.Contains(r.stdout, want) {
			t.Fatalf("stats missing %q:\n%s", want, r.stdout)
		}
	}

	r = mustRun(t, dir, "debt", "clear", "--yes")
	if !strings.Contains(r.stdout, "To'langan nasiyalar o'chirildi!") {
		t.Fatalf("unexpected stdout %q", r.stdout)
	}
	if debts := storedDebts(t, dir); len(debts) != 1 || debts[0].Customer != "Vali" {
		t.Fatalf("unexpected debts %+v", debts)
	}
}

func TestMissingIDWarns(t *testing.T) {
	dir := t.TempDir()
	for _, args := range [][]string{
		{"debt", "paid", "12345"},
		{"debt", "edit", "999", "--qty", "5"},
		{"todo", "edit", "999", " "},
	} {
		r := runNasiya(t, dir, "", args...)
		if r.code != 2 || !strings.Contains(r.stderr, "Yozuv topilmadi!") {
			t.Errorf("nasiya %v: exit %d stderr %q", args, r.code, r.stderr)
		}
		if strings.Contains(r.stderr, "Iltimos") {
			t.Errorf("nasiya %v: validation message for a missing id: %q", args, r.stderr)
		}
	}
}

func TestSQLiteBackend(t *testing.T) {
	dir := t.TempDir()
	base := []string{"--dir", dir, "--backend", "sqlite", "--no-color"}

	var out, errb bytes.Buffer
	if code := Run(append(base, "todo", "add", "sqlite", "todo"), strings.NewReader(""), &out, &errb); code != 0 {
		t.Fatalf("add: exit %d stderr %q", code, errb.String())
	}
	out.Reset()
	if code := Run(append(base, "todo", "ls"), strings.NewReader(""), &out, &errb); code != 0 {
		t.Fatalf("ls: exit %d stderr %q", code, errb.String())
	}
	if !strings.Contains(out.String(), "sqlite todo") {
		t.Fatalf("sqlite round trip failed:\n%s", out.String())
	}
}

func TestColorFlagForcesEscapes(t *testing.T) {
	for _, k := range []string{"NO_COLOR", "NASIYA_NO_COLOR"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	dir := t.TempDir()

	var out, errb bytes.Buffer
	args := []string{"--dir", dir, "--backend", "json", "--theme", "classic", "--color", "todo", "add", "rangli"}
	if code := Run(args, strings.NewReader(""), &out, &errb); code != 0 {
		t.Fatalf("exit %d stderr %q", code, errb.String())
	}
	if !strings.Contains(out.String(), "\x1b[") {
		t.Fatalf("--color should colour piped output, got %q", out.String())
	}

	out.Reset()
	args = []string{"--dir", dir, "--backend", "json", "--color", "--no-color", "todo", "ls"}
	if code := Run(args, strings.NewReader(""), &out, &errb); code != 0 {
		t.Fatalf("exit %d stderr %q", code, errb.String())
	}
	if strings.Contains(out.String(), "\x1b[") {
		t.Fatalf("--no-color must win over --color, got %q", out.String())
	}
}

func itoa(id int64) string { return strconv.FormatInt(id, 10) }
