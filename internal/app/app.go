// Package app is the controller both surfaces drive. It owns the two
// collections, the view selection, the pending delete intent and the id
// sequence, and persists after every mutation.
//
// An App is not safe for concurrent use; the TUI update loop and a single
// CLI invocation each drive one App from one goroutine.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/idilsaglam/nasiya/internal/model"
	"github.com/idilsaglam/nasiya/internal/view"
)

// Repository is the persistence the App needs.
type Repository interface {
	LoadTodos(ctx context.Context) ([]model.Todo, error)
	SaveTodos(ctx context.Context, todos []model.Todo) error
	LoadDebts(ctx context.Context) ([]model.Debt, error)
	SaveDebts(ctx context.Context, debts []model.Debt) error
}

type App struct {
	repo  Repository
	clock func() time.Time

	todos []model.Todo
	debts []model.Debt

	filter model.Filter
	sort   model.SortKey

	pending *DeleteIntent
	lastID  int64
}

type Option func(*App)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(a *App) { a.clock = now }
}

// New seeds the collections from repo.
func New(ctx context.Context, repo Repository, opts ...Option) (*App, error) {
	a := &App{
		repo:   repo,
		clock:  time.Now,
		filter: model.FilterAll,
		sort:   model.SortByDate,
	}
	for _, opt := range opts {
		opt(a)
	}

	todos, err := repo.LoadTodos(ctx)
	if err != nil {
		return nil, fmt.Errorf("load todos: %w", err)
	}
	debts, err := repo.LoadDebts(ctx)
	if err != nil {
		return nil, fmt.Errorf("load debts: %w", err)
	}
	a.todos, a.debts = todos, debts

	for _, t := range todos {
		a.lastID = max(a.lastID, t.ID)
	}
	for _, d := range debts {
		a.lastID = max(a.lastID, d.ID)
	}
	return a, nil
}

func (a *App) Now() time.Time { return a.clock() }

// nextID proposes the creation-time id for a new record, bumped past the last
// one so ids stay unique and increasing even within one millisecond.
// The sequence only advances on commitID.
func (a *App) nextID(now time.Time) int64 {
	id := now.UnixMilli()
	if id <= a.lastID {
		id = a.lastID + 1
	}
	return id
}

func (a *App) commitID(id int64) { a.lastID = max(a.lastID, id) }

// stamp is the creation timestamp stored on new records, at the
// millisecond precision the blob format carries.
func (a *App) stamp() time.Time {
	return a.clock().UTC().Truncate(time.Millisecond)
}

func (a *App) Todos() []model.Todo { return append([]model.Todo(nil), a.todos...) }
func (a *App) Debts() []model.Debt { return append([]model.Debt(nil), a.debts...) }

func (a *App) Filter() model.Filter       { return a.filter }
func (a *App) SetFilter(f model.Filter)   { a.filter = f }
func (a *App) Sort() model.SortKey        { return a.sort }
func (a *App) SetSort(key model.SortKey)  { a.sort = key }
func (a *App) TodoPage() view.TodoPage    { return view.Todos(a.todos, a.filter, a.clock()) }
func (a *App) DebtPage() view.DebtPage    { return view.Debts(a.debts, a.sort, a.clock()) }
func (a *App) MinDueDate() model.Date     { return model.NewDate(a.clock()) }
func (a *App) DefaultDueDate() model.Date { return a.MinDueDate().AddDays(7) }

func (a *App) commitTodos(ctx context.Context, next []model.Todo) error {
	if err := a.repo.SaveTodos(ctx, next); err != nil {
		return err
	}
	a.todos = next
	return nil
}

func (a *App) commitDebts(ctx context.Context, next []model.Debt) error {
	if err := a.repo.SaveDebts(ctx, next); err != nil {
		return err
	}
	a.debts = next
	return nil
}
