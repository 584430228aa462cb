// Package store persists the two collections as JSON blobs in a key-value backend.
//
// The in-memory collections are authoritative; a blob is only ever a mirror
// that gets overwritten after each mutation. A missing or unreadable blob
// loads as an empty collection.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/idilsaglam/nasiya/internal/model"
)

// Blob keys.
const (
	KeyTodos = "todos"
	KeyDebts = "debts"
)

// ErrNotFound is returned by a Backend when a key has never been written.
var ErrNotFound = errors.New("key not found")

// Backend is a synchronous key-value store of opaque blobs.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

// Repository encodes collections to JSON and hands them to a Backend.
type Repository struct {
	backend Backend
	logger  *log.Logger
}

// NewRepository wraps b. A nil logger falls back to the standard logger.
func NewRepository(b Backend, logger *log.Logger) *Repository {
	if logger == nil {
		logger = log.Default()
	}
	return &Repository{backend: b, logger: logger}
}

func (r *Repository) LoadTodos(ctx context.Context) ([]model.Todo, error) {
	return load[model.Todo](ctx, r, KeyTodos)
}

func (r *Repository) SaveTodos(ctx context.Context, todos []model.Todo) error {
	return save(ctx, r, KeyTodos, todos)
}

func (r *Repository) LoadDebts(ctx context.Context) ([]model.Debt, error) {
	return load[model.Debt](ctx, r, KeyDebts)
}

func (r *Repository) SaveDebts(ctx context.Context, debts []model.Debt) error {
	return save(ctx, r, KeyDebts, debts)
}

func (r *Repository) Close() error { return r.backend.Close() }

func load[T any](ctx context.Context, r *Repository, key string) ([]T, error) {
	b, err := r.backend.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	if len(b) == 0 {
		return []T{}, nil
	}
	var items []T
	if err := json.Unmarshal(b, &items); err != nil {
		r.logger.Printf("store: %s blob is not valid JSON, starting empty: %v", key, err)
		return []T{}, nil
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func save[T any](ctx context.Context, r *Repository, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal %s: %w", key, err)
	}
	if err := r.backend.Set(ctx, key, b); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
