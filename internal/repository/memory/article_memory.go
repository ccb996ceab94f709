// Package memory is an in-process catalogue store. It backs the default
// storage driver and the service tests.
package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/maxviazov/pagination/internal/model"
	"github.com/maxviazov/pagination/internal/repository"
)

// Store keeps articles in a slice sorted in catalogue order (newest first).
type Store struct {
	mu       sync.RWMutex
	nextID   int64
	articles []model.Article
	now      func() time.Time
}

func NewStore() *Store {
	return &Store{nextID: 1, now: func() time.Time { return time.Now().UTC() }}
}

func catalogueOrder(a, b model.Article) int {
	if c := b.PublishedAt.Compare(a.PublishedAt); c != 0 {
		return c
	}
	return cmp.Compare(b.ID, a.ID)
}

func (s *Store) Create(ctx context.Context, a model.Article) (model.Article, error) {
	if err := ctx.Err(); err != nil {
		return model.Article{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if slices.ContainsFunc(s.articles, func(x model.Article) bool { return x.Slug == a.Slug }) {
		return model.Article{}, repository.ErrAlreadyExists
	}
	// mirrors the articles table's CHECK (length(title) > 0)
	if a.Title == "" {
		return model.Article{}, repository.ErrConflict
	}
	a.ID = s.nextID
	s.nextID++
	a.CreatedAt = s.now()
	a.UpdatedAt = a.CreatedAt

	i, _ := slices.BinarySearchFunc(s.articles, a, catalogueOrder)
	s.articles = slices.Insert(s.articles, i, a)
	return a, nil
}

func (s *Store) GetByID(ctx context.Context, id int64) (model.Article, error) {
	if err := ctx.Err(); err != nil {
		return model.Article{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.articles {
		if a.ID == id {
			return a, nil
		}
	}
	return model.Article{}, repository.ErrNotFound
}

func (s *Store) List(ctx context.Context, p repository.Page) (repository.PageResult[model.Article], error) {
	if err := ctx.Err(); err != nil {
		return repository.PageResult[model.Article]{}, err
	}
	limit, offset := p.Limit, max(0, p.Offset)
	if limit <= 0 {
		limit = 50
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	from := min(offset, len(s.articles))
	to := min(from+limit, len(s.articles))
	return repository.PageResult[model.Article]{
		Items: slices.Clone(s.articles[from:to]),
		Total: len(s.articles),
	}, nil
}

func (s *Store) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.articles), nil
}

func (s *Store) All(ctx context.Context) ([]model.Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.articles), nil
}

// Ping reports the store as always ready.
func (s *Store) Ping(ctx context.Context) error { return ctx.Err() }

// WithinTx snapshots the store and restores it if fn fails. It does not
// isolate concurrent writers; other calls may observe the partial state.
func (s *Store) WithinTx(ctx context.Context, fn repository.TxFunc) error {
	s.mu.RLock()
	snapshot, nextID := slices.Clone(s.articles), s.nextID
	s.mu.RUnlock()

	if err := fn(ctx); err != nil {
		s.mu.Lock()
		s.articles, s.nextID = snapshot, nextID
		s.mu.Unlock()
		return err
	}
	return nil
}

var (
	_ repository.ArticleRepository = (*Store)(nil)
	_ repository.TxManager         = (*Store)(nil)
	_ repository.Pinger            = (*Store)(nil)
)
