package repository

import (
	"context"

	"github.com/maxviazov/pagination/internal/model"
)

// Pinger represents a minimal readiness probe capability.
// I use it to decouple health checks from storage implementation details.
type Pinger interface {
	Ping(ctx context.Context) error
}

// TxFunc is the unit of work executed within a transaction boundary.
// I pass context through so nested calls can honor cancellations and deadlines.
type TxFunc func(ctx context.Context) error

// TxManager abstracts transactional execution for repositories that support it.
// I prefer a single entry point to keep transaction boundaries explicit and testable.
type TxManager interface {
	WithinTx(ctx context.Context, fn TxFunc) error
}

// ArticleRepository declares persistence operations for the catalogue.
// I return domain models and surface domain errors from errors.go rather than PG codes.
type ArticleRepository interface {
	Create(ctx context.Context, a model.Article) (model.Article, error)
	GetByID(ctx context.Context, id int64) (model.Article, error)
	// List returns one OFFSET/LIMIT window ordered by publication date, newest first.
	List(ctx context.Context, p Page) (PageResult[model.Article], error)
	Count(ctx context.Context) (int, error)
	// All returns the whole catalogue in the same order as List.
	All(ctx context.Context) ([]model.Article, error)
}
