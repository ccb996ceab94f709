package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/maxviazov/pagination/internal/model"
	"github.com/maxviazov/pagination/internal/repository"
)

const articleColumns = `id, slug, title, author, tag, published_at, created_at, updated_at`

// catalogue order shared by List and All; id breaks ties between equal timestamps
const articleOrder = `ORDER BY published_at DESC, id DESC`

type articleRepository struct{ pool *pgxpool.Pool }

func NewArticleRepository(pool *pgxpool.Pool) repository.ArticleRepository {
	return &articleRepository{pool: pool}
}

func scanArticle(row pgx.Row) (model.Article, error) {
	var a model.Article
	err := row.Scan(&a.ID, &a.Slug, &a.Title, &a.Author, &a.Tag, &a.PublishedAt, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

func (r *articleRepository) Create(ctx context.Context, a model.Article) (model.Article, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Article{}, err
	}
	row := getQ(ctx, r.pool).QueryRow(ctx,
		`INSERT INTO articles (slug, title, author, tag, published_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+articleColumns,
		a.Slug, a.Title, a.Author, a.Tag, a.PublishedAt,
	)
	out, err := scanArticle(row)
	if err != nil {
		return model.Article{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *articleRepository) GetByID(ctx context.Context, id int64) (model.Article, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Article{}, err
	}
	row := getQ(ctx, r.pool).QueryRow(ctx,
		`SELECT `+articleColumns+` FROM articles WHERE id = $1`, id,
	)
	out, err := scanArticle(row)
	if err != nil {
		return model.Article{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *articleRepository) List(ctx context.Context, p repository.Page) (repository.PageResult[model.Article], error) {
	if err := ensurePool(r.pool); err != nil {
		return repository.PageResult[model.Article]{}, err
	}
	limit, offset := sanitizeLimitOffset(p.Limit, p.Offset)
	exec := getQ(ctx, r.pool)

	// COUNT(*) OVER() yields nothing for an offset past the end, so the total
	// comes from its own query in that case.
	rows, err := exec.Query(ctx,
		`SELECT `+articleColumns+`, COUNT(*) OVER() AS total
		 FROM articles `+articleOrder+`
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return repository.PageResult[model.Article]{}, repository.MapPgError(err)
	}
	defer rows.Close()

	res := repository.PageResult[model.Article]{Items: make([]model.Article, 0, limit)}
	for rows.Next() {
		var a model.Article
		if err := rows.Scan(&a.ID, &a.Slug, &a.Title, &a.Author, &a.Tag, &a.PublishedAt, &a.CreatedAt, &a.UpdatedAt, &res.Total); err != nil {
			return repository.PageResult[model.Article]{}, repository.MapPgError(err)
		}
		res.Items = append(res.Items, a)
	}
	if err := rows.Err(); err != nil {
		return repository.PageResult[model.Article]{}, repository.MapPgError(err)
	}
	if len(res.Items) == 0 {
		if res.Total, err = r.Count(ctx); err != nil {
			return repository.PageResult[model.Article]{}, err
		}
	}
	return res, nil
}

func (r *articleRepository) Count(ctx context.Context) (int, error) {
	if err := ensurePool(r.pool); err != nil {
		return 0, err
	}
	var n int
	if err := getQ(ctx, r.pool).QueryRow(ctx, `SELECT COUNT(*) FROM articles`).Scan(&n); err != nil {
		return 0, repository.MapPgError(err)
	}
	return n, nil
}

func (r *articleRepository) All(ctx context.Context) ([]model.Article, error) {
	if err := ensurePool(r.pool); err != nil {
		return nil, err
	}
	rows, err := getQ(ctx, r.pool).Query(ctx, `SELECT `+articleColumns+` FROM articles `+articleOrder)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Article, error) {
		return scanArticle(row)
	})
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	return out, nil
}

var _ repository.ArticleRepository = (*articleRepository)(nil)
