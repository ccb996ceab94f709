// Package contract holds behaviour suites every repository implementation must pass.
package contract

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/maxviazov/pagination/internal/model"
	"github.com/maxviazov/pagination/internal/repository"
)

type ArticleFactory func(t *testing.T) (repository.ArticleRepository, func())

type TxFactory func(t *testing.T) (tx repository.TxManager, articles repository.ArticleRepository, cleanup func())

type PingerFactory func(t *testing.T) (repository.Pinger, func())

var base = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func article(i int) model.Article {
	return model.Article{
		Slug:        fmt.Sprintf("article-%02d", i),
		Title:       fmt.Sprintf("Article %d", i),
		Author:      "Ada",
		Tag:         "go",
		PublishedAt: base.Add(time.Duration(i) * time.Hour),
	}
}

func seed(t *testing.T, repo repository.ArticleRepository, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		if _, err := repo.Create(context.Background(), article(i)); err != nil {
			t.Fatalf("seed %d: %v", i, err)
		}
	}
}

func RunArticleRepositoryContract(t *testing.T, makeRepo ArticleFactory) {
	t.Helper()

	t.Run("create_and_get", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		created, err := repo.Create(ctx, article(1))
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		if created.ID == 0 || created.CreatedAt.IsZero() {
			t.Fatalf("expected id and timestamps to be assigned: %+v", created)
		}
		got, err := repo.GetByID(ctx, created.ID)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if got.ID != created.ID || got.Slug != created.Slug || !got.PublishedAt.Equal(created.PublishedAt) {
			t.Fatalf("mismatch: %+v vs %+v", got, created)
		}
	})

	t.Run("get_not_found", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		_, err := repo.GetByID(context.Background(), 999999)
		if !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("duplicate_slug", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		if _, err := repo.Create(ctx, article(1)); err != nil {
			t.Fatalf("seed: %v", err)
		}
		dup := article(2)
		dup.Slug = article(1).Slug
		if _, err := repo.Create(ctx, dup); !errors.Is(err, repository.ErrAlreadyExists) {
			t.Fatalf("expected ErrAlreadyExists, got %v", err)
		}
	})

	t.Run("empty_title_conflict", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		a := article(1)
		a.Title = ""
		if _, err := repo.Create(context.Background(), a); !errors.Is(err, repository.ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
	})

	t.Run("list_window_and_total", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		seed(t, repo, 7)

		res, err := repo.List(ctx, repository.Page{Limit: 3, Offset: 0})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(res.Items) != 3 || res.Total != 7 {
			t.Fatalf("unexpected page: len=%d total=%d", len(res.Items), res.Total)
		}
		// newest first
		if res.Items[0].Slug != "article-07" || res.Items[2].Slug != "article-05" {
			t.Fatalf("unexpected order: %s..%s", res.Items[0].Slug, res.Items[2].Slug)
		}

		last, err := repo.List(ctx, repository.Page{Limit: 3, Offset: 6})
		if err != nil {
			t.Fatalf("list last: %v", err)
		}
		if len(last.Items) != 1 || last.Items[0].Slug != "article-01" || last.Total != 7 {
			t.Fatalf("unexpected last page: %+v", last)
		}

		past, err := repo.List(ctx, repository.Page{Limit: 3, Offset: 30})
		if err != nil {
			t.Fatalf("list past end: %v", err)
		}
		if len(past.Items) != 0 || past.Total != 7 {
			t.Fatalf("expected empty window with total 7, got len=%d total=%d", len(past.Items), past.Total)
		}
	})

	t.Run("count_and_all", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()

		n, err := repo.Count(ctx)
		if err != nil || n != 0 {
			t.Fatalf("expected empty store, got n=%d err=%v", n, err)
		}
		seed(t, repo, 4)
		n, err = repo.Count(ctx)
		if err != nil || n != 4 {
			t.Fatalf("expected 4, got n=%d err=%v", n, err)
		}
		all, err := repo.All(ctx)
		if err != nil {
			t.Fatalf("all: %v", err)
		}
		if len(all) != 4 || all[0].Slug != "article-04" || all[3].Slug != "article-01" {
			t.Fatalf("unexpected catalogue: %+v", all)
		}
	})
}

func RunTxManagerContract(t *testing.T, makeTx TxFactory) {
	t.Helper()

	t.Run("commit", func(t *testing.T) {
		tx, repo, cleanup := makeTx(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		err := tx.WithinTx(ctx, func(ctx context.Context) error {
			for i := 1; i <= 2; i++ {
				if _, err := repo.Create(ctx, article(i)); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			t.Fatalf("tx: %v", err)
		}
		if n, _ := repo.Count(ctx); n != 2 {
			t.Fatalf("expected 2 articles after commit, got %d", n)
		}
	})

	t.Run("rollback_on_error", func(t *testing.T) {
		tx, repo, cleanup := makeTx(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		boom := errors.New("boom")
		err := tx.WithinTx(ctx, func(ctx context.Context) error {
			if _, err := repo.Create(ctx, article(1)); err != nil {
				return err
			}
			return boom
		})
		if !errors.Is(err, boom) {
			t.Fatalf("expected boom, got %v", err)
		}
		if n, _ := repo.Count(ctx); n != 0 {
			t.Fatalf("expected rollback, got %d articles", n)
		}
	})
}

func RunPingerContract(t *testing.T, makePinger PingerFactory) {
	t.Helper()
	p, cleanup := makePinger(t)
	t.Cleanup(cleanup)
	if err := p.Ping(context.Background()); err != nil {
		t.Fatalf("ping: %v", err)
	}
}
