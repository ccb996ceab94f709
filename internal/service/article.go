package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/maxviazov/pagination/internal/model"
	"github.com/maxviazov/pagination/internal/repository"
)

// maxImportBatch bounds a single import request.
const maxImportBatch = 1000

type articleService struct {
	articles repository.ArticleRepository
	tx       repository.TxManager
	validate *validator.Validate
	now      func() time.Time
	log      zerolog.Logger
}

func NewArticleService(articles repository.ArticleRepository, tx repository.TxManager, logger zerolog.Logger) ArticleService {
	l := logger.With().Str("module", "service").Str("component", "article").Logger()
	return &articleService{
		articles: articles,
		tx:       tx,
		validate: newValidator(),
		now:      func() time.Time { return time.Now().UTC() },
		log:      l,
	}
}

func (s *articleService) prepare(in ArticleInput, prefix string) (model.Article, []FieldError) {
	in = normalizeInput(in)
	if ferrs := validate(s.validate, in, prefix); len(ferrs) > 0 {
		return model.Article{}, ferrs
	}
	published := in.PublishedAt
	if published.IsZero() {
		published = s.now()
	}
	return model.Article{
		Slug:        in.Slug,
		Title:       in.Title,
		Author:      in.Author,
		Tag:         in.Tag,
		PublishedAt: published.UTC(),
	}, nil
}

func (s *articleService) CreateArticle(ctx context.Context, in ArticleInput) (model.Article, error) {
	start := time.Now()
	a, ferrs := s.prepare(in, "")
	if err := NewInvalidInputError(ferrs); err != nil {
		s.log.Debug().Interface("field_errors", ferrs).Str("slug_raw", in.Slug).Msg("article validation failed")
		return model.Article{}, err
	}

	out, err := s.articles.Create(ctx, a)
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return model.Article{}, NewInvalidInputError([]FieldError{{Field: "slug", Message: "already taken"}})
		}
		s.log.Error().Err(err).Str("slug", a.Slug).Msg("create article failed")
		return model.Article{}, err
	}
	s.log.Info().Dur("took", time.Since(start)).Int64("article_id", out.ID).Msg("article created")
	return out, nil
}

func (s *articleService) GetArticle(ctx context.Context, id int64) (model.Article, error) {
	if id <= 0 {
		return model.Article{}, NewInvalidInputError([]FieldError{{Field: "id", Message: "must be > 0"}})
	}
	return s.articles.GetByID(ctx, id)
}

func (s *articleService) ImportArticles(ctx context.Context, in []ArticleInput) (int, error) {
	switch {
	case len(in) == 0:
		return 0, NewInvalidInputError([]FieldError{{Field: "articles", Message: "must not be empty"}})
	case len(in) > maxImportBatch:
		return 0, NewInvalidInputError([]FieldError{{Field: "articles", Message: fmt.Sprintf("at most %d per import", maxImportBatch)}})
	}

	// Validate the whole batch up front so a bad row never leaves a half-applied import.
	batch := make([]model.Article, 0, len(in))
	seen := make(map[string]int, len(in))
	var ferrs []FieldError
	for i, raw := range in {
		prefix := fmt.Sprintf("articles[%d].", i)
		a, fe := s.prepare(raw, prefix)
		if len(fe) > 0 {
			ferrs = append(ferrs, fe...)
			continue
		}
		if j, dup := seen[a.Slug]; dup {
			ferrs = append(ferrs, FieldError{Field: prefix + "slug", Message: fmt.Sprintf("duplicates articles[%d]", j)})
			continue
		}
		seen[a.Slug] = i
		batch = append(batch, a)
	}
	if err := NewInvalidInputError(ferrs); err != nil {
		s.log.Debug().Int("rows", len(in)).Int("invalid", len(ferrs)).Msg("import validation failed")
		return 0, err
	}

	start := time.Now()
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		for i, a := range batch {
			if _, err := s.articles.Create(ctx, a); err != nil {
				return fmt.Errorf("articles[%d]: %w", i, err)
			}
		}
		return nil
	})
	if err != nil {
		s.log.Error().Err(err).Int("rows", len(batch)).Msg("import failed")
		return 0, err
	}
	s.log.Info().Dur("took", time.Since(start)).Int("rows", len(batch)).Msg("articles imported")
	return len(batch), nil
}
