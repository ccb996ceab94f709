// Package service holds business logic orchestration across repositories and handlers.
// Kept intentionally lean: only use-case coordination, validation and domain error shaping.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/maxviazov/pagination/internal/model"
)

// ErrInvalidInput is the marker error for aggregated validation failures (maps to HTTP 400).
// Field-level details are retrieved via FieldErrors(err).
var ErrInvalidInput = errors.New("invalid input")

// FieldError describes a single invalid field in a client request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// invalidInputError aggregates multiple FieldError instances and unwraps to ErrInvalidInput.
type invalidInputError struct {
	fields []FieldError
}

func (e *invalidInputError) Error() string        { return ErrInvalidInput.Error() }
func (e *invalidInputError) Unwrap() error        { return ErrInvalidInput }
func (e *invalidInputError) Fields() []FieldError { return e.fields }

// NewInvalidInputError builds an aggregated validation error; nil when there is nothing to report.
func NewInvalidInputError(fe []FieldError) error {
	if len(fe) == 0 {
		return nil
	}
	return &invalidInputError{fields: fe}
}

// FieldErrors extracts field errors from an aggregated validation error.
func FieldErrors(err error) []FieldError {
	var fe interface{ Fields() []FieldError }
	if errors.As(err, &fe) && errors.Is(err, ErrInvalidInput) {
		return fe.Fields()
	}
	return nil
}

// ArticleInput is the client-supplied part of an article.
type ArticleInput struct {
	Slug        string    `json:"slug" validate:"required,max=80,slug"`
	Title       string    `json:"title" validate:"required,max=200"`
	Author      string    `json:"author" validate:"required,max=100"`
	Tag         string    `json:"tag" validate:"omitempty,max=32,slug"`
	PublishedAt time.Time `json:"published_at"`
}

// BrowseQuery selects one page of the catalogue. Zero values fall back to
// configured defaults; out-of-range pages are clamped rather than rejected.
type BrowseQuery struct {
	Page    int    `form:"page"`
	PerPage int    `form:"per_page" validate:"min=0"`
	Nav     string `form:"nav" validate:"omitempty,oneof=next prev first last"`
	Tag     string `form:"tag" validate:"omitempty,max=32"`
	Search  string `form:"q" validate:"omitempty,max=100"`
	Sort    string `form:"sort" validate:"omitempty,oneof=newest oldest title"`
	// Inner and Outer override the elided pager windows; negative values count as 0.
	Inner *int `form:"inner" validate:"omitempty,max=10"`
	Outer *int `form:"outer" validate:"omitempty,max=10"`
}

// WindowQuery selects one page straight from storage.
type WindowQuery struct {
	Page    int    `form:"page"`
	PerPage int    `form:"per_page" validate:"min=0"`
	Nav     string `form:"nav" validate:"omitempty,oneof=next prev first last"`
}

// ArticleService defines catalogue maintenance use cases.
type ArticleService interface {
	CreateArticle(ctx context.Context, in ArticleInput) (model.Article, error)
	GetArticle(ctx context.Context, id int64) (model.Article, error)
	// ImportArticles stores all articles or none of them.
	ImportArticles(ctx context.Context, in []ArticleInput) (int, error)
}

// BrowseService defines the paginated read use cases.
type BrowseService interface {
	Browse(ctx context.Context, q BrowseQuery) (model.BrowseResult, error)
	Window(ctx context.Context, q WindowQuery) (model.WindowResult, error)
}
