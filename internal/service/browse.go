package service

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/maxviazov/pagination/internal/config"
	"github.com/maxviazov/pagination/internal/model"
	"github.com/maxviazov/pagination/internal/repository"
	"github.com/maxviazov/pagination/pkg/pagination"
)

type browseService struct {
	articles repository.ArticleRepository
	cfg      config.PaginationConfig
	validate *validator.Validate
	log      zerolog.Logger
}

func NewBrowseService(articles repository.ArticleRepository, cfg config.PaginationConfig, logger zerolog.Logger) BrowseService {
	l := logger.With().Str("module", "service").Str("component", "browse").Logger()
	return &browseService{
		articles: articles,
		cfg:      cfg,
		validate: newValidator(),
		log:      l,
	}
}

// perPage resolves a requested page size against the configured default and cap.
func (s *browseService) perPage(requested int) int {
	switch {
	case requested <= 0:
		return s.cfg.DefaultPerPage
	case s.cfg.MaxPerPage > 0 && requested > s.cfg.MaxPerPage:
		return s.cfg.MaxPerPage
	default:
		return requested
	}
}

// navigable is satisfied by both pagination.List and pagination.Pager.
type navigable[P any] interface {
	Next() P
	Prev() P
	First() P
	Last() P
}

func navigate[P navigable[P]](p P, nav string) P {
	switch nav {
	case "next":
		return p.Next()
	case "prev":
		return p.Prev()
	case "first":
		return p.First()
	case "last":
		return p.Last()
	default:
		return p
	}
}

func windowOr(override *int, fallback int) int {
	if override == nil {
		return fallback
	}
	return *override
}

func filterByTag(tag string) func([]model.Article) []model.Article {
	return func(items []model.Article) []model.Article {
		return slices.DeleteFunc(items, func(a model.Article) bool { return a.Tag != tag })
	}
}

func filterByTitle(q string) func([]model.Article) []model.Article {
	q = strings.ToLower(q)
	return func(items []model.Article) []model.Article {
		return slices.DeleteFunc(items, func(a model.Article) bool {
			return !strings.Contains(strings.ToLower(a.Title), q)
		})
	}
}

// sortBy reorders a catalogue that arrives newest first.
func sortBy(order string) func([]model.Article) []model.Article {
	return func(items []model.Article) []model.Article {
		switch order {
		case "oldest":
			slices.Reverse(items)
		case "title":
			slices.SortStableFunc(items, func(a, b model.Article) int {
				return cmp.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
			})
		}
		return items
	}
}

func (s *browseService) Browse(ctx context.Context, q BrowseQuery) (model.BrowseResult, error) {
	q.Tag = strings.ToLower(strings.TrimSpace(q.Tag))
	q.Search = strings.TrimSpace(q.Search)
	if err := NewInvalidInputError(validate(s.validate, q, "")); err != nil {
		return model.BrowseResult{}, err
	}

	start := time.Now()
	all, err := s.articles.All(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("load catalogue failed")
		return model.BrowseResult{}, err
	}

	list := pagination.FromList(s.cfg.DefaultPerPage, all)
	if q.Tag != "" {
		list = list.Transform(filterByTag(q.Tag))
	}
	if q.Search != "" {
		list = list.Transform(filterByTitle(q.Search))
	}
	if q.Sort != "" && q.Sort != "newest" {
		list = list.Transform(sortBy(q.Sort))
	}
	list = list.ChangeItemsPerPage(s.perPage(q.PerPage))
	if q.Page > 0 {
		list = list.GoTo(q.Page)
	}
	list = navigate(list, q.Nav)

	items := list.Page()
	if items == nil {
		items = []model.Article{}
	}
	link := func(page int, current bool) model.PageLink {
		return model.PageLink{Page: page, Current: current}
	}
	res := model.BrowseResult{
		Items:      items,
		Page:       list.CurrentPage(),
		PerPage:    list.ItemsPerPage(),
		TotalPages: list.TotalPages(),
		TotalItems: pagination.FoldMap(list, func(a []model.Article) int { return len(a) }),
		IsFirst:    list.IsFirst(),
		IsLast:     list.IsLast(),
		Pages:      pagination.Pages(list, link),
		Elided: pagination.Elide(list, pagination.ElideOptions[model.PageLink]{
			InnerWindow: windowOr(q.Inner, s.cfg.InnerWindow),
			OuterWindow: windowOr(q.Outer, s.cfg.OuterWindow),
			PageView:    link,
			GapView:     model.PageLink{Gap: true},
		}),
	}
	if !res.IsFirst {
		prev := list.Prev().CurrentPage()
		res.PrevPage = &prev
	}
	if !res.IsLast {
		next := list.Next().CurrentPage()
		res.NextPage = &next
	}

	s.log.Debug().
		Dur("took", time.Since(start)).
		Int("page", res.Page).
		Int("per_page", res.PerPage).
		Int("total_items", res.TotalItems).
		Str("tag", q.Tag).
		Msg("catalogue browsed")
	return res, nil
}

func (s *browseService) Window(ctx context.Context, q WindowQuery) (model.WindowResult, error) {
	if err := NewInvalidInputError(validate(s.validate, q, "")); err != nil {
		return model.WindowResult{}, err
	}

	total, err := s.articles.Count(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("count articles failed")
		return model.WindowResult{}, err
	}
	pager := pagination.NewPager(s.perPage(q.PerPage), total)
	if q.Page > 0 {
		pager = pager.GoTo(q.Page)
	}
	pager = navigate(pager, q.Nav)

	res, err := s.fetch(ctx, pager)
	if err != nil {
		return model.WindowResult{}, err
	}
	// The catalogue may change between Count and List; resize and refetch once
	// if that moved the current page.
	if res.Total != pager.TotalItems() {
		resized := pager.Update(pager.ItemsPerPage(), res.Total)
		if resized.CurrentPage() != pager.CurrentPage() {
			s.log.Debug().Int("was", pager.TotalItems()).Int("now", res.Total).Msg("catalogue changed during window read")
			if res, err = s.fetch(ctx, resized); err != nil {
				return model.WindowResult{}, err
			}
		}
		pager = resized
	}

	items := res.Items
	if items == nil {
		items = []model.Article{}
	}
	offset, _ := pager.Bounds()
	return model.WindowResult{
		Items:      items,
		Page:       pager.CurrentPage(),
		PerPage:    pager.ItemsPerPage(),
		TotalPages: pager.TotalPages(),
		TotalItems: pager.TotalItems(),
		Offset:     offset,
		IsFirst:    pager.IsFirst(),
		IsLast:     pager.IsLast(),
	}, nil
}

func (s *browseService) fetch(ctx context.Context, p pagination.Pager) (repository.PageResult[model.Article], error) {
	from, to := p.Bounds()
	res, err := s.articles.List(ctx, repository.Page{Limit: to - from, Offset: from})
	if err != nil {
		s.log.Error().Err(err).Int("offset", from).Msg("list articles failed")
	}
	return res, err
}
