package service_test

import (
	"context"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/pagination/internal/config"
	"github.com/maxviazov/pagination/internal/model"
	"github.com/maxviazov/pagination/internal/repository"
	"github.com/maxviazov/pagination/internal/repository/memory"
	"github.com/maxviazov/pagination/internal/service"
)

var testPaging = config.PaginationConfig{DefaultPerPage: 10, MaxPerPage: 20, InnerWindow: 1, OuterWindow: 1}

func seededStore(t *testing.T, n int) *memory.Store {
	t.Helper()
	store := memory.NewStore()
	svc := service.NewArticleService(store, store, zerolog.New(io.Discard))
	_, err := svc.ImportArticles(context.Background(), seedInputs(n))
	require.NoError(t, err)
	return store
}

func slugs(items []model.Article) []string {
	out := make([]string, 0, len(items))
	for _, a := range items {
		out = append(out, a.Slug)
	}
	return out
}

func intPtr(v int) *int { return &v }

func TestBrowse_Defaults(t *testing.T) {
	svc := service.NewBrowseService(seededStore(t, 25), testPaging, zerolog.New(io.Discard))

	res, err := svc.Browse(context.Background(), service.BrowseQuery{})
	require.NoError(t, err)

	assert.Equal(t, 1, res.Page)
	assert.Equal(t, 10, res.PerPage)
	assert.Equal(t, 3, res.TotalPages)
	assert.Equal(t, 25, res.TotalItems)
	assert.True(t, res.IsFirst)
	assert.False(t, res.IsLast)
	assert.Nil(t, res.PrevPage)
	require.NotNil(t, res.NextPage)
	assert.Equal(t, 2, *res.NextPage)
	require.Len(t, res.Items, 10)
	assert.Equal(t, "article-25", res.Items[0].Slug)
	assert.Equal(t, []model.PageLink{{Page: 1, Current: true}, {Page: 2}, {Page: 3}}, res.Pages)
}

func TestBrowse_PageSelection(t *testing.T) {
	svc := service.NewBrowseService(seededStore(t, 25), testPaging, zerolog.New(io.Discard))
	ctx := context.Background()

	cases := []struct {
		name     string
		q        service.BrowseQuery
		wantPage int
		wantLen  int
	}{
		{"explicit page", service.BrowseQuery{Page: 2}, 2, 10},
		{"page past the end clamps", service.BrowseQuery{Page: 99}, 3, 5},
		{"next from two", service.BrowseQuery{Page: 2, Nav: "next"}, 3, 5},
		{"next from last stays", service.BrowseQuery{Page: 3, Nav: "next"}, 3, 5},
		{"prev from first stays", service.BrowseQuery{Nav: "prev"}, 1, 10},
		{"last", service.BrowseQuery{Nav: "last"}, 3, 5},
		{"first", service.BrowseQuery{Page: 3, Nav: "first"}, 1, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := svc.Browse(ctx, tc.q)
			require.NoError(t, err)
			assert.Equal(t, tc.wantPage, res.Page)
			assert.Len(t, res.Items, tc.wantLen)
		})
	}
}

func TestBrowse_PerPage(t *testing.T) {
	svc := service.NewBrowseService(seededStore(t, 25), testPaging, zerolog.New(io.Discard))
	ctx := context.Background()

	res, err := svc.Browse(ctx, service.BrowseQuery{PerPage: 5, Page: 5})
	require.NoError(t, err)
	assert.Equal(t, 5, res.TotalPages)
	assert.True(t, res.IsLast)
	assert.Equal(t, []string{"article-05", "article-04", "article-03", "article-02", "article-01"}, slugs(res.Items))

	res, err = svc.Browse(ctx, service.BrowseQuery{PerPage: 500})
	require.NoError(t, err)
	assert.Equal(t, 20, res.PerPage, "capped at max_per_page")
	assert.Equal(t, 2, res.TotalPages)
}

func TestBrowse_FilterSearchSort(t *testing.T) {
	svc := service.NewBrowseService(seededStore(t, 25), testPaging, zerolog.New(io.Discard))
	ctx := context.Background()

	res, err := svc.Browse(ctx, service.BrowseQuery{Tag: "GO"})
	require.NoError(t, err)
	assert.Equal(t, 12, res.TotalItems)
	assert.Equal(t, 2, res.TotalPages)
	for _, a := range res.Items {
		assert.Equal(t, "go", a.Tag)
	}

	res, err = svc.Browse(ctx, service.BrowseQuery{Search: "article 1"})
	require.NoError(t, err)
	assert.Equal(t, 10, res.TotalItems)
	assert.Equal(t, "article-19", res.Items[0].Slug)

	res, err = svc.Browse(ctx, service.BrowseQuery{Sort: "oldest", PerPage: 3})
	require.NoError(t, err)
	assert.Equal(t, []string{"article-01", "article-02", "article-03"}, slugs(res.Items))

	res, err = svc.Browse(ctx, service.BrowseQuery{Sort: "title", Tag: "db", PerPage: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"article-01", "article-03"}, slugs(res.Items))

	res, err = svc.Browse(ctx, service.BrowseQuery{Tag: "missing", Page: 4})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Page)
	assert.Equal(t, 1, res.TotalPages)
	assert.NotNil(t, res.Items)
	assert.Empty(t, res.Items)
	assert.True(t, res.IsFirst && res.IsLast)
}

func TestBrowse_Elided(t *testing.T) {
	svc := service.NewBrowseService(seededStore(t, 25), testPaging, zerolog.New(io.Discard))
	gap := model.PageLink{Gap: true}

	res, err := svc.Browse(context.Background(), service.BrowseQuery{PerPage: 1, Page: 5})
	require.NoError(t, err)
	assert.Equal(t, []model.PageLink{
		{Page: 1}, gap, {Page: 4}, {Page: 5, Current: true}, {Page: 6}, gap, {Page: 25},
	}, res.Elided)
	assert.Len(t, res.Pages, 25)

	res, err = svc.Browse(context.Background(), service.BrowseQuery{PerPage: 1, Page: 5, Inner: intPtr(0), Outer: intPtr(0)})
	require.NoError(t, err)
	assert.Equal(t, []model.PageLink{{Page: 5, Current: true}}, res.Elided)
}

func TestBrowse_InvalidQuery(t *testing.T) {
	svc := service.NewBrowseService(memory.NewStore(), testPaging, zerolog.New(io.Discard))

	_, err := svc.Browse(context.Background(), service.BrowseQuery{Nav: "sideways", Sort: "random", Inner: intPtr(11)})
	require.ErrorIs(t, err, service.ErrInvalidInput)
	assert.ElementsMatch(t, []string{"nav", "sort", "inner"}, fieldNames(err))
}

func TestWindow(t *testing.T) {
	svc := service.NewBrowseService(seededStore(t, 25), testPaging, zerolog.New(io.Discard))
	ctx := context.Background()

	res, err := svc.Window(ctx, service.WindowQuery{Page: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Page)
	assert.Equal(t, 20, res.Offset)
	assert.Equal(t, 25, res.TotalItems)
	assert.True(t, res.IsLast)
	assert.Equal(t, []string{"article-05", "article-04", "article-03", "article-02", "article-01"}, slugs(res.Items))

	res, err = svc.Window(ctx, service.WindowQuery{Page: 1, Nav: "next", PerPage: 4})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Page)
	assert.Equal(t, 4, res.Offset)
	assert.Equal(t, 7, res.TotalPages)
	assert.Len(t, res.Items, 4)
}

func TestWindow_EmptyCatalogue(t *testing.T) {
	svc := service.NewBrowseService(memory.NewStore(), testPaging, zerolog.New(io.Discard))

	res, err := svc.Window(context.Background(), service.WindowQuery{Page: 7})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Page)
	assert.Equal(t, 1, res.TotalPages)
	assert.Zero(t, res.Offset)
	assert.NotNil(t, res.Items)
	assert.Empty(t, res.Items)
}

// staleCount reports more articles than the store holds, as if rows were
// deleted between Count and List.
type staleCount struct {
	*memory.Store
	extra int
}

func (s staleCount) Count(ctx context.Context) (int, error) {
	n, err := s.Store.Count(ctx)
	return n + s.extra, err
}

var _ repository.ArticleRepository = staleCount{}

func TestWindow_RefetchesWhenCatalogueShrinks(t *testing.T) {
	repo := staleCount{Store: seededStore(t, 12), extra: 18}
	svc := service.NewBrowseService(repo, testPaging, zerolog.New(io.Discard))

	res, err := svc.Window(context.Background(), service.WindowQuery{Page: 3})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Page)
	assert.Equal(t, 2, res.TotalPages)
	assert.Equal(t, 12, res.TotalItems)
	assert.Equal(t, 10, res.Offset)
	assert.Equal(t, []string{"article-02", "article-01"}, slugs(res.Items))
}
