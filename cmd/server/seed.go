package main

import (
	"context"
	"fmt"
	"time"

	"github.com/maxviazov/pagination/internal/repository"
	"github.com/maxviazov/pagination/internal/service"
)

var seedTags = []string{"go", "databases", "networking", "testing"}

// seedInputs generates n demo articles published a day apart, ending at until.
func seedInputs(n int, until time.Time) []service.ArticleInput {
	out := make([]service.ArticleInput, 0, n)
	for i := 1; i <= n; i++ {
		tag := seedTags[i%len(seedTags)]
		out = append(out, service.ArticleInput{
			Slug:        fmt.Sprintf("%s-notes-%d", tag, i),
			Title:       fmt.Sprintf("Notes on %s, part %d", tag, i),
			Author:      "seed",
			Tag:         tag,
			PublishedAt: until.AddDate(0, 0, i-n),
		})
	}
	return out
}

// seed fills an empty catalogue with n demo articles. A non-empty catalogue is left alone.
func seed(ctx context.Context, repo repository.ArticleRepository, svc service.ArticleService, n int) error {
	if n <= 0 {
		return nil
	}
	count, err := repo.Count(ctx)
	if err != nil || count > 0 {
		return err
	}
	_, err = svc.ImportArticles(ctx, seedInputs(n, time.Now().UTC()))
	return err
}
