package response_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/maxviazov/pagination/internal/repository"
	"github.com/maxviazov/pagination/internal/service"
	"github.com/maxviazov/pagination/pkg/pagination"
	"github.com/maxviazov/pagination/pkg/response"
)

func TestMapError(t *testing.T) {
	_, rangeErr := pagination.Between(5, 1)

	cases := []struct {
		name     string
		in       error
		wantCode int
		wantErr  string
	}{
		{"invalid_input", service.NewInvalidInputError([]service.FieldError{{Field: "slug", Message: "bad"}}), 400, "invalid_input"},
		{"invalid_range", rangeErr, 400, "invalid_range"},
		{"not_found", repository.ErrNotFound, 404, "not_found"},
		{"wrapped not_found", fmt.Errorf("get article: %w", repository.ErrNotFound), 404, "not_found"},
		{"already_exists", repository.ErrAlreadyExists, 409, "already_exists"},
		{"conflict", repository.ErrConflict, 409, "conflict"},
		{"deadline", context.DeadlineExceeded, 503, "unavailable"},
		{"internal", errors.New("boom"), 500, "internal_error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, payload := response.MapError(tc.in)
			if code != tc.wantCode || payload.Error != tc.wantErr {
				t.Fatalf("unexpected mapping: got (%d,%s) want (%d,%s)", code, payload.Error, tc.wantCode, tc.wantErr)
			}
			if tc.wantErr == "invalid_input" && len(payload.FieldErrors) == 0 {
				t.Fatalf("expected field errors in payload")
			}
		})
	}
}

func TestSetPageHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name     string
		pos      pagination.Position
		wantLink string
	}{
		{
			name:     "middle page",
			pos:      pagination.FromList(2, []int{1, 2, 3, 4, 5, 6}).GoTo(2),
			wantLink: `</a?page=1>; rel="first", </a?page=1>; rel="prev", </a?page=3>; rel="next", </a?page=3>; rel="last"`,
		},
		{
			name:     "single page",
			pos:      response.Position{Current: 1, Total: 1},
			wantLink: `</a?page=1>; rel="first", </a?page=1>; rel="last"`,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/a?page=9&nav=next", nil)

			response.SetPageHeaders(c, tc.pos, 6)

			assert.Equal(t, "6", w.Header().Get("X-Total-Count"))
			assert.Equal(t, tc.wantLink, w.Header().Get("Link"))
		})
	}
}
