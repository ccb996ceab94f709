// Package response centralizes HTTP response shapes and helpers.
// Handlers rely on it to keep controllers thin and uniform.
package response

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/pagination/internal/repository"
	"github.com/maxviazov/pagination/internal/service"
	"github.com/maxviazov/pagination/pkg/pagination"
)

// ErrorPayload is the canonical error envelope returned by the API.
type ErrorPayload struct {
	Error       string               `json:"error"`
	Message     string               `json:"message,omitempty"`
	FieldErrors []service.FieldError `json:"field_errors,omitempty"`
}

// MapError converts a domain / infrastructure error into an HTTP status and payload.
func MapError(err error) (int, ErrorPayload) {
	if err == nil {
		return http.StatusOK, ErrorPayload{Error: "ok"}
	}

	if errors.Is(err, service.ErrInvalidInput) {
		return http.StatusBadRequest, ErrorPayload{
			Error:       "invalid_input",
			Message:     "one or more fields are invalid",
			FieldErrors: service.FieldErrors(err),
		}
	}

	switch {
	// Only pagination.Between returns ErrInvalidRange; the branch serves
	// handlers that build counters from client-supplied bounds.
	case errors.Is(err, pagination.ErrInvalidRange):
		return http.StatusBadRequest, ErrorPayload{Error: "invalid_range", Message: err.Error()}
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound, ErrorPayload{Error: "not_found"}
	case errors.Is(err, repository.ErrAlreadyExists):
		return http.StatusConflict, ErrorPayload{Error: "already_exists"}
	case errors.Is(err, repository.ErrConflict):
		return http.StatusConflict, ErrorPayload{Error: "conflict"}
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable, ErrorPayload{Error: "unavailable"}
	default:
		return http.StatusInternalServerError, ErrorPayload{Error: "internal_error"}
	}
}

// WriteError writes an error response and aborts the context.
func WriteError(c *gin.Context, err error) {
	status, payload := MapError(err)
	c.AbortWithStatusJSON(status, payload)
}

// WriteData writes a successful JSON response.
func WriteData(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

// SetPageHeaders advertises the position of a paged response through
// X-Total-Count and an RFC 8288 Link header. Links reuse the request URL with
// its page parameter replaced and nav dropped.
func SetPageHeaders(c *gin.Context, pos pagination.Position, totalItems int) {
	c.Header("X-Total-Count", strconv.Itoa(totalItems))
	c.Header("X-Total-Pages", strconv.Itoa(pos.TotalPages()))

	cur, last := pos.CurrentPage(), pos.TotalPages()
	rels := []struct {
		rel  string
		page int
		show bool
	}{
		{"first", 1, true},
		{"prev", cur - 1, cur > 1},
		{"next", cur + 1, cur < last},
		{"last", last, true},
	}
	links := make([]string, 0, len(rels))
	for _, r := range rels {
		if r.show {
			links = append(links, fmt.Sprintf("<%s>; rel=%q", pageURL(c, r.page), r.rel))
		}
	}
	c.Header("Link", strings.Join(links, ", "))
}

func pageURL(c *gin.Context, page int) string {
	u := *c.Request.URL
	q := u.Query()
	q.Del("nav")
	q.Set("page", strconv.Itoa(page))
	u.RawQuery = q.Encode()
	return u.RequestURI()
}

// Position adapts plain counters to pagination.Position for SetPageHeaders.
type Position struct {
	Current, Total int
}

func (p Position) CurrentPage() int { return p.Current }
func (p Position) TotalPages() int  { return p.Total }
