package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/pagination/internal/service"
	"github.com/maxviazov/pagination/pkg/response"
)

// BrowseHandler serves paged reads of the catalogue.
type BrowseHandler struct {
	svc service.BrowseService
}

func NewBrowseHandler(svc service.BrowseService) *BrowseHandler { return &BrowseHandler{svc: svc} }

func (h *BrowseHandler) Register(r *gin.RouterGroup) {
	r.GET("", h.list)
	r.GET("/window", h.window)
}

// list pages through the filtered catalogue held in memory and returns the
// page selectors alongside the items.
func (h *BrowseHandler) list(c *gin.Context) {
	var q service.BrowseQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.WriteError(c, service.NewInvalidInputError([]service.FieldError{{Field: "query", Message: "malformed query parameters"}}))
		return
	}
	res, err := h.svc.Browse(c.Request.Context(), q)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.SetPageHeaders(c, response.Position{Current: res.Page, Total: res.TotalPages}, res.TotalItems)
	response.WriteData(c, http.StatusOK, res)
}

// window reads a single OFFSET/LIMIT page straight from storage.
func (h *BrowseHandler) window(c *gin.Context) {
	var q service.WindowQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.WriteError(c, service.NewInvalidInputError([]service.FieldError{{Field: "query", Message: "malformed query parameters"}}))
		return
	}
	res, err := h.svc.Window(c.Request.Context(), q)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.SetPageHeaders(c, response.Position{Current: res.Page, Total: res.TotalPages}, res.TotalItems)
	response.WriteData(c, http.StatusOK, res)
}
