package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/pagination/internal/service"
	"github.com/maxviazov/pagination/pkg/response"
)

type ArticleHandler struct {
	svc service.ArticleService
}

func NewArticleHandler(svc service.ArticleService) *ArticleHandler { return &ArticleHandler{svc: svc} }

func (h *ArticleHandler) Register(r *gin.RouterGroup) {
	r.POST("", h.create)
	r.POST("/import", h.importBatch)
	r.GET("/:id", h.getByID)
}

type importRequest struct {
	Articles []service.ArticleInput `json:"articles"`
}

type importResponse struct {
	Imported int `json:"imported"`
}

func (h *ArticleHandler) create(c *gin.Context) {
	var req service.ArticleInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	a, err := h.svc.CreateArticle(c.Request.Context(), req)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	c.Header("Location", ArticlesPath+"/"+strconv.FormatInt(a.ID, 10))
	response.WriteData(c, http.StatusCreated, a)
}

func (h *ArticleHandler) importBatch(c *gin.Context) {
	var req importRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	n, err := h.svc.ImportArticles(c.Request.Context(), req.Articles)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, importResponse{Imported: n})
}

func (h *ArticleHandler) getByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.WriteError(c, service.NewInvalidInputError([]service.FieldError{{Field: "id", Message: "must be an integer"}}))
		return
	}
	a, err := h.svc.GetArticle(c.Request.Context(), id)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, a)
}
