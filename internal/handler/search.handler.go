package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/wanderlustbites/content-service/internal/cms"
	"github.com/wanderlustbites/content-service/internal/constant"
	"github.com/wanderlustbites/content-service/internal/model/response"
	"github.com/wanderlustbites/content-service/internal/search"
)

type SearchHandler struct {
	cms *cms.Client
	log *zap.Logger
}

func NewSearchHandler(client *cms.Client, log *zap.Logger) *SearchHandler {
	if log == nil {
		log = zap.L()
	}
	return &SearchHandler{cms: client, log: log}
}

type SearchQuery struct {
	Q        string `form:"q"`
	Category string `form:"category"`
	Author   string `form:"author"`
}

type FiltersQuery struct {
	Type string `form:"type" validate:"required,oneof=categories authors"`
}

// Search godoc
//
//	@Summary		Search posts
//	@Description	Category and author constraints narrow the bucket query; the free-text term then filters title, content and author name in memory. Results are newest first.
//	@Tags			Search
//	@Produce		json
//	@Param			q			query		string	false	"Free-text search term"
//	@Param			category	query		string	false	"Category id"
//	@Param			author		query		string	false	"Author id"
//	@Success		200			{object}	response.ResponseData
//	@Router			/search [get]
func (h *SearchHandler) Search(c *gin.Context) {
	query := c.MustGet("validatedQuery").(SearchQuery)

	posts, err := h.cms.FindPosts(c.Request.Context(), query.Category, query.Author)
	if err != nil {
		h.log.Error("search failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, constant.INTERNAL_SERVER_ERROR)
		return
	}

	posts = search.Filter(posts, query.Q)

	total := len(posts)
	c.JSON(http.StatusOK, response.ResponseData{
		Ec:    http.StatusOK,
		Total: &total,
		Data:  posts,
	})
}

// Filters godoc
//
//	@Summary		Search filter options
//	@Description	Returns the category or author list used to populate search filters
//	@Tags			Search
//	@Produce		json
//	@Param			type	query		string	true	"Filter type"	Enums(categories, authors)
//	@Success		200		{object}	response.ResponseData
//	@Failure		400		{object}	response.ResponseData
//	@Router			/search/filters [get]
func (h *SearchHandler) Filters(c *gin.Context) {
	query := c.MustGet("validatedQuery").(FiltersQuery)
	ctx := c.Request.Context()

	var data any
	var err error
	switch query.Type {
	case "categories":
		data, err = h.cms.GetCategories(ctx)
	case "authors":
		data, err = h.cms.GetAuthors(ctx)
	}
	if err != nil {
		h.log.Error("filters fetch failed", zap.Error(err), zap.String("type", query.Type))
		c.JSON(http.StatusInternalServerError, constant.INTERNAL_SERVER_ERROR)
		return
	}

	c.JSON(http.StatusOK, response.ResponseData{
		Ec:   http.StatusOK,
		Data: data,
	})
}
