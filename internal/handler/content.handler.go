package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/wanderlustbites/content-service/internal/cms"
	"github.com/wanderlustbites/content-service/internal/constant"
	"github.com/wanderlustbites/content-service/internal/model/response"
	"github.com/wanderlustbites/content-service/util"
)

type ContentHandler struct {
	cms *cms.Client
	log *zap.Logger
}

func NewContentHandler(client *cms.Client, log *zap.Logger) *ContentHandler {
	if log == nil {
		log = zap.L()
	}
	return &ContentHandler{cms: client, log: log}
}

type SlugParam struct {
	Slug string `uri:"slug" validate:"required"`
}

// respondWithETag writes the payload with an ETag header, answering a
// matching If-None-Match with 304 and no body.
func respondWithETag(c *gin.Context, payload response.ResponseData) {
	etag := util.GenerateETag(payload)
	if match := c.GetHeader("If-None-Match"); match != "" && match == etag {
		c.Status(http.StatusNotModified)
		return
	}
	c.Header("ETag", etag)
	c.JSON(http.StatusOK, payload)
}

// ListPosts godoc
//
//	@Summary		List posts
//	@Description	Returns all posts, newest first, with embedded author and categories
//	@Tags			Content
//	@Produce		json
//	@Success		200	{object}	response.ResponseData
//	@Router			/posts [get]
func (h *ContentHandler) ListPosts(c *gin.Context) {
	posts, err := h.cms.GetPosts(c.Request.Context())
	if err != nil {
		h.log.Error("list posts failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, constant.INTERNAL_SERVER_ERROR)
		return
	}

	total := len(posts)
	respondWithETag(c, response.ResponseData{
		Ec:    http.StatusOK,
		Total: &total,
		Data:  posts,
	})
}

// GetPost godoc
//
//	@Summary		Get post
//	@Description	Returns a single post by slug
//	@Tags			Content
//	@Produce		json
//	@Param			slug	path		string	true	"Post slug"
//	@Success		200		{object}	response.ResponseData
//	@Failure		404		{object}	response.ResponseData
//	@Router			/posts/{slug} [get]
func (h *ContentHandler) GetPost(c *gin.Context) {
	params := c.MustGet("validatedParams").(SlugParam)

	post, err := h.cms.GetPost(c.Request.Context(), params.Slug)
	if err != nil {
		if errors.Is(err, cms.ErrNotFound) {
			c.JSON(http.StatusNotFound, constant.NOT_FOUND)
			return
		}
		h.log.Error("get post failed", zap.Error(err), zap.String("slug", params.Slug))
		c.JSON(http.StatusInternalServerError, constant.INTERNAL_SERVER_ERROR)
		return
	}

	respondWithETag(c, response.ResponseData{
		Ec:   http.StatusOK,
		Data: post,
	})
}

// ListCategories godoc
//
//	@Summary		List categories
//	@Tags			Content
//	@Produce		json
//	@Success		200	{object}	response.ResponseData
//	@Router			/categories [get]
func (h *ContentHandler) ListCategories(c *gin.Context) {
	categories, err := h.cms.GetCategories(c.Request.Context())
	if err != nil {
		h.log.Error("list categories failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, constant.INTERNAL_SERVER_ERROR)
		return
	}

	total := len(categories)
	respondWithETag(c, response.ResponseData{
		Ec:    http.StatusOK,
		Total: &total,
		Data:  categories,
	})
}

// GetCategory godoc
//
//	@Summary		Get category
//	@Description	Returns a category by slug, with its posts newest first
//	@Tags			Content
//	@Produce		json
//	@Param			slug	path		string	true	"Category slug"
//	@Success		200		{object}	response.ResponseData
//	@Failure		404		{object}	response.ResponseData
//	@Router			/categories/{slug} [get]
func (h *ContentHandler) GetCategory(c *gin.Context) {
	params := c.MustGet("validatedParams").(SlugParam)
	ctx := c.Request.Context()

	category, err := h.cms.GetCategory(ctx, params.Slug)
	if err != nil {
		if errors.Is(err, cms.ErrNotFound) {
			c.JSON(http.StatusNotFound, constant.NOT_FOUND)
			return
		}
		h.log.Error("get category failed", zap.Error(err), zap.String("slug", params.Slug))
		c.JSON(http.StatusInternalServerError, constant.INTERNAL_SERVER_ERROR)
		return
	}

	posts, err := h.cms.GetPostsByCategory(ctx, category.ID)
	if err != nil {
		h.log.Error("get category posts failed", zap.Error(err), zap.String("categoryId", category.ID))
		c.JSON(http.StatusInternalServerError, constant.INTERNAL_SERVER_ERROR)
		return
	}

	respondWithETag(c, response.ResponseData{
		Ec: http.StatusOK,
		Data: gin.H{
			"category": category,
			"posts":    posts,
		},
	})
}

// ListAuthors godoc
//
//	@Summary		List authors
//	@Tags			Content
//	@Produce		json
//	@Success		200	{object}	response.ResponseData
//	@Router			/authors [get]
func (h *ContentHandler) ListAuthors(c *gin.Context) {
	authors, err := h.cms.GetAuthors(c.Request.Context())
	if err != nil {
		h.log.Error("list authors failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, constant.INTERNAL_SERVER_ERROR)
		return
	}

	total := len(authors)
	respondWithETag(c, response.ResponseData{
		Ec:    http.StatusOK,
		Total: &total,
		Data:  authors,
	})
}

// GetAuthor godoc
//
//	@Summary		Get author
//	@Description	Returns an author by slug, with their posts newest first
//	@Tags			Content
//	@Produce		json
//	@Param			slug	path		string	true	"Author slug"
//	@Success		200		{object}	response.ResponseData
//	@Failure		404		{object}	response.ResponseData
//	@Router			/authors/{slug} [get]
func (h *ContentHandler) GetAuthor(c *gin.Context) {
	params := c.MustGet("validatedParams").(SlugParam)
	ctx := c.Request.Context()

	author, err := h.cms.GetAuthor(ctx, params.Slug)
	if err != nil {
		if errors.Is(err, cms.ErrNotFound) {
			c.JSON(http.StatusNotFound, constant.NOT_FOUND)
			return
		}
		h.log.Error("get author failed", zap.Error(err), zap.String("slug", params.Slug))
		c.JSON(http.StatusInternalServerError, constant.INTERNAL_SERVER_ERROR)
		return
	}

	posts, err := h.cms.GetPostsByAuthor(ctx, author.ID)
	if err != nil {
		h.log.Error("get author posts failed", zap.Error(err), zap.String("authorId", author.ID))
		c.JSON(http.StatusInternalServerError, constant.INTERNAL_SERVER_ERROR)
		return
	}

	respondWithETag(c, response.ResponseData{
		Ec: http.StatusOK,
		Data: gin.H{
			"author": author,
			"posts":  posts,
		},
	})
}
