package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/wanderlustbites/content-service/internal/auth"
	"github.com/wanderlustbites/content-service/internal/middleware"
	"github.com/wanderlustbites/content-service/internal/validation"
)

// Handlers bundles everything RegisterRoutes mounts.
type Handlers struct {
	Auth       *AuthHandler
	Content    *ContentHandler
	Search     *SearchHandler
	Contact    *ContactHandler
	Newsletter *NewsletterHandler

	Issuer *auth.Issuer
	Cookie auth.CookieOpts
}

// RegisterRoutes mounts the API under pathPrefix/v1.
func RegisterRoutes(r *gin.Engine, pathPrefix string, h Handlers) {
	v1 := r.Group(pathPrefix + "/v1")

	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/signup", validation.Validate[SignupRequest, any, any](), h.Auth.Signup)
		authGroup.POST("/login", validation.Validate[LoginRequest, any, any](), h.Auth.Login)
		authGroup.POST("/logout", h.Auth.Logout)
		authGroup.GET("/me", middleware.RequireSession(h.Issuer, h.Cookie), h.Auth.Me)
	}

	v1.GET("/posts", h.Content.ListPosts)
	v1.GET("/posts/:slug", validation.Validate[any, SlugParam, any](), h.Content.GetPost)
	v1.GET("/categories", h.Content.ListCategories)
	v1.GET("/categories/:slug", validation.Validate[any, SlugParam, any](), h.Content.GetCategory)
	v1.GET("/authors", h.Content.ListAuthors)
	v1.GET("/authors/:slug", validation.Validate[any, SlugParam, any](), h.Content.GetAuthor)

	v1.GET("/search", validation.Validate[any, any, SearchQuery](), h.Search.Search)
	v1.GET("/search/filters", validation.Validate[any, any, FiltersQuery](), h.Search.Filters)

	v1.POST("/contact", validation.Validate[ContactRequest, any, any](), h.Contact.Send)
	v1.POST("/newsletter/subscribe", validation.Validate[SubscribeRequest, any, any](), h.Newsletter.Subscribe)
}
