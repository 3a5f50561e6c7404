package validation

import (
	"bytes"
	"io"
	"net/http"
	"net/url"
	"reflect"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/wanderlustbites/content-service/internal/constant"
)

var validate *validator.Validate = validator.New()

func isEmptyInterface[T any]() bool {
	t := reflect.TypeOf((*T)(nil)).Elem()
	return t == reflect.TypeOf((*any)(nil)).Elem()
}

// Validate binds and validates the request body, URI params and query string
// into B, P and Q. Use `any` for the positions a route does not need. The
// validated values land in the gin context under "validatedBody",
// "validatedParams" and "validatedQuery".
func Validate[B any, P any, Q any]() gin.HandlerFunc {
	return func(c *gin.Context) {
		var error string
		c.Set("error", &error)
		resData := constant.INVALID_REQUEST

		// --- Body ---
		if !isEmptyInterface[B]() {
			var body B

			rawData, err := io.ReadAll(c.Request.Body)
			if err != nil {
				error = err.Error()
				resData.Error = err.Error()
				c.AbortWithStatusJSON(http.StatusBadRequest, resData)
				return
			}
			c.Request.Body = io.NopCloser(bytes.NewBuffer(rawData))

			if err := c.ShouldBindJSON(&body); err != nil {
				error = err.Error()
				resData.Error = err.Error()
				c.AbortWithStatusJSON(http.StatusBadRequest, resData)
				return
			}
			if err := validate.Struct(body); err != nil {
				error = err.Error()
				resData.Error = err.Error()
				c.AbortWithStatusJSON(http.StatusBadRequest, resData)
				return
			}

			// Restore the body so later middleware can still read it
			c.Request.Body = io.NopCloser(bytes.NewBuffer(rawData))
			c.Set("validatedBody", body)
		}

		// --- Params ---
		if !isEmptyInterface[P]() {
			var params P

			originalParams := c.Params

			if err := c.ShouldBindUri(&params); err != nil {
				error = err.Error()
				resData.Error = err.Error()
				c.AbortWithStatusJSON(http.StatusBadRequest, resData)
				return
			}
			if err := validate.Struct(params); err != nil {
				error = err.Error()
				resData.Error = err.Error()
				c.AbortWithStatusJSON(http.StatusBadRequest, resData)
				return
			}

			c.Params = originalParams
			c.Set("validatedParams", params)
		}

		// --- Query ---
		if !isEmptyInterface[Q]() {
			var query Q

			originalQuery := c.Request.URL.RawQuery
			originalValues, _ := url.ParseQuery(originalQuery)

			if err := c.ShouldBindQuery(&query); err != nil {
				error = err.Error()
				resData.Error = err.Error()
				c.AbortWithStatusJSON(http.StatusBadRequest, resData)
				return
			}
			if err := validate.Struct(query); err != nil {
				error = err.Error()
				resData.Error = err.Error()
				c.AbortWithStatusJSON(http.StatusBadRequest, resData)
				return
			}

			c.Request.URL.RawQuery = originalValues.Encode()
			c.Set("validatedQuery", query)
		}

		c.Next()
	}
}
