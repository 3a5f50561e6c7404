package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/wanderlustbites/content-service/internal/constant"
)

func CorrelationIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		cid := c.GetHeader("X-Correlation-ID")
		if cid == "" {
			cid = uuid.New().String()
		}
		ctx := context.WithValue(c.Request.Context(), constant.CorrelationIDKey, cid)
		c.Request = c.Request.WithContext(ctx)
		c.Writer.Header().Set("X-Correlation-ID", cid)
		c.Next()
	}
}
