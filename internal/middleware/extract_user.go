package middleware

import (
	"go-leave/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
)

// ExtractIdentity makes the authenticated email visible to the service layer
// through the standard request context.
func ExtractIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := GetIdentity(c)
		if identity == "" {
			abortWith(c, ErrMissingEmail)
			return
		}

		ctx := contextutil.WithIdentity(c.Request.Context(), identity)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
