package userrole

import (
	"go-leave/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	authn ...gin.HandlerFunc,
) {
	users := r.Group("/admin/users")
	users.Use(authn...)
	{
		users.GET("", middleware.RBACAuthorize(rbacService, "user", "read"), handler.GetAll)
		users.GET("/:email", middleware.RBACAuthorize(rbacService, "user", "read"), handler.GetByEmail)
		users.PUT("",
			middleware.RateLimitByUser(0.5, 5),
			middleware.RBACAuthorize(rbacService, "user", "manage"),
			handler.Upsert,
		)
	}
}
