package rbac

import (
	"go-leave/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authz middleware.RBACService, authn ...gin.HandlerFunc) {
	group := r.Group("/admin/rbac")
	group.Use(authn...)
	group.Use(middleware.RBACAuthorize(authz, "policy", "read"))
	{
		group.GET("/policies", handler.ListPolicies)
		group.POST("/enforce", handler.Enforce)
	}
}
