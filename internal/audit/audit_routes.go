package audit

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
	logs := r.Group("/admin/audit")
	logs.Use(authn...)
	{
		logs.GET("", middleware.RBACAuthorize(rbacService, "audit", "read"), handler.List)
	}
}
