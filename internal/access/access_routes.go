package access

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authn ...gin.HandlerFunc) {
	me := r.Group("/me")
	me.Use(authn...)
	{
		me.GET("/role", handler.GetRole)
		me.GET("/leave-types", handler.GetAllowedLeaveTypes)
		me.GET("/permissions", handler.GetPermissions)
	}
}
