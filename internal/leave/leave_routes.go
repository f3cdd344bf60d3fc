package leave

import (
	"go-leave/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RegisterRoutes mounts the leave workflow. Role checks happen in the
// service so callers get the workflow's own error messages.
func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rdb *redis.Client,
	authn ...gin.HandlerFunc,
) {
	leaves := r.Group("/leaves")
	leaves.Use(authn...)
	{
		leaves.POST("", middleware.Idempotency(rdb), handler.Submit)
		leaves.POST("/:id/decision", middleware.RateLimitByUser(2, 10), handler.Decide)
		leaves.GET("/mine", handler.GetMine)
		leaves.GET("/pending", handler.GetPending)
		leaves.GET("/team", handler.GetTeam)
		leaves.GET("", handler.GetAll)
		leaves.GET("/:id", handler.GetByID)
	}
}
