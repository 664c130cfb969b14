package http

import (
	"trustrate-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	api.Use(mw.Auth())
	{
		api.POST("/analyses", h.Analyze)
		api.GET("/analyses/:video_id", h.GetByVideo)
	}
}
