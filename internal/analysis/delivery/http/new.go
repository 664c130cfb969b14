package http

import (
	"trustrate-srv/internal/analysis"
	"trustrate-srv/internal/middleware"
	"trustrate-srv/internal/video"
	"trustrate-srv/pkg/discord"
	"trustrate-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - Interface for the analysis HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      analysis.UseCase
	videoUC video.UseCase
	discord discord.IDiscord
}

// New - Factory
func New(l log.Logger, uc analysis.UseCase, videoUC video.UseCase, discord discord.IDiscord) Handler {
	return &handler{l: l, uc: uc, videoUC: videoUC, discord: discord}
}
