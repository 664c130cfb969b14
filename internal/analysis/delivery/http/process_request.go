package http

import (
	"trustrate-srv/internal/model"
	"trustrate-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processAnalyzeRequest(c *gin.Context) (analyzeReq, model.Scope, error) {
	var req analyzeReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processGetRequest(c *gin.Context) (string, model.Scope, error) {
	videoID := c.Param("video_id")
	if videoID == "" {
		return "", model.Scope{}, errMissingVideoID
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return videoID, sc, nil
}
