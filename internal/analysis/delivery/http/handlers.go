package http

import (
	"trustrate-srv/internal/analysis"
	"trustrate-srv/internal/video"
	"trustrate-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Analyze - Run a full trust analysis for one video
// @Summary Analyze a video's comments
// @Description Fetches the video and its comments, samples them, classifies sentiment and returns the trust rating
// @Tags Analysis
// @Accept json
// @Produce json
// @Param body body analyzeReq true "Analyze request"
// @Success 200 {object} analysisResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 422 {object} response.Resp
// @Router /api/v1/analyses [post]
func (h *handler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Process request
	req, sc, err := h.processAnalyzeRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.Analyze: processAnalyzeRequest failed: %v", err)
		response.Error(c, errWrongBody, h.discord)
		return
	}

	// 2. Fetch the video and its comments
	fetched, err := h.videoUC.GetWithComments(ctx, sc, video.GetWithCommentsInput{
		VideoID:     req.VideoID,
		MaxComments: req.MaxComments,
	})
	if err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.Analyze: fetch failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	// 3. Call UseCase
	output, err := h.uc.Analyze(ctx, sc, analysis.AnalyzeInput{
		Video:    fetched.Video,
		VideoID:  req.VideoID,
		Comments: fetched.Comments,
	})
	if err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.Analyze: usecase Analyze failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	// 4. Return response
	response.OK(c, h.newAnalysisResp(fetched.Video, output))
}

// GetByVideo - Fetch the latest stored analysis for a video
// @Summary Get the latest analysis
// @Description Returns the most recent stored analysis for the given video ID
// @Tags Analysis
// @Produce json
// @Param video_id path string true "Video ID"
// @Success 200 {object} analysisResp
// @Failure 404 {object} response.Resp
// @Router /api/v1/analyses/{video_id} [get]
func (h *handler) GetByVideo(c *gin.Context) {
	ctx := c.Request.Context()

	videoID, sc, err := h.processGetRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.GetByVideo: processGetRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	output, err := h.uc.GetByVideo(ctx, sc, videoID)
	if err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.GetByVideo: usecase GetByVideo failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newStoredAnalysisResp(output))
}
