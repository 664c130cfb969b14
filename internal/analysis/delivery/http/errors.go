package http

import (
	"errors"

	"trustrate-srv/internal/analysis"
	"trustrate-srv/internal/video"
	pkgErrors "trustrate-srv/pkg/errors"
)

var (
	errWrongBody = pkgErrors.NewHTTPError(
		400, 40001, "Invalid request body",
	)
	errMissingVideoID = pkgErrors.NewHTTPError(
		400, 40002, "Video ID is required",
	)
	errVideoNotFound = pkgErrors.NewHTTPError(
		404, 40401, "Video not found",
	)
	errNoComments = pkgErrors.NewHTTPError(
		422, 42201, "Video has no comments available for analysis",
	)
	errAnalysisNotFound = pkgErrors.NewHTTPError(
		404, 40402, "No analysis found for this video",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, video.ErrVideoIDRequired):
		return errMissingVideoID
	case errors.Is(err, video.ErrVideoNotFound):
		return errVideoNotFound
	case errors.Is(err, video.ErrNoComments):
		return errNoComments
	case errors.Is(err, analysis.ErrVideoIDRequired):
		return errMissingVideoID
	case errors.Is(err, analysis.ErrAnalysisNotFound):
		return errAnalysisNotFound
	default:
		panic(err)
	}
}
