package analysis

import "errors"

// Domain errors
var (
	// ErrAnalysisNotFound - no stored analysis exists for the video.
	ErrAnalysisNotFound = errors.New("analysis: not found")

	// ErrVideoIDRequired - the request carried no video id.
	ErrVideoIDRequired = errors.New("analysis: video id is required")
)
