package youtube

import "errors"

var (
	// ErrAPIKeyRequired - the API key is missing from config.
	ErrAPIKeyRequired = errors.New("youtube: API key is required")

	// ErrVideoNotFound - the video does not exist or is private.
	ErrVideoNotFound = errors.New("youtube: video not found")

	// ErrCommentsDisabled - comments are disabled for the video.
	ErrCommentsDisabled = errors.New("youtube: comments are disabled")
)
