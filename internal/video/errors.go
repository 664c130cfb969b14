package video

import "errors"

var (
	// ErrVideoIDRequired - no video ID was supplied.
	ErrVideoIDRequired = errors.New("video ID is required")

	// ErrVideoNotFound - the video does not exist or is private.
	ErrVideoNotFound = errors.New("video not found")

	// ErrNoComments - the video has no comments or comments are disabled.
	ErrNoComments = errors.New("video has no comments available")
)
