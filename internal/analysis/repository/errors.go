package repository

import "errors"

var (
	// ErrNotFound - no row/key for the requested video.
	ErrNotFound = errors.New("analysis repository: not found")

	// ErrCreateFailed - the insert did not complete.
	ErrCreateFailed = errors.New("analysis repository: create failed")
)
